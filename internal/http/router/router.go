// Package router assembles the chi router of the dispatch API.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"technician-dispatch/internal/http/handlers"
	mw "technician-dispatch/internal/http/middleware"
	"technician-dispatch/internal/logx"
)

// Handlers groups the endpoint handlers mounted by New.
type Handlers struct {
	Base        *handlers.Handlers
	Reference   *handlers.ReferenceHandler
	Assignments *handlers.AssignmentHandler
	Calendar    *handlers.CalendarHandler
	Sessions    *handlers.SessionHandler
}

// Options carries the cross-cutting pieces of the router. A nil Gatherer
// leaves /metrics unmounted.
type Options struct {
	Logger   logx.Logger
	Metrics  *mw.HTTPMetrics
	Gatherer prometheus.Gatherer
	Timeout  time.Duration
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(h Handlers, opts Options) http.Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.Observability(opts.Logger, opts.Metrics))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(opts.Timeout))

	r.Get("/ping", h.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.Base.HealthcheckHead))
	if opts.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/technicians", h.Reference.Technicians)
	r.Get("/locations", h.Reference.Locations)

	r.Route("/assignments", func(r chi.Router) {
		r.Get("/", h.Assignments.List)
		r.Get("/stats", h.Assignments.Stats)
		r.Get("/{id}", h.Assignments.Get)
		r.Patch("/{id}/status", h.Assignments.SetStatus)
	})

	r.Get("/calendar/{view}", h.Calendar.Render)

	r.Post("/sessions", h.Sessions.Open)
	r.Route("/sessions/{sid}", func(r chi.Router) {
		r.Get("/", h.Sessions.Get)
		r.Delete("/", h.Sessions.End)
		r.Post("/create", h.Sessions.Create)
		r.Post("/view/{id}", h.Sessions.View)
		r.Post("/edit/{id}", h.Sessions.Edit)
		r.Patch("/draft", h.Sessions.UpdateDraft)
		r.Post("/save", h.Sessions.Save)
		r.Post("/close", h.Sessions.Close)
		r.Post("/delete", h.Sessions.Delete)
		r.Post("/status", h.Sessions.Status)
	})

	r.NotFound(h.Base.NotFound)
	r.MethodNotAllowed(h.Base.MethodNotAllowed)

	return r
}
