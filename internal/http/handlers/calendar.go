package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"technician-dispatch/internal/calendar"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/views"
)

var errInvalidExpand = errors.New("invalid expand")

// CalendarHandler renders month, week and day view models.
type CalendarHandler struct {
	store       assignmentLister
	newRenderer func(views.Layout) *views.Renderer
	loc         *time.Location
	now         func() time.Time
	logger      logx.Logger
}

// NewCalendarHandler creates a new CalendarHandler. newRenderer builds a
// renderer for the requested layout.
func NewCalendarHandler(
	store assignmentLister,
	newRenderer func(views.Layout) *views.Renderer,
	loc *time.Location,
	logger logx.Logger,
) *CalendarHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &CalendarHandler{
		store:       store,
		newRenderer: newRenderer,
		loc:         loc,
		now:         time.Now,
		logger:      logger,
	}
}

// Render handles GET /calendar/{view}.
//
// Query: date (anchor, default today), selected (month only, default the
// anchor), layout (desktop|compact) and expand (comma separated dates).
func (h *CalendarHandler) Render(w http.ResponseWriter, r *http.Request) {
	mode, err := calendar.ParseViewMode(chi.URLParam(r, "view"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid view", nil)
		return
	}
	layout, err := views.ParseLayout(r.URL.Query().Get("layout"))
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid layout", nil)
		return
	}
	if !views.Offers(layout, mode) {
		writeError(h.logger, w, r, http.StatusBadRequest, "view not offered for layout", nil)
		return
	}

	today := domain.DateOf(h.now(), h.loc)
	anchor, err := dateFromQuery(r, "date", h.loc, today)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	exp, err := h.expansion(r)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}

	rd := h.newRenderer(layout)
	rd.Today = func() domain.Date { return today }
	list := h.store.List()

	switch mode {
	case calendar.ViewMonth:
		selected, err := dateFromQuery(r, "selected", h.loc, anchor)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), nil)
			return
		}
		writeJSON(h.logger, w, r, http.StatusOK, rd.Month(anchor, selected, list, exp))
	case calendar.ViewWeek:
		writeJSON(h.logger, w, r, http.StatusOK, rd.Week(anchor, list, exp))
	default:
		writeJSON(h.logger, w, r, http.StatusOK, rd.Day(anchor, list))
	}
}

func (h *CalendarHandler) expansion(r *http.Request) (views.Expansion, error) {
	raw := r.URL.Query().Get("expand")
	if raw == "" {
		return views.NewExpansion(), nil
	}
	parts := strings.Split(raw, ",")
	days := make([]domain.Date, 0, len(parts))
	for _, s := range parts {
		d, err := domain.ParseDate(strings.TrimSpace(s), h.loc)
		if err != nil {
			return views.Expansion{}, errInvalidExpand
		}
		days = append(days, d)
	}
	return views.NewExpansion(days...), nil
}
