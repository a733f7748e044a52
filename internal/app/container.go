// Package app wires the dispatch service together and runs it.
package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/pflag"
	"go.uber.org/dig"

	"technician-dispatch/internal/config"
	"technician-dispatch/internal/http/handlers"
	mw "technician-dispatch/internal/http/middleware"
	"technician-dispatch/internal/http/router"
	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/metrics"
	"technician-dispatch/internal/repository"
	"technician-dispatch/internal/views"
	"technician-dispatch/internal/workflow"
)

type dbConnectFunc func(ctx context.Context, logger logx.Logger, dsn string, retries int, delay time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
	flags     *pflag.FlagSet
	cfg       *config.Config
	output    io.Writer
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
		output:    os.Stdout,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// WithFlags sets the command line flags that override the environment.
func (b *ContainerBuilder) WithFlags(fs *pflag.FlagSet) *ContainerBuilder {
	b.flags = fs
	return b
}

// WithConfig skips config loading and uses cfg as is.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	b.cfg = cfg
	return b
}

// WithOutput sets where logs are written.
func (b *ContainerBuilder) WithOutput(w io.Writer) *ContainerBuilder {
	if w != nil {
		b.output = w
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.Build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// Build builds and returns a new dig container
func (b *ContainerBuilder) Build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := b.registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStorage(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}
	if err := registerPropagation(container); err != nil {
		return nil, fmt.Errorf("propagation: %w", err)
	}
	if err := registerWorkflow(container); err != nil {
		return nil, fmt.Errorf("workflow: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func (b *ContainerBuilder) registerCore(container *dig.Container, ctx context.Context) error {
	loadConfig := func() (*config.Config, error) {
		if b.cfg != nil {
			return b.cfg, nil
		}
		return config.Load(b.flags)
	}
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		func(cfg *config.Config) (logx.Logger, error) { return newLogger(cfg, b.output) },
		func(cfg *config.Config) *time.Location { return cfg.Location },
		newRegistry,
	)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func registerStorage(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		if !cfg.DB.Enabled() {
			logger.Info("postgres mirror disabled")
			return nil, nil
		}
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container,
		providerDB,
		newMirror,
		func() *repository.TechnicianCatalog {
			return repository.NewTechnicianCatalog(repository.SeedTechnicians())
		},
		func() *repository.LocationCatalog {
			return repository.NewLocationCatalog(repository.SeedLocations())
		},
		newAssignmentStore,
		newStoreMetrics,
	)
}

func newMirror(ctx context.Context, pool *pgxpool.Pool) (*repository.PostgresMirror, error) {
	if pool == nil {
		return nil, nil
	}
	m := repository.NewPostgresMirror(pool)
	if err := m.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	return m, nil
}

// newAssignmentStore boots from the mirror when it holds rows, otherwise
// from the sample schedule.
func newAssignmentStore(ctx context.Context, logger logx.Logger, mirror *repository.PostgresMirror) *repository.AssignmentStore {
	seed := repository.SeedAssignments()
	if mirror != nil {
		rows, err := mirror.Load(ctx)
		switch {
		case err != nil:
			logger.Warn("mirror load failed, booting from seed", logx.Err(err))
		case len(rows) > 0:
			seed = rows
		}
	}
	logger.Info("assignment store ready", logx.Int("assignments", len(seed)))
	return repository.NewAssignmentStore(seed)
}

func newStoreMetrics(reg *prometheus.Registry, store *repository.AssignmentStore) *metrics.Store {
	m := metrics.NewStore()
	reg.MustRegister(m.Collectors()...)
	m.Reset(store.List())
	store.Subscribe(m.Observe)
	return m
}

func registerWorkflow(container *dig.Container) error {
	sessionsProvider := func(
		cfg *config.Config,
		logger logx.Logger,
		store *repository.AssignmentStore,
		locs *repository.LocationCatalog,
	) *workflow.Sessions {
		return workflow.NewSessions(cfg.SessionTTL, func(n workflow.Notifier) *workflow.Controller {
			return workflow.NewController(store, locs,
				workflow.WithNotifier(n),
				workflow.WithLogger(logger),
				workflow.WithLocation(cfg.Location),
			)
		})
	}
	rendererProvider := func(
		techs *repository.TechnicianCatalog,
		locs *repository.LocationCatalog,
	) func(views.Layout) *views.Renderer {
		return func(l views.Layout) *views.Renderer {
			return views.NewRenderer(techs, locs, l)
		}
	}
	return provideAll(container, sessionsProvider, rendererProvider)
}

type routerIn struct {
	dig.In

	Logger      logx.Logger
	Registry    *prometheus.Registry
	Base        *handlers.Handlers
	Reference   *handlers.ReferenceHandler
	Assignments *handlers.AssignmentHandler
	Calendar    *handlers.CalendarHandler
	Sessions    *handlers.SessionHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Handlers{
		Base:        in.Base,
		Reference:   in.Reference,
		Assignments: in.Assignments,
		Calendar:    in.Calendar,
		Sessions:    in.Sessions,
	}, router.Options{
		Logger:   in.Logger,
		Metrics:  mw.NewHTTPMetrics(in.Registry),
		Gatherer: in.Registry,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		func(techs *repository.TechnicianCatalog, locs *repository.LocationCatalog, logger logx.Logger) *handlers.ReferenceHandler {
			return handlers.NewReferenceHandler(techs, locs, logger)
		},
		func(store *repository.AssignmentStore, loc *time.Location, logger logx.Logger) *handlers.AssignmentHandler {
			return handlers.NewAssignmentHandler(store, loc, logger)
		},
		func(
			store *repository.AssignmentStore,
			newRenderer func(views.Layout) *views.Renderer,
			loc *time.Location,
			logger logx.Logger,
		) *handlers.CalendarHandler {
			return handlers.NewCalendarHandler(store, newRenderer, loc, logger)
		},
		func(sessions *workflow.Sessions, loc *time.Location, logger logx.Logger) *handlers.SessionHandler {
			return handlers.NewSessionHandler(sessions, loc, logger)
		},
		newRouter,
		serverProvider,
	)
}
