package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/metrics"
	"technician-dispatch/internal/service/propagation"
	"technician-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Run serves the API until the container's context is done, then shuts the
// server down and flushes pending propagation.
func Run(container *dig.Container) error {
	err := container.Invoke(serve)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

type serveIn struct {
	dig.In

	Ctx        context.Context
	Logger     logx.Logger
	Server     *http.Server
	Dispatcher *propagation.Dispatcher
	Metrics    *metrics.Store
	Pool       *pgxpool.Pool
	Publisher  *kafka.Publisher
}

func serve(in serveIn) error {
	ln, err := net.Listen("tcp", in.Server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", in.Server.Addr, err)
	}
	return serveOn(in, ln)
}

func serveOn(in serveIn, ln net.Listener) error {
	defer closeResources(in.Pool, in.Publisher, in.Logger)

	dispatchCtx, stopDispatch := context.WithCancel(in.Ctx)
	defer stopDispatch()
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		_ = in.Dispatcher.Run(dispatchCtx)
	}()

	serverErr := startServer(in.Server, ln, in.Logger)

	var runErr error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down technician-dispatch")
	case runErr = <-serverErr:
		in.Logger.Error("http server stopped", logx.Err(runErr))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	stopDispatch()
	<-dispatchDone
	if d := in.Dispatcher.Dropped(); d > 0 {
		in.Logger.Warn("assignment changes dropped during run", logx.Int64("dropped", d))
	}
	return runErr
}

func startServer(server *http.Server, ln net.Listener, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("technician-dispatch listening", logx.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, publisher *kafka.Publisher, logger logx.Logger) {
	if err := publisher.Close(); err != nil {
		logger.Error("kafka close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
