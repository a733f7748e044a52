package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"technician-dispatch/internal/config"
	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/metrics"
	"technician-dispatch/internal/repository"
	"technician-dispatch/internal/service/propagation"
	"technician-dispatch/internal/transport/kafka"
)

func registerPropagation(container *dig.Container) error {
	publisherProvider := func(cfg *config.Config, logger logx.Logger) (*kafka.Publisher, error) {
		return kafka.NewPublisher(logger, cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}
	return provideAll(container, publisherProvider, newDispatcher)
}

type dispatcherIn struct {
	dig.In

	Config    *config.Config
	Logger    logx.Logger
	Registry  *prometheus.Registry
	Store     *repository.AssignmentStore
	Mirror    *repository.PostgresMirror
	Publisher *kafka.Publisher
}

// newDispatcher subscribes a dispatcher to the store that forwards every
// change to the configured sinks.
func newDispatcher(in dispatcherIn) *propagation.Dispatcher {
	dropped := metrics.NewPropagationDroppedTotal()
	retries := metrics.NewSinkRetriesTotal()
	failures := metrics.NewSinkFailuresTotal()
	in.Registry.MustRegister(dropped, retries, failures)

	retry := propagation.RetryConfig{
		MaxAttempts: in.Config.Propagation.Retry.MaxAttempts,
		BaseDelay:   in.Config.Propagation.Retry.BaseDelay,
		MaxDelay:    in.Config.Propagation.Retry.MaxDelay,
	}

	var sinks []propagation.Sink
	if in.Mirror != nil {
		sinks = append(sinks, propagation.NewRetryingSink(in.Mirror, repository.IsConnectionError, in.Logger, retries, retry))
	}
	if in.Publisher != nil {
		sinks = append(sinks, propagation.NewRetryingSink(in.Publisher, kafka.IsRetryable, in.Logger, retries, retry))
	}

	d := propagation.NewDispatcher(sinks, propagation.Config{
		Buffer:  in.Config.Propagation.Buffer,
		Timeout: in.Config.Propagation.Timeout,
	}, in.Logger, dropped, failures)
	in.Store.Subscribe(d.Listen)

	names := make([]string, 0, len(sinks))
	for _, s := range sinks {
		names = append(names, s.Name())
	}
	in.Logger.Info("propagation configured", logx.Any("sinks", names))
	return d
}
