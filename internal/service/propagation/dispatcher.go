// Package propagation forwards assignment store changes to external sinks
// without blocking the store.
package propagation

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/repository"
)

// Config tunes a Dispatcher.
type Config struct {
	// Buffer is the number of changes that may wait for delivery.
	Buffer int
	// Timeout bounds a single sink call.
	Timeout time.Duration
}

// Dispatcher queues store changes and applies them to every sink on one
// goroutine, in mutation order. A full queue drops the change.
type Dispatcher struct {
	sinks    []Sink
	queue    chan repository.Change
	timeout  time.Duration
	logger   logx.Logger
	dropped  counter
	failures *prometheus.CounterVec

	droppedN atomic.Int64
}

// NewDispatcher creates a Dispatcher. dropped and failures may be nil.
func NewDispatcher(sinks []Sink, cfg Config, logger logx.Logger, dropped counter, failures *prometheus.CounterVec) *Dispatcher {
	if cfg.Buffer <= 0 {
		cfg.Buffer = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Dispatcher{
		sinks:    sinks,
		queue:    make(chan repository.Change, cfg.Buffer),
		timeout:  cfg.Timeout,
		logger:   logger,
		dropped:  dropped,
		failures: failures,
	}
}

// Listen is a repository.Listener. It never blocks.
func (d *Dispatcher) Listen(c repository.Change) {
	d.Enqueue(c)
}

// Enqueue queues c and reports whether it was accepted.
func (d *Dispatcher) Enqueue(c repository.Change) bool {
	if len(d.sinks) == 0 {
		return true
	}
	c.Snapshot = nil
	select {
	case d.queue <- c:
		return true
	default:
		d.droppedN.Add(1)
		if d.dropped != nil {
			d.dropped.Inc()
		}
		d.logger.Warn("assignment change dropped",
			logx.String("kind", string(c.Kind)),
			logx.Int64("assignment_id", c.Assignment.ID),
		)
		return false
	}
}

// Dropped returns the number of changes dropped so far.
func (d *Dispatcher) Dropped() int64 {
	return d.droppedN.Load()
}

// Run delivers queued changes until ctx is done, then flushes what is
// already queued and returns ctx.Err().
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.flush(context.WithoutCancel(ctx))
			return ctx.Err()
		case c := <-d.queue:
			d.deliver(ctx, c)
		}
	}
}

func (d *Dispatcher) flush(ctx context.Context) {
	for {
		select {
		case c := <-d.queue:
			d.deliver(ctx, c)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, c repository.Change) {
	for _, s := range d.sinks {
		if err := d.apply(ctx, s, c); err != nil {
			if d.failures != nil {
				d.failures.WithLabelValues(s.Name()).Inc()
			}
			d.logger.Error("assignment change not propagated",
				logx.String("sink", s.Name()),
				logx.String("kind", string(c.Kind)),
				logx.Int64("assignment_id", c.Assignment.ID),
				logx.Any("err", err),
			)
		}
	}
}

func (d *Dispatcher) apply(ctx context.Context, s Sink, c repository.Change) error {
	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}
	return s.Apply(ctx, c)
}
