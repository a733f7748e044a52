package propagation

import (
	"context"
	"time"

	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/repository"
)

// RetryConfig describes how RetryingSink retries.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingSink retries transient failures of the wrapped sink with
// exponential backoff.
type RetryingSink struct {
	next      Sink
	retryable func(error) bool
	logger    logx.Logger
	retries   counter
	cfg       RetryConfig
}

// NewRetryingSink wraps next. It returns nil when next is nil. retryable
// decides which errors are worth another attempt.
func NewRetryingSink(next Sink, retryable func(error) bool, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingSink {
	if next == nil {
		return nil
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &RetryingSink{next: next, retryable: retryable, logger: logger, retries: retries, cfg: cfg}
}

// Name is the name of the wrapped sink.
func (s *RetryingSink) Name() string { return s.next.Name() }

// Apply calls the wrapped sink until it succeeds, fails permanently, runs out
// of attempts or ctx is done.
func (s *RetryingSink) Apply(ctx context.Context, c repository.Change) error {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		err := s.next.Apply(ctx, c)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctx.Err() != nil || attempt == s.cfg.MaxAttempts || s.retryable == nil || !s.retryable(err) {
			break
		}

		delay := backoff(s.cfg.BaseDelay, s.cfg.MaxDelay, attempt)
		if s.retries != nil {
			s.retries.Inc()
		}
		s.logger.Warn("sink retry",
			logx.String("sink", s.next.Name()),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Any("err", err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if max > 0 && d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
