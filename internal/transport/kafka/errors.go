package kafka

import (
	"errors"

	"github.com/IBM/sarama"
)

// PermanentError is a failure that retrying cannot fix.
type PermanentError struct {
	Err error
}

func (e PermanentError) Error() string {
	if e.Err == nil {
		return "permanent error"
	}
	return e.Err.Error()
}

func (e PermanentError) Unwrap() error { return e.Err }

// Permanent marks err as not retryable.
func Permanent(err error) error {
	return PermanentError{Err: err}
}

// IsRetryable reports whether publishing may succeed on another attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var perm PermanentError
	if errors.As(err, &perm) {
		return false
	}
	var kerr sarama.KError
	if errors.As(err, &kerr) {
		switch kerr {
		case sarama.ErrNotLeaderForPartition,
			sarama.ErrLeaderNotAvailable,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend,
			sarama.ErrNetworkException:
			return true
		}
		return false
	}
	return errors.Is(err, sarama.ErrOutOfBrokers) || errors.Is(err, sarama.ErrNotConnected)
}
