package propagation

import (
	"context"

	"technician-dispatch/internal/repository"
)

// Sink receives assignment changes outside the store, e.g. a database mirror
// or an event topic.
type Sink interface {
	Name() string
	Apply(ctx context.Context, c repository.Change) error
}

type counter interface {
	Inc()
}
