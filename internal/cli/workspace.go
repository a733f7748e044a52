package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"technician-dispatch/internal/app"
	"technician-dispatch/internal/repository"
	"technician-dispatch/internal/views"
)

// workspace is what the read-only commands work on.
type workspace struct {
	Store       *repository.AssignmentStore
	NewRenderer func(views.Layout) *views.Renderer
	Location    *time.Location
	Now         func() time.Time
}

type workspaceLoader func(cmd *cobra.Command) (*workspace, error)

type workspaceIn struct {
	dig.In

	Store       *repository.AssignmentStore
	NewRenderer func(views.Layout) *views.Renderer
	Location    *time.Location
}

// loadWorkspace builds the service container without serving, so the CLI sees
// the same store the server would boot with.
func loadWorkspace(cmd *cobra.Command) (*workspace, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	container, err := app.NewContainerBuilder().
		WithFlags(cmd.Flags()).
		WithOutput(cmd.ErrOrStderr()).
		Build(ctx)
	if err != nil {
		return nil, err
	}

	var ws *workspace
	err = container.Invoke(func(in workspaceIn) {
		ws = &workspace{
			Store:       in.Store,
			NewRenderer: in.NewRenderer,
			Location:    in.Location,
			Now:         time.Now,
		}
	})
	if err != nil {
		return nil, err
	}
	return ws, nil
}
