package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"technician-dispatch/internal/app"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			container, err := app.NewContainerBuilder().
				WithFlags(cmd.Flags()).
				WithOutput(cmd.OutOrStdout()).
				Build(ctx)
			if err != nil {
				return err
			}
			return app.Run(container)
		},
	}
}
