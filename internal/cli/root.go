// Package cli implements the dispatch command line.
package cli

import (
	"github.com/spf13/cobra"

	"technician-dispatch/internal/config"
)

// NewRootCmd returns the dispatch command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(loadWorkspace)
}

func newRootCmd(load workspaceLoader) *cobra.Command {
	root := &cobra.Command{
		Use:   "dispatch",
		Short: "Technician dispatch scheduling",
		Long: `dispatch schedules technicians onto service assignments.

It serves the scheduling API and renders the calendar in the terminal.`,
		SilenceUsage: true,
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(ServeCmd())
	root.AddCommand(calendarCmd(load))
	root.AddCommand(assignmentsCmd(load))
	root.AddCommand(statsCmd(load))
	return root
}
