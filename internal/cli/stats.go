package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/views"
)

func statsCmd(load workspaceLoader) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Summarize assignments by status and priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := load(cmd)
			if err != nil {
				return err
			}
			st := views.Summarize(ws.Store.List())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d\n", bold.Sprint("Total"), st.Total)
			fmt.Fprintln(out)
			for _, s := range domain.Statuses {
				fmt.Fprintf(out, "  %-14s %d\n", statusBadge(s), st.ByStatus[s])
			}
			fmt.Fprintln(out)
			for i := len(domain.Priorities) - 1; i >= 0; i-- {
				p := domain.Priorities[i]
				fmt.Fprintf(out, "  %-14s %d\n", priorityBadge(p), st.ByPriority[p])
			}
			return nil
		},
	}
}
