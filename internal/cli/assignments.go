package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"technician-dispatch/internal/calendar"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/views"
)

func assignmentsCmd(load workspaceLoader) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "assignments",
		Short: "List assignments grouped by day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := load(cmd)
			if err != nil {
				return err
			}
			list := ws.Store.List()
			if date != "" {
				if list, err = calendar.AssignmentsForDay(list, date, ws.Location); err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			out := cmd.OutOrStdout()
			if len(list) == 0 {
				fmt.Fprintln(out, "No assignments.")
				return nil
			}
			r := ws.NewRenderer(views.LayoutDesktop)
			for _, d := range distinctDays(list) {
				printDay(out, r.Day(d, list))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "only assignments on this day")

	return cmd
}

func distinctDays(list []domain.Assignment) []domain.Date {
	seen := make(map[domain.Date]struct{}, len(list))
	var out []domain.Date
	for _, a := range list {
		if _, ok := seen[a.Date]; ok {
			continue
		}
		seen[a.Date] = struct{}{}
		out = append(out, a.Date)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
