package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"technician-dispatch/internal/calendar"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/views"
)

func calendarCmd(load workspaceLoader) *cobra.Command {
	var (
		date     string
		selected string
		compact  bool
		expand   []string
	)

	cmd := &cobra.Command{
		Use:   "calendar [month|week|day]",
		Short: "Render the schedule as a calendar",
		Long: `Render the schedule around --date (default today).

Cells show a limited number of assignments; --expand lists every assignment
of the given days. --compact uses the small-screen limits, which offer no
month view.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(calendar.ViewMonth), string(calendar.ViewWeek), string(calendar.ViewDay)},
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := calendar.ViewMonth
			if len(args) == 1 {
				m, err := calendar.ParseViewMode(args[0])
				if err != nil {
					return err
				}
				mode = m
			}
			layout := views.LayoutDesktop
			if compact {
				layout = views.LayoutCompact
			}
			if !views.Offers(layout, mode) {
				return fmt.Errorf("%s view is not available in compact layout", mode)
			}

			ws, err := load(cmd)
			if err != nil {
				return err
			}
			today := domain.DateOf(ws.Now(), ws.Location)
			anchor, err := parseDateFlag("date", date, ws, today)
			if err != nil {
				return err
			}
			days := make([]domain.Date, 0, len(expand))
			for _, s := range expand {
				d, err := domain.ParseDate(s, ws.Location)
				if err != nil {
					return fmt.Errorf("invalid --expand %q: %w", s, err)
				}
				days = append(days, d)
			}
			exp := views.NewExpansion(days...)

			r := ws.NewRenderer(layout)
			r.Today = func() domain.Date { return today }
			list := ws.Store.List()
			out := cmd.OutOrStdout()

			switch mode {
			case calendar.ViewMonth:
				sel, err := parseDateFlag("selected", selected, ws, anchor)
				if err != nil {
					return err
				}
				printMonth(out, r.Month(anchor, sel, list, exp))
			case calendar.ViewWeek:
				printWeek(out, r.Week(anchor, list, exp))
			default:
				printDay(out, r.Day(anchor, list))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "anchor date, YYYY-MM-DD")
	cmd.Flags().StringVar(&selected, "selected", "", "selected day of the month view")
	cmd.Flags().BoolVar(&compact, "compact", false, "use the compact layout")
	cmd.Flags().StringSliceVar(&expand, "expand", nil, "days to show in full")

	return cmd
}

func parseDateFlag(name, value string, ws *workspace, def domain.Date) (domain.Date, error) {
	if value == "" {
		return def, nil
	}
	d, err := domain.ParseDate(value, ws.Location)
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid --%s %q: %w", name, value, err)
	}
	return d, nil
}
