package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/views"
)

const cellWidth = 9

var (
	bold    = color.New(color.Bold)
	faint   = color.New(color.FgHiBlack)
	todayHL = color.New(color.FgHiMagenta, color.Bold)
	selHL   = color.New(color.FgHiCyan, color.Underline)
)

func statusColor(s domain.AssignmentStatus) *color.Color {
	switch s {
	case domain.StatusScheduled:
		return color.New(color.FgHiBlue)
	case domain.StatusInProgress:
		return color.New(color.FgYellow)
	case domain.StatusCompleted:
		return color.New(color.FgHiGreen)
	case domain.StatusCancelled:
		return color.New(color.FgRed)
	default:
		return color.New(color.FgWhite)
	}
}

func priorityColor(p domain.Priority) *color.Color {
	switch p {
	case domain.PriorityUrgent:
		return color.New(color.FgHiRed, color.Bold)
	case domain.PriorityHigh:
		return color.New(color.FgRed)
	case domain.PriorityLow:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.FgWhite)
	}
}

func statusBadge(s domain.AssignmentStatus) string {
	return statusColor(s).Sprintf("[%s]", views.StatusLabel(s))
}

func priorityBadge(p domain.Priority) string {
	return priorityColor(p).Sprint(views.PriorityLabel(p))
}

func printMonth(w io.Writer, mv views.MonthView) {
	fmt.Fprintln(w, bold.Sprint(mv.Title))
	for _, wd := range mv.Weekdays {
		fmt.Fprintf(w, "%-*s", cellWidth, wd)
	}
	fmt.Fprintln(w)

	var selected *views.DayCell
	for _, week := range mv.Weeks {
		for i := range week {
			cell := week[i]
			fmt.Fprint(w, monthCell(cell))
			if cell.Selected {
				selected = &week[i]
			}
		}
		fmt.Fprintln(w)
	}

	if selected == nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s\n", bold.Sprint("Selected"), selected.Date)
	printCellEntries(w, *selected)
}

// monthCell is a fixed-width cell: day number plus an assignment count.
func monthCell(cell views.DayCell) string {
	text := fmt.Sprintf("%2d", cell.Date.Day)
	if cell.Total > 0 {
		text += fmt.Sprintf(" •%d", cell.Total)
	}
	pad := strings.Repeat(" ", max(cellWidth-len([]rune(text)), 1))

	switch {
	case cell.Today:
		text = todayHL.Sprint(text)
	case cell.Selected:
		text = selHL.Sprint(text)
	case !cell.InMonth:
		text = faint.Sprint(text)
	}
	return text + pad
}

func printWeek(w io.Writer, wv views.WeekView) {
	fmt.Fprintln(w, bold.Sprint(wv.Title))
	for _, cell := range wv.Days {
		head := fmt.Sprintf("%s %s", cell.Date.Weekday().String()[:3], cell.Date)
		if cell.Today {
			head = todayHL.Sprint(head)
		}
		fmt.Fprintln(w, head)
		printCellEntries(w, cell)
	}
}

func printCellEntries(w io.Writer, cell views.DayCell) {
	if cell.Total == 0 {
		fmt.Fprintln(w, faint.Sprint("  (none)"))
		return
	}
	for _, e := range cell.Entries {
		fmt.Fprintln(w, "  "+entryLine(e))
	}
	if cell.Hidden > 0 {
		fmt.Fprintln(w, faint.Sprintf("  +%d more", cell.Hidden))
	}
}

func printDay(w io.Writer, dv views.DayView) {
	fmt.Fprintln(w, bold.Sprint(dv.Title))
	if len(dv.Entries) == 0 {
		fmt.Fprintln(w, faint.Sprint("  (none)"))
		return
	}
	for _, e := range dv.Entries {
		fmt.Fprintln(w, "  "+entryLine(e.Entry))
		if e.Description != "" {
			fmt.Fprintf(w, "      %s\n", e.Description)
		}
		if e.LocationAddress != "" {
			fmt.Fprintf(w, "      %s (%s)\n", e.LocationAddress, e.LocationType)
		}
		if e.Notes != "" {
			fmt.Fprintf(w, "      %s %s\n", faint.Sprint("notes:"), e.Notes)
		}
	}
}

func entryLine(e views.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s %s %s", e.AssignmentID, statusBadge(e.Status), e.Title, priorityBadge(e.Priority))
	if len(e.Technicians) > 0 {
		fmt.Fprintf(&b, " | %s", strings.Join(e.Technicians, ", "))
	}
	if e.Location != "" {
		fmt.Fprintf(&b, " @ %s", e.Location)
	}
	return b.String()
}
