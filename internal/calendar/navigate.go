package calendar

import (
	"fmt"

	"technician-dispatch/internal/domain"
)

// Shift moves anchor by steps views: months for the month view, weeks for
// the week view and days otherwise. Month shifts clamp the day.
func Shift(anchor domain.Date, mode ViewMode, steps int) domain.Date {
	switch mode {
	case ViewMonth:
		return anchor.AddMonths(steps)
	case ViewWeek:
		return anchor.AddDays(WeekDays * steps)
	default:
		return anchor.AddDays(steps)
	}
}

// Title is the header text of a view.
func Title(anchor domain.Date, mode ViewMode) string {
	switch mode {
	case ViewMonth:
		return fmt.Sprintf("%s %d", anchor.Month, anchor.Year)
	case ViewWeek:
		days := WeekGrid(anchor)
		first, last := days[0], days[len(days)-1]
		return fmt.Sprintf("%s %d – %s %d, %d",
			first.Month.String()[:3], first.Day, last.Month.String()[:3], last.Day, last.Year)
	default:
		return fmt.Sprintf("%s %d, %d", anchor.Month, anchor.Day, anchor.Year)
	}
}
