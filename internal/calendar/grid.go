// Package calendar builds the date grids behind the month, week and day views
// and buckets assignments by calendar day.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
)

// ViewMode is the granularity of a calendar view.
type ViewMode string

// List of view modes
const (
	ViewMonth ViewMode = "month"
	ViewWeek  ViewMode = "week"
	ViewDay   ViewMode = "day"
)

const (
	// WeekStart is the first column of every grid.
	WeekStart = time.Sunday
	// MonthGridDays is six full weeks.
	MonthGridDays = 42
	// WeekDays is one full week.
	WeekDays = 7
)

// Valid checks if the ViewMode is valid
func (m ViewMode) Valid() bool {
	switch m {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

// ParseViewMode parses a case-insensitive view name.
func ParseViewMode(s string) (ViewMode, error) {
	m := ViewMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", fmt.Errorf("view %q: %w", s, apperr.ErrInvalid)
	}
	return m, nil
}

// Grid returns the dates rendered for anchor in the given mode.
// Unknown modes fall back to a single day.
func Grid(anchor domain.Date, mode ViewMode) []domain.Date {
	switch mode {
	case ViewMonth:
		return span(StartOfWeek(anchor.FirstOfMonth()), MonthGridDays)
	case ViewWeek:
		return span(StartOfWeek(anchor), WeekDays)
	default:
		return []domain.Date{anchor}
	}
}

// MonthGrid is Grid(anchor, ViewMonth).
func MonthGrid(anchor domain.Date) []domain.Date { return Grid(anchor, ViewMonth) }

// WeekGrid is Grid(anchor, ViewWeek).
func WeekGrid(anchor domain.Date) []domain.Date { return Grid(anchor, ViewWeek) }

// StartOfWeek returns the Sunday on or before d.
func StartOfWeek(d domain.Date) domain.Date {
	offset := (int(d.Weekday()) - int(WeekStart) + 7) % 7
	return d.AddDays(-offset)
}

// InMonth reports whether d belongs to the anchor's month (not a padding day).
func InMonth(d, anchor domain.Date) bool {
	return d.Year == anchor.Year && d.Month == anchor.Month
}

func span(start domain.Date, n int) []domain.Date {
	out := make([]domain.Date, n)
	for i := range out {
		out[i] = start.AddDays(i)
	}
	return out
}
