package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO layout used for civil dates on every boundary.
const DateLayout = "2006-01-02"

// Date is a civil calendar date without time-of-day or zone.
// All day matching in the scheduler compares Date values, never instants.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns a normalized Date (e.g. June 31 becomes July 1).
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC), time.UTC)
}

// DateOf returns the calendar day of t as observed in loc.
// A nil loc means time.Local.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses either a date-only string (taken literally) or an RFC 3339
// timestamp, which is converted into loc before the day is taken.
func ParseDate(s string, loc *time.Location) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, fmt.Errorf("parse date: empty value")
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return DateOf(t, time.UTC), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t, loc), nil
}

// In returns local midnight of d in loc. A nil loc means time.Local.
func (d Date) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// noon is used for arithmetic so DST transitions never move the day.
func (d Date) noon() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 12, 0, 0, 0, time.UTC)
}

// AddDays returns d shifted by n days.
func (d Date) AddDays(n int) Date {
	return DateOf(d.noon().AddDate(0, 0, n), time.UTC)
}

// AddMonths shifts by n months and clamps the day to the target month length.
func (d Date) AddMonths(n int) Date {
	first := time.Date(d.Year, d.Month, 1, 12, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	last := first.AddDate(0, 1, -1).Day()
	day := d.Day
	if day > last {
		day = last
	}
	return Date{Year: first.Year(), Month: first.Month(), Day: day}
}

// Weekday reports the day of the week, Sunday = 0.
func (d Date) Weekday() time.Weekday { return d.noon().Weekday() }

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date { return Date{Year: d.Year, Month: d.Month, Day: 1} }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.compare(o) < 0 }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.compare(o) > 0 }

func (d Date) compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return d.Year - o.Year
	case d.Month != o.Month:
		return int(d.Month) - int(o.Month)
	default:
		return d.Day - o.Day
	}
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts only the date-only form; timestamps need a location
// and go through ParseDate instead.
func (d *Date) UnmarshalText(b []byte) error {
	t, err := time.Parse(DateLayout, strings.TrimSpace(string(b)))
	if err != nil {
		return fmt.Errorf("parse date %q: %w", string(b), err)
	}
	*d = DateOf(t, time.UTC)
	return nil
}
