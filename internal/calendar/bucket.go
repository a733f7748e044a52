package calendar

import (
	"fmt"
	"time"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
)

// AssignmentsForDate returns, in input order, the assignments dated on d.
func AssignmentsForDate(list []domain.Assignment, d domain.Date) []domain.Assignment {
	var out []domain.Assignment
	for _, a := range list {
		if a.Date == d {
			out = append(out, a)
		}
	}
	return out
}

// Index buckets assignments by day so a 42-cell grid does one pass, not 42.
type Index struct {
	byDay map[domain.Date][]domain.Assignment
}

// NewIndex builds an Index over list; order inside each bucket follows list.
func NewIndex(list []domain.Assignment) Index {
	byDay := make(map[domain.Date][]domain.Assignment)
	for _, a := range list {
		byDay[a.Date] = append(byDay[a.Date], a)
	}
	return Index{byDay: byDay}
}

// For returns the bucket of d.
func (ix Index) For(d domain.Date) []domain.Assignment {
	return ix.byDay[d]
}

// Count returns the size of the bucket of d.
func (ix Index) Count(d domain.Date) int {
	return len(ix.byDay[d])
}

// AssignmentsForDay is AssignmentsForDate for a day given as text: a date-only
// string or an RFC 3339 timestamp observed in loc.
func AssignmentsForDay(list []domain.Assignment, day string, loc *time.Location) ([]domain.Assignment, error) {
	d, err := domain.ParseDate(day, loc)
	if err != nil {
		return nil, fmt.Errorf("bucket: %w: %w", apperr.ErrInvalid, err)
	}
	return AssignmentsForDate(list, d), nil
}
