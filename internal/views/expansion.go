package views

import (
	"sort"

	"technician-dispatch/internal/domain"
)

// Expansion is the set of days whose collapsed entries are shown in full.
type Expansion struct {
	days map[domain.Date]struct{}
}

// NewExpansion returns an Expansion with days expanded.
func NewExpansion(days ...domain.Date) Expansion {
	e := Expansion{days: make(map[domain.Date]struct{}, len(days))}
	for _, d := range days {
		e.days[d] = struct{}{}
	}
	return e
}

// Expanded reports whether d is expanded.
func (e Expansion) Expanded(d domain.Date) bool {
	_, ok := e.days[d]
	return ok
}

// Toggle flips d.
func (e *Expansion) Toggle(d domain.Date) {
	if e.days == nil {
		e.days = make(map[domain.Date]struct{})
	}
	if _, ok := e.days[d]; ok {
		delete(e.days, d)
		return
	}
	e.days[d] = struct{}{}
}

// Days returns the expanded days in calendar order.
func (e Expansion) Days() []domain.Date {
	out := make([]domain.Date, 0, len(e.days))
	for d := range e.days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}
