package views

import "technician-dispatch/internal/domain"

// Stats aggregates a schedule for the summary cards.
type Stats struct {
	Total      int                             `json:"total"`
	ByStatus   map[domain.AssignmentStatus]int `json:"by_status"`
	ByPriority map[domain.Priority]int         `json:"by_priority"`
}

// Summarize counts list by status and by priority. Every known status and
// priority is present, zero or not.
func Summarize(list []domain.Assignment) Stats {
	st := Stats{
		Total:      len(list),
		ByStatus:   make(map[domain.AssignmentStatus]int, len(domain.Statuses)),
		ByPriority: make(map[domain.Priority]int, len(domain.Priorities)),
	}
	for _, s := range domain.Statuses {
		st.ByStatus[s] = 0
	}
	for _, p := range domain.Priorities {
		st.ByPriority[p] = 0
	}
	for _, a := range list {
		st.ByStatus[a.Status]++
		st.ByPriority[a.Priority]++
	}
	return st
}
