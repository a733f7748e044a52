package views

import "technician-dispatch/internal/domain"

var statusLabels = map[domain.AssignmentStatus]string{
	domain.StatusScheduled:  "Terjadwal",
	domain.StatusInProgress: "Sedang Berlangsung",
	domain.StatusCompleted:  "Selesai",
	domain.StatusCancelled:  "Dibatalkan",
}

var priorityLabels = map[domain.Priority]string{
	domain.PriorityLow:    "Rendah",
	domain.PriorityMedium: "Sedang",
	domain.PriorityHigh:   "Tinggi",
	domain.PriorityUrgent: "Mendesak",
}

// WeekdaysShort are the grid column headers, Sunday first.
var WeekdaysShort = [7]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// StatusLabel is the display label of s; unknown statuses show as is.
func StatusLabel(s domain.AssignmentStatus) string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return string(s)
}

// PriorityLabel is the display label of p; unknown priorities show as is.
func PriorityLabel(p domain.Priority) string {
	if l, ok := priorityLabels[p]; ok {
		return l
	}
	return string(p)
}
