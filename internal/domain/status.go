package domain

// List of possible assignment statuses
const (
	StatusScheduled  AssignmentStatus = "scheduled"
	StatusInProgress AssignmentStatus = "in-progress"
	StatusCompleted  AssignmentStatus = "completed"
	StatusCancelled  AssignmentStatus = "cancelled"
)

// List of possible priorities
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// Statuses lists the assignment statuses in display order.
var Statuses = [...]AssignmentStatus{
	StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled,
}

// Priorities lists the priorities from lowest to highest.
var Priorities = [...]Priority{
	PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent,
}

// Valid checks if the AssignmentStatus is valid
func (s AssignmentStatus) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the Priority is valid
func (p Priority) Valid() bool {
	for _, v := range Priorities {
		if p == v {
			return true
		}
	}
	return false
}

// Rank orders priorities, low = 0. Unknown priorities rank as medium.
func (p Priority) Rank() int {
	for i, v := range Priorities {
		if p == v {
			return i
		}
	}
	return 1
}
