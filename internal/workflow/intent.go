package workflow

import "technician-dispatch/internal/domain"

// Intent is a user action emitted by a calendar view.
type Intent interface {
	intent()
}

// CreateIntent asks for a create modal on Date.
type CreateIntent struct {
	Date domain.Date `json:"date"`
}

// ViewIntent asks to open an assignment read-only.
type ViewIntent struct {
	AssignmentID int64 `json:"assignment_id"`
}

// EditIntent asks to open an assignment for editing.
type EditIntent struct {
	AssignmentID int64 `json:"assignment_id"`
}

// StatusIntent asks to change the status of an assignment.
type StatusIntent struct {
	AssignmentID int64                   `json:"assignment_id"`
	Status       domain.AssignmentStatus `json:"status"`
}

func (CreateIntent) intent() {}
func (ViewIntent) intent()   {}
func (EditIntent) intent()   {}
func (StatusIntent) intent() {}
