package handlers

import (
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/workflow"
)

type statusRequest struct {
	Status domain.AssignmentStatus `json:"status"`
}

type sessionStatusRequest struct {
	AssignmentID int64                   `json:"assignment_id"`
	Status       domain.AssignmentStatus `json:"status"`
}

type createRequest struct {
	Date string `json:"date"`
}

type deleteRequest struct {
	Confirm bool `json:"confirm"`
}

type draftPatchRequest struct {
	TechnicianIDs    *[]int64         `json:"technician_ids,omitempty"`
	ToggleTechnician *int64           `json:"toggle_technician,omitempty"`
	LocationID       *string          `json:"location_id,omitempty"`
	Title            *string          `json:"title,omitempty"`
	Description      *string          `json:"description,omitempty"`
	Date             *string          `json:"date,omitempty"`
	Priority         *domain.Priority `json:"priority,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

type sessionResponse struct {
	SessionID  string             `json:"session_id"`
	State      workflow.State     `json:"state"`
	Notices    []workflow.Notice  `json:"notices"`
	Assignment *domain.Assignment `json:"assignment,omitempty"`
	Deleted    *bool              `json:"deleted,omitempty"`
}
