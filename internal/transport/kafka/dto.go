package kafka

import (
	"time"

	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/repository"
)

// Event types published on the assignment topic.
const (
	EventCreated = "assignment.created"
	EventUpdated = "assignment.updated"
	EventDeleted = "assignment.deleted"
)

var eventTypes = map[repository.ChangeKind]string{
	repository.ChangeCreated: EventCreated,
	repository.ChangeUpdated: EventUpdated,
	repository.ChangeDeleted: EventDeleted,
}

// EventDTO is the JSON value of an assignment event.
type EventDTO struct {
	EventID      string             `json:"event_id"`
	Type         string             `json:"type"`
	AssignmentID int64              `json:"assignment_id"`
	OccurredAt   time.Time          `json:"occurred_at"`
	Assignment   *domain.Assignment `json:"assignment,omitempty"`
}

// FromChange builds the event of c. Deleted events carry the last known record.
func FromChange(c repository.Change, eventID string, at time.Time) (EventDTO, bool) {
	typ, ok := eventTypes[c.Kind]
	if !ok {
		return EventDTO{}, false
	}
	a := c.Assignment.Clone()
	return EventDTO{
		EventID:      eventID,
		Type:         typ,
		AssignmentID: a.ID,
		OccurredAt:   at.UTC(),
		Assignment:   &a,
	}, true
}
