package workflow

import (
	"strconv"

	"technician-dispatch/internal/domain"
)

// Draft is the unvalidated form state of an open create or edit modal.
type Draft struct {
	TechnicianIDs []int64         `json:"technician_ids"`
	LocationID    string          `json:"location_id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Date          string          `json:"date"`
	Priority      domain.Priority `json:"priority"`
	Notes         string          `json:"notes"`
}

// DefaultDraft is the blank form for a new assignment on d.
func DefaultDraft(d domain.Date) Draft {
	return Draft{
		TechnicianIDs: []int64{},
		Date:          d.String(),
		Priority:      domain.PriorityMedium,
	}
}

// DraftFrom fills the form from an existing assignment.
func DraftFrom(a domain.Assignment) Draft {
	return Draft{
		TechnicianIDs: append([]int64{}, a.TechnicianIDs...),
		LocationID:    strconv.FormatInt(a.LocationID, 10),
		Title:         a.Title,
		Description:   a.Description,
		Date:          a.Date.String(),
		Priority:      a.Priority,
		Notes:         a.Notes,
	}
}

func (d Draft) clone() Draft {
	d.TechnicianIDs = append([]int64{}, d.TechnicianIDs...)
	return d
}

// FieldUpdate is one edit of a draft field.
type FieldUpdate interface {
	apply(*Draft)
}

// SetTechnicians replaces the technician selection.
type SetTechnicians struct{ IDs []int64 }

// ToggleTechnician adds the technician if absent, removes it otherwise.
type ToggleTechnician struct{ ID int64 }

// SetLocation sets the raw location id.
type SetLocation struct{ ID string }

// SetTitle sets the title.
type SetTitle struct{ Value string }

// SetDescription sets the description.
type SetDescription struct{ Value string }

// SetDate sets the raw date.
type SetDate struct{ Value string }

// SetPriority sets the priority.
type SetPriority struct{ Value domain.Priority }

// SetNotes sets the notes.
type SetNotes struct{ Value string }

func (u SetTechnicians) apply(d *Draft) { d.TechnicianIDs = append([]int64{}, u.IDs...) }

func (u ToggleTechnician) apply(d *Draft) {
	for i, id := range d.TechnicianIDs {
		if id == u.ID {
			d.TechnicianIDs = append(d.TechnicianIDs[:i:i], d.TechnicianIDs[i+1:]...)
			return
		}
	}
	d.TechnicianIDs = append(d.TechnicianIDs, u.ID)
}

func (u SetLocation) apply(d *Draft)    { d.LocationID = u.ID }
func (u SetTitle) apply(d *Draft)       { d.Title = u.Value }
func (u SetDescription) apply(d *Draft) { d.Description = u.Value }
func (u SetDate) apply(d *Draft)        { d.Date = u.Value }
func (u SetPriority) apply(d *Draft)    { d.Priority = u.Value }
func (u SetNotes) apply(d *Draft)       { d.Notes = u.Value }
