package domain

type (
	// AssignmentStatus represents the lifecycle status of an assignment.
	AssignmentStatus string
	// Priority represents how urgent an assignment is.
	Priority string
)

// Assignment is a scheduled dispatch of one or more technicians to a location.
type Assignment struct {
	ID            int64            `json:"id"`
	TechnicianIDs []int64          `json:"technician_ids"`
	LocationID    int64            `json:"location_id"`
	Title         string           `json:"title"`
	Description   string           `json:"description"`
	Date          Date             `json:"date"`
	Status        AssignmentStatus `json:"status"`
	Priority      Priority         `json:"priority"`
	Notes         string           `json:"notes,omitempty"`
}

// Clone returns a deep copy of a.
func (a Assignment) Clone() Assignment {
	a.TechnicianIDs = append([]int64(nil), a.TechnicianIDs...)
	return a
}

// HasTechnician reports whether id is dispatched on a.
func (a Assignment) HasTechnician(id int64) bool {
	for _, v := range a.TechnicianIDs {
		if v == id {
			return true
		}
	}
	return false
}

// NewAssignment is the payload accepted by the store on creation.
// Status is accepted but ignored: new assignments are always scheduled.
type NewAssignment struct {
	TechnicianIDs []int64
	LocationID    int64
	Title         string
	Description   string
	Date          Date
	Status        AssignmentStatus
	Priority      Priority
	Notes         string
}

// AssignmentPatch carries optional fields to update an assignment.
// A nil field means “do not change” that attribute.
type AssignmentPatch struct {
	TechnicianIDs *[]int64
	LocationID    *int64
	Title         *string
	Description   *string
	Date          *Date
	Status        *AssignmentStatus
	Priority      *Priority
	Notes         *string
}

// Empty reports whether the patch changes nothing.
func (p AssignmentPatch) Empty() bool {
	return p.TechnicianIDs == nil && p.LocationID == nil && p.Title == nil &&
		p.Description == nil && p.Date == nil && p.Status == nil &&
		p.Priority == nil && p.Notes == nil
}

// Apply merges p into a and returns the result; a is not modified.
func (p AssignmentPatch) Apply(a Assignment) Assignment {
	out := a.Clone()
	if p.TechnicianIDs != nil {
		out.TechnicianIDs = append([]int64(nil), (*p.TechnicianIDs)...)
	}
	if p.LocationID != nil {
		out.LocationID = *p.LocationID
	}
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.Notes != nil {
		out.Notes = *p.Notes
	}
	return out
}
