package handlers

import (
	"technician-dispatch/internal/workflow"
)

// toUpdates turns a draft patch into field updates. The toggle goes last so
// it acts on the technician list set in the same request.
func (p draftPatchRequest) toUpdates() []workflow.FieldUpdate {
	var out []workflow.FieldUpdate
	if p.TechnicianIDs != nil {
		out = append(out, workflow.SetTechnicians{IDs: *p.TechnicianIDs})
	}
	if p.LocationID != nil {
		out = append(out, workflow.SetLocation{ID: *p.LocationID})
	}
	if p.Title != nil {
		out = append(out, workflow.SetTitle{Value: *p.Title})
	}
	if p.Description != nil {
		out = append(out, workflow.SetDescription{Value: *p.Description})
	}
	if p.Date != nil {
		out = append(out, workflow.SetDate{Value: *p.Date})
	}
	if p.Priority != nil {
		out = append(out, workflow.SetPriority{Value: *p.Priority})
	}
	if p.Notes != nil {
		out = append(out, workflow.SetNotes{Value: *p.Notes})
	}
	if p.ToggleTechnician != nil {
		out = append(out, workflow.ToggleTechnician{ID: *p.ToggleTechnician})
	}
	return out
}

func sessionBody(sess *workflow.Session, st workflow.State) sessionResponse {
	notices := sess.Notices.Drain()
	if notices == nil {
		notices = []workflow.Notice{}
	}
	return sessionResponse{
		SessionID: sess.ID,
		State:     st,
		Notices:   notices,
	}
}
