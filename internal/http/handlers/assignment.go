package handlers

import (
	"net/http"
	"time"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/calendar"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/views"
	"technician-dispatch/internal/workflow"
)

// AssignmentHandler exposes the schedule outside of a modal session.
type AssignmentHandler struct {
	store  assignmentService
	loc    *time.Location
	logger logx.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler. loc is the zone used
// to read timestamps passed as ?date.
func NewAssignmentHandler(store assignmentService, loc *time.Location, logger logx.Logger) *AssignmentHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &AssignmentHandler{store: store, loc: loc, logger: logger}
}

// List handles GET /assignments, optionally filtered by ?date.
func (h *AssignmentHandler) List(w http.ResponseWriter, r *http.Request) {
	list, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, list)
}

// Stats handles GET /assignments/stats, optionally filtered by ?date.
func (h *AssignmentHandler) Stats(w http.ResponseWriter, r *http.Request) {
	list, ok := h.filtered(w, r)
	if !ok {
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, views.Summarize(list))
}

// Get handles GET /assignments/{id}.
func (h *AssignmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	a, err := h.store.Get(id)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, a)
}

// SetStatus handles PATCH /assignments/{id}/status.
func (h *AssignmentHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	var req statusRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	if !req.Status.Valid() {
		writeAppError(h.logger, w, r, apperr.NewValidationError(workflow.FieldStatus))
		return
	}

	a, err := h.store.SetStatus(id, req.Status)
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	h.logger.Info("assignment status changed",
		logx.String("req_id", reqID(r.Context())),
		logx.Int64("assignment_id", id),
		logx.String("status", string(req.Status)),
	)
	writeJSON(h.logger, w, r, http.StatusOK, a)
}

func (h *AssignmentHandler) filtered(w http.ResponseWriter, r *http.Request) ([]domain.Assignment, bool) {
	list := h.store.List()
	day := r.URL.Query().Get("date")
	if day == "" {
		return list, true
	}
	list, err := calendar.AssignmentsForDay(list, day, h.loc)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid date", nil)
		return nil, false
	}
	return list, true
}
