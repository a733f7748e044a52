package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/workflow"
)

// SessionHandler drives per-client modal workflows.
type SessionHandler struct {
	sessions sessionRegistry
	loc      *time.Location
	now      func() time.Time
	logger   logx.Logger
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(sessions sessionRegistry, loc *time.Location, logger logx.Logger) *SessionHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	if loc == nil {
		loc = time.Local
	}
	return &SessionHandler{sessions: sessions, loc: loc, now: time.Now, logger: logger}
}

// Open handles POST /sessions.
func (h *SessionHandler) Open(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Open()
	h.logger.Info("session opened",
		logx.String("req_id", reqID(r.Context())),
		logx.String("session_id", sess.ID),
	)
	writeJSON(h.logger, w, r, http.StatusCreated, sessionBody(sess, sess.Controller.State()))
}

// Get handles GET /sessions/{sid}.
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionBody(sess, sess.Controller.State()))
}

// End handles DELETE /sessions/{sid}.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	h.sessions.Close(chi.URLParam(r, "sid"))
	w.WriteHeader(http.StatusNoContent)
}

// Create handles POST /sessions/{sid}/create. An empty date means today.
func (h *SessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req createRequest
	if !decodeOptionalJSON(h.logger, w, r, &req) {
		return
	}
	date := domain.DateOf(h.now(), h.loc)
	if req.Date != "" {
		d, err := domain.ParseDate(req.Date, h.loc)
		if err != nil {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid date", nil)
			return
		}
		date = d
	}
	h.dispatch(w, r, sess, workflow.CreateIntent{Date: date})
}

// View handles POST /sessions/{sid}/view/{id}.
func (h *SessionHandler) View(w http.ResponseWriter, r *http.Request) {
	h.open(w, r, func(id int64) workflow.Intent { return workflow.ViewIntent{AssignmentID: id} })
}

// Edit handles POST /sessions/{sid}/edit/{id}.
func (h *SessionHandler) Edit(w http.ResponseWriter, r *http.Request) {
	h.open(w, r, func(id int64) workflow.Intent { return workflow.EditIntent{AssignmentID: id} })
}

// Status handles POST /sessions/{sid}/status.
func (h *SessionHandler) Status(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req sessionStatusRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	if req.AssignmentID <= 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id", nil)
		return
	}
	h.dispatch(w, r, sess, workflow.StatusIntent{AssignmentID: req.AssignmentID, Status: req.Status})
}

// UpdateDraft handles PATCH /sessions/{sid}/draft.
func (h *SessionHandler) UpdateDraft(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req draftPatchRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	updates := req.toUpdates()
	if len(updates) == 0 {
		writeError(h.logger, w, r, http.StatusBadRequest, "no fields to update", nil)
		return
	}
	st, err := sess.Controller.Apply(updates...)
	if err != nil {
		h.writeSessionError(w, r, sess, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionBody(sess, st))
}

// Save handles POST /sessions/{sid}/save.
func (h *SessionHandler) Save(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	a, err := sess.Controller.Save()
	if err != nil {
		h.writeSessionError(w, r, sess, err)
		return
	}
	body := sessionBody(sess, sess.Controller.State())
	body.Assignment = &a
	writeJSON(h.logger, w, r, http.StatusOK, body)
}

// Close handles POST /sessions/{sid}/close.
func (h *SessionHandler) Close(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionBody(sess, sess.Controller.Close()))
}

// Delete handles POST /sessions/{sid}/delete. The body carries the answer
// to the confirmation prompt.
func (h *SessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	var req deleteRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	deleted, err := sess.Controller.Delete(r.Context(), workflow.Answer(req.Confirm))
	if err != nil {
		h.writeSessionError(w, r, sess, err)
		return
	}
	body := sessionBody(sess, sess.Controller.State())
	body.Deleted = &deleted
	writeJSON(h.logger, w, r, http.StatusOK, body)
}

func (h *SessionHandler) open(w http.ResponseWriter, r *http.Request, intent func(int64) workflow.Intent) {
	sess, ok := h.session(w, r)
	if !ok {
		return
	}
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error(), nil)
		return
	}
	h.dispatch(w, r, sess, intent(id))
}

func (h *SessionHandler) dispatch(w http.ResponseWriter, r *http.Request, sess *workflow.Session, in workflow.Intent) {
	st, err := sess.Controller.Dispatch(in)
	if err != nil {
		h.writeSessionError(w, r, sess, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, sessionBody(sess, st))
}

func (h *SessionHandler) session(w http.ResponseWriter, r *http.Request) (*workflow.Session, bool) {
	sess, err := h.sessions.Get(chi.URLParam(r, "sid"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return nil, false
	}
	return sess, true
}

// writeSessionError reports err together with the notices the failed
// operation raised, so they are not replayed on the next response.
func (h *SessionHandler) writeSessionError(w http.ResponseWriter, r *http.Request, sess *workflow.Session, err error) {
	status, body := appErrorBody(h.logger, r, err)
	body.Notices = sess.Notices.Drain()
	writeErrResponse(h.logger, w, r, status, body)
}
