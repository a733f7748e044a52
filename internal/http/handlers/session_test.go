package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/workflow"
)

func ptr[T any](v T) *T { return &v }

func openSession(t *testing.T, api testAPI) string {
	t.Helper()

	rr := api.do(t, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, rr.Code)
	body := decode[sessionResponse](t, rr)
	require.NotEmpty(t, body.SessionID)
	require.Equal(t, workflow.ModeClosed, body.State.Mode)
	return body.SessionID
}

func TestSessionHandler_CreateAndSave(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPost, "/sessions/"+sid+"/create", createRequest{Date: "2025-07-01"})
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[sessionResponse](t, rr)
	require.Equal(t, workflow.ModeCreating, body.State.Mode)
	require.Equal(t, "2025-07-01", body.State.Draft.Date)
	require.Equal(t, domain.PriorityMedium, body.State.Draft.Priority)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	failed := decode[errResponse](t, rr)
	require.Equal(t, []string{"technician_ids", "location_id", "title"}, failed.Fields)
	require.Len(t, failed.Notices, 1)
	require.Equal(t, workflow.NoticeError, failed.Notices[0].Level)

	rr = api.do(t, http.MethodPatch, "/sessions/"+sid+"/draft", draftPatchRequest{
		TechnicianIDs:    ptr([]int64{1}),
		ToggleTechnician: ptr(int64(2)),
		LocationID:       ptr("1"),
		Title:            ptr("Cek panel"),
	})
	require.Equal(t, http.StatusOK, rr.Code)
	body = decode[sessionResponse](t, rr)
	require.Equal(t, []int64{1, 2}, body.State.Draft.TechnicianIDs)
	require.Empty(t, body.Notices)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body = decode[sessionResponse](t, rr)
	require.Equal(t, workflow.ModeClosed, body.State.Mode)
	require.NotNil(t, body.Assignment)
	require.Equal(t, int64(3), body.Assignment.ID)
	require.Equal(t, domain.StatusScheduled, body.Assignment.Status)
	require.Len(t, body.Notices, 1)
	require.Equal(t, workflow.NoticeInfo, body.Notices[0].Level)

	got, err := api.store.Get(3)
	require.NoError(t, err)
	require.Equal(t, "Cek panel", got.Title)
	require.Equal(t, domain.NewDate(2025, time.July, 1), got.Date)
}

func TestSessionHandler_CreateDefaultsToToday(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPost, "/sessions/"+sid+"/create", createRequest{})
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "2025-06-30", decode[sessionResponse](t, rr).State.Draft.Date)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/create", createRequest{Date: "soon"})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionHandler_CreateWithEmptyBody(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPost, "/sessions/"+sid+"/create", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[sessionResponse](t, rr)
	require.Equal(t, workflow.ModeCreating, body.State.Mode)
	require.Equal(t, "2025-06-30", body.State.Draft.Date)
}

func TestSessionHandler_NotFoundNoticeTravelsWithError(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPost, "/sessions/"+sid+"/view/99", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
	require.Len(t, decode[errResponse](t, rr).Notices, 1)

	rr = api.do(t, http.MethodGet, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Empty(t, decode[sessionResponse](t, rr).Notices)
}

func TestSessionHandler_EditViewAndDelete(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPost, "/sessions/"+sid+"/edit/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[sessionResponse](t, rr)
	require.Equal(t, workflow.ModeEditing, body.State.Mode)
	require.Equal(t, "Pasang Pompa", body.State.Draft.Title)

	rr = api.do(t, http.MethodPatch, "/sessions/"+sid+"/draft", draftPatchRequest{Title: ptr("Pasang Pompa Baru")})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "Pasang Pompa Baru", decode[sessionResponse](t, rr).Assignment.Title)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/delete", deleteRequest{Confirm: true})
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/view/1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, workflow.ModeViewing, decode[sessionResponse](t, rr).State.Mode)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/delete", deleteRequest{Confirm: false})
	require.Equal(t, http.StatusOK, rr.Code)
	require.False(t, *decode[sessionResponse](t, rr).Deleted)
	_, err := api.store.Get(1)
	require.NoError(t, err)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/delete", deleteRequest{Confirm: true})
	require.Equal(t, http.StatusOK, rr.Code)
	body = decode[sessionResponse](t, rr)
	require.True(t, *body.Deleted)
	require.Equal(t, workflow.ModeClosed, body.State.Mode)
	_, err = api.store.Get(1)
	require.ErrorIs(t, err, apperr.ErrNotFound)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/view/1", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionHandler_Status(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPost, "/sessions/"+sid+"/status", sessionStatusRequest{AssignmentID: 2, Status: domain.StatusCompleted})
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/view/2", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/status", sessionStatusRequest{AssignmentID: 2, Status: domain.StatusCompleted})
	require.Equal(t, http.StatusOK, rr.Code)
	body := decode[sessionResponse](t, rr)
	require.Equal(t, workflow.ModeViewing, body.State.Mode)
	require.Equal(t, domain.StatusCompleted, body.State.Assignment.Status)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/status", sessionStatusRequest{AssignmentID: 2, Status: "done"})
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/status", sessionStatusRequest{Status: domain.StatusCompleted})
	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSessionHandler_WrongStateAndLifecycle(t *testing.T) {
	t.Parallel()

	api := newTestAPI(t)
	sid := openSession(t, api)

	rr := api.do(t, http.MethodPatch, "/sessions/"+sid+"/draft", draftPatchRequest{Title: ptr("x")})
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/save", nil)
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = api.do(t, http.MethodPatch, "/sessions/"+sid+"/draft", draftPatchRequest{})
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/create", createRequest{Date: "2025-07-01"})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/close", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, workflow.ModeClosed, decode[sessionResponse](t, rr).State.Mode)

	rr = api.do(t, http.MethodGet, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = api.do(t, http.MethodDelete, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusNoContent, rr.Code)
	require.Zero(t, api.sessions.Len())

	rr = api.do(t, http.MethodGet, "/sessions/"+sid, nil)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = api.do(t, http.MethodPost, "/sessions/"+sid+"/view/abc", nil)
	require.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSessionHandler_InvalidIDWithLiveSession(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	reg := NewMocksessionRegistry(ctrl)
	sess := &workflow.Session{ID: "s1", Controller: workflow.NewController(nil, nil), Notices: &workflow.NoticeBuffer{}}
	reg.EXPECT().Get("s1").Return(sess, nil)

	h := NewSessionHandler(reg, time.UTC, nil)
	api := testAPI{mux: sessionRouter(h)}

	rr := api.do(t, http.MethodPost, "/sessions/s1/view/abc", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	require.Equal(t, "invalid id", decode[errResponse](t, rr).Error)
}

func sessionRouter(h *SessionHandler) http.Handler {
	r := chi.NewRouter()
	r.Post("/sessions/{sid}/view/{id}", h.View)
	r.Post("/sessions/{sid}/edit/{id}", h.Edit)
	return r
}
