package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/logx"
	"technician-dispatch/internal/workflow"
)

func reqID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return "-"
}

func writeJSON(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		logger.Error("json encode error",
			logx.String("req_id", reqID(r.Context())),
			logx.Err(err),
		)
	}
}

type errResponse struct {
	Error   string            `json:"error"`
	Fields  []string          `json:"fields,omitempty"`
	Notices []workflow.Notice `json:"notices,omitempty"`
}

func writeError(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, msg string, fields []string) {
	writeErrResponse(logger, w, r, status, errResponse{Error: msg, Fields: fields})
}

func writeErrResponse(logger logx.Logger, w http.ResponseWriter, r *http.Request, status int, body errResponse) {
	logger.Warn("http error",
		logx.String("req_id", reqID(r.Context())),
		logx.Int("status", status),
		logx.String("msg", body.Error),
	)
	writeJSON(logger, w, r, status, body)
}

// writeAppError maps domain errors to statuses: validation 422, wrong
// workflow state 409, not found 404, other invalid input 400.
func writeAppError(logger logx.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, body := appErrorBody(logger, r, err)
	writeErrResponse(logger, w, r, status, body)
}

func appErrorBody(logger logx.Logger, r *http.Request, err error) (int, errResponse) {
	var ve *apperr.ValidationError
	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, errResponse{Error: ve.Error(), Fields: ve.Fields}
	case errors.Is(err, apperr.ErrWrongState):
		return http.StatusConflict, errResponse{Error: err.Error()}
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, errResponse{Error: "conflict"}
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, errResponse{Error: "not found"}
	case errors.Is(err, apperr.ErrInvalid):
		return http.StatusBadRequest, errResponse{Error: err.Error()}
	default:
		logger.Error("internal error", logx.String("req_id", reqID(r.Context())), logx.Err(err))
		return http.StatusInternalServerError, errResponse{Error: "internal error"}
	}
}

const (
	bodyLimit = 1 << 20
)

func decodeJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	return decodeBody(logger, w, r, dst, false)
}

// decodeOptionalJSON is decodeJSON for bodies whose fields are all optional:
// an empty body leaves dst untouched.
func decodeOptionalJSON[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T) bool {
	return decodeBody(logger, w, r, dst, true)
}

func decodeBody[T any](logger logx.Logger, w http.ResponseWriter, r *http.Request, dst *T, optional bool) bool {
	r.Body = http.MaxBytesReader(w, r.Body, bodyLimit)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if optional && err == io.EOF {
			return true
		}
		writeError(logger, w, r, http.StatusBadRequest, "invalid json", nil)
		return false
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		writeError(logger, w, r, http.StatusBadRequest, "invalid json: trailing data", nil)
		return false
	}
	return true
}

func idFromURL(r *http.Request, name string) (int64, error) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

// dateFromQuery reads a date parameter; a missing one yields def.
func dateFromQuery(r *http.Request, name string, loc *time.Location, def domain.Date) (domain.Date, error) {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def, nil
	}
	d, err := domain.ParseDate(s, loc)
	if err != nil {
		return domain.Date{}, errors.New("invalid " + name)
	}
	return d, nil
}
