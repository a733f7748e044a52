// Package workflow mediates the assignment modal: viewing, creating and
// editing assignments, with validation before anything reaches the store.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
	"technician-dispatch/internal/logx"
)

// Mode is the modal state of a Controller.
type Mode string

// List of modal states
const (
	ModeClosed   Mode = "closed"
	ModeViewing  Mode = "viewing"
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// Field names reported by validation.
const (
	FieldTechnicians = "technician_ids"
	FieldLocation    = "location_id"
	FieldTitle       = "title"
	FieldDate        = "date"
	FieldPriority    = "priority"
	FieldStatus      = "status"
)

const deletePrompt = "Delete this assignment?"

// State is a snapshot of the modal.
// Assignment is set while viewing or editing, Draft while creating or editing.
type State struct {
	Mode       Mode               `json:"mode"`
	Assignment *domain.Assignment `json:"assignment,omitempty"`
	Draft      *Draft             `json:"draft,omitempty"`
}

// Controller is the single-modal assignment workflow. At most one of
// viewing, creating and editing is active; opening a modal discards any
// unsaved draft.
type Controller struct {
	mu        sync.Mutex
	store     assignmentStore
	locations locationLookup
	notifier  Notifier
	logger    logx.Logger
	loc       *time.Location

	mode    Mode
	current domain.Assignment
	draft   Draft
}

// Option configures a Controller.
type Option func(*Controller)

// WithNotifier sets where notices go. The default discards them.
func WithNotifier(n Notifier) Option {
	return func(c *Controller) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(l logx.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithLocation sets the zone used to read timestamps typed into the date field.
func WithLocation(loc *time.Location) Option {
	return func(c *Controller) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// NewController creates a closed Controller over store. locations is used to
// check that a saved location id resolves.
func NewController(store assignmentStore, locations locationLookup, opts ...Option) *Controller {
	c := &Controller{
		store:     store,
		locations: locations,
		notifier:  discardNotifier{},
		logger:    logx.Nop(),
		loc:       time.Local,
		mode:      ModeClosed,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the modal.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() State {
	st := State{Mode: c.mode}
	if c.mode == ModeViewing || c.mode == ModeEditing {
		a := c.current.Clone()
		st.Assignment = &a
	}
	if c.mode == ModeCreating || c.mode == ModeEditing {
		d := c.draft.clone()
		st.Draft = &d
	}
	return st
}

// Create opens a blank create modal on date.
func (c *Controller) Create(date domain.Date) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeCreating
	c.current = domain.Assignment{}
	c.draft = DefaultDraft(date)
	return c.stateLocked()
}

// View opens a read-only modal on a. The record is re-read from the store.
func (c *Controller) View(a domain.Assignment) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.openLocked(a.ID, ModeViewing)
}

// Edit opens an edit modal on a with the draft filled from the stored record.
func (c *Controller) Edit(a domain.Assignment) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.openLocked(a.ID, ModeEditing)
}

func (c *Controller) openLocked(id int64, mode Mode) (State, error) {
	a, err := c.store.Get(id)
	if err != nil {
		c.closeLocked()
		c.fail("assignment is no longer available", err)
		return c.stateLocked(), err
	}
	c.mode = mode
	c.current = a
	c.draft = Draft{}
	if mode == ModeEditing {
		c.draft = DraftFrom(a)
	}
	return c.stateLocked(), nil
}

// Apply edits the open draft.
func (c *Controller) Apply(updates ...FieldUpdate) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeCreating && c.mode != ModeEditing {
		return c.stateLocked(), fmt.Errorf("apply draft while %s: %w", c.mode, apperr.ErrWrongState)
	}
	for _, u := range updates {
		if u != nil {
			u.apply(&c.draft)
		}
	}
	return c.stateLocked(), nil
}

// Save validates the draft and writes it to the store. On validation
// failure nothing changes and the modal stays open with its draft.
func (c *Controller) Save() (domain.Assignment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeCreating && c.mode != ModeEditing {
		return domain.Assignment{}, fmt.Errorf("save while %s: %w", c.mode, apperr.ErrWrongState)
	}

	v, err := c.validateLocked()
	if err != nil {
		c.notifier.Notify(Notice{
			Level:   NoticeError,
			Message: "Please complete the required data: " + strings.Join(apperr.Fields(err), ", "),
			Fields:  apperr.Fields(err),
		})
		c.logger.Warn("assignment draft rejected",
			logx.String("mode", string(c.mode)),
			logx.Any("fields", apperr.Fields(err)),
		)
		return domain.Assignment{}, err
	}

	if c.mode == ModeCreating {
		a := c.store.Create(domain.NewAssignment{
			TechnicianIDs: v.technicianIDs,
			LocationID:    v.locationID,
			Title:         v.title,
			Description:   c.draft.Description,
			Date:          v.date,
			Priority:      v.priority,
			Notes:         c.draft.Notes,
		})
		c.closeLocked()
		c.notifier.Notify(Notice{Level: NoticeInfo, Message: "Assignment created"})
		c.logger.Info("assignment created",
			logx.Int64("assignment_id", a.ID),
			logx.String("date", a.Date.String()),
		)
		return a, nil
	}

	id := c.current.ID
	a, err := c.store.Update(id, domain.AssignmentPatch{
		TechnicianIDs: &v.technicianIDs,
		LocationID:    &v.locationID,
		Title:         &v.title,
		Description:   &c.draft.Description,
		Date:          &v.date,
		Priority:      &v.priority,
		Notes:         &c.draft.Notes,
	})
	c.closeLocked()
	if err != nil {
		c.fail("failed to update assignment", err)
		return domain.Assignment{}, err
	}
	c.notifier.Notify(Notice{Level: NoticeInfo, Message: "Assignment updated"})
	c.logger.Info("assignment updated", logx.Int64("assignment_id", id))
	return a, nil
}

// Close discards the modal and its draft without touching the store.
func (c *Controller) Close() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeLocked()
	return c.stateLocked()
}

func (c *Controller) closeLocked() {
	c.mode = ModeClosed
	c.current = domain.Assignment{}
	c.draft = Draft{}
}

// Delete removes the viewed assignment once confirm approves. A declined
// prompt is not an error: it reports false and leaves the modal open.
func (c *Controller) Delete(ctx context.Context, confirm Confirmer) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeViewing {
		return false, fmt.Errorf("delete while %s: %w", c.mode, apperr.ErrWrongState)
	}
	if confirm == nil || !confirm.Confirm(ctx, deletePrompt) {
		return false, nil
	}
	id := c.current.ID
	c.store.Remove(id)
	c.closeLocked()
	c.notifier.Notify(Notice{Level: NoticeInfo, Message: "Assignment deleted"})
	c.logger.Info("assignment deleted", logx.Int64("assignment_id", id))
	return true, nil
}

// SetStatus changes the status of id while a record is being viewed. The
// modal stays open; the viewed record is refreshed when it is the one changed.
func (c *Controller) SetStatus(id int64, status domain.AssignmentStatus) (State, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.mode != ModeViewing {
		return c.stateLocked(), fmt.Errorf("set status while %s: %w", c.mode, apperr.ErrWrongState)
	}
	if !status.Valid() {
		err := apperr.NewValidationError(FieldStatus)
		c.notifier.Notify(Notice{Level: NoticeError, Message: "Unknown status " + strconv.Quote(string(status)), Fields: []string{FieldStatus}})
		return c.stateLocked(), err
	}
	a, err := c.store.SetStatus(id, status)
	if err != nil {
		c.closeLocked()
		c.fail("failed to change status", err)
		return c.stateLocked(), err
	}
	if a.ID == c.current.ID {
		c.current = a
	}
	c.logger.Info("assignment status changed",
		logx.Int64("assignment_id", id),
		logx.String("status", string(status)),
	)
	return c.stateLocked(), nil
}

// Dispatch routes a view intent to the matching operation.
func (c *Controller) Dispatch(in Intent) (State, error) {
	switch v := in.(type) {
	case CreateIntent:
		return c.Create(v.Date), nil
	case ViewIntent:
		return c.View(domain.Assignment{ID: v.AssignmentID})
	case EditIntent:
		return c.Edit(domain.Assignment{ID: v.AssignmentID})
	case StatusIntent:
		return c.SetStatus(v.AssignmentID, v.Status)
	default:
		return c.State(), fmt.Errorf("intent %T: %w", in, apperr.ErrInvalid)
	}
}

func (c *Controller) fail(msg string, err error) {
	if errors.Is(err, apperr.ErrNotFound) {
		msg += ": not found"
	}
	c.notifier.Notify(Notice{Level: NoticeError, Message: msg})
	c.logger.Error(msg, logx.Any("err", err))
}

type validDraft struct {
	technicianIDs []int64
	locationID    int64
	title         string
	date          domain.Date
	priority      domain.Priority
}

func (c *Controller) validateLocked() (validDraft, error) {
	var (
		v      validDraft
		fields []string
	)
	d := c.draft

	if len(d.TechnicianIDs) == 0 {
		fields = append(fields, FieldTechnicians)
	}
	v.technicianIDs = append([]int64{}, d.TechnicianIDs...)

	if raw := strings.TrimSpace(d.LocationID); raw == "" {
		fields = append(fields, FieldLocation)
	} else if id, err := strconv.ParseInt(raw, 10, 64); err != nil || id <= 0 ||
		(c.locations != nil && !c.locations.Exists(id)) {
		fields = append(fields, FieldLocation)
	} else {
		v.locationID = id
	}

	v.title = d.Title
	if strings.TrimSpace(d.Title) == "" {
		fields = append(fields, FieldTitle)
	}

	date, err := domain.ParseDate(d.Date, c.loc)
	if err != nil {
		fields = append(fields, FieldDate)
	}
	v.date = date

	v.priority = d.Priority
	if v.priority == "" {
		v.priority = domain.PriorityMedium
	}
	if !v.priority.Valid() {
		fields = append(fields, FieldPriority)
	}

	if err := apperr.NewValidationError(fields...); err != nil {
		return validDraft{}, err
	}
	return v, nil
}
