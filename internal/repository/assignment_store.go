package repository

import (
	"fmt"
	"sort"
	"sync"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
)

// ChangeKind names the mutation that produced a Change.
type ChangeKind string

// List of change kinds
const (
	ChangeCreated ChangeKind = "created"
	ChangeUpdated ChangeKind = "updated"
	ChangeDeleted ChangeKind = "deleted"
)

// Change is delivered to listeners after a mutation has been applied.
// Snapshot is the full collection as it was right after the mutation.
type Change struct {
	Kind       ChangeKind
	Assignment domain.Assignment
	Snapshot   []domain.Assignment
}

// Listener observes store mutations. It runs synchronously on the mutating
// goroutine after the store is unlocked, so it may read the store but must
// not mutate it.
type Listener func(Change)

// AssignmentStore is the in-memory owner of assignment records.
type AssignmentStore struct {
	// notifyMu serializes mutations together with their notification and is
	// always taken before mu.
	notifyMu  sync.Mutex
	mu        sync.Mutex
	items     []domain.Assignment
	highWater int64

	listenersMu sync.Mutex
	listeners   map[int]Listener
	nextLID     int
}

// NewAssignmentStore creates a store that owns a deep copy of seed.
func NewAssignmentStore(seed []domain.Assignment) *AssignmentStore {
	s := &AssignmentStore{listeners: make(map[int]Listener)}
	s.items = make([]domain.Assignment, 0, len(seed))
	for _, a := range seed {
		s.items = append(s.items, a.Clone())
		if a.ID > s.highWater {
			s.highWater = a.ID
		}
	}
	sort.SliceStable(s.items, func(i, j int) bool { return s.items[i].ID < s.items[j].ID })
	return s
}

// List returns a copy of every assignment ordered by id.
func (s *AssignmentStore) List() []domain.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the assignment with the given id.
func (s *AssignmentStore) Get(id int64) (domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexLocked(id)
	if i < 0 {
		return domain.Assignment{}, fmt.Errorf("assignment %d: %w", id, apperr.ErrNotFound)
	}
	return s.items[i].Clone(), nil
}

// Create stores a new assignment. The id is one past the highest id ever
// issued, so deleted ids are never handed out again; status is always scheduled.
func (s *AssignmentStore) Create(in domain.NewAssignment) domain.Assignment {
	s.lockForWrite()
	s.highWater = max(s.highWater, s.maxIDLocked()) + 1
	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	a := domain.Assignment{
		ID:            s.highWater,
		TechnicianIDs: append([]int64(nil), in.TechnicianIDs...),
		LocationID:    in.LocationID,
		Title:         in.Title,
		Description:   in.Description,
		Date:          in.Date,
		Status:        domain.StatusScheduled,
		Priority:      priority,
		Notes:         in.Notes,
	}
	s.items = append(s.items, a)
	s.commitLocked(Change{Kind: ChangeCreated, Assignment: a.Clone(), Snapshot: s.snapshotLocked()})
	return a.Clone()
}

// Update merge-patches the assignment with the given id.
func (s *AssignmentStore) Update(id int64, patch domain.AssignmentPatch) (domain.Assignment, error) {
	s.lockForWrite()
	i := s.indexLocked(id)
	if i < 0 {
		s.unlockForWrite()
		return domain.Assignment{}, fmt.Errorf("update assignment %d: %w", id, apperr.ErrNotFound)
	}
	updated := patch.Apply(s.items[i])
	updated.ID = id
	s.items[i] = updated
	s.commitLocked(Change{Kind: ChangeUpdated, Assignment: updated.Clone(), Snapshot: s.snapshotLocked()})
	return updated.Clone(), nil
}

// SetStatus is Update(id, {Status: status}).
func (s *AssignmentStore) SetStatus(id int64, status domain.AssignmentStatus) (domain.Assignment, error) {
	return s.Update(id, domain.AssignmentPatch{Status: &status})
}

// Remove deletes the assignment with the given id. Removing an unknown id is a no-op.
func (s *AssignmentStore) Remove(id int64) {
	s.lockForWrite()
	i := s.indexLocked(id)
	if i < 0 {
		s.unlockForWrite()
		return
	}
	removed := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.commitLocked(Change{Kind: ChangeDeleted, Assignment: removed, Snapshot: s.snapshotLocked()})
}

// Subscribe registers l and returns a function that unregisters it.
func (s *AssignmentStore) Subscribe(l Listener) (unsubscribe func()) {
	s.listenersMu.Lock()
	defer s.listenersMu.Unlock()
	id := s.nextLID
	s.nextLID++
	s.listeners[id] = l
	return func() {
		s.listenersMu.Lock()
		defer s.listenersMu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *AssignmentStore) lockForWrite() {
	s.notifyMu.Lock()
	s.mu.Lock()
}

func (s *AssignmentStore) unlockForWrite() {
	s.mu.Unlock()
	s.notifyMu.Unlock()
}

// commitLocked releases mu and delivers c while still holding notifyMu, so
// listeners observe changes in mutation order.
func (s *AssignmentStore) commitLocked(c Change) {
	s.mu.Unlock()
	defer s.notifyMu.Unlock()
	s.notify(c)
}

func (s *AssignmentStore) notify(c Change) {
	s.listenersMu.Lock()
	keys := make([]int, 0, len(s.listeners))
	for k := range s.listeners {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	ls := make([]Listener, 0, len(keys))
	for _, k := range keys {
		ls = append(ls, s.listeners[k])
	}
	s.listenersMu.Unlock()

	for _, l := range ls {
		l(c)
	}
}

func (s *AssignmentStore) indexLocked(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *AssignmentStore) maxIDLocked() int64 {
	var m int64
	for _, a := range s.items {
		if a.ID > m {
			m = a.ID
		}
	}
	return m
}

func (s *AssignmentStore) snapshotLocked() []domain.Assignment {
	out := make([]domain.Assignment, len(s.items))
	for i, a := range s.items {
		out[i] = a.Clone()
	}
	return out
}
