package repository

import (
	"fmt"

	"technician-dispatch/internal/apperr"
	"technician-dispatch/internal/domain"
)

// TechnicianCatalog is a read-only technician directory snapshot.
type TechnicianCatalog struct {
	items []domain.Technician
	byID  map[int64]int
}

// NewTechnicianCatalog copies list into a new catalog.
func NewTechnicianCatalog(list []domain.Technician) *TechnicianCatalog {
	c := &TechnicianCatalog{
		items: append([]domain.Technician(nil), list...),
		byID:  make(map[int64]int, len(list)),
	}
	for i, t := range c.items {
		c.byID[t.ID] = i
	}
	return c
}

// List returns every technician in directory order.
func (c *TechnicianCatalog) List() []domain.Technician {
	return append([]domain.Technician(nil), c.items...)
}

// Get returns the technician with the given id.
func (c *TechnicianCatalog) Get(id int64) (domain.Technician, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Technician{}, fmt.Errorf("technician %d: %w", id, apperr.ErrNotFound)
	}
	return c.items[i], nil
}

// Names resolves ids to names, skipping unknown ids.
func (c *TechnicianCatalog) Names(ids []int64) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if i, ok := c.byID[id]; ok {
			out = append(out, c.items[i].Name)
		}
	}
	return out
}

// LocationCatalog is a read-only location list snapshot.
type LocationCatalog struct {
	items []domain.Location
	byID  map[int64]int
}

// NewLocationCatalog copies list into a new catalog.
func NewLocationCatalog(list []domain.Location) *LocationCatalog {
	c := &LocationCatalog{
		items: append([]domain.Location(nil), list...),
		byID:  make(map[int64]int, len(list)),
	}
	for i, l := range c.items {
		c.byID[l.ID] = i
	}
	return c
}

// List returns every location in catalog order.
func (c *LocationCatalog) List() []domain.Location {
	return append([]domain.Location(nil), c.items...)
}

// Get returns the location with the given id.
func (c *LocationCatalog) Get(id int64) (domain.Location, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Location{}, fmt.Errorf("location %d: %w", id, apperr.ErrNotFound)
	}
	return c.items[i], nil
}

// Exists reports whether id resolves to a known location.
func (c *LocationCatalog) Exists(id int64) bool {
	_, ok := c.byID[id]
	return ok
}
