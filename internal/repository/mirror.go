package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"technician-dispatch/internal/domain"
)

const mirrorSchema = `
CREATE TABLE IF NOT EXISTS assignments (
	id             BIGINT PRIMARY KEY,
	technician_ids BIGINT[] NOT NULL,
	location_id    BIGINT NOT NULL,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	date           DATE NOT NULL,
	status         TEXT NOT NULL,
	priority       TEXT NOT NULL,
	notes          TEXT NOT NULL DEFAULT '',
	updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresMirror keeps a best-effort copy of the in-memory schedule in Postgres.
// The in-memory store stays the source of truth.
type PostgresMirror struct{ db *pgxpool.Pool }

// NewPostgresMirror creates a mirror over db.
func NewPostgresMirror(db *pgxpool.Pool) *PostgresMirror { return &PostgresMirror{db: db} }

// EnsureSchema creates the mirror table if needed.
func (m *PostgresMirror) EnsureSchema(ctx context.Context) error {
	if _, err := m.db.Exec(ctx, mirrorSchema); err != nil {
		return fmt.Errorf("ensure assignments schema: %w", err)
	}
	return nil
}

// Save upserts a.
func (m *PostgresMirror) Save(ctx context.Context, a domain.Assignment) error {
	_, err := m.db.Exec(ctx, `
        INSERT INTO assignments
            (id, technician_ids, location_id, title, description, date, status, priority, notes, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
        ON CONFLICT (id) DO UPDATE SET
            technician_ids = EXCLUDED.technician_ids,
            location_id    = EXCLUDED.location_id,
            title          = EXCLUDED.title,
            description    = EXCLUDED.description,
            date           = EXCLUDED.date,
            status         = EXCLUDED.status,
            priority       = EXCLUDED.priority,
            notes          = EXCLUDED.notes,
            updated_at     = now()
    `, a.ID, a.TechnicianIDs, a.LocationID, a.Title, a.Description,
		a.Date.In(time.UTC), string(a.Status), string(a.Priority), a.Notes)
	if err != nil {
		return fmt.Errorf("mirror assignment %d: %w", a.ID, err)
	}
	return nil
}

// Delete removes the row of id; missing rows are not an error.
func (m *PostgresMirror) Delete(ctx context.Context, id int64) error {
	if _, err := m.db.Exec(ctx, `DELETE FROM assignments WHERE id = $1`, id); err != nil {
		return fmt.Errorf("mirror delete assignment %d: %w", id, err)
	}
	return nil
}

// Load reads the mirrored rows ordered by id, used to restore a schedule on boot.
func (m *PostgresMirror) Load(ctx context.Context) ([]domain.Assignment, error) {
	rows, err := m.db.Query(ctx, `
        SELECT id, technician_ids, location_id, title, description, date, status, priority, notes
        FROM assignments ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("load assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.Assignment
	for rows.Next() {
		var (
			a        domain.Assignment
			date     time.Time
			status   string
			priority string
		)
		if err := rows.Scan(&a.ID, &a.TechnicianIDs, &a.LocationID, &a.Title, &a.Description,
			&date, &status, &priority, &a.Notes); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		a.Date = domain.DateOf(date, time.UTC)
		a.Status = domain.AssignmentStatus(status)
		a.Priority = domain.Priority(priority)
		out = append(out, a)
	}
	return out, rows.Err()
}

// Name identifies the mirror in logs and metrics.
func (m *PostgresMirror) Name() string { return "postgres" }

// Apply mirrors one store change.
func (m *PostgresMirror) Apply(ctx context.Context, c Change) error {
	if c.Kind == ChangeDeleted {
		return m.Delete(ctx, c.Assignment.ID)
	}
	return m.Save(ctx, c.Assignment)
}
