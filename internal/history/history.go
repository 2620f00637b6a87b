// Package history keeps an audit trail of profile activations in sqlite.
// Recording is best-effort from the caller's point of view: a broken history
// database must never fail the activation itself.
package history

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Entry is one activation-history row. Name and Backend are empty for
// deactivations.
type Entry struct {
	ID        string
	Name      string
	Backend   string
	Mode      string
	Action    string
	CreatedAt time.Time
}

// Repo handles activation history rows.
type Repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

// Record inserts one entry, filling ID and CreatedAt when the caller left
// them zero.
func (r *Repo) Record(ctx context.Context, e Entry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = Now()
	}
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO activations(id, profile_name, backend, mode, action, created_at)
	VALUES (?, ?, ?, ?, ?, ?);
	`, e.ID, e.Name, e.Backend, e.Mode, e.Action, e.CreatedAt)
	return err
}

// Recent returns up to limit entries, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, profile_name, backend, mode, action, created_at
	FROM activations
	ORDER BY created_at DESC, rowid DESC
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Backend, &e.Mode, &e.Action, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
