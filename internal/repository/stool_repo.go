package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"babytrack/internal/models"

	"github.com/google/uuid"
)

type StoolSQLite struct {
	db *sql.DB
}

func NewStoolSQLite(db *sql.DB) *StoolSQLite { return &StoolSQLite{db: db} }

// Add inserts a new stool event. If ID or CreatedAt are empty, they're set;
// an empty Date defaults to today's date (UTC).
func (r *StoolSQLite) Add(ctx context.Context, rec models.StoolRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	} else {
		rec.CreatedAt = rec.CreatedAt.UTC()
	}
	if rec.Date == "" {
		rec.Date = rec.CreatedAt.Format("2006-01-02")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stool_events (id, user_id, event_date, created_at, color, consistency, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.UserID,
		rec.Date,
		rec.CreatedAt.Format(sqliteTimestamp),
		strings.ToUpper(strings.TrimSpace(rec.Color)),
		strings.ToUpper(strings.TrimSpace(rec.Consistency)),
		rec.Notes,
	)
	return err
}

// List returns the user's stool events with event_date in [from, to]
// (inclusive ISO dates, "" means unbounded), ordered ASC by date.
func (r *StoolSQLite) List(ctx context.Context, userID int, from, to string) ([]models.StoolRecord, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if from != "" {
		conds = append(conds, "event_date >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "event_date <= ?")
		args = append(args, to)
	}

	q := `SELECT id, user_id, event_date, created_at, color, consistency, notes FROM stool_events WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY event_date ASC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.StoolRecord, 0, 64)
	for rows.Next() {
		var rec models.StoolRecord
		var notes sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.CreatedAt, &rec.Color, &rec.Consistency, &notes); err != nil {
			return nil, err
		}
		rec.CreatedAt = rec.CreatedAt.UTC()
		rec.Notes = notes.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one of the user's stool events; ErrNotFound if no row matched.
func (r *StoolSQLite) Delete(ctx context.Context, userID int, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stool_events WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
