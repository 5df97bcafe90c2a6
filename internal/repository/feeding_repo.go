package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"babytrack/internal/models"

	"github.com/google/uuid"
)

// SQLite TIMESTAMP format "YYYY-MM-DD HH:MM:SS"
const sqliteTimestamp = "2006-01-02 15:04:05"

type FeedingSQLite struct {
	db *sql.DB
}

func NewFeedingSQLite(db *sql.DB) *FeedingSQLite { return &FeedingSQLite{db: db} }

// Add inserts a new feeding. If ID or Timestamp are empty, they're set.
func (r *FeedingSQLite) Add(ctx context.Context, rec models.FeedingRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	} else {
		rec.Timestamp = rec.Timestamp.UTC()
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO feedings (id, user_id, occurred_at, method, amount_ml, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.UserID,
		rec.Timestamp.Format(sqliteTimestamp),
		strings.ToUpper(strings.TrimSpace(rec.Method)),
		rec.AmountML,
		rec.Notes,
	)
	return err
}

// List returns the user's feedings filtered by [from, to] (inclusive,
// zero means unbounded), ordered ASC by time.
func (r *FeedingSQLite) List(ctx context.Context, userID int, from, to time.Time) ([]models.FeedingRecord, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if !from.IsZero() {
		conds = append(conds, "occurred_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "occurred_at <= ?")
		args = append(args, to.UTC())
	}

	q := `SELECT id, user_id, occurred_at, method, amount_ml, notes FROM feedings WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY occurred_at ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.FeedingRecord, 0, 64)
	for rows.Next() {
		var rec models.FeedingRecord
		var amount sql.NullFloat64
		var notes sql.NullString
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Timestamp, &rec.Method, &amount, &notes); err != nil {
			return nil, err
		}
		rec.Timestamp = rec.Timestamp.UTC()
		rec.AmountML = amount.Float64
		rec.Notes = notes.String
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one of the user's feedings; ErrNotFound if no row matched.
func (r *FeedingSQLite) Delete(ctx context.Context, userID int, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM feedings WHERE id = ? AND user_id = ?`, id, userID)
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
