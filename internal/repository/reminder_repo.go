package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"babytrack/internal/models"

	"github.com/google/uuid"
)

type ReminderSQLite struct {
	db *sql.DB
}

func NewReminderSQLite(db *sql.DB) *ReminderSQLite { return &ReminderSQLite{db: db} }

const selectReminderCols = `id, user_id, label, kind, time_of_day, interval_hours, enabled, last_fired_at, created_at`

// Add inserts a new reminder. If ID or CreatedAt are empty, they're set.
func (r *ReminderSQLite) Add(ctx context.Context, rem models.Reminder) error {
	if rem.ID == "" {
		rem.ID = uuid.NewString()
	}
	if rem.CreatedAt.IsZero() {
		rem.CreatedAt = time.Now().UTC()
	} else {
		rem.CreatedAt = rem.CreatedAt.UTC()
	}

	var lastFired *string
	if rem.LastFiredAt != nil {
		s := rem.LastFiredAt.UTC().Format(sqliteTimestamp)
		lastFired = &s
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reminders (id, user_id, label, kind, time_of_day, interval_hours, enabled, last_fired_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		rem.ID,
		rem.UserID,
		rem.Label,
		strings.ToUpper(strings.TrimSpace(rem.Kind)),
		rem.TimeOfDay,
		rem.IntervalHours,
		rem.Enabled,
		lastFired,
		rem.CreatedAt.Format(sqliteTimestamp),
	)
	return err
}

// List returns all of the user's reminders ordered by creation time.
func (r *ReminderSQLite) List(ctx context.Context, userID int) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectReminderCols+` FROM reminders WHERE user_id = ? ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// ListEnabled returns every enabled reminder across users, for the scheduler.
func (r *ReminderSQLite) ListEnabled(ctx context.Context) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+selectReminderCols+` FROM reminders WHERE enabled ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReminders(rows)
}

// MarkFired records the reminder's latest firing time.
func (r *ReminderSQLite) MarkFired(ctx context.Context, id string, at time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET last_fired_at = ? WHERE id = ?`,
		at.UTC().Format(sqliteTimestamp), id)
	return err
}

// Delete removes one of the user's reminders; ErrNotFound if no row matched.
func (r *ReminderSQLite) Delete(ctx context.Context, userID int, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ? AND user_id = ?`, id, userID)
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

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	out := make([]models.Reminder, 0, 16)
	for rows.Next() {
		var rem models.Reminder
		var timeOfDay sql.NullString
		var interval sql.NullInt64
		var lastFired sql.NullTime
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Label, &rem.Kind,
			&timeOfDay, &interval, &rem.Enabled, &lastFired, &rem.CreatedAt); err != nil {
			return nil, err
		}
		rem.TimeOfDay = timeOfDay.String
		rem.IntervalHours = int(interval.Int64)
		if lastFired.Valid {
			t := lastFired.Time.UTC()
			rem.LastFiredAt = &t
		}
		rem.CreatedAt = rem.CreatedAt.UTC()
		out = append(out, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
