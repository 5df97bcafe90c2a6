package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"babytrack/internal/models"

	"github.com/google/uuid"
)

type GrowthSQLite struct {
	db *sql.DB
}

func NewGrowthSQLite(db *sql.DB) *GrowthSQLite { return &GrowthSQLite{db: db} }

// Add inserts a new growth measurement. An empty ID is generated; an empty
// MeasurementDate defaults to today's date (UTC).
func (r *GrowthSQLite) Add(ctx context.Context, rec models.GrowthRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.MeasurementDate == "" {
		rec.MeasurementDate = time.Now().UTC().Format("2006-01-02")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO growth_measurements (id, user_id, measured_on, height_cm, weight_kg, head_circ_cm)
		VALUES (?, ?, ?, ?, ?, ?)
	`,
		rec.ID,
		rec.UserID,
		rec.MeasurementDate,
		rec.HeightCM,
		rec.WeightKG,
		rec.HeadCircCM,
	)
	return err
}

// List returns the user's measurements with measured_on in [from, to]
// (inclusive ISO dates, "" means unbounded), ordered ASC by date.
func (r *GrowthSQLite) List(ctx context.Context, userID int, from, to string) ([]models.GrowthRecord, error) {
	conds := []string{"user_id = ?"}
	args := []any{userID}

	if from != "" {
		conds = append(conds, "measured_on >= ?")
		args = append(args, from)
	}
	if to != "" {
		conds = append(conds, "measured_on <= ?")
		args = append(args, to)
	}

	q := `SELECT id, user_id, measured_on, height_cm, weight_kg, head_circ_cm FROM growth_measurements WHERE ` +
		strings.Join(conds, " AND ") + ` ORDER BY measured_on ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.GrowthRecord, 0, 32)
	for rows.Next() {
		var rec models.GrowthRecord
		var height, weight, head sql.NullFloat64
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.MeasurementDate, &height, &weight, &head); err != nil {
			return nil, err
		}
		rec.HeightCM = height.Float64
		rec.WeightKG = weight.Float64
		rec.HeadCircCM = head.Float64
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes one of the user's measurements; ErrNotFound if no row matched.
func (r *GrowthSQLite) Delete(ctx context.Context, userID int, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM growth_measurements WHERE id = ? AND user_id = ?`, id, userID)
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
