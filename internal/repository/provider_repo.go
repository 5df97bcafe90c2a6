package repository

import (
	"context"
	"database/sql"
	"encoding/json"

	"babytrack/internal/models"
)

type ProviderSQLite struct {
	db *sql.DB
}

func NewProviderSQLite(db *sql.DB) *ProviderSQLite { return &ProviderSQLite{db: db} }

// ListAll returns the whole provider directory. Filtering, sorting and
// pagination happen in the service layer.
func (r *ProviderSQLite) ListAll(ctx context.Context) ([]models.Provider, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, city, services, rating, price_per_hour, verified FROM providers ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Provider, 0, 32)
	for rows.Next() {
		var p models.Provider
		var servicesJSON string
		if err := rows.Scan(&p.ID, &p.Name, &p.City, &servicesJSON, &p.Rating, &p.PricePerHour, &p.Verified); err != nil {
			return nil, err
		}
		if servicesJSON != "" {
			var svcs []string
			if err := json.Unmarshal([]byte(servicesJSON), &svcs); err == nil {
				p.Services = svcs
			}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
