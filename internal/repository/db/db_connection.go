package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// InitDB opens/creates a SQLite DB file and ensures tables exist.
func InitDB(path string) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// Conservative pool settings for SQLite
	db.SetMaxOpenConns(1) // SQLite is not great with many writers
	db.SetMaxIdleConns(1)

	// Pragmas to improve reliability
	if _, err := db.Exec("PRAGMA journal_mode = WAL;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA journal_mode=WAL: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA foreign_keys=ON: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set PRAGMA busy_timeout=5000: %w", err)
	}

	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := seedProviders(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const sqliteDriverName = "sqlite"

const schemaUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    password_hash TEXT NOT NULL
);
`

const schemaFeedings = `
CREATE TABLE IF NOT EXISTS feedings (
    id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    occurred_at TIMESTAMP NOT NULL,
    method TEXT NOT NULL,
    amount_ml REAL,
    notes TEXT
);
`

const schemaStoolEvents = `
CREATE TABLE IF NOT EXISTS stool_events (
    id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    event_date TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    color TEXT NOT NULL,
    consistency TEXT NOT NULL,
    notes TEXT
);
`

const schemaGrowthMeasurements = `
CREATE TABLE IF NOT EXISTS growth_measurements (
    id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    measured_on TEXT NOT NULL,
    height_cm REAL,
    weight_kg REAL,
    head_circ_cm REAL
);
`

const schemaReminders = `
CREATE TABLE IF NOT EXISTS reminders (
    id TEXT PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    label TEXT NOT NULL,
    kind TEXT NOT NULL,
    time_of_day TEXT,
    interval_hours INTEGER,
    enabled BOOLEAN NOT NULL,
    last_fired_at TIMESTAMP,
    created_at TIMESTAMP NOT NULL
);
`

const schemaProviders = `
CREATE TABLE IF NOT EXISTS providers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    city TEXT NOT NULL,
    services TEXT NOT NULL,
    rating REAL NOT NULL,
    price_per_hour REAL NOT NULL,
    verified BOOLEAN NOT NULL
);
`

func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	defer func() {
		// In case of panic, rollback to avoid leaving an open transaction
		_ = tx.Rollback()
	}()

	for i, stmt := range []string{
		schemaUsers,
		schemaFeedings,
		schemaStoolEvents,
		schemaGrowthMeasurements,
		schemaReminders,
		schemaProviders,
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// seedProviders loads the built-in directory entries on first boot only.
func seedProviders(db *sql.DB) error {
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM providers`).Scan(&n); err != nil {
		return fmt.Errorf("count providers: %w", err)
	}
	if n > 0 {
		return nil
	}

	seed := []struct {
		name, city, services string
		rating, price        float64
		verified             bool
	}{
		{"Little Sprouts Daycare", "Austin", `["DAYCARE"]`, 4.7, 18, true},
		{"Night Owl Nursing", "Austin", `["NIGHT_NURSE"]`, 4.9, 35, true},
		{"Marta Keller", "Dallas", `["NANNY"]`, 4.5, 22, false},
		{"Sunrise Childcare", "Dallas", `["DAYCARE","NANNY"]`, 4.2, 16, true},
		{"Gentle Hands", "Houston", `["NANNY","NIGHT_NURSE"]`, 3.9, 20, false},
		{"Bluebonnet Kids", "Houston", `["DAYCARE"]`, 4.4, 15, true},
	}
	for _, p := range seed {
		if _, err := db.Exec(
			`INSERT INTO providers (name, city, services, rating, price_per_hour, verified) VALUES (?, ?, ?, ?, ?, ?)`,
			p.name, p.city, p.services, p.rating, p.price, p.verified,
		); err != nil {
			return fmt.Errorf("seed provider %q: %w", p.name, err)
		}
	}
	return nil
}
