package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"babytrack/internal/models"
	"babytrack/internal/repository/db"
)

// ErrNotFound is returned by deletes that match no row owned by the caller.
var ErrNotFound = errors.New("record not found")

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.User, error)
}

type FeedingRepo interface {
	Add(ctx context.Context, rec models.FeedingRecord) error
	List(ctx context.Context, userID int, from, to time.Time) ([]models.FeedingRecord, error)
	Delete(ctx context.Context, userID int, id string) error
}

type StoolRepo interface {
	Add(ctx context.Context, rec models.StoolRecord) error
	List(ctx context.Context, userID int, from, to string) ([]models.StoolRecord, error)
	Delete(ctx context.Context, userID int, id string) error
}

type GrowthRepo interface {
	Add(ctx context.Context, rec models.GrowthRecord) error
	List(ctx context.Context, userID int, from, to string) ([]models.GrowthRecord, error)
	Delete(ctx context.Context, userID int, id string) error
}

type ReminderRepo interface {
	Add(ctx context.Context, r models.Reminder) error
	List(ctx context.Context, userID int) ([]models.Reminder, error)
	ListEnabled(ctx context.Context) ([]models.Reminder, error)
	MarkFired(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, userID int, id string) error
}

type ProviderRepo interface {
	ListAll(ctx context.Context) ([]models.Provider, error)
}

type Repository struct {
	Auth      Authorization
	Feedings  FeedingRepo
	Stool     StoolRepo
	Growth    GrowthRepo
	Reminders ReminderRepo
	Providers ProviderRepo
}

func NewRepository(conn *sql.DB) *Repository {
	return &Repository{
		Auth:      NewUserRepository(conn),
		Feedings:  NewFeedingSQLite(conn),
		Stool:     NewStoolSQLite(conn),
		Growth:    NewGrowthSQLite(conn),
		Reminders: NewReminderSQLite(conn),
		Providers: NewProviderSQLite(conn),
	}
}

// InitDB opens the SQLite file and applies schema; re-exported so callers
// don't need to import the db subpackage.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
