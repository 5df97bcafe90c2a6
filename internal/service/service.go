package service

import (
	"context"
	"time"

	"babytrack/internal/models"
	"babytrack/internal/repository"
)

type Authorization interface {
	SignUp(username, password string) (int, error)
	GenerateToken(username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Records exposes CRUD over the three time series.
type Records interface {
	AddFeeding(ctx context.Context, rec models.FeedingRecord) (models.FeedingRecord, error)
	ListFeedings(ctx context.Context, userID int, from, to time.Time) ([]models.FeedingRecord, error)
	DeleteFeeding(ctx context.Context, userID int, id string) error

	AddStool(ctx context.Context, rec models.StoolRecord) (models.StoolRecord, error)
	ListStool(ctx context.Context, userID int, from, to string) ([]models.StoolRecord, error)
	DeleteStool(ctx context.Context, userID int, id string) error

	AddGrowth(ctx context.Context, rec models.GrowthRecord) (models.GrowthRecord, error)
	ListGrowth(ctx context.Context, userID int, from, to string) ([]models.GrowthRecord, error)
	DeleteGrowth(ctx context.Context, userID int, id string) error
}

// Analysis runs the date-range reconciliation over a user's logged data.
type Analysis interface {
	Analyze(ctx context.Context, userID int, q AnalysisQuery) (AnalysisResult, error)
}

// Reminders exposes reminder CRUD with computed next occurrences.
type Reminders interface {
	AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error)
	ListReminders(ctx context.Context, userID int, now time.Time) ([]models.UpcomingReminder, error)
	DeleteReminder(ctx context.Context, userID int, id string) error
}

// Scheduler runs the background loop that fires due reminders.
// Stop via context cancellation in main() for graceful shutdown.
type Scheduler interface {
	Run(ctx context.Context, tick time.Duration)
}

// Providers exposes the filtered/sorted/paged childcare directory.
type Providers interface {
	ListProviders(ctx context.Context, f ProviderFilter) (ProviderPage, error)
}

// Config carries the service-level knobs read from configuration.
type Config struct {
	JWTSigningKey string
	TokenTTL      time.Duration
}

// Service aggregates all sub-services.
type Service struct {
	Authorization
	Records
	Analysis
	Reminders
	Scheduler
	Providers
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Auth, cfg.JWTSigningKey, cfg.TokenTTL),
		Records:       NewRecordService(repos.Feedings, repos.Stool, repos.Growth),
		Analysis:      NewAnalysisService(repos.Feedings, repos.Stool, repos.Growth),
		Reminders:     NewReminderService(repos.Reminders),
		Scheduler:     NewSchedulerService(repos.Reminders),
		Providers:     NewProviderService(repos.Providers),
	}
}
