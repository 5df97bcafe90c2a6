package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"babytrack/internal/models"
	"babytrack/internal/repository"

	"github.com/google/uuid"
)

var (
	errInvalidKind     = errors.New("invalid kind: must be FEEDING, MEDICINE, or CUSTOM")
	errInvalidSchedule = errors.New("invalid schedule: set exactly one of time_of_day and interval_hours")
	errEmptyLabel      = errors.New("invalid label: must not be empty")
)

var reminderKinds = map[string]bool{
	models.ReminderFeeding:  true,
	models.ReminderMedicine: true,
	models.ReminderCustom:   true,
}

// ReminderService handles reminder CRUD and next-occurrence arithmetic.
type ReminderService struct {
	repo repository.ReminderRepo
}

func NewReminderService(repo repository.ReminderRepo) *ReminderService {
	return &ReminderService{repo: repo}
}

// AddReminder validates and stores a reminder, returning it with defaults applied.
func (s *ReminderService) AddReminder(ctx context.Context, r models.Reminder) (models.Reminder, error) {
	if r.Label == "" {
		return models.Reminder{}, errEmptyLabel
	}
	if !reminderKinds[r.Kind] {
		return models.Reminder{}, errInvalidKind
	}
	hasClock := r.TimeOfDay != ""
	hasInterval := r.IntervalHours > 0
	if hasClock == hasInterval {
		return models.Reminder{}, errInvalidSchedule
	}
	if r.IntervalHours < 0 {
		return models.Reminder{}, errInvalidSchedule
	}
	if hasClock {
		if _, err := time.Parse("15:04", r.TimeOfDay); err != nil {
			return models.Reminder{}, fmt.Errorf("invalid time_of_day %q: expected HH:MM", r.TimeOfDay)
		}
	}
	r.ID = uuid.NewString()
	r.Enabled = true
	r.LastFiredAt = nil
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	} else {
		r.CreatedAt = r.CreatedAt.UTC()
	}
	if err := s.repo.Add(ctx, r); err != nil {
		return models.Reminder{}, err
	}
	return r, nil
}

// ListReminders returns the user's reminders paired with their next
// occurrence, soonest first.
func (s *ReminderService) ListReminders(ctx context.Context, userID int, now time.Time) ([]models.UpcomingReminder, error) {
	reminders, err := s.repo.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]models.UpcomingReminder, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, models.UpcomingReminder{
			Reminder: r,
			NextAt:   NextOccurrence(r, now),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].NextAt.Before(out[j].NextAt)
	})
	return out, nil
}

func (s *ReminderService) DeleteReminder(ctx context.Context, userID int, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

// NextOccurrence computes when the reminder fires next, strictly after now.
// Clock reminders fire at their HH:MM slot today, or tomorrow if that has
// passed. Interval reminders roll whole intervals forward from the last
// firing (or creation).
func NextOccurrence(r models.Reminder, now time.Time) time.Time {
	now = now.UTC()
	if r.TimeOfDay != "" {
		slot := clockSlot(r.TimeOfDay, now)
		if slot.After(now) {
			return slot
		}
		return slot.AddDate(0, 0, 1)
	}

	interval := time.Duration(r.IntervalHours) * time.Hour
	base := r.CreatedAt.UTC()
	if r.LastFiredAt != nil {
		base = r.LastFiredAt.UTC()
	}
	next := base.Add(interval)
	for !next.After(now) {
		next = next.Add(interval)
	}
	return next
}

// clockSlot places an "HH:MM" time on the given day in UTC.
func clockSlot(hhmm string, day time.Time) time.Time {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC)
}

// SchedulerService fires due reminders in the background.
type SchedulerService struct {
	repo repository.ReminderRepo
}

func NewSchedulerService(repo repository.ReminderRepo) *SchedulerService {
	return &SchedulerService{repo: repo}
}

// Run ticks at the given interval until ctx is canceled. Each tick it marks
// every due enabled reminder as fired; firing is best-effort.
func (s *SchedulerService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-t.C:
			reminders, err := s.repo.ListEnabled(ctx)
			if err != nil {
				continue
			}
			for _, r := range reminders {
				if dueAt(r, now.UTC()) {
					_ = s.repo.MarkFired(ctx, r.ID, now.UTC())
				}
			}
		}
	}
}

// dueAt reports whether the reminder should fire at now.
func dueAt(r models.Reminder, now time.Time) bool {
	if r.TimeOfDay != "" {
		slot := clockSlot(r.TimeOfDay, now)
		if now.Before(slot) {
			return false
		}
		// already fired at or after today's slot
		return r.LastFiredAt == nil || r.LastFiredAt.UTC().Before(slot)
	}
	if r.IntervalHours <= 0 {
		return false
	}
	base := r.CreatedAt.UTC()
	if r.LastFiredAt != nil {
		base = r.LastFiredAt.UTC()
	}
	return !now.Before(base.Add(time.Duration(r.IntervalHours) * time.Hour))
}
