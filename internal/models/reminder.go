package models

import "time"

// Reminder kinds.
const (
	ReminderFeeding  = "FEEDING"
	ReminderMedicine = "MEDICINE"
	ReminderCustom   = "CUSTOM"
)

// Reminder is a recurring care reminder. Exactly one of TimeOfDay or
// IntervalHours drives its schedule: clock reminders fire at a fixed "HH:MM"
// each day, interval reminders fire a fixed number of hours after the last
// firing.
type Reminder struct {
	ID            string     `json:"id"`
	UserID        int        `json:"-"`
	Label         string     `json:"label"`
	Kind          string     `json:"kind"`                     // FEEDING | MEDICINE | CUSTOM
	TimeOfDay     string     `json:"time_of_day,omitempty"`    // "HH:MM", clock reminders
	IntervalHours int        `json:"interval_hours,omitempty"` // interval reminders
	Enabled       bool       `json:"enabled"`
	LastFiredAt   *time.Time `json:"last_fired_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// UpcomingReminder is a reminder paired with its computed next occurrence,
// as streamed over the websocket and returned by the list endpoint.
type UpcomingReminder struct {
	Reminder Reminder  `json:"reminder"`
	NextAt   time.Time `json:"next_at"`
}
