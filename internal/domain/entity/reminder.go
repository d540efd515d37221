// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

// Reminder is a booking reminder for a single train journey.
type Reminder struct {
	ID           int64      `json:"id"`            // Store-assigned identifier.
	EventDate    civil.Date `json:"event_date"`    // Date of the journey.
	ReminderDate civil.Date `json:"reminder_date"` // EventDate minus the booking window, fixed at creation.
	ReminderTime civil.Time `json:"reminder_time"` // Time of day the alarm fires.
	Note         string     `json:"note"`          // Free-text annotation, e.g. the route.
	AlarmID      int64      `json:"alarm_id"`      // Correlates the row with a platform alarm. Unique.
	IsTriggered  bool       `json:"is_triggered"`  // Set once the alarm has fired. Never reverts.
	CreatedAt    time.Time  `json:"created_at"`
}

// IsPending reports whether the reminder still waits for its alarm.
func (r *Reminder) IsPending() bool {
	return !r.IsTriggered
}
