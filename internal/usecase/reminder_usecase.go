// Package usecase defines the application operations exposed to the delivery layer.
package usecase

import (
	"context"

	"trainbook/internal/domain/entity"

	"cloud.google.com/go/civil"
)

// CreateReminderInput is what the user submits to create a reminder
type CreateReminderInput struct {
	EventDate civil.Date
	Note      string
}

// ReminderSummary is a stored reminder together with its presentation values
// relative to today
type ReminderSummary struct {
	*entity.Reminder

	EventDateDisplay    string `json:"event_date_display"`
	ReminderDateDisplay string `json:"reminder_date_display"`
	DaysUntilEvent      int    `json:"days_until_event"`
	DaysUntilAlarm      int    `json:"days_until_alarm"`
}

// ReminderPreview tells the user what a reminder for a journey date would look
// like before it is created
type ReminderPreview struct {
	EventDate           civil.Date `json:"event_date"`
	ReminderDate        civil.Date `json:"reminder_date"`
	ReminderTime        string     `json:"reminder_time"`
	EventDateDisplay    string     `json:"event_date_display"`
	ReminderDateDisplay string     `json:"reminder_date_display"`
	DaysUntilEvent      int        `json:"days_until_event"`
	DaysUntilAlarm      int        `json:"days_until_alarm"`
	Valid               bool       `json:"valid"`
	Reason              string     `json:"reason,omitempty"`
	Message             string     `json:"message,omitempty"`
}

// ReminderUsecase defines the reminder operations offered to the user interface
type ReminderUsecase interface {
	// CreateReminder validates the journey date, schedules the alarm and stores the reminder
	CreateReminder(ctx context.Context, input *CreateReminderInput) (*ReminderSummary, error)

	// DeleteReminder cancels the alarm of a reminder and removes it
	DeleteReminder(ctx context.Context, id int64) error

	// ListReminders returns every reminder ordered by journey date
	ListReminders(ctx context.Context) ([]*ReminderSummary, error)

	// PreviewReminder computes the reminder a journey date would produce without storing anything
	PreviewReminder(ctx context.Context, eventDate civil.Date) (*ReminderPreview, error)
}
