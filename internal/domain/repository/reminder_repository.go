// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"trainbook/internal/domain/entity"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderNotFound is returned when no reminder matches the lookup key.
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrDuplicateAlarmID is returned when the alarm id is already used by another reminder.
	ErrDuplicateAlarmID = errors.New("alarm id already exists")
)

// ReminderRepository defines the interface for reminder-related database operations.
// Mutations are atomic with respect to each other.
type ReminderRepository interface {
	// Create derives the reminder date from eventDate and inserts an untriggered
	// reminder with the default reminder time. It returns the new id.
	// ErrDuplicateAlarmID is returned, with nothing written, when alarmID is taken.
	Create(ctx context.Context, eventDate civil.Date, note string, alarmID int64) (int64, error)

	// FindByID retrieves a reminder by its id.
	FindByID(ctx context.Context, id int64) (*entity.Reminder, error)

	// FindByAlarmID retrieves a reminder by its alarm id.
	FindByAlarmID(ctx context.Context, alarmID int64) (*entity.Reminder, error)

	// ListAll returns every reminder ordered by event date, ties in insertion order.
	ListAll(ctx context.Context) ([]*entity.Reminder, error)

	// ListPending returns untriggered reminders ordered by reminder date, ties in insertion order.
	ListPending(ctx context.Context) ([]*entity.Reminder, error)

	// MarkTriggered flags the reminder with alarmID as triggered.
	// It reports whether a reminder with that alarm id exists.
	MarkTriggered(ctx context.Context, alarmID int64) (bool, error)

	// Delete removes a reminder. It reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
}
