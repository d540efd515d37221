package service

import (
	"context"

	"trainbook/internal/domain/entity"
)

// ReminderListCache caches the full reminder listing.
type ReminderListCache interface {
	// Get returns the cached listing. ok is false on a miss.
	Get(ctx context.Context) (reminders []*entity.Reminder, ok bool, err error)

	// Set stores the listing.
	Set(ctx context.Context, reminders []*entity.Reminder) error

	// Invalidate drops the cached listing.
	Invalidate(ctx context.Context) error
}
