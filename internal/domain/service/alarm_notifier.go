package service

import (
	"context"

	"cloud.google.com/go/civil"
)

// AlarmNotifier renders the user-visible alert for a fired reminder.
type AlarmNotifier interface {
	Notify(ctx context.Context, alarmID int64, eventDate civil.Date, note string) error
}
