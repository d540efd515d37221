package repository

import "context"

// AlarmSequenceRepository hands out alarm ids.
type AlarmSequenceRepository interface {
	// Next returns an alarm id that has never been returned before.
	Next(ctx context.Context) (int64, error)
}
