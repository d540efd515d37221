package usecase

import (
	"context"
	"time"

	"trainbook/internal/domain/entity"
)

// AlarmUsecase defines the operations driven by the platform alarm service
type AlarmUsecase interface {
	// HandleTrigger notifies the user about the reminder behind alarmID and marks it triggered.
	// Unknown alarm ids are ignored.
	HandleTrigger(ctx context.Context, alarmID int64) (*entity.TriggerOutcome, error)

	// RestorePending re-issues the alarm of every reminder that has not fired yet.
	// Failures of single reminders are reported in the result, not as an error.
	RestorePending(ctx context.Context) (*entity.RestoreReport, error)
}

// Clock returns the current instant. Injected so that date rules never read the wall clock directly.
type Clock func() time.Time
