// Package service defines the contracts of the platform capabilities the core
// depends on but does not implement.
package service

import (
	"context"
	"time"

	"trainbook/internal/domain/entity"
)

// AlarmScheduler arranges a callback at a future instant and cancels it again.
// An error means the platform refused or failed the request.
type AlarmScheduler interface {
	// Schedule arranges a trigger for alarmID at fireAt. Scheduling an alarm id
	// that is already scheduled replaces the earlier entry.
	Schedule(ctx context.Context, alarmID int64, fireAt time.Time, payload entity.AlarmPayload) error

	// Cancel removes the alarm for alarmID. Cancelling an unknown alarm id is not an error.
	Cancel(ctx context.Context, alarmID int64) error
}

// TriggerSink receives alarms fired by schedulers that run inside this process.
type TriggerSink func(ctx context.Context, alarmID int64)

// TriggerSource is implemented by schedulers that fire alarms in-process.
type TriggerSource interface {
	// SetTriggerSink installs the callback invoked when an alarm fires.
	SetTriggerSink(sink TriggerSink)
}
