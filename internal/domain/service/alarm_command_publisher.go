package service

import (
	"context"
)

// AlarmAction is the operation a device is asked to perform on its alarm clock.
type AlarmAction string

const (
	AlarmActionSchedule AlarmAction = "schedule"
	AlarmActionCancel   AlarmAction = "cancel"
)

// AlarmCommand is a schedule or cancel request forwarded to the device that owns
// the platform alarm service.
type AlarmCommand struct {
	RequestID string      `json:"request_id,omitempty"` // For distributed tracing
	Action    AlarmAction `json:"action"`
	AlarmID   int64       `json:"alarm_id"`
	FireAt    string      `json:"fire_at,omitempty"`    // RFC 3339
	EventDate string      `json:"event_date,omitempty"` // YYYY-MM-DD
	Note      string      `json:"note,omitempty"`
}

// AlarmCommandPublisher defines the interface for publishing alarm commands to a message queue
type AlarmCommandPublisher interface {
	// PublishAlarmCommand publishes a command and waits until the broker accepted it
	PublishAlarmCommand(ctx context.Context, cmd *AlarmCommand) error

	// Close releases any resources held by the publisher
	Close() error
}
