package entity

import "cloud.google.com/go/civil"

// AlarmPayload is the data handed to the platform scheduler along with an alarm.
// It is echoed back to the device when the alarm fires.
type AlarmPayload struct {
	EventDate civil.Date `json:"event_date"`
	Note      string     `json:"note"`
}

// TriggerOutcome describes what a trigger callback did.
type TriggerOutcome struct {
	AlarmID         int64      `json:"alarm_id"`
	Found           bool       `json:"found"` // False when the reminder was deleted before the alarm fired.
	ReminderID      int64      `json:"reminder_id,omitempty"`
	EventDate       civil.Date `json:"event_date,omitzero"`
	Notified        bool       `json:"notified"`
	NotifyError     string     `json:"notify_error,omitempty"`
	MarkedTriggered bool       `json:"marked_triggered"`
}

// RestoreFailure records a reminder whose alarm could not be re-issued.
type RestoreFailure struct {
	AlarmID int64  `json:"alarm_id"`
	Reason  string `json:"reason"`
}

// RestoreReport summarises a restore pass over pending reminders.
type RestoreReport struct {
	Succeeded int              `json:"succeeded"`
	Failed    int              `json:"failed"`
	Failures  []RestoreFailure `json:"failures,omitempty"`
}

// AlarmFiredEvent is what a device publishes when one of its alarms goes off.
type AlarmFiredEvent struct {
	RequestID string `json:"request_id,omitempty"`
	AlarmID   int64  `json:"alarm_id"`
}

// TraceID returns the id of the request that scheduled the alarm. The request_id
// attribute of the carrying message wins over the field in the payload.
func (e *AlarmFiredEvent) TraceID(attributes map[string]string) string {
	if id := attributes["request_id"]; id != "" {
		return id
	}

	return e.RequestID
}
