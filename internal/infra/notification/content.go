// Package notification renders fired reminders as user-visible alerts.
package notification

import (
	"strconv"

	"cloud.google.com/go/civil"
)

const alarmTitle = "⚠️ TRAIN TICKET BOOKING ALARM"

func alarmBody(eventDate civil.Date, note string) string {
	return "Book train ticket NOW for " + eventDate.String() + "\n" + note
}

// alarmData is attached to push messages so the device can open the reminder.
func alarmData(alarmID int64, eventDate civil.Date) map[string]string {
	return map[string]string{
		"alarm_id":   strconv.FormatInt(alarmID, 10),
		"event_date": eventDate.String(),
		"type":       "train_booking_alarm",
	}
}
