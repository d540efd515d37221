// Package daterule holds the calendar rules of the booking window: how a
// reminder date is derived from a journey date, which journey dates are
// accepted, and how dates are shown and turned into alarm instants.
//
// All functions are pure. The current date is always passed in by the caller.
package daterule

import (
	"fmt"
	"strings"
	"time"

	domainerrors "trainbook/internal/domain/errors"

	"cloud.google.com/go/civil"
)

const (
	// ReminderOffsetDays is how many days before the journey the booking window opens.
	ReminderOffsetDays = 60

	// DisplayLayout renders dates like "Jan 14, 2026".
	DisplayLayout = "Jan 02, 2006"

	// ISOLayout is the persisted and wire format of calendar dates.
	ISOLayout = "2006-01-02"

	timeOfDayLayout = "15:04"
)

// DefaultReminderTime is the time of day every reminder fires at.
var DefaultReminderTime = civil.Time{Hour: 7, Minute: 45}

// ReminderDateFor returns the date the booking alarm fires for a journey on eventDate.
func ReminderDateFor(eventDate civil.Date) civil.Date {
	return eventDate.AddDays(-ReminderOffsetDays)
}

// ValidateEventDate checks that eventDate is in the future and far enough ahead
// that its reminder date is in the future too.
func ValidateEventDate(eventDate, today civil.Date) error {
	if !eventDate.After(today) {
		return domainerrors.ErrEventDateNotFuture
	}

	if !ReminderDateFor(eventDate).After(today) {
		return domainerrors.ErrReminderInPast
	}

	return nil
}

// DaysUntil returns the signed number of whole days from today to date.
func DaysUntil(date, today civil.Date) int {
	return date.DaysSince(today)
}

// DaysUntilAlarm returns the days left before the reminder for eventDate fires,
// never less than zero.
func DaysUntilAlarm(eventDate, today civil.Date) int {
	return max(DaysUntil(ReminderDateFor(eventDate), today), 0)
}

// FormatDisplay renders date for people. Never parse it back.
func FormatDisplay(date civil.Date) string {
	return date.In(time.UTC).Format(DisplayLayout)
}

// ParseDate parses a strict YYYY-MM-DD date.
func ParseDate(value string) (civil.Date, error) {
	value = strings.TrimSpace(value)

	date, err := civil.ParseDate(value)
	if err != nil || !date.IsValid() {
		return civil.Date{}, domainerrors.ErrInvalidDateFormat.WithDetails(fmt.Sprintf("%q is not a YYYY-MM-DD date", value))
	}

	return date, nil
}

// ParseTimeOfDay parses an HH:MM time of day.
func ParseTimeOfDay(value string) (civil.Time, error) {
	t, err := time.Parse(timeOfDayLayout, strings.TrimSpace(value))
	if err != nil {
		return civil.Time{}, fmt.Errorf("invalid time of day %q: %w", value, err)
	}

	return civil.Time{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// FormatTimeOfDay renders t as HH:MM.
func FormatTimeOfDay(t civil.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ToFireInstant combines a date and a time of day into the instant they denote
// on the wall clock of loc. The same loc must be used when the stored date and
// time are read back, otherwise the alarm moves.
func ToFireInstant(date civil.Date, timeOfDay civil.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}

	return civil.DateTime{Date: date, Time: timeOfDay}.In(loc)
}

// Today returns the calendar date of now on the wall clock of loc.
func Today(now time.Time, loc *time.Location) civil.Date {
	if loc == nil {
		loc = time.Local
	}

	return civil.DateOf(now.In(loc))
}
