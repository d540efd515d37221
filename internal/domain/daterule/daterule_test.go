package daterule

import (
	"testing"
	"time"

	domainerrors "trainbook/internal/domain/errors"
	"trainbook/internal/errors"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()

	d, err := civil.ParseDate(s)
	require.NoError(t, err)

	return d
}

func TestReminderDateFor(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{event: "2028-01-01", want: "2027-11-02"},
		{event: "2026-06-01", want: "2026-04-02"},
		{event: "2024-04-15", want: "2024-02-15"}, // leap February
		{event: "2023-04-15", want: "2023-02-14"},
		{event: "2026-03-01", want: "2025-12-31"}, // year rollover
		{event: "2026-11-01", want: "2026-09-02"}, // spans a DST change in most zones
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			got := ReminderDateFor(date(t, tt.event))
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, ReminderOffsetDays, date(t, tt.event).DaysSince(got))
		})
	}
}

func TestValidateEventDate(t *testing.T) {
	today := date(t, "2026-01-15")

	tests := []struct {
		name    string
		event   civil.Date
		wantErr error
	}{
		{name: "yesterday", event: today.AddDays(-1), wantErr: domainerrors.ErrEventDateNotFuture},
		{name: "today", event: today, wantErr: domainerrors.ErrEventDateNotFuture},
		{name: "tomorrow", event: today.AddDays(1), wantErr: domainerrors.ErrReminderInPast},
		{name: "exactly sixty days", event: today.AddDays(60), wantErr: domainerrors.ErrReminderInPast},
		{name: "sixty one days", event: today.AddDays(61)},
		{name: "next year", event: today.AddDays(400)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEventDate(tt.event, today)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}

			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestValidateEventDate_ReasonCodes(t *testing.T) {
	today := date(t, "2026-01-15")

	var appErr domainerrors.AppError
	require.True(t, errors.As(ValidateEventDate(today, today), &appErr))
	assert.Equal(t, "NOT_FUTURE", appErr.ErrorCode())

	require.True(t, errors.As(ValidateEventDate(today.AddDays(30), today), &appErr))
	assert.Equal(t, "REMINDER_IN_PAST", appErr.ErrorCode())
}

func TestDaysUntil(t *testing.T) {
	today := date(t, "2026-01-15")

	assert.Equal(t, 0, DaysUntil(today, today))
	assert.Equal(t, 17, DaysUntil(date(t, "2026-02-01"), today))
	assert.Equal(t, -15, DaysUntil(date(t, "2025-12-31"), today))
	assert.Equal(t, 366, DaysUntil(date(t, "2028-03-15"), date(t, "2027-03-15")))
}

func TestDaysUntilAlarm(t *testing.T) {
	today := date(t, "2026-01-15")

	assert.Equal(t, 1, DaysUntilAlarm(today.AddDays(61), today))
	assert.Equal(t, 0, DaysUntilAlarm(today.AddDays(10), today))
}

func TestFormatDisplay(t *testing.T) {
	assert.Equal(t, "Jan 14, 2026", FormatDisplay(date(t, "2026-01-14")))
	assert.Equal(t, "Jun 01, 2026", FormatDisplay(date(t, "2026-06-01")))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate(" 2026-06-01 ")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2026, Month: time.June, Day: 1}, d)

	for _, bad := range []string{"", "2026-6-1", "01/06/2026", "2026-02-30", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidDateFormat), "input %q", bad)
	}
}

func TestTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("07:45")
	require.NoError(t, err)
	assert.Equal(t, DefaultReminderTime, tod)
	assert.Equal(t, "07:45", FormatTimeOfDay(tod))

	_, err = ParseTimeOfDay("7.45am")
	assert.Error(t, err)
}

func TestToFireInstant(t *testing.T) {
	kolkata := time.FixedZone("IST", 5*60*60+30*60)

	instant := ToFireInstant(date(t, "2026-04-02"), DefaultReminderTime, kolkata)
	assert.Equal(t, time.Date(2026, time.April, 2, 2, 15, 0, 0, time.UTC), instant.UTC())

	// Reading the instant back in the same zone yields the stored date and time.
	assert.Equal(t, "2026-04-02", Today(instant, kolkata).String())
	assert.Equal(t, DefaultReminderTime, civil.TimeOf(instant.In(kolkata)))
}

func TestToday(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	now := time.Date(2026, time.January, 14, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-01-14", Today(now, time.UTC).String())
	assert.Equal(t, "2026-01-15", Today(now, tokyo).String())
}
