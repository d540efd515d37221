package notification

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"trainbook/config"
	"trainbook/internal/domain/service"
	mockSvc "trainbook/internal/mocks/service"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var journey = civil.Date{Year: 2026, Month: time.June, Day: 1}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAlarmBody(t *testing.T) {
	assert.Equal(t, "Book train ticket NOW for 2026-06-01\nMumbai-Delhi", alarmBody(journey, "Mumbai-Delhi"))
}

func TestLogNotifier_PrintsBanner(t *testing.T) {
	var buf bytes.Buffer
	notifier := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	require.NoError(t, notifier.Notify(context.Background(), 1000, journey, "Mumbai-Delhi"))
	assert.Contains(t, buf.String(), "TRAIN TICKET BOOKING ALARM")
	assert.Contains(t, buf.String(), "alarm_id=1000")
	assert.Contains(t, buf.String(), "2026-06-01")
}

func TestPushNotifier_SendsAlarmToEveryDevice(t *testing.T) {
	sender := mockSvc.NewMockPushSender(t)
	tokens := []string{"token-a", "token-b"}
	notifier := NewPushNotifier(sender, tokens, discardLogger())
	ctx := context.Background()

	sender.EXPECT().SendMulticast(ctx, tokens, mock.MatchedBy(func(msg service.PushMessage) bool {
		return msg.Title == alarmTitle &&
			msg.Body == "Book train ticket NOW for 2026-06-01\nMumbai-Delhi" &&
			msg.Data["alarm_id"] == "1000" &&
			msg.Data["event_date"] == "2026-06-01"
	})).Return(&service.PushResult{SuccessCount: 2}, nil)

	require.NoError(t, notifier.Notify(ctx, 1000, journey, "Mumbai-Delhi"))
}

func TestPushNotifier_PartialDeliveryIsSuccess(t *testing.T) {
	sender := mockSvc.NewMockPushSender(t)
	notifier := NewPushNotifier(sender, []string{"good", "stale"}, discardLogger())
	ctx := context.Background()

	sender.EXPECT().SendMulticast(ctx, mock.Anything, mock.Anything).
		Return(&service.PushResult{SuccessCount: 1, FailureCount: 1, InvalidTokens: []string{"stale"}}, nil)

	assert.NoError(t, notifier.Notify(ctx, 1000, journey, "trip"))
}

func TestPushNotifier_Failures(t *testing.T) {
	ctx := context.Background()

	t.Run("no tokens", func(t *testing.T) {
		sender := mockSvc.NewMockPushSender(t)
		notifier := NewPushNotifier(sender, nil, discardLogger())

		assert.Error(t, notifier.Notify(ctx, 1000, journey, "trip"))
		sender.AssertNotCalled(t, "SendMulticast", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("send error", func(t *testing.T) {
		sender := mockSvc.NewMockPushSender(t)
		notifier := NewPushNotifier(sender, []string{"a"}, discardLogger())
		sender.EXPECT().SendMulticast(ctx, mock.Anything, mock.Anything).Return(nil, errors.New("quota exceeded"))

		assert.ErrorContains(t, notifier.Notify(ctx, 1000, journey, "trip"), "quota exceeded")
	})

	t.Run("nobody reached", func(t *testing.T) {
		sender := mockSvc.NewMockPushSender(t)
		notifier := NewPushNotifier(sender, []string{"a"}, discardLogger())
		sender.EXPECT().SendMulticast(ctx, mock.Anything, mock.Anything).
			Return(&service.PushResult{FailureCount: 1, InvalidTokens: []string{"a"}}, nil)

		assert.ErrorContains(t, notifier.Notify(ctx, 1000, journey, "trip"), "reached no device")
	})
}

func TestNewAlarmNotifier(t *testing.T) {
	newParams := func(notification config.NotificationConfig) NotifierParams {
		cfg := &config.Config{Notification: notification}

		return NotifierParams{Ctx: context.Background(), Config: cfg, Logger: discardLogger()}
	}

	t.Run("log by default", func(t *testing.T) {
		notifier, err := NewAlarmNotifier(newParams(config.NotificationConfig{}))
		require.NoError(t, err)
		assert.IsType(t, &logNotifier{}, notifier)
	})

	t.Run("firebase requires settings", func(t *testing.T) {
		_, err := NewAlarmNotifier(newParams(config.NotificationConfig{Provider: "firebase"}))
		assert.Error(t, err)
	})

	t.Run("firebase requires tokens", func(t *testing.T) {
		_, err := NewAlarmNotifier(newParams(config.NotificationConfig{
			Provider: "firebase",
			Firebase: &config.FirebaseConfig{ProjectID: "trainbook"},
		}))
		assert.ErrorContains(t, err, "device token")
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewAlarmNotifier(newParams(config.NotificationConfig{Provider: "sms"}))
		assert.ErrorContains(t, err, "sms")
	})
}
