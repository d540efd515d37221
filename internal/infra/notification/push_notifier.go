package notification

import (
	"context"
	"log/slog"

	"trainbook/internal/domain/service"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

// pushNotifier delivers the alarm to the registered devices through a PushSender.
type pushNotifier struct {
	sender service.PushSender
	tokens []string
	logger *slog.Logger
}

// NewPushNotifier creates an AlarmNotifier sending to every token.
func NewPushNotifier(sender service.PushSender, tokens []string, logger *slog.Logger) service.AlarmNotifier {
	return &pushNotifier{
		sender: sender,
		tokens: tokens,
		logger: logger,
	}
}

// Notify fails when no device received the alarm.
func (n *pushNotifier) Notify(ctx context.Context, alarmID int64, eventDate civil.Date, note string) error {
	if len(n.tokens) == 0 {
		return errors.New("no device tokens configured")
	}

	result, err := n.sender.SendMulticast(ctx, n.tokens, service.PushMessage{
		Title: alarmTitle,
		Body:  alarmBody(eventDate, note),
		Data:  alarmData(alarmID, eventDate),
	})
	if err != nil {
		return errors.Wrap(err, "send alarm push")
	}

	if len(result.InvalidTokens) > 0 {
		n.logger.Warn("Push rejected device tokens",
			slog.Int64("alarm_id", alarmID),
			slog.Any("invalid_tokens", result.InvalidTokens),
		)
	}

	n.logger.Info("Alarm push sent",
		slog.Int64("alarm_id", alarmID),
		slog.Int("success_count", result.SuccessCount),
		slog.Int("failure_count", result.FailureCount),
	)

	if result.SuccessCount == 0 {
		return errors.Errorf("alarm push reached no device (%d failed, %d invalid tokens)",
			result.FailureCount, len(result.InvalidTokens))
	}

	return nil
}
