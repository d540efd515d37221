package notification

import (
	"context"
	"log/slog"

	"trainbook/internal/domain/service"

	"cloud.google.com/go/civil"
)

// logNotifier prints the alarm banner. It stands in for the device notification
// shade when the process runs on a desktop.
type logNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates an AlarmNotifier writing to logger.
func NewLogNotifier(logger *slog.Logger) service.AlarmNotifier {
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Notify(ctx context.Context, alarmID int64, eventDate civil.Date, note string) error {
	n.logger.LogAttrs(ctx, slog.LevelWarn, alarmTitle,
		slog.Int64("alarm_id", alarmID),
		slog.String("message", alarmBody(eventDate, note)),
	)

	return nil
}
