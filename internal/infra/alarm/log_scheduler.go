// Package alarm contains the AlarmScheduler adapters selected by alarm.provider.
package alarm

import (
	"context"
	"log/slog"
	"time"

	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/service"
)

// logScheduler accepts every request and only logs it. It is the desktop stand-in
// for a platform alarm service; nothing ever fires.
type logScheduler struct {
	logger *slog.Logger
}

// NewLogScheduler creates an AlarmScheduler that logs instead of scheduling.
func NewLogScheduler(logger *slog.Logger) service.AlarmScheduler {
	return &logScheduler{logger: logger}
}

func (s *logScheduler) Schedule(ctx context.Context, alarmID int64, fireAt time.Time, payload entity.AlarmPayload) error {
	s.logger.InfoContext(ctx, "Would schedule alarm",
		slog.Int64("alarm_id", alarmID),
		slog.Time("fire_at", fireAt),
		slog.String("event_date", payload.EventDate.String()),
	)

	return nil
}

func (s *logScheduler) Cancel(ctx context.Context, alarmID int64) error {
	s.logger.InfoContext(ctx, "Would cancel alarm", slog.Int64("alarm_id", alarmID))

	return nil
}
