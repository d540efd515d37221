package alarm

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/service"

	"github.com/pkg/errors"
)

// remoteScheduler forwards schedule and cancel requests to the device that owns
// the alarm clock. The device reports fired alarms back over HTTP.
type remoteScheduler struct {
	publisher service.AlarmCommandPublisher
	logger    *slog.Logger
}

// NewRemoteScheduler creates an AlarmScheduler publishing AlarmCommands.
func NewRemoteScheduler(publisher service.AlarmCommandPublisher, logger *slog.Logger) service.AlarmScheduler {
	return &remoteScheduler{
		publisher: publisher,
		logger:    logger,
	}
}

func (s *remoteScheduler) Schedule(ctx context.Context, alarmID int64, fireAt time.Time, payload entity.AlarmPayload) error {
	cmd := &service.AlarmCommand{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Action:    service.AlarmActionSchedule,
		AlarmID:   alarmID,
		FireAt:    fireAt.Format(time.RFC3339),
		EventDate: payload.EventDate.String(),
		Note:      payload.Note,
	}

	if err := s.publisher.PublishAlarmCommand(ctx, cmd); err != nil {
		return errors.Wrapf(err, "publish schedule command for alarm %d", alarmID)
	}

	return nil
}

func (s *remoteScheduler) Cancel(ctx context.Context, alarmID int64) error {
	cmd := &service.AlarmCommand{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Action:    service.AlarmActionCancel,
		AlarmID:   alarmID,
	}

	if err := s.publisher.PublishAlarmCommand(ctx, cmd); err != nil {
		return errors.Wrapf(err, "publish cancel command for alarm %d", alarmID)
	}

	return nil
}
