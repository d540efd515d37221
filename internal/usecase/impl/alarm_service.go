package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/repository"
	"trainbook/internal/domain/service"
	"trainbook/internal/errors"
	"trainbook/internal/usecase"

	"go.uber.org/fx"
)

// alarmService implements the AlarmUsecase interface.
type alarmService struct {
	reminderRepo repository.ReminderRepository
	scheduler    service.AlarmScheduler
	notifier     service.AlarmNotifier
	cache        service.ReminderListCache
	calendar     calendar
	logger       *slog.Logger
}

// AlarmServiceParams holds dependencies for AlarmService, injected by Fx.
type AlarmServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	Scheduler    service.AlarmScheduler
	Notifier     service.AlarmNotifier
	Cache        service.ReminderListCache `optional:"true"`
	Clock        usecase.Clock             `optional:"true"`
	Location     *time.Location            `optional:"true"`
	Logger       *slog.Logger
}

// NewAlarmService is the constructor for alarmService.
func NewAlarmService(params AlarmServiceParams) usecase.AlarmUsecase {
	return &alarmService{
		reminderRepo: params.ReminderRepo,
		scheduler:    params.Scheduler,
		notifier:     params.Notifier,
		cache:        params.Cache,
		calendar:     newCalendar(params.Clock, params.Location),
		logger:       params.Logger,
	}
}

func (srv *alarmService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleTrigger is called when the platform fires an alarm. The reminder is marked
// triggered even when the notification fails, otherwise every later restore would
// re-issue the alarm. The triggered flag does not suppress a repeated delivery.
func (srv *alarmService) HandleTrigger(ctx context.Context, alarmID int64) (*entity.TriggerOutcome, error) {
	outcome := &entity.TriggerOutcome{AlarmID: alarmID}

	reminder, err := srv.reminderRepo.FindByAlarmID(ctx, alarmID)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			srv.log(ctx).Info("Ignoring trigger for unknown alarm", slog.Int64("alarm_id", alarmID))

			return outcome, nil
		}

		return nil, persistenceFailed(err, "find reminder by alarm id")
	}

	outcome.Found = true
	outcome.ReminderID = reminder.ID
	outcome.EventDate = reminder.EventDate

	if reminder.IsTriggered {
		srv.log(ctx).Debug("Alarm fired again for a triggered reminder", slog.Int64("alarm_id", alarmID))
	}

	if err := srv.notifier.Notify(ctx, alarmID, reminder.EventDate, reminder.Note); err != nil {
		srv.log(ctx).Error("Failed to notify reminder",
			slog.Int64("alarm_id", alarmID),
			slog.Int64("reminder_id", reminder.ID),
			slog.Any("error", err),
		)
		outcome.NotifyError = err.Error()
	} else {
		outcome.Notified = true
	}

	marked, err := srv.reminderRepo.MarkTriggered(ctx, alarmID)
	if err != nil {
		return nil, persistenceFailed(err, "mark reminder triggered")
	}
	outcome.MarkedTriggered = marked

	if srv.cache != nil {
		if err := srv.cache.Invalidate(ctx); err != nil {
			srv.log(ctx).Warn("Reminder cache invalidation failed", slog.Any("error", err))
		}
	}

	srv.log(ctx).Info("Alarm handled",
		slog.Int64("alarm_id", alarmID),
		slog.Int64("reminder_id", reminder.ID),
		slog.Bool("notified", outcome.Notified),
		slog.Bool("marked_triggered", marked),
	)

	return outcome, nil
}

// RestorePending re-issues every pending alarm with its original alarm id.
// Past-due reminders are handed to the scheduler as they are.
func (srv *alarmService) RestorePending(ctx context.Context) (*entity.RestoreReport, error) {
	pending, err := srv.reminderRepo.ListPending(ctx)
	if err != nil {
		return nil, persistenceFailed(err, "list pending reminders")
	}

	report := &entity.RestoreReport{}
	for _, reminder := range pending {
		fireAt := srv.calendar.fireInstant(reminder.ReminderDate, reminder.ReminderTime)
		payload := entity.AlarmPayload{EventDate: reminder.EventDate, Note: reminder.Note}

		if err := srv.scheduler.Schedule(ctx, reminder.AlarmID, fireAt, payload); err != nil {
			srv.log(ctx).Warn("Failed to restore alarm",
				slog.Int64("alarm_id", reminder.AlarmID),
				slog.Time("fire_at", fireAt),
				slog.Any("error", err),
			)
			report.Failed++
			report.Failures = append(report.Failures, entity.RestoreFailure{
				AlarmID: reminder.AlarmID,
				Reason:  err.Error(),
			})

			continue
		}

		report.Succeeded++
	}

	srv.log(ctx).Info("Restored pending alarms",
		slog.Int("pending", len(pending)),
		slog.Int("succeeded", report.Succeeded),
		slog.Int("failed", report.Failed),
	)

	return report, nil
}
