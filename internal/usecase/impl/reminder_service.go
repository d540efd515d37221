package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/daterule"
	"trainbook/internal/domain/entity"
	domainerrors "trainbook/internal/domain/errors"
	"trainbook/internal/domain/repository"
	"trainbook/internal/domain/service"
	"trainbook/internal/errors"
	"trainbook/internal/usecase"

	"cloud.google.com/go/civil"
	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const listRemindersKey = "reminders"

// reminderService implements the ReminderUsecase interface.
type reminderService struct {
	reminderRepo repository.ReminderRepository
	sequenceRepo repository.AlarmSequenceRepository
	scheduler    service.AlarmScheduler
	cache        service.ReminderListCache
	calendar     calendar
	logger       *slog.Logger

	listGroup singleflight.Group
	// generation is bumped on every mutation so that a listing read before the
	// mutation is not written to the cache after it.
	generation atomic.Uint64
}

// ReminderServiceParams holds dependencies for ReminderService, injected by Fx.
type ReminderServiceParams struct {
	fx.In

	ReminderRepo repository.ReminderRepository
	SequenceRepo repository.AlarmSequenceRepository
	Scheduler    service.AlarmScheduler
	Cache        service.ReminderListCache `optional:"true"`
	Clock        usecase.Clock             `optional:"true"`
	Location     *time.Location            `optional:"true"`
	Logger       *slog.Logger
}

// NewReminderService is the constructor for reminderService.
func NewReminderService(params ReminderServiceParams) usecase.ReminderUsecase {
	return &reminderService{
		reminderRepo: params.ReminderRepo,
		sequenceRepo: params.SequenceRepo,
		scheduler:    params.Scheduler,
		cache:        params.Cache,
		calendar:     newCalendar(params.Clock, params.Location),
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReminder validates, schedules and persists, in that order. A reminder is
// never stored without its alarm, and an alarm is cancelled again when the row
// cannot be stored.
func (srv *reminderService) CreateReminder(ctx context.Context, input *usecase.CreateReminderInput) (*usecase.ReminderSummary, error) {
	note := strings.TrimSpace(input.Note)
	if note == "" {
		return nil, domainerrors.ErrEmptyNote
	}

	today := srv.calendar.today()
	if err := daterule.ValidateEventDate(input.EventDate, today); err != nil {
		srv.log(ctx).Debug("Rejected event date", slog.String("event_date", input.EventDate.String()), slog.Any("error", err))

		return nil, err
	}

	alarmID, err := srv.sequenceRepo.Next(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to allocate alarm id", slog.Any("error", err))

		return nil, persistenceFailed(err, "allocate alarm id")
	}

	reminderDate := daterule.ReminderDateFor(input.EventDate)
	fireAt := srv.calendar.fireInstant(reminderDate, daterule.DefaultReminderTime)
	payload := entity.AlarmPayload{EventDate: input.EventDate, Note: note}

	if err := srv.scheduler.Schedule(ctx, alarmID, fireAt, payload); err != nil {
		srv.log(ctx).Error("Failed to schedule alarm",
			slog.Int64("alarm_id", alarmID),
			slog.Time("fire_at", fireAt),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(domainerrors.ErrScheduleFailed, err.Error())
	}

	id, err := srv.reminderRepo.Create(ctx, input.EventDate, note, alarmID)
	if err != nil {
		srv.log(ctx).Error("Failed to persist reminder", slog.Int64("alarm_id", alarmID), slog.Any("error", err))
		srv.cancelOrphan(ctx, alarmID)

		if errors.Is(err, repository.ErrDuplicateAlarmID) {
			return nil, errors.Wrap(domainerrors.ErrDuplicateAlarmID, err.Error())
		}

		return nil, persistenceFailed(err, "create reminder")
	}

	srv.invalidateList(ctx)

	srv.log(ctx).Info("Reminder created",
		slog.Int64("reminder_id", id),
		slog.Int64("alarm_id", alarmID),
		slog.String("event_date", input.EventDate.String()),
		slog.Time("fire_at", fireAt),
	)

	reminder := &entity.Reminder{
		ID:           id,
		EventDate:    input.EventDate,
		ReminderDate: reminderDate,
		ReminderTime: daterule.DefaultReminderTime,
		Note:         note,
		AlarmID:      alarmID,
		IsTriggered:  false,
		CreatedAt:    srv.calendar.now(),
	}

	return summarize(reminder, today), nil
}

// cancelOrphan removes an alarm whose reminder could not be stored.
func (srv *reminderService) cancelOrphan(ctx context.Context, alarmID int64) {
	if err := srv.scheduler.Cancel(ctx, alarmID); err != nil {
		srv.log(ctx).Warn("Failed to cancel orphaned alarm", slog.Int64("alarm_id", alarmID), slog.Any("error", err))
	}
}

// DeleteReminder cancels the alarm on a best-effort basis and removes the row.
// A late trigger for the removed reminder is ignored by HandleTrigger.
func (srv *reminderService) DeleteReminder(ctx context.Context, id int64) error {
	reminder, err := srv.reminderRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return domainerrors.ErrReminderNotFound
		}

		return persistenceFailed(err, "find reminder")
	}

	if err := srv.scheduler.Cancel(ctx, reminder.AlarmID); err != nil {
		srv.log(ctx).Warn("Failed to cancel alarm, deleting anyway",
			slog.Int64("reminder_id", id),
			slog.Int64("alarm_id", reminder.AlarmID),
			slog.Any("error", err),
		)
	}

	deleted, err := srv.reminderRepo.Delete(ctx, id)
	if err != nil {
		return persistenceFailed(err, "delete reminder")
	}
	if !deleted {
		return domainerrors.ErrReminderNotFound
	}

	srv.invalidateList(ctx)

	srv.log(ctx).Info("Reminder deleted", slog.Int64("reminder_id", id), slog.Int64("alarm_id", reminder.AlarmID))

	return nil
}

// ListReminders serves the listing from the cache when one is configured.
// Concurrent misses share a single store read.
func (srv *reminderService) ListReminders(ctx context.Context) ([]*usecase.ReminderSummary, error) {
	value, err, _ := srv.listGroup.Do(listRemindersKey, func() (any, error) {
		return srv.loadReminders(ctx)
	})
	if err != nil {
		return nil, err
	}

	reminders, _ := value.([]*entity.Reminder)
	today := srv.calendar.today()

	summaries := make([]*usecase.ReminderSummary, 0, len(reminders))
	for _, reminder := range reminders {
		summaries = append(summaries, summarize(reminder, today))
	}

	return summaries, nil
}

func (srv *reminderService) loadReminders(ctx context.Context) ([]*entity.Reminder, error) {
	if srv.cache != nil {
		cached, ok, err := srv.cache.Get(ctx)
		switch {
		case err != nil:
			srv.log(ctx).Warn("Reminder cache read failed, using store", slog.Any("error", err))
		case ok:
			return cached, nil
		}
	}

	generation := srv.generation.Load()

	reminders, err := srv.reminderRepo.ListAll(ctx)
	if err != nil {
		return nil, persistenceFailed(err, "list reminders")
	}

	if srv.cache != nil && srv.generation.Load() == generation {
		if err := srv.cache.Set(ctx, reminders); err != nil {
			srv.log(ctx).Warn("Reminder cache write failed", slog.Any("error", err))
		}
	}

	return reminders, nil
}

func (srv *reminderService) invalidateList(ctx context.Context) {
	srv.generation.Add(1)

	if srv.cache == nil {
		return
	}

	if err := srv.cache.Invalidate(ctx); err != nil {
		srv.log(ctx).Warn("Reminder cache invalidation failed", slog.Any("error", err))
	}
}

// PreviewReminder evaluates eventDate against today without side effects.
func (srv *reminderService) PreviewReminder(_ context.Context, eventDate civil.Date) (*usecase.ReminderPreview, error) {
	today := srv.calendar.today()
	reminderDate := daterule.ReminderDateFor(eventDate)

	preview := &usecase.ReminderPreview{
		EventDate:           eventDate,
		ReminderDate:        reminderDate,
		ReminderTime:        daterule.FormatTimeOfDay(daterule.DefaultReminderTime),
		EventDateDisplay:    daterule.FormatDisplay(eventDate),
		ReminderDateDisplay: daterule.FormatDisplay(reminderDate),
		DaysUntilEvent:      daterule.DaysUntil(eventDate, today),
		DaysUntilAlarm:      daterule.DaysUntilAlarm(eventDate, today),
		Valid:               true,
	}

	if err := daterule.ValidateEventDate(eventDate, today); err != nil {
		var appErr domainerrors.AppError
		if !errors.As(err, &appErr) {
			return nil, err
		}

		preview.Valid = false
		preview.Reason = appErr.ErrorCode()
		preview.Message = appErr.Message()
	}

	return preview, nil
}

func summarize(reminder *entity.Reminder, today civil.Date) *usecase.ReminderSummary {
	return &usecase.ReminderSummary{
		Reminder:            reminder,
		EventDateDisplay:    daterule.FormatDisplay(reminder.EventDate),
		ReminderDateDisplay: daterule.FormatDisplay(reminder.ReminderDate),
		DaysUntilEvent:      daterule.DaysUntil(reminder.EventDate, today),
		DaysUntilAlarm:      daterule.DaysUntilAlarm(reminder.EventDate, today),
	}
}
