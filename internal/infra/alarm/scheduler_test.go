package alarm

import (
	"context"
	"testing"
	"time"

	"trainbook/config"
	deliverycontext "trainbook/internal/delivery/context"
	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/service"
	mockSvc "trainbook/internal/mocks/service"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestLogScheduler_AlwaysAccepts(t *testing.T) {
	scheduler := NewLogScheduler(discardLogger())

	assert.NoError(t, scheduler.Schedule(context.Background(), 1000, time.Now(), entity.AlarmPayload{}))
	assert.NoError(t, scheduler.Cancel(context.Background(), 1000))
}

func TestRemoteScheduler_PublishesCommands(t *testing.T) {
	publisher := mockSvc.NewMockAlarmCommandPublisher(t)
	scheduler := NewRemoteScheduler(publisher, discardLogger())

	ist := time.FixedZone("IST", 5*60*60+30*60)
	fireAt := time.Date(2026, time.April, 2, 7, 45, 0, 0, ist)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().PublishAlarmCommand(ctx, &service.AlarmCommand{
		RequestID: "req-42",
		Action:    service.AlarmActionSchedule,
		AlarmID:   1000,
		FireAt:    "2026-04-02T07:45:00+05:30",
		EventDate: "2026-06-01",
		Note:      "Mumbai-Delhi",
	}).Return(nil)
	publisher.EXPECT().PublishAlarmCommand(ctx, &service.AlarmCommand{
		RequestID: "req-42",
		Action:    service.AlarmActionCancel,
		AlarmID:   1000,
	}).Return(nil)

	payload := entity.AlarmPayload{EventDate: civil.Date{Year: 2026, Month: time.June, Day: 1}, Note: "Mumbai-Delhi"}
	require.NoError(t, scheduler.Schedule(ctx, 1000, fireAt, payload))
	require.NoError(t, scheduler.Cancel(ctx, 1000))
}

func TestRemoteScheduler_PublishFailureIsRefusal(t *testing.T) {
	publisher := mockSvc.NewMockAlarmCommandPublisher(t)
	scheduler := NewRemoteScheduler(publisher, discardLogger())

	publisher.EXPECT().PublishAlarmCommand(mock.Anything, mock.Anything).Return(errors.New("topic not found"))

	err := scheduler.Schedule(context.Background(), 1000, time.Now(), entity.AlarmPayload{})
	assert.ErrorContains(t, err, "topic not found")
}

func TestNewAlarmScheduler(t *testing.T) {
	newParams := func(t *testing.T, provider string) SchedulerParams {
		return SchedulerParams{
			Lc:        fxtest.NewLifecycle(t),
			Config:    &config.Config{Alarm: config.AlarmConfig{Provider: provider}},
			Logger:    discardLogger(),
			Publisher: mockSvc.NewMockAlarmCommandPublisher(t),
		}
	}

	t.Run("log", func(t *testing.T) {
		result, err := NewAlarmScheduler(newParams(t, "log"))
		require.NoError(t, err)
		assert.IsType(t, &logScheduler{}, result.Scheduler)
		assert.Nil(t, result.Source)
	})

	t.Run("cron is the default and fires in-process", func(t *testing.T) {
		result, err := NewAlarmScheduler(newParams(t, ""))
		require.NoError(t, err)
		assert.IsType(t, &CronScheduler{}, result.Scheduler)
		assert.NotNil(t, result.Source)
	})

	t.Run("webhook forwards", func(t *testing.T) {
		result, err := NewAlarmScheduler(newParams(t, "webhook"))
		require.NoError(t, err)
		assert.IsType(t, &remoteScheduler{}, result.Scheduler)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := NewAlarmScheduler(newParams(t, "carrier-pigeon"))
		assert.ErrorContains(t, err, "carrier-pigeon")
	})
}

func TestBindTriggerSink(t *testing.T) {
	scheduler := NewCronScheduler(discardLogger())

	BindTriggerSink(nil, func(context.Context, int64) {})
	BindTriggerSink(scheduler, func(context.Context, int64) {})

	assert.NotNil(t, scheduler.sink)
}
