package impl

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"trainbook/config"
	domainerrors "trainbook/internal/domain/errors"
	"trainbook/internal/infra/alarm"
	"trainbook/internal/infra/persistence/database"
	mockSvc "trainbook/internal/mocks/service"
	"trainbook/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycleFixtures struct {
	reminders usecase.ReminderUsecase
	alarms    usecase.AlarmUsecase
	notifier  *mockSvc.MockAlarmNotifier
}

// newLifecycle wires both use cases to a real SQLite store and the log scheduler.
func newLifecycle(t *testing.T) lifecycleFixtures {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "reminders.db")},
	}
	db, err := database.Open(cfg, discardLogger(), false)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, database.Migrate(context.Background(), sqlDB, cfg.Driver))

	reminderRepo := database.NewReminderRepository(db)
	scheduler := alarm.NewLogScheduler(discardLogger())
	notifier := mockSvc.NewMockAlarmNotifier(t)

	return lifecycleFixtures{
		reminders: NewReminderService(ReminderServiceParams{
			ReminderRepo: reminderRepo,
			SequenceRepo: database.NewAlarmSequenceRepository(db),
			Scheduler:    scheduler,
			Clock:        fixedClock,
			Location:     time.UTC,
			Logger:       discardLogger(),
		}),
		alarms: NewAlarmService(AlarmServiceParams{
			ReminderRepo: reminderRepo,
			Scheduler:    scheduler,
			Notifier:     notifier,
			Clock:        fixedClock,
			Location:     time.UTC,
			Logger:       discardLogger(),
		}),
		notifier: notifier,
	}
}

func TestLifecycle_CreateThenTrigger(t *testing.T) {
	lc := newLifecycle(t)
	ctx := context.Background()

	created, err := lc.reminders.CreateReminder(ctx, &usecase.CreateReminderInput{
		EventDate: mustDate(t, "2026-06-01"),
		Note:      "Mumbai-Delhi",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), created.AlarmID)

	listed, err := lc.reminders.ListReminders(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "2026-04-02", listed[0].ReminderDate.String())
	assert.Equal(t, "07:45:00", listed[0].ReminderTime.String())
	assert.False(t, listed[0].IsTriggered)

	lc.notifier.EXPECT().Notify(ctx, created.AlarmID, mustDate(t, "2026-06-01"), "Mumbai-Delhi").Return(nil).Once()

	outcome, err := lc.alarms.HandleTrigger(ctx, created.AlarmID)
	require.NoError(t, err)
	assert.True(t, outcome.Notified)
	assert.True(t, outcome.MarkedTriggered)

	listed, err = lc.reminders.ListReminders(ctx)
	require.NoError(t, err)
	assert.True(t, listed[0].IsTriggered)

	report, err := lc.alarms.RestorePending(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Succeeded)
}

func TestLifecycle_TriggerAfterDeleteIsSwallowed(t *testing.T) {
	lc := newLifecycle(t)
	ctx := context.Background()

	created, err := lc.reminders.CreateReminder(ctx, &usecase.CreateReminderInput{
		EventDate: mustDate(t, "2026-05-01"),
		Note:      "Pune-Goa",
	})
	require.NoError(t, err)

	require.NoError(t, lc.reminders.DeleteReminder(ctx, created.ID))
	err = lc.reminders.DeleteReminder(ctx, created.ID)
	assert.True(t, errors.Is(err, domainerrors.ErrReminderNotFound))

	outcome, err := lc.alarms.HandleTrigger(ctx, created.AlarmID)
	require.NoError(t, err)
	assert.False(t, outcome.Found)
}

func TestLifecycle_RestoreReissuesPending(t *testing.T) {
	lc := newLifecycle(t)
	ctx := context.Background()

	for _, d := range []string{"2026-07-01", "2026-04-01", "2026-05-01"} {
		_, err := lc.reminders.CreateReminder(ctx, &usecase.CreateReminderInput{EventDate: mustDate(t, d), Note: "trip " + d})
		require.NoError(t, err)
	}

	report, err := lc.alarms.RestorePending(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, report.Succeeded)
	assert.Zero(t, report.Failed)
}
