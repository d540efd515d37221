package database

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"trainbook/config"
	"trainbook/internal/domain/repository"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := config.DatabaseConfig{
		Driver: "sqlite",
		SQLite: config.SQLiteConfig{Path: filepath.Join(t.TempDir(), "reminders.db")},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := Open(cfg, logger, false)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), sqlDB, cfg.Driver))

	return db
}

func date(t *testing.T, value string) civil.Date {
	t.Helper()

	d, err := civil.ParseDate(value)
	require.NoError(t, err)

	return d
}

func TestMigrate_IsRepeatable(t *testing.T) {
	db := newTestDB(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), sqlDB, "sqlite"))

	next, err := NewAlarmSequenceRepository(db).Next(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1000), next)
}

func TestMigrate_UnknownDriver(t *testing.T) {
	err := Migrate(context.Background(), nil, "oracle")
	assert.ErrorContains(t, err, "oracle")
}

func TestReminderRepository_CreateAndFind(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, date(t, "2026-06-01"), "Mumbai-Delhi", 1000)
	require.NoError(t, err)
	assert.Positive(t, id)

	reminder, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, date(t, "2026-06-01"), reminder.EventDate)
	assert.Equal(t, date(t, "2026-04-02"), reminder.ReminderDate)
	assert.Equal(t, civil.Time{Hour: 7, Minute: 45}, reminder.ReminderTime)
	assert.Equal(t, "Mumbai-Delhi", reminder.Note)
	assert.Equal(t, int64(1000), reminder.AlarmID)
	assert.False(t, reminder.IsTriggered)
	assert.False(t, reminder.CreatedAt.IsZero())

	byAlarm, err := repo.FindByAlarmID(ctx, 1000)
	require.NoError(t, err)
	assert.Equal(t, id, byAlarm.ID)
}

func TestReminderRepository_CreateDuplicateAlarmID(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, date(t, "2026-06-01"), "first", 1000)
	require.NoError(t, err)

	_, err = repo.Create(ctx, date(t, "2026-07-01"), "second", 1000)
	assert.ErrorIs(t, err, repository.ErrDuplicateAlarmID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "first", all[0].Note)
}

func TestReminderRepository_FindMissing(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, repository.ErrReminderNotFound)

	_, err = repo.FindByAlarmID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrReminderNotFound)
}

func TestReminderRepository_ListOrdering(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, date(t, "2026-08-01"), "late", 1000)
	require.NoError(t, err)
	_, err = repo.Create(ctx, date(t, "2026-06-01"), "early", 1001)
	require.NoError(t, err)
	_, err = repo.Create(ctx, date(t, "2026-06-01"), "early twin", 1002)
	require.NoError(t, err)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)

	notes := make([]string, 0, len(all))
	for _, r := range all {
		notes = append(notes, r.Note)
	}
	assert.Equal(t, []string{"early", "early twin", "late"}, notes)
}

func TestReminderRepository_ListPendingExcludesTriggered(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, date(t, "2026-09-01"), "c", 1000)
	require.NoError(t, err)
	_, err = repo.Create(ctx, date(t, "2026-07-01"), "b", 1001)
	require.NoError(t, err)
	_, err = repo.Create(ctx, date(t, "2026-06-01"), "a", 1002)
	require.NoError(t, err)

	marked, err := repo.MarkTriggered(ctx, 1001)
	require.NoError(t, err)
	assert.True(t, marked)

	pending, err := repo.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, int64(1002), pending[0].AlarmID)
	assert.Equal(t, int64(1000), pending[1].AlarmID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestReminderRepository_MarkTriggered(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.Create(ctx, date(t, "2026-06-01"), "trip", 1000)
	require.NoError(t, err)

	for range 2 {
		marked, err := repo.MarkTriggered(ctx, 1000)
		require.NoError(t, err)
		assert.True(t, marked)
	}

	reminder, err := repo.FindByAlarmID(ctx, 1000)
	require.NoError(t, err)
	assert.True(t, reminder.IsTriggered)

	marked, err := repo.MarkTriggered(ctx, 9999)
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestReminderRepository_Delete(t *testing.T) {
	repo := NewReminderRepository(newTestDB(t))
	ctx := context.Background()

	id, err := repo.Create(ctx, date(t, "2026-06-01"), "trip", 1000)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrReminderNotFound)
}

func TestAlarmSequenceRepository_Next(t *testing.T) {
	db := newTestDB(t)
	seq := NewAlarmSequenceRepository(db)
	ctx := context.Background()

	first, err := seq.Next(ctx)
	require.NoError(t, err)
	second, err := seq.Next(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1000), first)
	assert.Equal(t, int64(1001), second)

	// A deleted reminder does not give its alarm id back.
	repo := NewReminderRepository(db)
	id, err := repo.Create(ctx, date(t, "2026-06-01"), "trip", second)
	require.NoError(t, err)
	_, err = repo.Delete(ctx, id)
	require.NoError(t, err)

	third, err := seq.Next(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1002), third)
}

func TestAlarmSequenceRepository_NextConcurrent(t *testing.T) {
	seq := NewAlarmSequenceRepository(newTestDB(t))
	ctx := context.Background()

	const workers = 8

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		seen = make(map[int64]struct{}, workers)
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			id, err := seq.Next(ctx)
			assert.NoError(t, err)

			mu.Lock()
			seen[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers)
}

func TestIsUniqueConstraintViolation(t *testing.T) {
	assert.False(t, isUniqueConstraintViolation(nil))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.New("constraint failed: UNIQUE constraint failed: reminders.alarm_id (2067)")))
	assert.True(t, isUniqueConstraintViolation(errors.New(`ERROR: duplicate key value violates unique constraint "reminders_alarm_id_key" (SQLSTATE 23505)`)))
	assert.False(t, isUniqueConstraintViolation(errors.New("database is locked")))
}

func TestSQLiteDSN(t *testing.T) {
	dsn := sqliteDSN(config.SQLiteConfig{Path: "train_reminders.db", BusyTimeout: 5 * time.Second})

	assert.True(t, strings.HasPrefix(dsn, "train_reminders.db?"))
	assert.Contains(t, dsn, url.QueryEscape("busy_timeout(5000)"))
	assert.Contains(t, dsn, url.QueryEscape("journal_mode(WAL)"))
}
