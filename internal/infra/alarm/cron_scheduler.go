package alarm

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/lifecycle"
	"trainbook/internal/domain/service"

	"github.com/robfig/cron/v3"
)

// onceSchedule fires a single time at the given instant. An instant already in
// the past fires on the next pass of the cron loop.
type onceSchedule struct {
	at   time.Time
	used atomic.Bool
}

func (s *onceSchedule) Next(now time.Time) time.Time {
	if s.used.Swap(true) {
		return time.Time{}
	}
	if s.at.Before(now) {
		return now
	}

	return s.at
}

type cronEntry struct {
	id     cron.EntryID
	fireAt time.Time
}

// CronScheduler keeps alarms as one-shot cron entries inside this process and
// hands fired alarm ids to the installed TriggerSink.
type CronScheduler struct {
	cron   *cron.Cron
	logger *slog.Logger

	// runCtx scopes fired triggers; Stop cancels it.
	runCtx    context.Context
	cancelRun context.CancelFunc

	mu      sync.Mutex
	entries map[int64]*cronEntry
	sink    service.TriggerSink
}

// NewCronScheduler creates a stopped scheduler; call Start to run it.
func NewCronScheduler(logger *slog.Logger) *CronScheduler {
	cronLogger := &cronSlogLogger{logger: logger}
	runCtx, cancelRun := context.WithCancel(context.Background())

	return &CronScheduler{
		cron: cron.New(
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger)),
		),
		logger:    logger,
		runCtx:    runCtx,
		cancelRun: cancelRun,
		entries:   make(map[int64]*cronEntry),
	}
}

// SetTriggerSink installs the callback for fired alarms.
func (s *CronScheduler) SetTriggerSink(sink service.TriggerSink) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sink = sink
}

// Schedule registers alarmID at fireAt, replacing any entry with the same id.
func (s *CronScheduler) Schedule(ctx context.Context, alarmID int64, fireAt time.Time, payload entity.AlarmPayload) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prev, ok := s.entries[alarmID]; ok {
		s.cron.Remove(prev.id)
	}

	entry := &cronEntry{fireAt: fireAt}
	entry.id = s.cron.Schedule(&onceSchedule{at: fireAt}, cron.FuncJob(func() {
		s.fire(alarmID, entry)
	}))
	s.entries[alarmID] = entry

	s.logger.DebugContext(ctx, "Alarm scheduled",
		slog.Int64("alarm_id", alarmID),
		slog.Time("fire_at", fireAt),
		slog.String("event_date", payload.EventDate.String()),
	)

	return nil
}

// Cancel drops the entry for alarmID if there is one.
func (s *CronScheduler) Cancel(ctx context.Context, alarmID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[alarmID]
	if !ok {
		return nil
	}

	s.cron.Remove(entry.id)
	delete(s.entries, alarmID)

	s.logger.DebugContext(ctx, "Alarm cancelled", slog.Int64("alarm_id", alarmID))

	return nil
}

// Pending returns the number of alarms waiting to fire.
func (s *CronScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

// Start runs the cron loop in its own goroutine.
func (s *CronScheduler) Start() {
	s.cron.Start()
}

// Stop halts the cron loop and waits for running triggers until ctx ends.
// Triggers still running then are cancelled.
func (s *CronScheduler) Stop(ctx context.Context) error {
	defer s.cancelRun()

	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *CronScheduler) fire(alarmID int64, entry *cronEntry) {
	s.mu.Lock()
	// A replaced or cancelled entry may already be queued by the cron loop.
	if s.entries[alarmID] != entry {
		s.mu.Unlock()

		return
	}
	delete(s.entries, alarmID)
	s.cron.Remove(entry.id)
	sink := s.sink
	s.mu.Unlock()

	if sink == nil {
		s.logger.Warn("Alarm fired without a trigger sink", slog.Int64("alarm_id", alarmID))

		return
	}

	ctx, cancel := context.WithTimeout(s.runCtx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Alarm fired",
		slog.Int64("alarm_id", alarmID),
		slog.Time("scheduled_for", entry.fireAt),
	)
	sink(ctx, alarmID)
}

// cronSlogLogger adapts slog to cron.Logger.
type cronSlogLogger struct {
	logger *slog.Logger
}

func (l *cronSlogLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *cronSlogLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append(keysAndValues, slog.Any("error", err))...)
}
