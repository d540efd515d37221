// Package cache keeps the reminder listing in Redis.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"trainbook/config"
	"trainbook/internal/domain/entity"
	"trainbook/internal/domain/lifecycle"
	"trainbook/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyReminderList = "trainbook:reminders:list"
	defaultTTL      = 5 * time.Minute
)

// reminderListCache implements service.ReminderListCache on a Redis string key.
type reminderListCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewReminderListCache wraps rdb. A non-positive ttl falls back to five minutes.
func NewReminderListCache(rdb *redis.Client, ttl time.Duration) service.ReminderListCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &reminderListCache{rdb: rdb, ttl: ttl}
}

func (c *reminderListCache) Get(ctx context.Context) ([]*entity.Reminder, bool, error) {
	b, err := c.rdb.Get(ctx, keyReminderList).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get reminder list")
	}

	var list []*entity.Reminder
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, false, errors.Wrap(err, "decode cached reminder list")
	}

	return list, true, nil
}

func (c *reminderListCache) Set(ctx context.Context, reminders []*entity.Reminder) error {
	if reminders == nil {
		reminders = []*entity.Reminder{}
	}

	b, err := json.Marshal(reminders)
	if err != nil {
		return errors.Wrap(err, "encode reminder list")
	}

	return errors.Wrap(c.rdb.Set(ctx, keyReminderList, b, c.ttl).Err(), "redis set reminder list")
}

func (c *reminderListCache) Invalidate(ctx context.Context) error {
	return errors.Wrap(c.rdb.Del(ctx, keyReminderList).Err(), "redis del reminder list")
}

// Params holds dependencies for the cache provider, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// New connects to Redis when it is configured. Without a redis section it returns
// a nil cache and listings always read the store.
func New(params Params) (service.ReminderListCache, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.Addr == "" {
		params.Logger.Info("Redis not configured, reminder list cache disabled")

		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	params.Lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// A cold cache is not fatal; the listing falls back to the store.
			if err := rdb.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.String("addr", cfg.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})

	params.Logger.Info("Reminder list cache enabled",
		slog.String("addr", cfg.Addr),
		slog.Duration("ttl", cfg.TTL),
	)

	return NewReminderListCache(rdb, cfg.TTL), nil
}
