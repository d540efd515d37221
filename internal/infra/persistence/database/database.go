// Package database contains the concrete implementation of the reminder store using GORM.
// SQLite is the embedded default; PostgreSQL can be selected through configuration.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"
	"time"

	"trainbook/config"
	"trainbook/internal/domain/constants"
	"trainbook/internal/domain/lifecycle"
	"trainbook/internal/errors"

	"github.com/glebarez/sqlite"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured store, and on start pings it and applies pending migrations.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config.Database

	db, err := Open(cfg, params.Logger, params.Config.Env.Debug)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrapf(err, "failed to ping %s", cfg.Driver)
			}

			if err := Migrate(ctx, sqlDB, cfg.Driver); err != nil {
				return err
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, cfg.Driver, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects to the store selected by cfg.Driver without touching the schema.
func Open(cfg config.DatabaseConfig, logger *slog.Logger, debug bool) (*gorm.DB, error) {
	gormLogger := newGormSlogLogger(logger, debug)

	switch cfg.Driver {
	case constants.DatabaseDriverSQLite, "":
		db, err := gorm.Open(sqlite.Open(sqliteDSN(cfg.SQLite)), &gorm.Config{
			SkipDefaultTransaction: true,
			TranslateError:         true,
			Logger:                 gormLogger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open SQLite database")
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
		}
		// One connection serialises every statement, which is all the isolation the store needs.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)

		return db, nil

	case constants.DatabaseDriverPostgres:
		if cfg.Postgres == nil {
			return nil, errors.New("postgres connection settings are required for the postgres driver")
		}

		db, err := pgLib.New(cfg.Postgres)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create PostgreSQL client")
		}
		db.TranslateError = true

		return db.Session(&gorm.Session{
			// Disable GORM's per-statement implicit transaction.
			// The alarm sequence opens its own transaction.
			SkipDefaultTransaction: true,
			Logger:                 gormLogger,
		}), nil

	default:
		return nil, errors.Errorf("unknown database driver: %s", cfg.Driver)
	}
}

// sqliteDSN appends the connection pragmas to the database path.
func sqliteDSN(cfg config.SQLiteConfig) string {
	pragmas := url.Values{}
	pragmas.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	pragmas.Add("_pragma", "journal_mode(WAL)")
	pragmas.Add("_pragma", "foreign_keys(1)")

	return cfg.Path + "?" + pragmas.Encode()
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, driver string, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.String("driver", driver),
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Database pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Database pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
