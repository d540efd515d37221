package database

import (
	"context"
	"database/sql"
	"embed"
	"path"

	"trainbook/internal/domain/constants"
	"trainbook/internal/errors"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*/*.sql
var migrationsFS embed.FS

// Migrate applies the embedded migrations of driver that have not run yet.
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	dialect, dir, err := migrationTarget(driver)
	if err != nil {
		return err
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "goose set dialect")
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Wrap(err, "goose up")
	}

	return nil
}

func migrationTarget(driver string) (dialect, dir string, err error) {
	switch driver {
	case constants.DatabaseDriverSQLite, "":
		return "sqlite3", path.Join("migrations", "sqlite"), nil
	case constants.DatabaseDriverPostgres:
		return "postgres", path.Join("migrations", "postgres"), nil
	default:
		return "", "", errors.Errorf("no migrations for database driver: %s", driver)
	}
}
