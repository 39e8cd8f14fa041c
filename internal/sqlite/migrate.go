package sqlite

import (
	"context"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-migrate/migrate/v4"
	sqlite3migrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/myrjola/fitfokus/internal/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

const migrationsTable = "schema_migrations"

// migrateUp applies all pending migrations embedded in migrations/.
//
// Do not close the migrate instance. Closing the sqlite3 driver closes the read-write pool.
func (db *Database) migrateUp(ctx context.Context) error {
	start := time.Now()

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, "open embedded migrations")
	}
	driver, err := sqlite3migrate.WithInstance(db.ReadWrite, &sqlite3migrate.Config{
		MigrationsTable: migrationsTable,
		DatabaseName:    "",
		NoTxWrap:        false,
	})
	if err != nil {
		return errors.Wrap(err, "create migration driver")
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return errors.Wrap(err, "create migrator")
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errors.Wrap(err, "apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil {
		return errors.Wrap(err, "read schema version")
	}
	if dirty {
		return errors.New("schema is dirty", slog.Uint64("version", uint64(version)))
	}
	db.logger.LogAttrs(ctx, slog.LevelInfo, "migrated database",
		slog.Uint64("version", uint64(version)), slog.Duration("duration", time.Since(start)))
	return nil
}

// SchemaVersion reports the currently applied migration version.
func (db *Database) SchemaVersion(ctx context.Context) (int, error) {
	var version int
	if err := db.ReadOnly.QueryRowContext(ctx,
		fmt.Sprintf("SELECT version FROM %s LIMIT 1", migrationsTable)).Scan(&version); err != nil {
		return 0, errors.Wrap(err, "query schema version")
	}
	return version, nil
}
