package database

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratemysql "github.com/golang-migrate/migrate/v4/database/mysql"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/at-ishikawa/crossword/internal/config"
	"github.com/at-ishikawa/crossword/schemas"
)

// Migrate applies every pending migration for the configured driver.
// It opens and closes its own connection.
func Migrate(cfg config.DatabaseConfig) error {
	db, err := Open(cfg)
	if err != nil {
		return fmt.Errorf("Open() > %w", err)
	}

	source, err := iofs.New(schemas.Migrations, "migrations/"+db.DriverName())
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("iofs.New() > %w", err)
	}

	var m *migrate.Migrate
	switch db.DriverName() {
	case "sqlite":
		driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("sqlite.WithInstance() > %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", source, "sqlite", driver)
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("migrate.NewWithInstance() > %w", err)
		}
	default:
		driver, err := migratemysql.WithInstance(db.DB, &migratemysql.Config{})
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("mysql.WithInstance() > %w", err)
		}
		m, err = migrate.NewWithInstance("iofs", source, "mysql", driver)
		if err != nil {
			_ = db.Close()
			return fmt.Errorf("migrate.NewWithInstance() > %w", err)
		}
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migration", "source_error", srcErr, "database_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			slog.Info("database schema is up to date")
			return nil
		}
		return fmt.Errorf("m.Up() > %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil {
		return fmt.Errorf("m.Version() > %w", err)
	}
	slog.Info("migrated database schema", "driver", db.DriverName(), "version", version, "dirty", dirty)
	return nil
}
