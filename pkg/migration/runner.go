// Package migration applies the SQL files under db/migrations at startup.
package migration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5://
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog"
)

// RunUp applies all pending up migrations. A dirty database is an error and
// needs manual intervention.
func RunUp(dsn, migrationsPath string, log *zerolog.Logger) error {
	migrator, err := migrate.New("file://"+migrationsPath, ToPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		srcErr, dbErr := migrator.Close()
		if srcErr != nil {
			log.Error().Err(srcErr).Msg("migration source close failed")
		}
		if dbErr != nil {
			log.Error().Err(dbErr).Msg("migration db close failed")
		}
	}()
	migrator.Log = &migrateLogger{log: log}

	current, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("migration: failed to get current version: %w", err)
	}
	if dirty {
		return fmt.Errorf("migration: database is dirty at version %d", current)
	}

	if err := migrator.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Uint("version", current).Msg("Migrations up to date")
			return nil
		}
		return fmt.Errorf("migration: up failed: %w", err)
	}

	next, _, _ := migrator.Version()
	log.Info().Uint("from", current).Uint("to", next).Msg("Migrations applied")
	return nil
}

// ToPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// golang-migrate's pgx/v5 driver registers.
func ToPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}

type migrateLogger struct {
	log *zerolog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.log.Debug().Msgf(strings.TrimSpace(format), args...)
}

func (l *migrateLogger) Verbose() bool {
	return l.log.GetLevel() <= zerolog.DebugLevel
}
