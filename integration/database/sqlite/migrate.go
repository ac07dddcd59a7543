package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"

	"github.com/dmitrymomot/portfolio/core/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate applies pending embedded migrations.
func Migrate(ctx context.Context, db *sql.DB, log *slog.Logger) error {
	if log == nil {
		log = logger.Discard()
	}

	fsys, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	provider, err := goose.NewProvider(database.DialectSQLite3, db, fsys)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return errors.Join(ErrMigrationFailed, err)
	}
	for _, r := range results {
		log.InfoContext(ctx, "migration applied",
			logger.Component("sqlite"),
			slog.Int64("version", r.Source.Version),
			logger.Duration(r.Duration))
	}
	return nil
}
