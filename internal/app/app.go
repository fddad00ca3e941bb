// Package app wires the weighttrack store together: it opens the SQLite
// database, runs pending schema migrations and constructs the repositories
// and services the UI layer works with.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/weighttrack/internal/config"
	"github.com/dmitrijs2005/weighttrack/internal/dbx"
	"github.com/dmitrijs2005/weighttrack/internal/logging"
	"github.com/dmitrijs2005/weighttrack/internal/migrations"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/settings"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/users"
	"github.com/dmitrijs2005/weighttrack/internal/repositories/weights"
	"github.com/dmitrijs2005/weighttrack/internal/services"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// Repositories bundles the store-backed repositories sharing one database.
type Repositories struct {
	Users    users.Repository
	Weights  weights.Repository
	Settings settings.Repository
}

// Services bundles the application services built on top of Repositories.
type Services struct {
	Auth   *services.AuthService
	Weight *services.WeightService
}

// RunMigrations brings the database schema up to the current version. It is
// called before any repository is built, so callers never observe a
// partially migrated store.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// OpenDatabase opens (creating if needed) the SQLite database at path with
// foreign keys enforced and a busy timeout, and runs pending migrations.
func OpenDatabase(ctx context.Context, path string) (*sql.DB, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// NewRepositories builds the repository set over an opened database.
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Users:    users.NewSQLiteRepository(db),
		Weights:  weights.NewSQLiteRepository(db),
		Settings: settings.NewSQLiteRepository(db),
	}
}

// NewServices builds the service set over the repositories.
func NewServices(repos *Repositories, log logging.Logger) *Services {
	return &Services{
		Auth:   services.NewAuthService(repos.Users, log),
		Weight: services.NewWeightService(repos.Weights, log),
	}
}

// EnsureInstallationID assigns a random installation identifier on first open
// and returns it. The check and the write run in one transaction so two
// concurrent first opens cannot end up with different ids.
func EnsureInstallationID(ctx context.Context, db *sql.DB) (string, error) {
	var id string
	err := dbx.WithTx(ctx, db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := settings.NewSQLiteRepository(tx)

		existing, err := repo.Get(ctx, settings.KeyInstallationID)
		if err != nil {
			return err
		}
		if existing != "" {
			id = existing
			return nil
		}

		id = uuid.NewString()
		return repo.Set(ctx, settings.KeyInstallationID, id)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// NewLogger builds the process logger at the configured level.
func NewLogger(cfg *config.Config) logging.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return logging.NewSlogLogger(slog.New(h))
}
