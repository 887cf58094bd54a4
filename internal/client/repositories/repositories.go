// Package repositories wires the local cache database: it opens the SQLite
// file, applies the embedded migrations and hands out the repository set.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/azhukov/campus-navigator/internal/client/migrations"
	"github.com/azhukov/campus-navigator/internal/client/repositories/occupancy"
)

// Repositories bundles the cache-backed repositories plus the shared handle,
// so the caller can close it on shutdown.
type Repositories struct {
	Occupancy occupancy.Repository
	DB        *sql.DB
}

// RunMigrations brings the cache schema up to date.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if needed) the cache database at dsn, runs
// migrations and returns the repository set.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Occupancy: occupancy.NewSQLiteRepository(db),
		DB:        db,
	}, nil
}

// Close releases the cache database handle.
func (r *Repositories) Close() error {
	return r.DB.Close()
}
