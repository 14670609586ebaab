package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/imgurshot/internal/migrations"
	"github.com/dmitrijs2005/imgurshot/internal/repositories/credentials"
	"github.com/dmitrijs2005/imgurshot/internal/repositories/uploads"

	_ "modernc.org/sqlite"
)

// Repositories bundles the local stores backed by the single SQLite database.
type Repositories struct {
	Credentials credentials.Repository
	Uploads     uploads.Repository
	DB          *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens (creating if necessary) the local database at dsn,
// migrates it, and returns the repositories bound to it.
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
		Credentials: credentials.NewSQLiteRepository(db),
		Uploads:     uploads.NewSQLiteRepository(db),
		DB:          db,
	}, nil
}
