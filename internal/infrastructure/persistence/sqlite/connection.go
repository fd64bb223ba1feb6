// Package sqlite implements the blob store on an embedded SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver" // database/sql driver
	_ "github.com/ncruces/go-sqlite3/embed"  // bundled SQLite build

	"github.com/bnema/pinboard/internal/logging"
)

const dbDirPerm = 0o750

// connectionPragmas run on every new connection through the DSN.
var connectionPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(wal)",
	"synchronous(normal)",
	"foreign_keys(on)",
}

// dsn builds a file: URI carrying the connection pragmas.
func dsn(path string) string {
	q := url.Values{"_pragma": connectionPragmas}
	u := url.URL{Scheme: "file", OmitHost: true, Path: path, RawQuery: q.Encode()}
	return u.String()
}

// NewConnection opens the database at dbPath, creating its directory, and
// migrates it to the latest schema.
func NewConnection(ctx context.Context, dbPath string) (*sql.DB, error) {
	if dbPath == "" {
		return nil, errors.New("database path cannot be empty")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), dbDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One connection: the blob store is read-modify-write and SQLite has a
	// single writer anyway.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to connect to database: %w", err), db.Close())
	}
	if err := RunMigrations(ctx, db); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to run migrations: %w", err), db.Close())
	}

	logging.FromContext(ctx).Info().Str("path", dbPath).Msg("database ready")
	return db, nil
}

// Close closes db; a nil db is a no-op.
func Close(db *sql.DB) error {
	if db == nil {
		return nil
	}
	return db.Close()
}
