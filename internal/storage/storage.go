package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonstaff/OneRepMax/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	"go.uber.org/zap"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalidLift = errors.New("invalid lift")
)

type Storage struct {
	DB     *sql.DB
	driver string
}

// Open connects to the database at url and makes sure the schema exists.
// Remote libSQL/Turso URLs go through the libsql driver, everything else is
// treated as a local SQLite file.
func Open(ctx context.Context, url string) (*Storage, error) {
	driver := driverFor(url)
	if driver == "sqlite3" {
		if path := localPath(url); path != "" {
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open db %s: %w", redact(url), err)
	}
	if driver == "sqlite3" {
		// :memory: databases live per connection.
		db.SetMaxOpenConns(1)
	}

	if err := InitializeDB(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logger.L().Debug("database opened", zap.String("driver", driver), zap.String("url", redact(url)))
	return &Storage{DB: db, driver: driver}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func driverFor(url string) string {
	for _, scheme := range []string{"libsql://", "http://", "https://", "ws://", "wss://"} {
		if strings.HasPrefix(url, scheme) {
			return "libsql"
		}
	}
	return "sqlite3"
}

// localPath returns the file behind a SQLite DSN, or "" for in-memory
// databases.
func localPath(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" {
		return ""
	}
	return path
}

// redact drops the query string, which may carry an auth token.
func redact(url string) string {
	if i := strings.IndexByte(url, '?'); i >= 0 {
		return url[:i]
	}
	return url
}

func InitializeDB(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
        CREATE TABLE IF NOT EXISTS lifts (
            id TEXT PRIMARY KEY,
            exercise TEXT NOT NULL COLLATE NOCASE,
            weight REAL NOT NULL,
            reps INTEGER NOT NULL,
            performed_at TEXT NOT NULL,
            notes TEXT,
            formula TEXT NOT NULL,
            estimated_1rm REAL NOT NULL
        );
    `)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_lifts_exercise ON lifts(exercise)`)
	return err
}
