package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
	_ "github.com/mattn/go-sqlite3"
)

// sqliteOptions wait for a lock held by a second CLI process instead of
// failing with SQLITE_BUSY.
const sqliteOptions = "_busy_timeout=5000&_journal_mode=WAL"

// LocalDB is the client's SQLite file: the session row and export history.
type LocalDB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectSQLite(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*LocalDB, error) {
	if err := ensureDir(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("cannot prepare local database directory")
		return nil, err
	}

	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("local database is not reachable")
		return nil, fmt.Errorf("ping local database: %w", err)
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("local database opened")

	return &LocalDB{DB: conn, logger: log}, nil
}

// Migrate applies the embedded SQLite migrations.
func (db *LocalDB) Migrate() error {
	return migrations.MigrateSQLite(db.DB)
}

func sqliteDSN(path string) string {
	if path == ":memory:" || strings.Contains(path, "?") {
		return path
	}
	return "file:" + path + "?" + sqliteOptions
}

// ensureDir creates the parent directory of a file database. sqlite3 creates
// the file itself on first open.
func ensureDir(path string) error {
	if path == ":memory:" || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create local database dir: %w", err)
	}
	return nil
}
