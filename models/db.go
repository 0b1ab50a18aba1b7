package models

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	"recipebox/utils"

	"github.com/gofiber/fiber/v2/log"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

var db *sql.DB

// migrations holds the ordered schema versions. The current schema version of
// a database is tracked with PRAGMA user_version; Initialize applies every
// migration above it, each in its own transaction.
var migrations = []string{
	`CREATE TABLE folders (
		id   INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL
	);
	CREATE TABLE recipes (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		title        TEXT NOT NULL,
		ingredients  TEXT NOT NULL,
		instructions TEXT NOT NULL,
		image        TEXT,
		folder_id    INTEGER
	);
	CREATE TABLE sessions (
		token        TEXT PRIMARY KEY,
		created_at   INTEGER NOT NULL,
		expires_at   INTEGER NOT NULL,
		last_used_at INTEGER NOT NULL
	);`,
}

// Initialize connects to the SQLite database and applies pending migrations
func Initialize(dataDirectory string) error {
	return InitializeWithMigration(dataDirectory, true)
}

// InitializeWithMigration connects to the SQLite database, optionally
// applying pending schema migrations
func InitializeWithMigration(dataDirectory string, migrate bool) error {
	start := time.Now()
	defer utils.LogDuration("Initialize", start)

	databasePath := filepath.Join(dataDirectory, "recipebox.db")

	var err error
	db, err = sql.Open("sqlite3", "file:"+databasePath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(wal)")
	if err != nil {
		return err
	}

	if migrate {
		return Migrate()
	}
	return nil
}

// Migrate applies every schema migration above the database's current version
func Migrate() error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for ; version < len(migrations); version++ {
		tx, err := db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[version]); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %d: %w", version+1, err)
		}
		// PRAGMA does not accept placeholders
		if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, version+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", version+1, err)
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		log.Infof("Applied schema migration %d", version+1)
	}

	return nil
}

// SchemaVersion returns the database's current schema version
func SchemaVersion() (int, error) {
	var version int
	err := db.QueryRow(`PRAGMA user_version`).Scan(&version)
	return version, err
}

// Close closes the database connection
func Close() error {
	start := time.Now()
	defer utils.LogDuration("Close", start)

	if db != nil {
		return db.Close()
	}
	return nil
}
