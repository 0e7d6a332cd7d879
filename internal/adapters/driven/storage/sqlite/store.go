package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/custodia-labs/menugen/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/menugen/internal/core/ports/driven"
)

// DatabaseName is the file created inside the data directory.
const DatabaseName = "menugen.db"

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store is a unified SQLite-based storage that provides access to
// all menugen store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.menugen/data/menugen.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".menugen", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DatabaseName)

	// WAL lets readers proceed while a menu is being written.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(context.Background(), migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// FoodStore returns a FoodStore interface backed by this store.
func (s *Store) FoodStore() driven.FoodStore {
	return &foodStore{store: s}
}

// ProfileStore returns a ProfileStore interface backed by this store.
func (s *Store) ProfileStore() driven.ProfileStore {
	return &profileStore{store: s}
}

// PreferenceStore returns a PreferenceStore interface backed by this store.
func (s *Store) PreferenceStore() driven.PreferenceStore {
	return &preferenceStore{store: s}
}

// MenuStore returns a MenuStore interface backed by this store.
func (s *Store) MenuStore() driven.MenuStore {
	return &menuStore{store: s}
}

// SchedulerStore returns a SchedulerStore interface backed by this store.
func (s *Store) SchedulerStore() driven.SchedulerStore {
	return &schedulerStore{store: s}
}

// migrate applies every NNN_name.up.sql newer than the recorded version,
// each in its own transaction.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	list, err := migrations.List(fsys)
	if err != nil {
		return err
	}

	for _, m := range list {
		if m.Version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, m.Name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", m.Name, err)
		}

		if err := s.applyMigration(ctx, m.Version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", m.Name, err)
		}
	}

	return nil
}

func (s *Store) applyMigration(ctx context.Context, version int, content string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.ExecContext(ctx, content); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		return err
	}
	return tx.Commit()
}

// ==================== Helper Functions ====================

// isUniqueViolation reports whether err is a UNIQUE or PRIMARY KEY conflict.
func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

// isForeignKeyViolation reports whether err is a FOREIGN KEY conflict.
func isForeignKeyViolation(err error) bool {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	return se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY
}

// formatTime renders t in UTC for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime parses a stored timestamp, returning the zero time when invalid.
func parseTime(s string) time.Time {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatNullableTime formats a time for storage, or returns nil for zero time.
func formatNullableTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return formatTime(t)
}

// parseNullableTime parses a nullable timestamp.
// Returns zero time if the string is empty or invalid.
func parseNullableTime(s sql.NullString) time.Time {
	if !s.Valid || s.String == "" {
		return time.Time{}
	}
	return parseTime(s.String)
}

// nullString returns nil for empty strings, otherwise the string.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// nullFloat returns nil for a nil pointer, otherwise the value.
func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

// floatPtr converts a nullable column back to an optional value.
func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

// boolToInt converts a bool to 1 (true) or 0 (false).
func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
