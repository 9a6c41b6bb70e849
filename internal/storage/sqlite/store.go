package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/migration"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/storage/sqlstore"
	"github.com/julianstephens/momentum/migrations"
)

type dialect struct{}

func (dialect) Rebind(query string) string {
	return sqlstore.QuestionRebind(query)
}

func (dialect) IsUniqueViolation(err error) bool {
	var se *msqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	code := se.Code()
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}

var _ storage.Provider = (*Store)(nil)

type Store struct {
	*sqlstore.Queries
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// dsn enables foreign keys and WAL, and makes writers wait for the lock instead of failing.
func (s *Store) dsn() string {
	return "file:" + s.path +
		"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_txlock=immediate"
}

func (s *Store) open() error {
	db, err := sql.Open("sqlite", s.dsn())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.Queries = sqlstore.New(db, dialect{})
	return nil
}

func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if s.Queries == nil {
		if err := s.open(); err != nil {
			return err
		}
	}
	if _, err := s.Migrate(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Persist defaults for any setting not stored yet
	settings, err := s.GetSettings()
	if err != nil {
		return err
	}
	if err := s.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save default settings: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.Queries != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'momentum init' first")
	}
	if err := s.open(); err != nil {
		return err
	}
	r, err := s.runner()
	if err != nil {
		return err
	}
	return r.ValidateVersion()
}

func (s *Store) Close() error {
	if s.Queries == nil {
		return nil
	}
	err := s.DB().Close()
	s.Queries = nil
	return err
}

func (s *Store) runner() (*migration.Runner, error) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.DB(), sub, migration.DriverSQLite)
}

// Migrate applies pending schema migrations.
func (s *Store) Migrate(logFn func(string)) (int, error) {
	r, err := s.runner()
	if err != nil {
		return 0, err
	}
	return r.ApplyMigrations(logFn)
}

func (s *Store) SchemaVersion() (int, int, error) {
	r, err := s.runner()
	if err != nil {
		return 0, 0, err
	}
	current, err := r.GetCurrentVersion()
	if err != nil {
		return 0, 0, err
	}
	latest, err := r.GetLatestVersion()
	return current, latest, err
}

func (s *Store) GetConfigPath() string {
	return s.path
}
