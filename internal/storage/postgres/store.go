package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/migration"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/storage/sqlstore"
	"github.com/julianstephens/momentum/migrations"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

type dialect struct{}

func (dialect) Rebind(query string) string {
	return sqlstore.DollarRebind(query)
}

func (dialect) IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

var _ storage.Provider = (*Store)(nil)

type Store struct {
	*sqlstore.Queries
	connStr string
}

func New(connStr string) *Store {
	return &Store{connStr: withSearchPath(connStr)}
}

func (s *Store) open() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		if strings.Contains(err.Error(), "SSL is not enabled on the server") && !hasSSLMode(s.connStr) {
			return fmt.Errorf("failed to connect to database: %w (hint: try adding ?sslmode=disable to your connection string)", err)
		}
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	s.Queries = sqlstore.New(db, dialect{})
	return nil
}

func (s *Store) Init() error {
	if err := s.open(); err != nil {
		return err
	}
	if _, err := s.DB().Exec("CREATE SCHEMA IF NOT EXISTS " + constants.AppName); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if _, err := s.Migrate(func(msg string) { logger.Info(msg) }); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

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
	sub, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return nil, fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.DB(), sub, migration.DriverPostgres)
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
	// Never echo the connection string
	return "postgresql"
}
