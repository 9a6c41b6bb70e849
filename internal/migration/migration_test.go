package migration

import (
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"regexp"
	"testing"
	"testing/fstest"

	"github.com/DATA-DOG/go-sqlmock"
	_ "modernc.org/sqlite"
)

func setupTestMigrations(t *testing.T, files map[string]string) fs.FS {
	t.Helper()
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return fsys
}

func setupSQLiteDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "migrate.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewRunnerRejectsUnknownDriver(t *testing.T) {
	if _, err := NewRunner(nil, fstest.MapFS{}, Driver("mysql")); err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestReadMigrationFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		want    []int
		wantErr bool
	}{
		{
			name: "sorted by version",
			files: map[string]string{
				"002_badges.sql": "SELECT 2;",
				"001_init.sql":   "SELECT 1;",
				"README.md":      "ignored",
			},
			want: []int{1, 2},
		},
		{
			name:    "missing underscore",
			files:   map[string]string{"001init.sql": ""},
			wantErr: true,
		},
		{
			name:    "zero version",
			files:   map[string]string{"000_init.sql": ""},
			wantErr: true,
		},
		{
			name:    "duplicate version",
			files:   map[string]string{"001_a.sql": "", "01_b.sql": ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRunner(nil, setupTestMigrations(t, tt.files), DriverSQLite)
			if err != nil {
				t.Fatal(err)
			}
			got, err := r.ReadMigrationFiles()
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadMigrationFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d migrations, want %d", len(got), len(tt.want))
			}
			for i, v := range tt.want {
				if got[i].Version != v {
					t.Errorf("migration %d version = %d, want %d", i, got[i].Version, v)
				}
			}
			if got[0].Name != "init" {
				t.Errorf("first migration name = %q, want init", got[0].Name)
			}
		})
	}
}

func TestSQLiteApplyMigrations(t *testing.T) {
	db := setupSQLiteDB(t)
	fsys := setupTestMigrations(t, map[string]string{
		"001_init.sql":   "CREATE TABLE habits (id TEXT PRIMARY KEY);",
		"002_badges.sql": "CREATE TABLE badges (id TEXT PRIMARY KEY);",
	})

	r, err := NewRunner(db, fsys, DriverSQLite)
	if err != nil {
		t.Fatal(err)
	}

	var lines []string
	count, err := r.ApplyMigrations(func(s string) { lines = append(lines, s) })
	if err != nil {
		t.Fatalf("ApplyMigrations failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 migrations applied, got %d", count)
	}
	if len(lines) == 0 {
		t.Error("expected progress lines")
	}

	version, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 2 {
		t.Errorf("version = %d, want 2", version)
	}

	count, err = r.ApplyMigrations(nil)
	if err != nil || count != 0 {
		t.Errorf("second ApplyMigrations = %d, %v; want 0, nil", count, err)
	}
	if err := r.ValidateVersion(); err != nil {
		t.Errorf("ValidateVersion() = %v", err)
	}
}

func TestSQLiteMigrationRollbackOnError(t *testing.T) {
	db := setupSQLiteDB(t)
	fsys := setupTestMigrations(t, map[string]string{
		"001_bad.sql": "CREATE TABLE habits (id TEXT PRIMARY KEY); THIS IS INVALID SQL;",
	})

	r, err := NewRunner(db, fsys, DriverSQLite)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.ApplyMigrations(nil); err == nil {
		t.Fatal("ApplyMigrations should have failed with invalid SQL")
	}

	version, err := r.GetCurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if version != 0 {
		t.Errorf("version = %d after failed migration, want 0", version)
	}
}

func TestSchemaTooNew(t *testing.T) {
	db := setupSQLiteDB(t)
	r, err := NewRunner(db, setupTestMigrations(t, map[string]string{"001_init.sql": "SELECT 1;"}), DriverSQLite)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.SetVersion(5); err != nil {
		t.Fatal(err)
	}

	if _, err := r.ApplyMigrations(nil); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ApplyMigrations error = %v, want ErrSchemaTooNew", err)
	}
	if err := r.ValidateVersion(); !errors.Is(err, ErrSchemaTooNew) {
		t.Errorf("ValidateVersion error = %v, want ErrSchemaTooNew", err)
	}
}

func TestPostgresPlaceholders(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer db.Close()

	fsys := setupTestMigrations(t, map[string]string{
		"001_init.sql": "CREATE TABLE habits (id TEXT PRIMARY KEY);",
	})
	r, err := NewRunner(db, fsys, DriverPostgres)
	if err != nil {
		t.Fatal(err)
	}

	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS schema_version")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT version FROM schema_version")).
		WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE habits")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM schema_version")).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO schema_version (version) VALUES ($1)")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	count, err := r.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations: %v", err)
	}
	if count != 1 {
		t.Errorf("applied = %d, want 1", count)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
