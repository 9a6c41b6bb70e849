package system

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage/sqlite"
)

func setupTestDoctorDB(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store}, store
}

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, store := setupTestDoctorDB(t)
	if err := store.AddUser(models.User{ID: uuid.New().String(), Username: "sam", CreatedAt: time.Now()}); err != nil {
		t.Fatal(err)
	}
	ctx.User = "sam"

	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_NoActiveUserIsWarning(t *testing.T) {
	ctx, _ := setupTestDoctorDB(t)
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("missing active user should only warn: %v", err)
	}
}

func TestDoctorCmd_SchemaTooNew(t *testing.T) {
	ctx, store := setupTestDoctorDB(t)

	if _, err := store.DB().Exec("DELETE FROM schema_version"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.DB().Exec("INSERT INTO schema_version (version) VALUES (999)"); err != nil {
		t.Fatal(err)
	}

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor command should fail with a schema newer than the binary")
	}
}

func TestDoctorCmd_Unreachable(t *testing.T) {
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := (&DoctorCmd{}).Run(&cli.Context{Store: store}); err == nil {
		t.Error("doctor should fail when the database was never initialized")
	}
}

func TestCheckClock(t *testing.T) {
	if err := checkClock(time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Errorf("checkClock(2024) = %v", err)
	}
	if err := checkClock(time.Date(1999, 1, 1, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("checkClock(1999) should fail")
	}
}
