package habit

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.User{ID: uuid.New().String(), Username: "sam", CreatedAt: time.Now()}
	if err := store.AddUser(user); err != nil {
		t.Fatalf("failed to add user: %v", err)
	}
	return &cli.Context{Store: store, User: "sam", Clock: clock.MustParse("2024-03-13")}
}

func addHabit(t *testing.T, ctx *cli.Context, name, cadence, category string) {
	t.Helper()
	cmd := &HabitAddCmd{Name: name, Cadence: cadence, Category: category}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("habit add %s: %v", name, err)
	}
}

func TestHabitAddCmd(t *testing.T) {
	ctx := setupTestDB(t)
	addHabit(t, ctx, "run", "daily", "health")

	user, err := ctx.ActiveUser()
	if err != nil {
		t.Fatal(err)
	}
	h, err := ctx.FindHabit(user.ID, "run")
	if err != nil {
		t.Fatalf("habit not stored: %v", err)
	}
	if h.Cadence != models.CadenceDaily || h.Category != models.CategoryHealth {
		t.Errorf("stored habit = %+v", h)
	}

	err = (&HabitAddCmd{Name: "run", Cadence: "daily", Category: "health"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("duplicate add error = %v, want already exists", err)
	}
}

func TestHabitAddCmd_InvalidCadence(t *testing.T) {
	ctx := setupTestDB(t)
	err := (&HabitAddCmd{Name: "run", Cadence: "hourly", Category: "health"}).Run(ctx)
	if err == nil {
		t.Fatal("expected error for invalid cadence")
	}
}

func TestHabitToggleCmd(t *testing.T) {
	ctx := setupTestDB(t)
	addHabit(t, ctx, "run", "daily", "health")
	user, _ := ctx.ActiveUser()
	h, _ := ctx.FindHabit(user.ID, "run")

	toggle := &HabitToggleCmd{Name: "run"}
	if err := toggle.Run(ctx); err != nil {
		t.Fatalf("toggle on: %v", err)
	}
	got, err := ctx.Store.GetCompletionsForHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Day != "2024-03-13" {
		t.Fatalf("completions after toggle on = %+v", got)
	}

	if err := toggle.Run(ctx); err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	got, _ = ctx.Store.GetCompletionsForHabit(h.ID)
	if len(got) != 0 {
		t.Errorf("completions after toggle off = %+v", got)
	}
}

func TestHabitToggleCmd_AwardsBadges(t *testing.T) {
	ctx := setupTestDB(t)
	addHabit(t, ctx, "run", "daily", "health")

	for day := 4; day <= 13; day++ {
		cmd := &HabitToggleCmd{Name: "run", Date: time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")}
		if err := cmd.Run(ctx); err != nil {
			t.Fatalf("toggle %d: %v", day, err)
		}
	}

	user, _ := ctx.ActiveUser()
	earned, err := ctx.Store.GetBadges(user.ID)
	if err != nil {
		t.Fatal(err)
	}
	held := map[constants.BadgeType]bool{}
	for _, b := range earned {
		held[b.BadgeType] = true
	}
	if !held[constants.BadgeCompletions10] || !held[constants.BadgeHealth7] {
		t.Errorf("badges = %v, want completions_10 and health_7_day", held)
	}
}

func TestHabitToggleCmd_BadDate(t *testing.T) {
	ctx := setupTestDB(t)
	addHabit(t, ctx, "run", "daily", "health")
	if err := (&HabitToggleCmd{Name: "run", Date: "13/03/2024"}).Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestHabitToggleCmd_UnknownHabit(t *testing.T) {
	ctx := setupTestDB(t)
	err := (&HabitToggleCmd{Name: "missing"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestHabitReadCommands(t *testing.T) {
	ctx := setupTestDB(t)
	addHabit(t, ctx, "run", "daily", "health")
	addHabit(t, ctx, "review", "weekly", "productivity")
	if err := (&HabitToggleCmd{Name: "run"}).Run(ctx); err != nil {
		t.Fatal(err)
	}

	cmds := map[string]interface{ Run(*cli.Context) error }{
		"list":          &HabitListCmd{View: "cadence"},
		"list category": &HabitListCmd{View: "category", Category: "health"},
		"show":          &HabitShowCmd{Name: "run"},
		"log":           &HabitLogCmd{Days: 7},
		"log one":       &HabitLogCmd{Days: 3, Habit: "review"},
		"analytics":     &AnalyticsCmd{},
		"analytics cat": &AnalyticsCmd{Category: "productivity"},
	}
	for name, cmd := range cmds {
		t.Run(name, func(t *testing.T) {
			if err := cmd.Run(ctx); err != nil {
				t.Errorf("%s failed: %v", name, err)
			}
		})
	}
}

func TestHabitDeleteCmd(t *testing.T) {
	ctx := setupTestDB(t)
	addHabit(t, ctx, "run", "daily", "health")

	if err := (&HabitDeleteCmd{Name: "run"}).Run(ctx); err != nil {
		t.Fatalf("delete: %v", err)
	}
	user, _ := ctx.ActiveUser()
	if _, err := ctx.FindHabit(user.ID, "run"); err == nil {
		t.Error("habit still present after delete")
	}
}

func TestPadName(t *testing.T) {
	if got := padName("run", 6); got != "run   " {
		t.Errorf("padName short = %q", got)
	}
	if got := padName("a very long habit name", 10); got != "a very ..." {
		t.Errorf("padName long = %q", got)
	}
}
