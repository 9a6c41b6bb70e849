package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage/sqlite"
	"github.com/julianstephens/momentum/internal/tui/components/habitlist"
)

func setupTestModel(t *testing.T) (Model, *sqlite.Store, models.Habit) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	clk := clock.MustParse("2024-03-13")
	user := models.User{ID: uuid.New().String(), Username: "sam", CreatedAt: time.Now()}
	if err := store.AddUser(user); err != nil {
		t.Fatal(err)
	}
	h := models.Habit{
		ID:        uuid.New().String(),
		OwnerID:   user.ID,
		Name:      "run",
		Cadence:   models.CadenceDaily,
		Category:  models.CategoryHealth,
		CreatedAt: clk.Now(),
	}
	if err := store.AddHabit(h); err != nil {
		t.Fatal(err)
	}
	return NewModel(store, clk, user), store, h
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestToggleFromList(t *testing.T) {
	m, store, h := setupTestModel(t)

	m = update(t, m, habitlist.ToggleHabitMsg{ID: h.ID})
	if m.errMsg != "" {
		t.Fatalf("unexpected error: %s", m.errMsg)
	}
	if !strings.Contains(m.status, "run done") {
		t.Errorf("status = %q", m.status)
	}
	completions, err := store.GetCompletionsForHabit(h.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(completions) != 1 || completions[0].Day != "2024-03-13" {
		t.Errorf("completions = %+v, want one on 2024-03-13", completions)
	}

	m = update(t, m, habitlist.ToggleHabitMsg{ID: h.ID})
	if !strings.Contains(m.status, "undone") {
		t.Errorf("status after second toggle = %q", m.status)
	}
	completions, _ = store.GetCompletionsForHabit(h.ID)
	if len(completions) != 0 {
		t.Errorf("completions after untoggle = %d, want 0", len(completions))
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	m, store, h := setupTestModel(t)

	m = update(t, m, habitlist.DeleteHabitMsg{ID: h.ID})
	if m.state != StateConfirmDelete {
		t.Fatalf("state = %v, want confirm delete", m.state)
	}
	m = update(t, m, keyMsg("n"))
	if m.state != StateHabits {
		t.Errorf("state after cancel = %v", m.state)
	}
	if _, err := store.GetHabit(h.ID); err != nil {
		t.Errorf("habit deleted despite cancel: %v", err)
	}

	m = update(t, m, habitlist.DeleteHabitMsg{ID: h.ID})
	m = update(t, m, keyMsg("y"))
	if m.state != StateHabits {
		t.Errorf("state after confirm = %v", m.state)
	}
	if _, err := store.GetHabit(h.ID); err == nil {
		t.Error("habit still present after confirmed delete")
	}
}

func TestTabCyclesViews(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateStats {
		t.Errorf("state after tab = %v, want stats", m.state)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.state != StateHabits {
		t.Errorf("state after second tab = %v, want habits", m.state)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.state != StateStats {
		t.Errorf("state after shift+tab = %v, want stats", m.state)
	}
}

func TestAddHabitOpensForm(t *testing.T) {
	m, _, _ := setupTestModel(t)

	m = update(t, m, habitlist.AddHabitMsg{})
	if m.state != StateAddHabit || m.form == nil {
		t.Fatalf("state = %v, form = %v", m.state, m.form)
	}
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.state != StateHabits {
		t.Errorf("esc should close the form, state = %v", m.state)
	}
}

func TestHabitDraft(t *testing.T) {
	d := HabitDraft{Name: "  read  ", Cadence: models.CadenceWeekly, Category: models.CategoryLearning}
	if !d.Complete() {
		t.Error("draft should be complete")
	}
	if err := d.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
	h := d.Habit("owner", time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC))
	if h.Name != "read" || h.OwnerID != "owner" || h.ID == "" {
		t.Errorf("Habit() = %+v", h)
	}

	if (HabitDraft{Name: "x", Cadence: "hourly", Category: models.CategoryHealth}).Validate() == nil {
		t.Error("unknown cadence should fail validation")
	}
	if (HabitDraft{Cadence: models.CadenceDaily}).Complete() {
		t.Error("draft without a name is not complete")
	}
}
