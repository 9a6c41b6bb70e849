package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/momentum/internal/habits"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type Item struct {
	Stats habits.HabitStats
}

func (i Item) Title() string {
	if i.Stats.CompletedToday {
		return "✓ " + i.Stats.Habit.Name
	}
	return "○ " + i.Stats.Habit.Name
}

func (i Item) Description() string {
	s := i.Stats
	return fmt.Sprintf("%s · %s · streak %d (best %d) · %d/%d",
		s.Habit.Cadence, habits.CategoryLabel(s.Habit.Category),
		s.CurrentStreak, s.LongestStreak, s.TotalCompletions, s.PossibleCompletions)
}

func (i Item) FilterValue() string { return i.Stats.Habit.Name }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "toggle today"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(stats []habits.HabitStats, width, height int) Model {
	l := list.New(items(stats), list.NewDefaultDelegate(), width, height)
	l.Title = "Habits"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func items(stats []habits.HabitStats) []list.Item {
	out := make([]list.Item, len(stats))
	for i, s := range stats {
		out[i] = Item{Stats: s}
	}
	return out
}

// SetHabits replaces the list contents, keeping the cursor in range.
func (m *Model) SetHabits(stats []habits.HabitStats) {
	m.list.SetItems(items(stats))
}

// Selected returns the highlighted habit, if any.
func (m Model) Selected() (Item, bool) {
	i, ok := m.list.SelectedItem().(Item)
	return i, ok
}

// Filtering reports whether the user is typing a filter query.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Keys() KeyMap {
	return m.keys
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Stats.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Stats.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No habits yet.\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
