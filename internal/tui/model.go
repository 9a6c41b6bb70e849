package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/momentum/internal/badges"
	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/habits"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/tui/components/habitlist"
	"github.com/julianstephens/momentum/internal/tui/components/stats"
)

type SessionState int

const (
	StateHabits SessionState = iota
	StateStats
	StateAddHabit
	StateConfirmDelete
)

// views are the tabbed states, in tab order.
var views = []SessionState{StateHabits, StateStats}

type Model struct {
	store     storage.Provider
	clock     clock.Clock
	engine    *habits.Engine
	evaluator *badges.Evaluator
	user      models.User

	state         SessionState
	keys          KeyMap
	help          help.Model
	habitList     habitlist.Model
	statsModel    stats.Model
	form          *huh.Form
	draft         *HabitDraft
	habitToDelete string
	status        string
	errMsg        string
	quitting      bool
	width         int
	height        int
}

func NewModel(store storage.Provider, clk clock.Clock, user models.User) Model {
	m := Model{
		store:      store,
		clock:      clk,
		engine:     habits.NewEngine(store, clk),
		evaluator:  badges.NewEvaluator(store, clk),
		user:       user,
		state:      StateHabits,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		habitList:  habitlist.New(nil, 0, 0),
		statsModel: stats.New(habits.Analytics{}, 0, 0),
	}
	m.refresh()
	return m
}

// refresh reloads habits and recomputes analytics for the current day.
func (m *Model) refresh() {
	list, err := m.store.GetHabitsForOwner(m.user.ID)
	if err != nil {
		m.setError(fmt.Errorf("failed to load habits: %w", err))
		return
	}
	a, err := m.engine.Analytics(list)
	if err != nil {
		m.setError(err)
		return
	}
	m.habitList.SetHabits(a.Habits)
	m.statsModel.SetAnalytics(a)
}

func (m *Model) setError(err error) {
	logger.Error("tui", "error", err)
	m.errMsg = err.Error()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateHabits {
		lk := m.habitList.Keys()
		keys = append(keys, lk.Add, lk.Toggle, lk.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Refresh, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down}

	var actions []key.Binding
	if m.state == StateHabits {
		lk := m.habitList.Keys()
		actions = []key.Binding{lk.Add, lk.Toggle, lk.Delete}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
