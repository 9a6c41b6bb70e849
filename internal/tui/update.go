package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StateAddHabit {
		return m.updateForm(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.habitList.SetSize(msg.Width-4, msg.Height-6)
		m.statsModel.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if m.state == StateConfirmDelete {
			return m.updateConfirmDelete(msg)
		}
		if m.state == StateHabits && m.habitList.Filtering() {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = m.cycleView(1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = m.cycleView(-1)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.errMsg, m.status = "", ""
			m.refresh()
			return m, nil
		}

	case habitlist.AddHabitMsg:
		m.draft = &HabitDraft{}
		m.form = NewHabitForm(m.draft)
		m.errMsg = ""
		m.state = StateAddHabit
		return m, m.form.Init()

	case habitlist.ToggleHabitMsg:
		m.toggle(msg.ID)
		return m, nil

	case habitlist.DeleteHabitMsg:
		m.habitToDelete = msg.ID
		m.state = StateConfirmDelete
		return m, nil
	}

	var cmd tea.Cmd
	if m.state == StateHabits {
		m.habitList, cmd = m.habitList.Update(msg)
	}
	return m, cmd
}

func (m Model) cycleView(step int) SessionState {
	for i, v := range views {
		if v == m.state {
			return views[(i+step+len(views))%len(views)]
		}
	}
	return StateHabits
}

// toggle flips today's completion for the habit and checks badges when it becomes complete.
func (m *Model) toggle(id string) {
	m.errMsg, m.status = "", ""
	h, err := m.store.GetHabit(id)
	if err != nil {
		m.setError(fmt.Errorf("failed to load habit: %w", err))
		return
	}
	completed, err := m.engine.Toggle(h, m.clock.Today())
	if err != nil {
		m.setError(err)
		return
	}

	if completed {
		m.status = fmt.Sprintf("✓ %s done", h.Name)
		awarded, err := m.evaluator.AfterToggle(m.user.ID)
		if err != nil {
			m.setError(fmt.Errorf("badge check failed: %w", err))
		}
		if len(awarded) > 0 {
			labels := make([]string, len(awarded))
			for i, b := range awarded {
				labels[i] = constants.BadgeLabel(b)
			}
			m.status += " · 🏅 " + strings.Join(labels, ", ")
		}
	} else {
		m.status = fmt.Sprintf("○ %s undone", h.Name)
	}
	m.refresh()
}

func (m Model) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		if err := m.store.DeleteHabit(m.habitToDelete); err != nil {
			m.setError(fmt.Errorf("failed to delete habit: %w", err))
		}
		m.habitToDelete = ""
		m.state = StateHabits
		m.refresh()
	case key.Matches(msg, m.keys.Cancel):
		m.habitToDelete = ""
		m.state = StateHabits
	}
	return m, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateHabits
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.state = StateHabits
		if err := m.draft.Validate(); err != nil {
			m.setError(err)
			return m, nil
		}
		h := m.draft.Habit(m.user.ID, m.clock.Now())
		if err := m.store.AddHabit(h); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				err = fmt.Errorf("habit %q already exists", h.Name)
			}
			m.setError(err)
			return m, nil
		}
		m.status = fmt.Sprintf("Added %s", h.Name)
		m.refresh()
		return m, nil
	case huh.StateAborted:
		m.state = StateHabits
		return m, nil
	}
	return m, cmd
}
