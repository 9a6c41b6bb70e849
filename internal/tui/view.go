package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateStats:
		content = docStyle.Render(m.statsModel.View())
	case StateAddHabit:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range []string{"Habits", "Stats"} {
		if m.state == views[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, userStyle.Render(fmt.Sprintf("@%s · %s", m.user.Username, m.clock.Today().Format("Mon Jan 2"))))
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.errMsg != "" {
		return dangerStyle.Render("❌ " + m.errMsg)
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}

func (m Model) viewConfirmDelete() string {
	name := m.habitToDelete
	if h, err := m.store.GetHabit(m.habitToDelete); err == nil {
		name = h.Name
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(fmt.Sprintf("Delete %q and all of its completions?", name)),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
