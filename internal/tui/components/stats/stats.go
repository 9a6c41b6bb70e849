// Package stats renders the analytics dashboard.
package stats

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/momentum/internal/habits"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Width(22)
	valueStyle  = lipgloss.NewStyle().Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

const barWidth = 20

type Model struct {
	analytics habits.Analytics
	width     int
	height    int
}

func New(a habits.Analytics, width, height int) Model {
	return Model{analytics: a, width: width, height: height}
}

func (m *Model) SetAnalytics(a habits.Analytics) {
	m.analytics = a
}

func (m *Model) SetSize(width, height int) {
	m.width, m.height = width, height
}

func row(label string, value any) string {
	return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
}

// bar draws a fixed-width progress bar for a 0-100 percentage.
func bar(pct float64) string {
	filled := int(pct / 100 * barWidth)
	filled = min(max(filled, 0), barWidth)
	return barStyle.Render(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
}

func (m Model) View() string {
	a := m.analytics
	if a.TotalHabits == 0 {
		return "\n  No habits to analyze yet."
	}

	lines := []string{
		headerStyle.Render("Overview"),
		row("Habits", a.TotalHabits),
		row("Completions", fmt.Sprintf("%d / %d", a.TotalCompletions, a.TotalPossible)),
		row("Completion rate", fmt.Sprintf("%.1f%%", a.CompletionRate)),
		row("This week", a.ThisWeekCompletions),
		row("This month", a.ThisMonthCompletions),
		row("Best streak", a.BestStreak),
		"",
		headerStyle.Render("Categories"),
	}
	for _, c := range a.Categories {
		lines = append(lines, fmt.Sprintf("%s%s %5.1f%%  streak %d",
			labelStyle.Render(habits.CategoryLabel(c.Category)), bar(c.Percentage), c.Percentage, c.BestStreak))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
