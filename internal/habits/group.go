package habits

import (
	"github.com/julianstephens/momentum/internal/models"
)

// Group is a labelled list of habits for display.
type Group struct {
	Label  string
	Habits []HabitStats
}

// GroupByCadence splits stats into daily then weekly groups, dropping empty ones.
func GroupByCadence(stats []HabitStats) []Group {
	order := []models.Cadence{models.CadenceDaily, models.CadenceWeekly}
	labels := map[models.Cadence]string{models.CadenceDaily: "Daily", models.CadenceWeekly: "Weekly"}

	var groups []Group
	for _, c := range order {
		g := Group{Label: labels[c]}
		for _, s := range stats {
			if s.Habit.Cadence == c {
				g.Habits = append(g.Habits, s)
			}
		}
		if len(g.Habits) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// GroupByCategory splits stats by category in display order, dropping empty ones.
func GroupByCategory(stats []HabitStats) []Group {
	var groups []Group
	for _, c := range models.Categories {
		g := Group{Label: CategoryLabel(c)}
		for _, s := range stats {
			if s.Habit.Category == c {
				g.Habits = append(g.Habits, s)
			}
		}
		if len(g.Habits) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// FilterByCategory keeps the habits in category c; an empty c keeps everything.
func FilterByCategory(habits []models.Habit, c models.Category) []models.Habit {
	if c == "" {
		return habits
	}
	var out []models.Habit
	for _, h := range habits {
		if h.Category == c {
			out = append(out, h)
		}
	}
	return out
}

func CategoryLabel(c models.Category) string {
	switch c {
	case models.CategoryHealth:
		return "Health"
	case models.CategoryProductivity:
		return "Productivity"
	case models.CategoryLearning:
		return "Learning"
	default:
		return string(c)
	}
}
