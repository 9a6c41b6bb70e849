package habit

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/habits"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

type AnalyticsCmd struct {
	Category string `help:"Only include habits in this category."`
}

func (c *AnalyticsCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	owned, err := ctx.Store.GetHabitsForOwner(user.ID)
	if err != nil {
		return err
	}
	if c.Category != "" {
		category, err := models.ParseCategory(c.Category)
		if err != nil {
			return err
		}
		owned = habits.FilterByCategory(owned, category)
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	a, err := engine.Analytics(owned)
	if err != nil {
		return err
	}

	fmt.Printf("Analytics for %s as of %s\n\n", user.Username, utils.FormatDate(engine.Today()))
	fmt.Printf("  Habits:           %d\n", a.TotalHabits)
	fmt.Printf("  Completion rate:  %.1f%% (%d / %d)\n", a.CompletionRate, a.TotalCompletions, a.TotalPossible)
	fmt.Printf("  This week:        %d\n", a.ThisWeekCompletions)
	fmt.Printf("  This month:       %d\n", a.ThisMonthCompletions)
	fmt.Printf("  Best streak:      %d\n", a.BestStreak)

	if len(a.Categories) > 0 {
		fmt.Println("\nBy category:")
		for _, cs := range a.Categories {
			fmt.Printf("  %-14s %5.1f%%  %d / %d  habits %d  best streak %d\n",
				habits.CategoryLabel(cs.Category), cs.Percentage, cs.Completed, cs.Total, cs.HabitCount, cs.BestStreak)
		}
	}

	if len(a.Habits) > 0 {
		fmt.Println("\nBy habit:")
		for _, s := range a.Habits {
			fmt.Printf("  %-24s %d / %d  streak %d (longest %d)\n",
				s.Habit.Name, s.TotalCompletions, s.PossibleCompletions, s.CurrentStreak, s.LongestStreak)
		}
	}
	return nil
}
