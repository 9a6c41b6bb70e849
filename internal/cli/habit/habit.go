package habit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/habits"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/tui"
	"github.com/julianstephens/momentum/internal/utils"
)

type HabitCmd struct {
	Add    HabitAddCmd    `cmd:"" help:"Add a new habit."`
	List   HabitListCmd   `cmd:"" help:"List habits with today's status and streaks."`
	Toggle HabitToggleCmd `cmd:"" help:"Toggle a habit's completion for a day."`
	Show   HabitShowCmd   `cmd:"" help:"Show details and stats for one habit."`
	Log    HabitLogCmd    `cmd:"" help:"Show habit log (ASCII history)."`
	Delete HabitDeleteCmd `cmd:"" help:"Delete a habit and its completions."`
}

type HabitAddCmd struct {
	Name        string `arg:"" optional:"" help:"Habit name."`
	Cadence     string `help:"daily or weekly."`
	Category    string `help:"health, productivity or learning."`
	Description string `help:"Optional description."`
}

func (c *HabitAddCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	draft := tui.HabitDraft{Name: c.Name, Description: c.Description}
	if c.Cadence != "" {
		if draft.Cadence, err = models.ParseCadence(c.Cadence); err != nil {
			return err
		}
	}
	if c.Category != "" {
		if draft.Category, err = models.ParseCategory(c.Category); err != nil {
			return err
		}
	}
	if !draft.Complete() {
		if err := tui.NewHabitForm(&draft).Run(); err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}
	h := draft.Habit(user.ID, clk.Now())
	if err := ctx.Store.AddHabit(h); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return fmt.Errorf("habit with name %q already exists", h.Name)
		}
		return err
	}

	fmt.Printf("Added %s %s habit: %s\n", h.Cadence, h.Category, h.Name)
	return nil
}

type HabitListCmd struct {
	View     string `help:"Group by cadence or category." enum:"cadence,category" default:"cadence"`
	Category string `help:"Only show habits in this category."`
}

func (c *HabitListCmd) Run(ctx *cli.Context) error {
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
	if len(owned) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	analytics, err := engine.Analytics(owned)
	if err != nil {
		return err
	}

	groups := habits.GroupByCadence(analytics.Habits)
	if c.View == "category" {
		groups = habits.GroupByCategory(analytics.Habits)
	}

	fmt.Printf("Habits for %s:\n", utils.FormatDate(engine.Today()))
	for _, g := range groups {
		fmt.Printf("\n%s\n", g.Label)
		for _, s := range g.Habits {
			fmt.Printf("  %s %-24s %-12s streak %d\n", checkbox(s), s.Habit.Name, s.Habit.Category, s.CurrentStreak)
		}
	}

	if n := habits.NotificationsFromStats(analytics.Habits); n.Total() > 0 {
		fmt.Printf("\n%d daily habit(s) open today, %d weekly habit(s) open this week\n", n.IncompleteDaily, n.IncompleteWeekly)
	}
	return nil
}

// checkbox marks daily habits done today and weekly habits done this week.
func checkbox(s habits.HabitStats) string {
	done := s.CompletedToday
	if s.Habit.Cadence == models.CadenceWeekly {
		done = s.WeekCompletions > 0
	}
	if done {
		return "[x]"
	}
	return "[ ]"
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	h, err := ctx.FindHabit(user.ID, c.Name)
	if err != nil {
		return err
	}
	day, err := cli.ParseDay(c.Date)
	if err != nil {
		return err
	}

	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	if day.IsZero() {
		day = engine.Today()
	}
	done, err := engine.Toggle(h, day)
	if err != nil {
		return err
	}
	if !done {
		fmt.Printf("Unmarked habit %q for %s\n", h.Name, utils.FormatDate(day))
		return nil
	}
	fmt.Printf("Marked habit %q for %s\n", h.Name, utils.FormatDate(day))

	evaluator, err := ctx.Evaluator()
	if err != nil {
		return err
	}
	awarded, err := evaluator.AfterToggle(user.ID)
	cli.PrintAwarded(awarded)
	return err
}

type HabitShowCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitShowCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	h, err := ctx.FindHabit(user.ID, c.Name)
	if err != nil {
		return err
	}
	engine, err := ctx.Engine()
	if err != nil {
		return err
	}
	d, err := engine.HabitDetail(h)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", h.Name)
	if h.Description != "" {
		fmt.Printf("  %s\n", h.Description)
	}
	fmt.Printf("  Cadence:          %s\n", h.Cadence)
	fmt.Printf("  Category:         %s\n", habits.CategoryLabel(h.Category))
	fmt.Printf("  Created:          %s\n", h.CreatedAt.In(engine.Location()).Format("2006-01-02"))
	fmt.Printf("  Done today:       %s\n", yesNo(d.CompletedToday))
	if d.ShowYesterday {
		fmt.Printf("  Done yesterday:   %s\n", yesNo(d.CompletedYesterday))
	}
	fmt.Printf("  Current streak:   %d\n", d.CurrentStreak)
	fmt.Printf("  Longest streak:   %d\n", d.LongestStreak)
	fmt.Printf("  This week:        %d\n", d.WeekCompletions)
	fmt.Printf("  This month:       %d\n", d.MonthCompletions)
	fmt.Printf("  Completions:      %d / %d (%.1f%%)\n", d.TotalCompletions, d.PossibleCompletions, d.CompletionRate)
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

type HabitLogCmd struct {
	Days  int    `help:"Number of days to show." default:"14"`
	Habit string `help:"Show log for specific habit only."`
}

func (c *HabitLogCmd) Run(ctx *cli.Context) error {
	if c.Days < 1 {
		return fmt.Errorf("--days must be at least 1")
	}
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}

	var selected []models.Habit
	if c.Habit != "" {
		h, err := ctx.FindHabit(user.ID, c.Habit)
		if err != nil {
			return err
		}
		selected = []models.Habit{h}
	} else {
		if selected, err = ctx.Store.GetHabitsForOwner(user.ID); err != nil {
			return err
		}
	}
	if len(selected) == 0 {
		fmt.Println("No habits found.")
		return nil
	}

	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}
	endDay := clk.Today()
	startDay := endDay.AddDate(0, 0, -(c.Days - 1))

	fmt.Printf("Habit log (last %d days):\n\n", c.Days)

	const maxNameLen = 20
	fmt.Print(strings.Repeat(" ", maxNameLen))
	for i := 0; i < c.Days; i++ {
		fmt.Printf(" %5s", startDay.AddDate(0, 0, i).Format("01/02"))
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", maxNameLen+6*c.Days))

	for _, h := range selected {
		entries, err := ctx.Store.GetCompletionsInRange(h.ID, utils.FormatDate(startDay), utils.FormatDate(endDay))
		if err != nil {
			return err
		}
		done := make(map[string]bool, len(entries))
		for _, e := range entries {
			done[e.Day] = true
		}

		fmt.Print(padName(h.Name, maxNameLen))
		for i := 0; i < c.Days; i++ {
			if done[utils.FormatDate(startDay.AddDate(0, 0, i))] {
				fmt.Print("   x  ")
			} else {
				fmt.Print("   .  ")
			}
		}
		fmt.Println()
	}
	return nil
}

func padName(name string, width int) string {
	if len(name) > width {
		return name[:width-3] + "..."
	}
	return name + strings.Repeat(" ", width-len(name))
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	h, err := ctx.FindHabit(user.ID, c.Name)
	if err != nil {
		return err
	}
	if err := ctx.Store.DeleteHabit(h.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit: %s\n", h.Name)
	fmt.Println("(Its completions were removed. Badges already earned are kept.)")
	return nil
}
