package habits

import (
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// HabitStats is the per-habit input to analytics.
type HabitStats struct {
	Habit               models.Habit
	TotalCompletions    int
	WeekCompletions     int // completions in [monday(today), today]
	MonthCompletions    int // completions in [first of month, today]
	PossibleCompletions int
	CurrentStreak       int
	LongestStreak       int
	CompletedToday      bool // a completion dated exactly today
}

// CategoryStats rolls up one category.
type CategoryStats struct {
	Category   models.Category
	Completed  int
	Total      int
	HabitCount int
	Percentage float64
	BestStreak int
}

type Analytics struct {
	TotalHabits          int
	TotalCompletions     int
	TotalPossible        int
	CompletionRate       float64
	ThisWeekCompletions  int
	ThisMonthCompletions int
	BestStreak           int
	Categories           []CategoryStats
	Habits               []HabitStats
}

// Notifications counts habits still open for the current unit.
type Notifications struct {
	IncompleteDaily  int
	IncompleteWeekly int
}

func (n Notifications) Total() int {
	return n.IncompleteDaily + n.IncompleteWeekly
}

// HabitDetail is the single-habit view.
type HabitDetail struct {
	HabitStats
	CompletedYesterday bool
	ShowYesterday      bool // daily habits created on or before yesterday
	CompletionRate     float64
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return round1(float64(part) * 100 / float64(whole))
}

// Stats loads one habit's completions once and derives every per-habit figure from them.
func (e *Engine) Stats(h models.Habit) (HabitStats, error) {
	days, err := e.completionDays(h)
	if err != nil {
		return HabitStats{}, err
	}
	return e.statsFromDays(h, days)
}

func (e *Engine) statsFromDays(h models.Habit, days []time.Time) (HabitStats, error) {
	today := e.clock.Today()

	possible, err := possibleCompletions(h.Cadence, e.createdOn(h), today)
	if err != nil {
		return HabitStats{}, err
	}
	current, err := currentStreak(h.Cadence, days, today)
	if err != nil {
		return HabitStats{}, err
	}
	longest, err := longestStreak(h.Cadence, days)
	if err != nil {
		return HabitStats{}, err
	}

	stats := HabitStats{
		Habit:               h,
		TotalCompletions:    len(days),
		PossibleCompletions: possible,
		CurrentStreak:       current,
		LongestStreak:       longest,
	}

	weekStart := utils.StartOfWeek(today)
	monthStart := utils.StartOfMonth(today)
	for _, d := range days {
		if d.After(today) {
			continue
		}
		if !d.Before(weekStart) {
			stats.WeekCompletions++
		}
		if !d.Before(monthStart) {
			stats.MonthCompletions++
		}
		if d.Equal(today) {
			stats.CompletedToday = true
		}
	}
	return stats, nil
}

// Analytics computes per-habit stats concurrently and aggregates them.
func (e *Engine) Analytics(habits []models.Habit) (Analytics, error) {
	stats := make([]HabitStats, len(habits))

	var g errgroup.Group
	g.SetLimit(constants.AnalyticsWorkers)
	for i, h := range habits {
		g.Go(func() error {
			s, err := e.Stats(h)
			if err != nil {
				return err
			}
			stats[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Analytics{}, err
	}
	return Aggregate(stats), nil
}

// Aggregate rolls per-habit stats into totals and per-category figures.
// Categories without possible completions are omitted.
func Aggregate(stats []HabitStats) Analytics {
	a := Analytics{
		TotalHabits: len(stats),
		Habits:      stats,
	}

	byCategory := map[models.Category]*CategoryStats{}
	for _, s := range stats {
		a.TotalCompletions += s.TotalCompletions
		a.TotalPossible += s.PossibleCompletions
		a.ThisWeekCompletions += s.WeekCompletions
		a.ThisMonthCompletions += s.MonthCompletions
		a.BestStreak = max(a.BestStreak, s.CurrentStreak)

		cs, ok := byCategory[s.Habit.Category]
		if !ok {
			cs = &CategoryStats{Category: s.Habit.Category}
			byCategory[s.Habit.Category] = cs
		}
		cs.Completed += s.TotalCompletions
		cs.Total += s.PossibleCompletions
		cs.HabitCount++
		cs.BestStreak = max(cs.BestStreak, s.CurrentStreak)
	}
	a.CompletionRate = percent(a.TotalCompletions, a.TotalPossible)

	for _, c := range models.Categories {
		cs, ok := byCategory[c]
		if !ok || cs.Total == 0 {
			continue
		}
		cs.Percentage = percent(cs.Completed, cs.Total)
		a.Categories = append(a.Categories, *cs)
	}
	return a
}

// HabitDetail builds the single-habit view. Completions dated before the habit's
// creation are left out of its total; windows and streaks use every completion.
// For weekly habits CompletedToday reports a completion anywhere in [monday(today), today].
func (e *Engine) HabitDetail(h models.Habit) (HabitDetail, error) {
	days, err := e.completionDays(h)
	if err != nil {
		return HabitDetail{}, err
	}
	stats, err := e.statsFromDays(h, days)
	if err != nil {
		return HabitDetail{}, err
	}

	created := e.createdOn(h)
	stats.TotalCompletions = 0
	for _, d := range days {
		if !d.Before(created) {
			stats.TotalCompletions++
		}
	}
	if h.Cadence == models.CadenceWeekly {
		stats.CompletedToday = stats.WeekCompletions > 0
	}

	yesterday := e.clock.Today().AddDate(0, 0, -1)
	detail := HabitDetail{
		HabitStats:     stats,
		ShowYesterday:  h.Cadence == models.CadenceDaily && !created.After(yesterday),
		CompletionRate: percent(stats.TotalCompletions, stats.PossibleCompletions),
	}
	if detail.ShowYesterday {
		_, detail.CompletedYesterday = dayKeys(days)[utils.FormatDate(yesterday)]
	}
	return detail, nil
}

// Notifications counts daily habits not done today and weekly habits not done this week.
func (e *Engine) Notifications(habits []models.Habit) (Notifications, error) {
	a, err := e.Analytics(habits)
	if err != nil {
		return Notifications{}, err
	}
	return NotificationsFromStats(a.Habits), nil
}

func NotificationsFromStats(stats []HabitStats) Notifications {
	var n Notifications
	for _, s := range stats {
		switch s.Habit.Cadence {
		case models.CadenceDaily:
			if !s.CompletedToday {
				n.IncompleteDaily++
			}
		case models.CadenceWeekly:
			if s.WeekCompletions == 0 {
				n.IncompleteWeekly++
			}
		}
	}
	return n
}
