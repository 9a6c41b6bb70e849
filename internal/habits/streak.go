package habits

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// CurrentStreak counts consecutive cadence units ending at today's unit that hold a completion.
// It is 0 when today (or this ISO week) has none.
func (e *Engine) CurrentStreak(h models.Habit) (int, error) {
	days, err := e.completionDays(h)
	if err != nil {
		return 0, err
	}
	return currentStreak(h.Cadence, days, e.clock.Today())
}

// LongestStreak is the longest run of consecutive cadence units with a completion, at any time.
func (e *Engine) LongestStreak(h models.Habit) (int, error) {
	days, err := e.completionDays(h)
	if err != nil {
		return 0, err
	}
	return longestStreak(h.Cadence, days)
}

func dayKeys(days []time.Time) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[utils.FormatDate(d)] = struct{}{}
	}
	return set
}

func weekKeys(days []time.Time) map[string]struct{} {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[utils.FormatDate(utils.StartOfWeek(d))] = struct{}{}
	}
	return set
}

func currentStreak(cadence models.Cadence, days []time.Time, today time.Time) (int, error) {
	var (
		set    map[string]struct{}
		cursor time.Time
		step   int
	)
	switch cadence {
	case models.CadenceDaily:
		set, cursor, step = dayKeys(days), today, 1
	case models.CadenceWeekly:
		// A week counts if any day Monday..Sunday has a completion.
		set, cursor, step = weekKeys(days), utils.StartOfWeek(today), 7
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCadence, cadence)
	}

	streak := 0
	for {
		if _, ok := set[utils.FormatDate(cursor)]; !ok {
			return streak, nil
		}
		streak++
		cursor = cursor.AddDate(0, 0, -step)
	}
}

func longestStreak(cadence models.Cadence, days []time.Time) (int, error) {
	var (
		set  map[string]struct{}
		step int
	)
	switch cadence {
	case models.CadenceDaily:
		set, step = dayKeys(days), 1
	case models.CadenceWeekly:
		set, step = weekKeys(days), 7
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCadence, cadence)
	}

	longest := 0
	for key := range set {
		start, _ := utils.ParseDate(key)
		// Only count runs from their first unit.
		if _, ok := set[utils.FormatDate(start.AddDate(0, 0, -step))]; ok {
			continue
		}
		run := 1
		for next := start.AddDate(0, 0, step); ; next = next.AddDate(0, 0, step) {
			if _, ok := set[utils.FormatDate(next)]; !ok {
				break
			}
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest, nil
}
