package habits

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// Toggle flips the completion state of h for day and returns the new state.
//
// Daily habits look at day alone. Weekly habits look at [monday(day), day]: any
// completion in that range is removed (all of them), otherwise one is recorded on
// day. A zero day means today. Callers re-evaluate badges when Toggle returns true.
func (e *Engine) Toggle(h models.Habit, day time.Time) (bool, error) {
	if day.IsZero() {
		day = e.clock.Today()
	}
	day = utils.CivilDate(day)

	start, end, err := completionWindow(h.Cadence, day)
	if err != nil {
		return false, err
	}
	startDay, endDay := utils.FormatDate(start), utils.FormatDate(end)

	exists, err := e.store.HasCompletion(h.ID, startDay, endDay)
	if err != nil {
		return false, err
	}

	if exists {
		removed, err := e.store.DeleteCompletionsInRange(h.ID, startDay, endDay)
		if err != nil {
			return false, fmt.Errorf("failed to clear completion: %w", err)
		}
		logger.Debug("habit toggled off", "habit", h.Name, "day", endDay, "removed", removed)
		return false, nil
	}

	created, err := e.store.AddCompletion(e.newCompletion(h, day))
	if err != nil {
		return false, fmt.Errorf("failed to record completion: %w", err)
	}
	if !created {
		logger.Debug("completion already recorded by another writer", "habit", h.Name, "day", endDay)
	}
	logger.Debug("habit toggled on", "habit", h.Name, "day", endDay)
	return true, nil
}

// IsCompletedForDate reports whether h counts as done for day (zero means today).
// Weekly habits count any completion from the Monday of day's week through day.
func (e *Engine) IsCompletedForDate(h models.Habit, day time.Time) (bool, error) {
	if day.IsZero() {
		day = e.clock.Today()
	}
	start, end, err := completionWindow(h.Cadence, utils.CivilDate(day))
	if err != nil {
		return false, err
	}
	return e.store.HasCompletion(h.ID, utils.FormatDate(start), utils.FormatDate(end))
}
