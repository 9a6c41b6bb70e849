// Package habits computes completion state, streaks and analytics for habits.
package habits

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// ErrUnknownCadence is returned when a habit carries a cadence the engine cannot evaluate.
var ErrUnknownCadence = errors.New("unknown cadence")

// Store is the slice of storage.Provider the engine reads and writes.
type Store interface {
	AddCompletion(models.Completion) (bool, error)
	HasCompletion(habitID, startDay, endDay string) (bool, error)
	GetCompletionsForHabit(habitID string) ([]models.Completion, error)
	DeleteCompletionsInRange(habitID, startDay, endDay string) (int64, error)
}

// Engine evaluates habits against a store and an injected clock.
type Engine struct {
	store Store
	clock clock.Clock
}

func NewEngine(store Store, clk clock.Clock) *Engine {
	return &Engine{store: store, clock: clk}
}

// Today is the engine's current civil date.
func (e *Engine) Today() time.Time {
	return e.clock.Today()
}

// Location is the timezone civil dates are taken in.
func (e *Engine) Location() *time.Location {
	return e.clock.Location()
}

// createdOn is the civil date the habit was created in the user's timezone.
func (e *Engine) createdOn(h models.Habit) time.Time {
	return utils.CivilDate(h.CreatedAt.In(e.clock.Location()))
}

// completionWindow returns the inclusive range a completion must fall in to count for day.
func completionWindow(cadence models.Cadence, day time.Time) (time.Time, time.Time, error) {
	switch cadence {
	case models.CadenceDaily:
		return day, day, nil
	case models.CadenceWeekly:
		return utils.StartOfWeek(day), day, nil
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrUnknownCadence, cadence)
	}
}

func (e *Engine) newCompletion(h models.Habit, day time.Time) models.Completion {
	return models.Completion{
		ID:        uuid.New().String(),
		HabitID:   h.ID,
		Day:       utils.FormatDate(day),
		CreatedAt: e.clock.Now(),
	}
}

// completionDays fetches the habit's completions as civil dates, ascending.
func (e *Engine) completionDays(h models.Habit) ([]time.Time, error) {
	completions, err := e.store.GetCompletionsForHabit(h.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions for %q: %w", h.Name, err)
	}
	days := make([]time.Time, 0, len(completions))
	for _, c := range completions {
		d, err := utils.ParseDate(c.Day)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}
