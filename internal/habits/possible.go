package habits

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// TotalPossibleCompletions is the number of days (daily) or weeks (weekly) the habit has existed,
// inclusive of today, and never less than 1.
func (e *Engine) TotalPossibleCompletions(h models.Habit) (int, error) {
	return possibleCompletions(h.Cadence, e.createdOn(h), e.clock.Today())
}

func possibleCompletions(cadence models.Cadence, created, today time.Time) (int, error) {
	days := utils.DaysBetween(created, today) + 1
	if days < 1 {
		days = 1
	}
	switch cadence {
	case models.CadenceDaily:
		return days, nil
	case models.CadenceWeekly:
		return max(1, (days+6)/7), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCadence, cadence)
	}
}
