// Package clock supplies "today" to the engine so date logic never reads the wall clock directly.
package clock

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// Clock reports the current civil date in the user's timezone.
type Clock interface {
	Today() time.Time
	Now() time.Time
	Location() *time.Location
}

// System reads the wall clock in a fixed location.
type System struct {
	Loc *time.Location
}

func (s System) Location() *time.Location {
	if s.Loc == nil {
		return time.Local
	}
	return s.Loc
}

func (s System) Now() time.Time {
	return time.Now().In(s.Location())
}

func (s System) Today() time.Time {
	return utils.CivilDate(s.Now())
}

// FromSettings builds a System clock for the configured timezone.
func FromSettings(settings models.Settings) (System, error) {
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return System{}, fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return System{Loc: loc}, nil
}

// Fixed always reports the same day. Used by tests and by --date overrides.
type Fixed struct {
	Day time.Time
	Loc *time.Location
}

func (f Fixed) Today() time.Time {
	return utils.CivilDate(f.Day)
}

// Now returns noon on the fixed day in the clock's location.
func (f Fixed) Now() time.Time {
	y, m, d := f.Today().Date()
	return time.Date(y, m, d, 12, 0, 0, 0, f.Location())
}

func (f Fixed) Location() *time.Location {
	if f.Loc == nil {
		return time.UTC
	}
	return f.Loc
}

// MustParse returns a Fixed clock for a YYYY-MM-DD string and panics on bad input.
func MustParse(day string) Fixed {
	d, err := utils.ParseDate(day)
	if err != nil {
		panic(err)
	}
	return Fixed{Day: d}
}
