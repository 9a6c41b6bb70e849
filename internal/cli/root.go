package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/badges"
	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/habits"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/utils"
)

type Context struct {
	Store storage.Provider
	// User overrides the active user stored in settings.
	User string
	// Clock overrides the clock built from the timezone setting.
	Clock clock.Clock
}

// ResolveClock returns the override clock or one built from the timezone setting.
func (c *Context) ResolveClock() (clock.Clock, error) {
	if c.Clock != nil {
		return c.Clock, nil
	}
	settings, err := c.Store.GetSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	clk, err := clock.FromSettings(settings)
	if err != nil {
		return nil, err
	}
	c.Clock = clk
	return clk, nil
}

// ActiveUser resolves --user, falling back to the active_user setting.
func (c *Context) ActiveUser() (models.User, error) {
	name := c.User
	if name == "" {
		settings, err := c.Store.GetSettings()
		if err != nil {
			return models.User{}, fmt.Errorf("failed to get settings: %w", err)
		}
		name = settings.ActiveUser
	}
	if name == "" {
		return models.User{}, errors.New("no active user, run 'momentum user add NAME' first")
	}
	u, err := c.Store.GetUserByName(name)
	if errors.Is(err, storage.ErrNotFound) {
		return models.User{}, fmt.Errorf("user %q not found", name)
	}
	return u, err
}

func (c *Context) Engine() (*habits.Engine, error) {
	clk, err := c.ResolveClock()
	if err != nil {
		return nil, err
	}
	return habits.NewEngine(c.Store, clk), nil
}

func (c *Context) Evaluator() (*badges.Evaluator, error) {
	clk, err := c.ResolveClock()
	if err != nil {
		return nil, err
	}
	return badges.NewEvaluator(c.Store, clk), nil
}

// FindHabit looks up one of the owner's habits by name.
func (c *Context) FindHabit(ownerID, name string) (models.Habit, error) {
	h, err := c.Store.GetHabitByName(ownerID, name)
	if errors.Is(err, storage.ErrNotFound) {
		return models.Habit{}, fmt.Errorf("habit %q not found", name)
	}
	return h, err
}

// ParseDay parses an optional YYYY-MM-DD flag; empty means today (the zero time).
func ParseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return utils.ParseDate(s)
}

// PrintAwarded announces newly earned badges.
func PrintAwarded(awarded []constants.BadgeType) {
	for _, b := range awarded {
		fmt.Printf("🏅 Badge earned: %s\n", constants.BadgeLabel(b))
	}
}
