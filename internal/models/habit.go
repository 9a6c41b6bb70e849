package models

import (
	"fmt"
	"strings"
	"time"
)

// Cadence is how often a habit is expected to be completed.
type Cadence string

const (
	CadenceDaily  Cadence = "daily"
	CadenceWeekly Cadence = "weekly"
)

// Category groups habits for analytics and streak badges.
type Category string

const (
	CategoryHealth       Category = "health"
	CategoryProductivity Category = "productivity"
	CategoryLearning     Category = "learning"
)

// Categories lists every category in display order.
var Categories = []Category{CategoryHealth, CategoryProductivity, CategoryLearning}

// ParseCadence validates user input and returns the matching cadence.
func ParseCadence(s string) (Cadence, error) {
	switch c := Cadence(strings.ToLower(strings.TrimSpace(s))); c {
	case CadenceDaily, CadenceWeekly:
		return c, nil
	default:
		return "", fmt.Errorf("invalid cadence %q: must be daily or weekly", s)
	}
}

// ParseCategory validates user input and returns the matching category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Categories {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category %q: must be health, productivity or learning", s)
}

type Habit struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Cadence     Cadence   `json:"cadence"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"created_at"`
}

// Completion records that a habit was done on a civil date.
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}
