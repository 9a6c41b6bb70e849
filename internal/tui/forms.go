package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/habits"
	"github.com/julianstephens/momentum/internal/models"
)

// HabitDraft holds the fields of a habit being created.
type HabitDraft struct {
	Name        string
	Description string
	Cadence     models.Cadence
	Category    models.Category
}

// Complete reports whether every required field is filled in.
func (d HabitDraft) Complete() bool {
	return strings.TrimSpace(d.Name) != "" && d.Cadence != "" && d.Category != ""
}

func (d HabitDraft) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("habit name cannot be empty")
	}
	if _, err := models.ParseCadence(string(d.Cadence)); err != nil {
		return err
	}
	if _, err := models.ParseCategory(string(d.Category)); err != nil {
		return err
	}
	return nil
}

// Habit builds the record to store for ownerID.
func (d HabitDraft) Habit(ownerID string, now time.Time) models.Habit {
	return models.Habit{
		ID:          uuid.New().String(),
		OwnerID:     ownerID,
		Name:        strings.TrimSpace(d.Name),
		Description: strings.TrimSpace(d.Description),
		Cadence:     d.Cadence,
		Category:    d.Category,
		CreatedAt:   now,
	}
}

// NewHabitForm creates the add-habit form. Fields already set on d are kept as defaults.
func NewHabitForm(d *HabitDraft) *huh.Form {
	if d.Cadence == "" {
		d.Cadence = models.CadenceDaily
	}
	if d.Category == "" {
		d.Category = models.CategoryHealth
	}

	categories := make([]huh.Option[models.Category], 0, len(models.Categories))
	for _, c := range models.Categories {
		categories = append(categories, huh.NewOption(habits.CategoryLabel(c), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&d.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Description("Optional").
				Value(&d.Description),
			huh.NewSelect[models.Cadence]().
				Title("Cadence").
				Options(
					huh.NewOption("Daily", models.CadenceDaily),
					huh.NewOption("Weekly", models.CadenceWeekly),
				).
				Value(&d.Cadence),
			huh.NewSelect[models.Category]().
				Title("Category").
				Options(categories...).
				Value(&d.Category),
		),
	).WithTheme(huh.ThemeDracula())
}
