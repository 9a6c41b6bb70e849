package jobhunt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/utils"
)

type AppCmd struct {
	Add    AppAddCmd    `cmd:"" help:"Track a new job application."`
	List   AppListCmd   `cmd:"" help:"List job applications."`
	Status AppStatusCmd `cmd:"" help:"Update an application's status."`
}

type AppAddCmd struct {
	Company string `arg:"" help:"Company name."`
	Title   string `arg:"" help:"Job title."`
	Status  string `help:"wishlist, applied, interviewing, offered or rejected." default:"wishlist"`
	Due     string `help:"Due date in YYYY-MM-DD format."`
	Link    string `help:"Link to the job posting."`
	Notes   string `help:"Free-form notes."`
}

func (c *AppAddCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	status, err := models.ParseApplicationStatus(c.Status)
	if err != nil {
		return err
	}
	if c.Due != "" {
		if _, err := utils.ParseDate(c.Due); err != nil {
			return err
		}
	}
	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}

	now := clk.Now()
	app := models.Application{
		ID:        uuid.New().String(),
		OwnerID:   user.ID,
		Company:   strings.TrimSpace(c.Company),
		JobTitle:  strings.TrimSpace(c.Title),
		Status:    status,
		Due:       c.Due,
		JobLink:   c.Link,
		Notes:     c.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := ctx.Store.AddApplication(app); err != nil {
		return err
	}
	fmt.Printf("Added application: %s at %s [%s] (id %s)\n", app.JobTitle, app.Company, app.Status, shortID(app.ID))

	return checkApplicationBadges(ctx, user.ID)
}

type AppListCmd struct {
	Status string `help:"Only show applications with this status."`
}

func (c *AppListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	var filter models.ApplicationStatus
	if c.Status != "" {
		if filter, err = models.ParseApplicationStatus(c.Status); err != nil {
			return err
		}
	}
	apps, err := ctx.Store.GetApplicationsForOwner(user.ID)
	if err != nil {
		return err
	}

	shown := 0
	for _, a := range apps {
		if filter != "" && a.Status != filter {
			continue
		}
		due := ""
		if a.Due != "" {
			due = " due " + a.Due
		}
		fmt.Printf("%s  %-13s %s at %s%s\n", shortID(a.ID), a.Status, a.JobTitle, a.Company, due)
		shown++
	}
	if shown == 0 {
		fmt.Println("No applications found.")
	}
	return nil
}

type AppStatusCmd struct {
	ID     string `arg:"" help:"Application ID (or a unique prefix)."`
	Status string `arg:"" help:"New status."`
}

func (c *AppStatusCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	status, err := models.ParseApplicationStatus(c.Status)
	if err != nil {
		return err
	}
	app, err := findApplication(ctx, user.ID, c.ID)
	if err != nil {
		return err
	}
	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}
	if err := ctx.Store.UpdateApplicationStatus(app.ID, status, clk.Now()); err != nil {
		return err
	}
	fmt.Printf("%s at %s: %s -> %s\n", app.JobTitle, app.Company, app.Status, status)

	return checkApplicationBadges(ctx, user.ID)
}

// findApplication resolves a full ID or a unique prefix among the owner's applications.
func findApplication(ctx *cli.Context, ownerID, id string) (models.Application, error) {
	app, err := ctx.Store.GetApplication(id)
	if err == nil {
		if app.OwnerID != ownerID {
			return models.Application{}, fmt.Errorf("application %q not found", id)
		}
		return app, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.Application{}, err
	}

	apps, err := ctx.Store.GetApplicationsForOwner(ownerID)
	if err != nil {
		return models.Application{}, err
	}
	var matches []models.Application
	for _, a := range apps {
		if strings.HasPrefix(a.ID, id) {
			matches = append(matches, a)
		}
	}
	switch len(matches) {
	case 0:
		return models.Application{}, fmt.Errorf("application %q not found", id)
	case 1:
		return matches[0], nil
	default:
		return models.Application{}, fmt.Errorf("application id %q is ambiguous", id)
	}
}

func checkApplicationBadges(ctx *cli.Context, ownerID string) error {
	evaluator, err := ctx.Evaluator()
	if err != nil {
		return err
	}
	awarded, err := evaluator.CheckApplicationBadges(ownerID)
	cli.PrintAwarded(awarded)
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
