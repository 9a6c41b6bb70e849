package settings

import (
	"errors"
	"fmt"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone *string `help:"IANA timezone used to decide what 'today' is (or Local)."`
	User     *string `help:"Set the active user."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List || (c.Timezone == nil && c.User == nil) {
		fmt.Println("Current Settings:")
		fmt.Printf("  Timezone:     %s\n", settings.Timezone)
		fmt.Printf("  Active user:  %s\n", orNone(settings.ActiveUser))
		fmt.Printf("  Week starts:  Monday\n")
		return nil
	}

	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone %q", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
	}
	if c.User != nil {
		if _, err := ctx.Store.GetUserByName(*c.User); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("user %q not found", *c.User)
			}
			return err
		}
		settings.ActiveUser = *c.User
	}

	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated successfully.")
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
