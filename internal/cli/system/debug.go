package system

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/momentum/internal/cli"
)

type DebugCmd struct {
	DBPath       *DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpHabit    *DebugDumpHabitCmd    `cmd:"" help:"Dump a habit and its completions as JSON."`
	DumpBadges   *DebugDumpBadgesCmd   `cmd:"" help:"Dump the active user's badges as JSON."`
	DumpSettings *DebugDumpSettingsCmd `cmd:"" help:"Dump settings data as JSON."`
}

func printJSON(v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return printJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpHabitCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (cmd *DebugDumpHabitCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	h, err := ctx.FindHabit(user.ID, cmd.Name)
	if err != nil {
		return err
	}
	completions, err := ctx.Store.GetCompletionsForHabit(h.ID)
	if err != nil {
		return err
	}
	return printJSON(map[string]any{"habit": h, "completions": completions})
}

type DebugDumpBadgesCmd struct{}

func (cmd *DebugDumpBadgesCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	earned, err := ctx.Store.GetBadges(user.ID)
	if err != nil {
		return err
	}
	return printJSON(earned)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	return printJSON(settings)
}
