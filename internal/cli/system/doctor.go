package system

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name      string
	needsDB   bool
	run       func(*cli.Context) error
	warnsOnly bool
}

var checks = []check{
	{name: "Schema version", needsDB: true, run: checkSchemaVersion},
	{name: "Duplicate completions", needsDB: true, run: checkDuplicateCompletions},
	{name: "Orphan completions", needsDB: true, run: checkOrphanCompletions},
	{name: "Timezone setting", needsDB: true, run: checkTimezoneSetting},
	{name: "Active user", needsDB: true, run: checkActiveUser, warnsOnly: true},
	{name: "Clock/timezone", run: func(*cli.Context) error { return checkClock(time.Now()) }},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := true
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError, dbReachable = true, false
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Printf("⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		switch {
		case err == nil:
			fmt.Printf("✓ %s: OK\n", c.name)
		case c.warnsOnly:
			fmt.Printf("⚠ %s: WARNING\n", c.name)
			fmt.Printf("   %v\n", err)
		default:
			fmt.Printf("❌ %s: FAIL\n", c.name)
			fmt.Printf("   Error: %v\n", err)
			logger.Warn("doctor check failed", "check", c.name, "error", err)
			hasError = true
		}
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if _, err := ctx.Store.GetSettings(); err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	current, latest, err := ctx.Store.SchemaVersion()
	if err != nil {
		return err
	}
	switch {
	case current > latest:
		return fmt.Errorf("database schema version %d is newer than this binary supports (%d)", current, latest)
	case current < latest:
		return fmt.Errorf("schema version %d, %d available: run 'momentum migrate'", current, latest)
	}
	return nil
}

func checkDuplicateCompletions(ctx *cli.Context) error {
	n, err := ctx.Store.CountDuplicateCompletions()
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("found %d (habit, day) pairs with more than one completion", n)
	}
	return nil
}

func checkOrphanCompletions(ctx *cli.Context) error {
	n, err := ctx.Store.CountOrphanCompletions()
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("found %d completions whose habit no longer exists", n)
	}
	return nil
}

func checkTimezoneSetting(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone %q: fix with 'momentum settings --timezone'", settings.Timezone)
	}
	return nil
}

func checkActiveUser(ctx *cli.Context) error {
	_, err := ctx.ActiveUser()
	return err
}

// checkClock rejects obviously wrong system clocks.
func checkClock(now time.Time) error {
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
