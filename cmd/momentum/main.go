package main

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/badge"
	"github.com/julianstephens/momentum/internal/cli/habit"
	"github.com/julianstephens/momentum/internal/cli/jobhunt"
	"github.com/julianstephens/momentum/internal/cli/settings"
	"github.com/julianstephens/momentum/internal/cli/social"
	"github.com/julianstephens/momentum/internal/cli/system"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/errors"
	"github.com/julianstephens/momentum/internal/keyring"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/storage"
	"github.com/julianstephens/momentum/internal/storage/postgres"
	"github.com/julianstephens/momentum/internal/storage/sqlite"
)

var CLI struct {
	Version  kong.VersionFlag
	Config   string `help:"SQLite database path, PostgreSQL connection string, or 'keyring'. PostgreSQL passwords must NOT be embedded in the flag; use .pgpass, MOMENTUM_DB_CONNECTION or the OS keyring." type:"string" default:"${default_config}" env:"MOMENTUM_CONFIG"`
	User     string `help:"Act as this user instead of the active one." env:"MOMENTUM_USER"`
	Debug    bool   `help:"Log debug output to stderr." env:"MOMENTUM_DEBUG"`
	LogLevel string `help:"Log level (debug, info, warn, error)." env:"MOMENTUM_LOG_LEVEL"`

	Init     system.InitCmd       `cmd:"" help:"Initialize momentum storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the database connection string in the OS keyring."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`

	Users     social.UserCmd     `cmd:"" name:"user" help:"Manage local users."`
	Habit     habit.HabitCmd     `cmd:"" help:"Manage and toggle habits."`
	Analytics habit.AnalyticsCmd `cmd:"" help:"Show completion analytics."`
	Badges    badge.BadgeCmd     `cmd:"" help:"List and check badges."`
	App       jobhunt.AppCmd     `cmd:"" help:"Track job applications."`
	Contact   jobhunt.ContactCmd `cmd:"" help:"Track networking contacts."`
	Social    social.SocialCmd   `cmd:"" help:"Friends and leaderboard."`
}

func main() {
	// .env is optional
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracking with streaks, analytics and badges"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
		},
	)

	store, configDir, err := openStore(CLI.Config)
	errors.Fatal(err)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, ConfigDir: configDir, Level: CLI.LogLevel}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("starting", "command", ctx.Command(), "storage", store.GetConfigPath())

	appCtx := &cli.Context{
		Store: store,
		User:  CLI.User,
	}

	// init creates the database, keyring must work before one exists
	if cmd := ctx.Command(); !strings.HasPrefix(cmd, "init") && !strings.HasPrefix(cmd, "keyring") {
		errors.Fatal(store.Load())
	}
	defer store.Close()

	errors.Fatal(ctx.Run(appCtx))
}

// openStore picks the backend for config and returns it with the directory logs go to.
func openStore(config string) (storage.Provider, string, error) {
	fromKeyring := false
	if config == constants.KeyringConfigValue {
		connStr, err := keyring.ResolveConnectionString()
		if err != nil {
			return nil, "", fmt.Errorf("failed to read connection string: %w", err)
		}
		config, fromKeyring = connStr, true
	}

	if postgres.IsConnString(config) {
		if err := postgres.ValidateConnString(config); err != nil {
			if !fromKeyring || !stderrors.Is(err, postgres.ErrEmbeddedCredentials) {
				return nil, "", fmt.Errorf("%w\n       store credentials with 'momentum keyring set' or %s, or use ~/.pgpass", err, constants.EnvDBConnection)
			}
		}
		dir, err := defaultConfigDir()
		if err != nil {
			return nil, "", err
		}
		return postgres.New(config), dir, nil
	}

	path, err := expandHome(config)
	if err != nil {
		return nil, "", err
	}
	return sqlite.NewStore(path), filepath.Dir(path), nil
}

func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}

func defaultConfigDir() (string, error) {
	path, err := expandHome(constants.DefaultConfigPath)
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}
