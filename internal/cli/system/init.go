package system

import (
	"fmt"
	"os"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/storage/postgres"
)

type InitCmd struct {
	Force bool `help:"Force reset by deleting existing database before initialization."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := c.reset(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized momentum storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}

// reset deletes the SQLite database file. PostgreSQL databases are never dropped.
func (c *InitCmd) reset(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*postgres.Store); ok {
		return fmt.Errorf("--force is only supported for SQLite storage")
	}

	dbPath := ctx.Store.GetConfigPath()
	if _, err := os.Stat(dbPath); err == nil {
		// Close first to release the file lock
		if err := ctx.Store.Close(); err != nil {
			return fmt.Errorf("failed to close existing database: %w", err)
		}
		for _, p := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
			if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
		}
		fmt.Printf("Deleted existing database at: %s\n", dbPath)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to access existing database: %w", err)
	}
	return nil
}
