package social

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
)

type UserCmd struct {
	Add  UserAddCmd  `cmd:"" help:"Create a user."`
	List UserListCmd `cmd:"" help:"List users."`
	Use  UserUseCmd  `cmd:"" help:"Switch the active user."`
}

type UserAddCmd struct {
	Name string `arg:"" help:"Username."`
}

func (c *UserAddCmd) Run(ctx *cli.Context) error {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("username cannot be empty")
	}
	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}
	u := models.User{ID: uuid.New().String(), Username: name, CreatedAt: clk.Now()}
	if err := ctx.Store.AddUser(u); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return fmt.Errorf("user %q already exists", name)
		}
		return err
	}
	fmt.Printf("Added user: %s\n", name)

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if settings.ActiveUser == "" {
		settings.ActiveUser = name
		if err := ctx.Store.SaveSettings(settings); err != nil {
			return fmt.Errorf("failed to save settings: %w", err)
		}
		fmt.Printf("Active user is now %s\n", name)
	}
	return nil
}

type UserListCmd struct{}

func (c *UserListCmd) Run(ctx *cli.Context) error {
	users, err := ctx.Store.GetAllUsers()
	if err != nil {
		return err
	}
	if len(users) == 0 {
		fmt.Println("No users found.")
		return nil
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	for _, u := range users {
		marker := " "
		if u.Username == settings.ActiveUser {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, u.Username)
	}
	return nil
}

type UserUseCmd struct {
	Name string `arg:"" help:"Username to switch to."`
}

func (c *UserUseCmd) Run(ctx *cli.Context) error {
	if _, err := ctx.Store.GetUserByName(c.Name); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %q not found", c.Name)
		}
		return err
	}
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	settings.ActiveUser = c.Name
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("Active user is now %s\n", c.Name)
	return nil
}
