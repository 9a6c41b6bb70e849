package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(ctx.Store, clk, user), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
