package badge

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/badges"
	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/constants"
)

type BadgeCmd struct {
	List  BadgeListCmd  `cmd:"" help:"List earned badges." default:"1"`
	Check BadgeCheckCmd `cmd:"" help:"Re-evaluate every badge for the active user."`
}

type BadgeListCmd struct {
	Highest bool `help:"Only show the top tier of each badge family."`
}

func (c *BadgeListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	earned, err := ctx.Store.GetBadges(user.ID)
	if err != nil {
		return err
	}
	if len(earned) == 0 {
		fmt.Println("No badges earned yet.")
		return nil
	}

	if c.Highest {
		for _, t := range badges.Highest(earned) {
			fmt.Printf("🏅 %s\n", constants.BadgeLabel(t))
		}
		return nil
	}

	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}
	for _, b := range earned {
		fmt.Printf("🏅 %-28s earned %s\n", constants.BadgeLabel(b.BadgeType), b.CreatedAt.In(clk.Location()).Format(constants.DateFormat))
	}
	return nil
}

type BadgeCheckCmd struct{}

func (c *BadgeCheckCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	evaluator, err := ctx.Evaluator()
	if err != nil {
		return err
	}
	awarded, err := evaluator.CheckAll(user.ID)
	cli.PrintAwarded(awarded)
	if err != nil {
		return err
	}
	if len(awarded) == 0 {
		fmt.Println("No new badges.")
	}
	return nil
}
