package jobhunt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/models"
)

type ContactCmd struct {
	Add  ContactAddCmd  `cmd:"" help:"Add a networking contact."`
	List ContactListCmd `cmd:"" help:"List contacts."`
}

type ContactAddCmd struct {
	Name    string `arg:"" help:"Contact name."`
	Email   string `help:"Email address."`
	Company string `help:"Company."`
}

func (c *ContactAddCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return fmt.Errorf("contact name cannot be empty")
	}
	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}

	contact := models.Contact{
		ID:        uuid.New().String(),
		OwnerID:   user.ID,
		Name:      name,
		Email:     c.Email,
		Company:   c.Company,
		CreatedAt: clk.Now(),
	}
	if err := ctx.Store.AddContact(contact); err != nil {
		return err
	}
	fmt.Printf("Added contact: %s\n", contact.Name)

	evaluator, err := ctx.Evaluator()
	if err != nil {
		return err
	}
	awarded, err := evaluator.CheckContactBadges(user.ID)
	cli.PrintAwarded(awarded)
	return err
}

type ContactListCmd struct{}

func (c *ContactListCmd) Run(ctx *cli.Context) error {
	user, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	contacts, err := ctx.Store.GetContactsForOwner(user.ID)
	if err != nil {
		return err
	}
	if len(contacts) == 0 {
		fmt.Println("No contacts found.")
		return nil
	}
	for _, ct := range contacts {
		line := ct.Name
		if ct.Company != "" {
			line += " (" + ct.Company + ")"
		}
		if ct.Email != "" {
			line += " <" + ct.Email + ">"
		}
		fmt.Println(line)
	}
	return nil
}
