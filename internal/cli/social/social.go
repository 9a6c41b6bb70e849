package social

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage"
)

type SocialCmd struct {
	Request     SocialRequestCmd     `cmd:"" help:"Send a friend request."`
	Accept      SocialAcceptCmd      `cmd:"" help:"Accept a friend request."`
	Decline     SocialDeclineCmd     `cmd:"" help:"Decline a friend request."`
	List        SocialListCmd        `cmd:"" help:"List friends and pending requests."`
	Leaderboard SocialLeaderboardCmd `cmd:"" help:"Rank you and your friends by total completions."`
}

type SocialRequestCmd struct {
	User string `arg:"" help:"Username to befriend."`
}

func (c *SocialRequestCmd) Run(ctx *cli.Context) error {
	me, other, err := pair(ctx, c.User)
	if err != nil {
		return err
	}
	existing, err := ctx.Store.GetFriendshipBetween(me.ID, other.ID)
	switch {
	case err == nil:
		return fmt.Errorf("a friendship with %s already exists (%s)", other.Username, existing.Status)
	case !errors.Is(err, storage.ErrNotFound):
		return err
	}

	clk, err := ctx.ResolveClock()
	if err != nil {
		return err
	}
	now := clk.Now()
	f := models.Friendship{
		ID:         uuid.New().String(),
		SenderID:   me.ID,
		ReceiverID: other.ID,
		Status:     models.FriendshipPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := ctx.Store.AddFriendship(f); err != nil {
		return err
	}
	fmt.Printf("Friend request sent to %s\n", other.Username)
	return nil
}

type SocialAcceptCmd struct {
	User string `arg:"" help:"User whose request to accept."`
}

func (c *SocialAcceptCmd) Run(ctx *cli.Context) error {
	me, other, err := respond(ctx, c.User, models.FriendshipAccepted)
	if err != nil {
		return err
	}
	fmt.Printf("You and %s are now friends\n", other.Username)

	evaluator, err := ctx.Evaluator()
	if err != nil {
		return err
	}
	for _, u := range []models.User{me, other} {
		awarded, err := evaluator.CheckSocialBadges(u.ID)
		if err != nil {
			return err
		}
		if u.ID == me.ID {
			cli.PrintAwarded(awarded)
		}
	}
	return nil
}

type SocialDeclineCmd struct {
	User string `arg:"" help:"User whose request to decline."`
}

func (c *SocialDeclineCmd) Run(ctx *cli.Context) error {
	_, other, err := respond(ctx, c.User, models.FriendshipDeclined)
	if err != nil {
		return err
	}
	fmt.Printf("Declined friend request from %s\n", other.Username)
	return nil
}

// respond moves a pending request sent by username to the active user into status.
func respond(ctx *cli.Context, username string, status models.FriendshipStatus) (models.User, models.User, error) {
	me, other, err := pair(ctx, username)
	if err != nil {
		return me, other, err
	}
	f, err := ctx.Store.GetFriendshipBetween(me.ID, other.ID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && (f.ReceiverID != me.ID || f.Status != models.FriendshipPending)) {
		return me, other, fmt.Errorf("no pending friend request from %s", other.Username)
	}
	if err != nil {
		return me, other, err
	}
	clk, err := ctx.ResolveClock()
	if err != nil {
		return me, other, err
	}
	return me, other, ctx.Store.UpdateFriendshipStatus(f.ID, status, clk.Now())
}

// pair resolves the active user and another user by name.
func pair(ctx *cli.Context, username string) (models.User, models.User, error) {
	me, err := ctx.ActiveUser()
	if err != nil {
		return models.User{}, models.User{}, err
	}
	other, err := ctx.Store.GetUserByName(username)
	if errors.Is(err, storage.ErrNotFound) {
		return me, models.User{}, fmt.Errorf("user %q not found", username)
	}
	if err != nil {
		return me, models.User{}, err
	}
	if other.ID == me.ID {
		return me, other, errors.New("you cannot befriend yourself")
	}
	return me, other, nil
}

type SocialListCmd struct{}

func (c *SocialListCmd) Run(ctx *cli.Context) error {
	me, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	friendships, err := ctx.Store.GetFriendshipsForUser(me.ID)
	if err != nil {
		return err
	}
	if len(friendships) == 0 {
		fmt.Println("No friends yet.")
		return nil
	}
	for _, f := range friendships {
		other, err := ctx.Store.GetUser(f.Other(me.ID))
		if err != nil {
			return err
		}
		direction := ""
		if f.Status == models.FriendshipPending {
			direction = " (incoming)"
			if f.SenderID == me.ID {
				direction = " (outgoing)"
			}
		}
		fmt.Printf("%-20s %s%s\n", other.Username, f.Status, direction)
	}
	return nil
}

// LeaderboardEntry is one row of the friends leaderboard.
type LeaderboardEntry struct {
	User        models.User
	Completions int
}

type SocialLeaderboardCmd struct{}

func (c *SocialLeaderboardCmd) Run(ctx *cli.Context) error {
	me, err := ctx.ActiveUser()
	if err != nil {
		return err
	}
	entries, err := Leaderboard(ctx.Store, me)
	if err != nil {
		return err
	}
	for i, e := range entries {
		marker := ""
		if e.User.ID == me.ID {
			marker = "  <- you"
		}
		fmt.Printf("%2d. %-20s %d%s\n", i+1, e.User.Username, e.Completions, marker)
	}
	return nil
}

// Leaderboard ranks the user and their accepted friends by total completions.
func Leaderboard(store storage.Provider, me models.User) ([]LeaderboardEntry, error) {
	friendships, err := store.GetFriendshipsForUser(me.ID)
	if err != nil {
		return nil, err
	}
	users := []models.User{me}
	for _, f := range friendships {
		if f.Status != models.FriendshipAccepted {
			continue
		}
		u, err := store.GetUser(f.Other(me.ID))
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		n, err := store.CountCompletionsForOwner(u.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{User: u, Completions: n})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Completions != entries[j].Completions {
			return entries[i].Completions > entries[j].Completions
		}
		return entries[i].User.Username < entries[j].User.Username
	})
	return entries, nil
}
