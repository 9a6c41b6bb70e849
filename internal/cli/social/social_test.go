package social

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/storage/sqlite"
)

func setupTestDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return &cli.Context{Store: store, Clock: clock.MustParse("2024-03-13")}
}

// as returns a context acting for username over the same store.
func as(ctx *cli.Context, username string) *cli.Context {
	return &cli.Context{Store: ctx.Store, Clock: ctx.Clock, User: username}
}

func addUsers(t *testing.T, ctx *cli.Context, names ...string) {
	t.Helper()
	for _, n := range names {
		if err := (&UserAddCmd{Name: n}).Run(ctx); err != nil {
			t.Fatalf("user add %s: %v", n, err)
		}
	}
}

func TestUserCmds(t *testing.T) {
	ctx := setupTestDB(t)
	addUsers(t, ctx, "sam", "alex")

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.ActiveUser != "sam" {
		t.Errorf("active user = %q, want the first user added", settings.ActiveUser)
	}

	if err := (&UserUseCmd{Name: "alex"}).Run(ctx); err != nil {
		t.Fatal(err)
	}
	settings, _ = ctx.Store.GetSettings()
	if settings.ActiveUser != "alex" {
		t.Errorf("active user = %q, want alex", settings.ActiveUser)
	}

	if err := (&UserUseCmd{Name: "nobody"}).Run(ctx); err == nil {
		t.Error("expected error switching to unknown user")
	}
	err = (&UserAddCmd{Name: "sam"}).Run(ctx)
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("duplicate user error = %v", err)
	}
	if err := (&UserListCmd{}).Run(ctx); err != nil {
		t.Error(err)
	}
}

func TestFriendRequestFlow(t *testing.T) {
	ctx := setupTestDB(t)
	addUsers(t, ctx, "sam", "alex")
	sam, alex := as(ctx, "sam"), as(ctx, "alex")

	if err := (&SocialRequestCmd{User: "alex"}).Run(sam); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := (&SocialRequestCmd{User: "sam"}).Run(alex); err == nil {
		t.Error("expected error for a reverse request while one exists")
	}
	// Only the receiver can accept.
	if err := (&SocialAcceptCmd{User: "alex"}).Run(sam); err == nil {
		t.Error("sender should not be able to accept their own request")
	}
	if err := (&SocialAcceptCmd{User: "sam"}).Run(alex); err != nil {
		t.Fatalf("accept: %v", err)
	}

	for _, name := range []string{"sam", "alex"} {
		u, err := ctx.Store.GetUserByName(name)
		if err != nil {
			t.Fatal(err)
		}
		earned, err := ctx.Store.GetBadges(u.ID)
		if err != nil {
			t.Fatal(err)
		}
		if len(earned) != 1 || earned[0].BadgeType != constants.BadgeFirstFriend {
			t.Errorf("%s badges = %+v, want first_friend", name, earned)
		}
	}

	if err := (&SocialListCmd{}).Run(sam); err != nil {
		t.Error(err)
	}
}

func TestFriendRequestDecline(t *testing.T) {
	ctx := setupTestDB(t)
	addUsers(t, ctx, "sam", "alex")
	sam, alex := as(ctx, "sam"), as(ctx, "alex")

	if err := (&SocialRequestCmd{User: "alex"}).Run(sam); err != nil {
		t.Fatal(err)
	}
	if err := (&SocialDeclineCmd{User: "sam"}).Run(alex); err != nil {
		t.Fatalf("decline: %v", err)
	}
	if err := (&SocialAcceptCmd{User: "sam"}).Run(alex); err == nil {
		t.Error("accepting a declined request should fail")
	}
	u, _ := ctx.Store.GetUserByName("alex")
	if earned, _ := ctx.Store.GetBadges(u.ID); len(earned) != 0 {
		t.Errorf("declined friendship awarded %+v", earned)
	}
}

func TestFriendRequestSelf(t *testing.T) {
	ctx := setupTestDB(t)
	addUsers(t, ctx, "sam")
	err := (&SocialRequestCmd{User: "sam"}).Run(as(ctx, "sam"))
	if err == nil || !strings.Contains(err.Error(), "yourself") {
		t.Errorf("error = %v, want self-friend rejection", err)
	}
}

func TestLeaderboard(t *testing.T) {
	ctx := setupTestDB(t)
	addUsers(t, ctx, "sam", "alex", "jo", "stranger")
	sam := as(ctx, "sam")
	for _, name := range []string{"alex", "jo"} {
		if err := (&SocialRequestCmd{User: name}).Run(sam); err != nil {
			t.Fatal(err)
		}
		if err := (&SocialAcceptCmd{User: "sam"}).Run(as(ctx, name)); err != nil {
			t.Fatal(err)
		}
	}

	complete := func(username string, n int) {
		u, _ := ctx.Store.GetUserByName(username)
		h := models.Habit{ID: uuid.New().String(), OwnerID: u.ID, Name: "run", Cadence: models.CadenceDaily, Category: models.CategoryHealth, CreatedAt: time.Now()}
		if err := ctx.Store.AddHabit(h); err != nil {
			t.Fatal(err)
		}
		for i := range n {
			day := time.Date(2024, 3, 1+i, 0, 0, 0, 0, time.UTC).Format(constants.DateFormat)
			if _, err := ctx.Store.AddCompletion(models.Completion{ID: uuid.New().String(), HabitID: h.ID, Day: day, CreatedAt: time.Now()}); err != nil {
				t.Fatal(err)
			}
		}
	}
	complete("sam", 2)
	complete("alex", 5)
	complete("stranger", 9)

	me, _ := ctx.Store.GetUserByName("sam")
	entries, err := Leaderboard(ctx.Store, me)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, e := range entries {
		got = append(got, e.User.Username)
	}
	if strings.Join(got, ",") != "alex,sam,jo" {
		t.Errorf("leaderboard = %v, want alex,sam,jo", got)
	}
	if err := (&SocialLeaderboardCmd{}).Run(sam); err != nil {
		t.Error(err)
	}
}
