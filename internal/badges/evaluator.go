// Package badges awards permanent achievement badges once their thresholds are met.
package badges

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/julianstephens/momentum/internal/clock"
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/habits"
	"github.com/julianstephens/momentum/internal/logger"
	"github.com/julianstephens/momentum/internal/models"
	"github.com/julianstephens/momentum/internal/utils"
)

// Store is what the evaluator reads and writes. storage.Provider satisfies it.
type Store interface {
	habits.Store
	GetHabitsForOwner(ownerID string) ([]models.Habit, error)
	CountCompletionsForOwner(ownerID string) (int, error)
	AwardBadge(models.Badge) (bool, error)
	HasAcceptedFriendship(userID string) (bool, error)
	CountApplications(ownerID string, status models.ApplicationStatus) (int, error)
	CountApplicationsDueBefore(ownerID string, status models.ApplicationStatus, day string) (int, error)
	CountContacts(ownerID string) (int, error)
}

// Evaluator runs the badge checks. Every check is idempotent: it only ever
// inserts missing badges, so it is safe to call after any write.
type Evaluator struct {
	store  Store
	engine *habits.Engine
	clock  clock.Clock
}

func NewEvaluator(store Store, clk clock.Clock) *Evaluator {
	return &Evaluator{
		store:  store,
		engine: habits.NewEngine(store, clk),
		clock:  clk,
	}
}

// award inserts the badge if the owner does not hold it yet.
func (ev *Evaluator) award(ownerID string, t constants.BadgeType) (bool, error) {
	created, err := ev.store.AwardBadge(models.Badge{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		BadgeType: t,
		CreatedAt: ev.clock.Now(),
	})
	if err != nil {
		return false, err
	}
	if created {
		logger.Info("badge awarded", "owner", ownerID, "badge", t)
	}
	return created, nil
}

// awardIf awards t when cond holds and appends it to awarded if it was new.
func (ev *Evaluator) awardIf(awarded []constants.BadgeType, ownerID string, cond bool, t constants.BadgeType) ([]constants.BadgeType, error) {
	if !cond {
		return awarded, nil
	}
	created, err := ev.award(ownerID, t)
	if err != nil {
		return awarded, err
	}
	if created {
		awarded = append(awarded, t)
	}
	return awarded, nil
}

// CheckCompletionBadges awards every completion tier the owner's all-time total has reached.
func (ev *Evaluator) CheckCompletionBadges(ownerID string) ([]constants.BadgeType, error) {
	total, err := ev.store.CountCompletionsForOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count completions: %w", err)
	}
	logger.Debug("checking completion badges", "owner", ownerID, "total", total)

	var awarded []constants.BadgeType
	for _, tier := range constants.CompletionTiers {
		if awarded, err = ev.awardIf(awarded, ownerID, total >= tier.Threshold, tier.Badge); err != nil {
			return awarded, err
		}
	}
	return awarded, nil
}

var streakBadges = map[models.Category]struct{ week, month constants.BadgeType }{
	models.CategoryHealth:       {constants.BadgeHealth7, constants.BadgeHealth30},
	models.CategoryLearning:     {constants.BadgeLearning7, constants.BadgeLearning30},
	models.CategoryProductivity: {constants.BadgeProductivity7, constants.BadgeProductivity30},
}

// CheckStreakBadges awards 7 and 30 day badges per category from the best current
// streak among the owner's daily habits. Weekly habits never count.
func (ev *Evaluator) CheckStreakBadges(ownerID string) ([]constants.BadgeType, error) {
	owned, err := ev.store.GetHabitsForOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}

	var (
		mu   sync.Mutex
		best = map[models.Category]int{}
		g    errgroup.Group
	)
	g.SetLimit(constants.AnalyticsWorkers)
	for _, h := range owned {
		if h.Cadence != models.CadenceDaily {
			continue
		}
		g.Go(func() error {
			streak, err := ev.engine.CurrentStreak(h)
			if err != nil {
				return err
			}
			mu.Lock()
			best[h.Category] = max(best[h.Category], streak)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug("checking streak badges", "owner", ownerID, "best", best)

	var awarded []constants.BadgeType
	for _, c := range models.Categories {
		tiers := streakBadges[c]
		if awarded, err = ev.awardIf(awarded, ownerID, best[c] >= constants.StreakMonthDays, tiers.month); err != nil {
			return awarded, err
		}
		if awarded, err = ev.awardIf(awarded, ownerID, best[c] >= constants.StreakWeekDays, tiers.week); err != nil {
			return awarded, err
		}
	}
	return awarded, nil
}

// CheckSocialBadges awards first_friend once the user has an accepted friendship in either direction.
func (ev *Evaluator) CheckSocialBadges(userID string) ([]constants.BadgeType, error) {
	ok, err := ev.store.HasAcceptedFriendship(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to check friendships: %w", err)
	}
	return ev.awardIf(nil, userID, ok, constants.BadgeFirstFriend)
}

// CheckContactBadges awards first_contact once the owner has any contact.
func (ev *Evaluator) CheckContactBadges(ownerID string) ([]constants.BadgeType, error) {
	n, err := ev.store.CountContacts(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to count contacts: %w", err)
	}
	return ev.awardIf(nil, ownerID, n > 0, constants.BadgeFirstContact)
}

// CheckApplicationBadges evaluates the job-application predicates.
func (ev *Evaluator) CheckApplicationBadges(ownerID string) ([]constants.BadgeType, error) {
	total, err := ev.store.CountApplications(ownerID, "")
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	applied, err := ev.store.CountApplications(ownerID, models.StatusApplied)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	offered, err := ev.store.CountApplications(ownerID, models.StatusOffered)
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}
	expired, err := ev.store.CountApplicationsDueBefore(ownerID, models.StatusWishlist, utils.FormatDate(ev.clock.Today()))
	if err != nil {
		return nil, fmt.Errorf("failed to count applications: %w", err)
	}

	checks := []struct {
		ok    bool
		badge constants.BadgeType
	}{
		{total >= constants.ApplicationBadgeCount, constants.BadgeApplications5},
		{applied >= constants.ApplicationBadgeCount, constants.BadgeApplied5},
		{offered > 0, constants.BadgeJobOffered},
		{expired > 0, constants.BadgeWishlistExpired},
	}
	var awarded []constants.BadgeType
	for _, c := range checks {
		if awarded, err = ev.awardIf(awarded, ownerID, c.ok, c.badge); err != nil {
			return awarded, err
		}
	}
	return awarded, nil
}

// CheckAll runs every check for the owner and returns the badges that were newly awarded.
func (ev *Evaluator) CheckAll(ownerID string) ([]constants.BadgeType, error) {
	checks := []func(string) ([]constants.BadgeType, error){
		ev.CheckCompletionBadges,
		ev.CheckStreakBadges,
		ev.CheckSocialBadges,
		ev.CheckApplicationBadges,
		ev.CheckContactBadges,
	}
	var awarded []constants.BadgeType
	for _, check := range checks {
		got, err := check(ownerID)
		awarded = append(awarded, got...)
		if err != nil {
			return awarded, err
		}
	}
	return awarded, nil
}

// AfterToggle re-evaluates the badges a completion can unlock. Call it when Toggle returns true.
func (ev *Evaluator) AfterToggle(ownerID string) ([]constants.BadgeType, error) {
	awarded, err := ev.CheckCompletionBadges(ownerID)
	if err != nil {
		return awarded, err
	}
	streaks, err := ev.CheckStreakBadges(ownerID)
	return append(awarded, streaks...), err
}
