package constants

// BadgeType identifies a permanent achievement
type BadgeType string

const (
	BadgeCompletions10  BadgeType = "completions_10"
	BadgeCompletions50  BadgeType = "completions_50"
	BadgeCompletions100 BadgeType = "completions_100"

	BadgeHealth7        BadgeType = "health_7_day"
	BadgeHealth30       BadgeType = "health_30_day"
	BadgeLearning7      BadgeType = "learning_7_day"
	BadgeLearning30     BadgeType = "learning_30_day"
	BadgeProductivity7  BadgeType = "productivity_7_day"
	BadgeProductivity30 BadgeType = "productivity_30_day"

	BadgeFirstFriend     BadgeType = "first_friend"
	BadgeFirstContact    BadgeType = "first_contact"
	BadgeApplications5   BadgeType = "applications_5"
	BadgeApplied5        BadgeType = "applied_5"
	BadgeJobOffered      BadgeType = "job_offered"
	BadgeWishlistExpired BadgeType = "wishlist_expired"

	// Streak thresholds in days
	StreakWeekDays  = 7
	StreakMonthDays = 30

	// ApplicationBadgeCount is the threshold for applications_5 and applied_5
	ApplicationBadgeCount = 5
)

// CompletionTier pairs a completion threshold with its badge.
type CompletionTier struct {
	Threshold int
	Badge     BadgeType
}

// CompletionTiers are ordered from lowest to highest.
var CompletionTiers = []CompletionTier{
	{Threshold: 10, Badge: BadgeCompletions10},
	{Threshold: 50, Badge: BadgeCompletions50},
	{Threshold: 100, Badge: BadgeCompletions100},
}

var badgeLabels = map[BadgeType]string{
	BadgeCompletions10:   "10 Completions",
	BadgeCompletions50:   "50 Completions",
	BadgeCompletions100:  "100 Completions",
	BadgeHealth7:         "Health 7-Day Streak",
	BadgeHealth30:        "Health 30-Day Streak",
	BadgeLearning7:       "Learning 7-Day Streak",
	BadgeLearning30:      "Learning 30-Day Streak",
	BadgeProductivity7:   "Productivity 7-Day Streak",
	BadgeProductivity30:  "Productivity 30-Day Streak",
	BadgeFirstFriend:     "First Friend",
	BadgeFirstContact:    "First Contact",
	BadgeApplications5:   "5 Applications",
	BadgeApplied5:        "Applied to 5 Jobs",
	BadgeJobOffered:      "Job Offer",
	BadgeWishlistExpired: "Wishlist Expired",
}

// BadgeLabel returns the display name of a badge, falling back to its type.
func BadgeLabel(t BadgeType) string {
	if label, ok := badgeLabels[t]; ok {
		return label
	}
	return string(t)
}
