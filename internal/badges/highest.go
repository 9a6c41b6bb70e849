package badges

import (
	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
)

// families lists each badge family from best to worst tier.
var families = [][]constants.BadgeType{
	{constants.BadgeCompletions100, constants.BadgeCompletions50, constants.BadgeCompletions10},
	{constants.BadgeHealth30, constants.BadgeHealth7},
	{constants.BadgeProductivity30, constants.BadgeProductivity7},
	{constants.BadgeLearning30, constants.BadgeLearning7},
	{constants.BadgeFirstFriend},
	{constants.BadgeFirstContact},
	{constants.BadgeApplications5},
	{constants.BadgeApplied5},
	{constants.BadgeJobOffered},
	{constants.BadgeWishlistExpired},
}

// Highest keeps only the top earned tier of each family, in catalogue order.
func Highest(earned []models.Badge) []constants.BadgeType {
	held := make(map[constants.BadgeType]bool, len(earned))
	for _, b := range earned {
		held[b.BadgeType] = true
	}

	var out []constants.BadgeType
	for _, family := range families {
		for _, t := range family {
			if held[t] {
				out = append(out, t)
				break
			}
		}
	}
	return out
}
