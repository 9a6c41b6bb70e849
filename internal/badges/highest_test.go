package badges

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
)

func TestHighest(t *testing.T) {
	var earned []models.Badge
	for _, bt := range []constants.BadgeType{
		constants.BadgeFirstContact,
		constants.BadgeCompletions10,
		constants.BadgeCompletions50,
		constants.BadgeHealth7,
		constants.BadgeLearning7,
		constants.BadgeLearning30,
	} {
		earned = append(earned, models.Badge{BadgeType: bt})
	}

	assert.Equal(t, []constants.BadgeType{
		constants.BadgeCompletions50,
		constants.BadgeHealth7,
		constants.BadgeLearning30,
		constants.BadgeFirstContact,
	}, Highest(earned))
	assert.Empty(t, Highest(nil))
}
