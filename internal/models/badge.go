package models

import (
	"time"

	"github.com/julianstephens/momentum/internal/constants"
)

// Badge is a permanent achievement; at most one per owner and type.
type Badge struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"owner_id"`
	BadgeType constants.BadgeType `json:"badge_type"`
	CreatedAt time.Time           `json:"created_at"`
}
