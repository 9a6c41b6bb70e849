package sqlstore

import (
	"fmt"

	"github.com/julianstephens/momentum/internal/constants"
	"github.com/julianstephens/momentum/internal/models"
)

const badgeCols = `id, owner_id, badge_type, created_at`

// AwardBadge records b unless the owner already holds that badge type.
func (q *Queries) AwardBadge(b models.Badge) (bool, error) {
	created, err := q.insertIfAbsent(
		`INSERT INTO badges (`+badgeCols+`) VALUES (?, ?, ?, ?) ON CONFLICT (owner_id, badge_type) DO NOTHING`,
		b.ID, b.OwnerID, string(b.BadgeType), formatTime(b.CreatedAt))
	if err != nil {
		return false, fmt.Errorf("failed to award badge %s: %w", b.BadgeType, err)
	}
	return created, nil
}

func (q *Queries) GetBadges(ownerID string) ([]models.Badge, error) {
	rows, err := q.query(`SELECT `+badgeCols+` FROM badges WHERE owner_id = ? ORDER BY created_at, badge_type`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	var badges []models.Badge
	for rows.Next() {
		var b models.Badge
		var badgeType, createdAt string
		if err := rows.Scan(&b.ID, &b.OwnerID, &badgeType, &createdAt); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		b.BadgeType = constants.BadgeType(badgeType)
		if b.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
			return nil, err
		}
		badges = append(badges, b)
	}
	return badges, rows.Err()
}
