package sqlstore

import (
	"fmt"
	"time"

	"github.com/julianstephens/momentum/internal/models"
)

const friendshipCols = `id, sender_id, receiver_id, status, created_at, updated_at`

func scanFriendship(row scanner) (models.Friendship, error) {
	var f models.Friendship
	var status, createdAt, updatedAt string
	err := row.Scan(&f.ID, &f.SenderID, &f.ReceiverID, &status, &createdAt, &updatedAt)
	if err != nil {
		return models.Friendship{}, err
	}
	f.Status = models.FriendshipStatus(status)
	if f.CreatedAt, err = parseTime("created_at", createdAt); err != nil {
		return models.Friendship{}, err
	}
	if f.UpdatedAt, err = parseTime("updated_at", updatedAt); err != nil {
		return models.Friendship{}, err
	}
	return f, nil
}

func (q *Queries) AddFriendship(f models.Friendship) error {
	return q.insertUnique("friendship",
		`INSERT INTO friendships (`+friendshipCols+`) VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.SenderID, f.ReceiverID, string(f.Status), formatTime(f.CreatedAt), formatTime(f.UpdatedAt))
}

func (q *Queries) GetFriendshipBetween(userA, userB string) (models.Friendship, error) {
	f, err := scanFriendship(q.queryRow(
		`SELECT `+friendshipCols+` FROM friendships
		WHERE (sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)
		ORDER BY created_at LIMIT 1`,
		userA, userB, userB, userA))
	if err != nil {
		return models.Friendship{}, notFound(err, "friendship")
	}
	return f, nil
}

func (q *Queries) UpdateFriendshipStatus(id string, status models.FriendshipStatus, at time.Time) error {
	return q.updateOne("friendship",
		`UPDATE friendships SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), formatTime(at), id)
}

func (q *Queries) GetFriendshipsForUser(userID string) ([]models.Friendship, error) {
	rows, err := q.query(
		`SELECT `+friendshipCols+` FROM friendships WHERE sender_id = ? OR receiver_id = ? ORDER BY created_at`,
		userID, userID)
	if err != nil {
		return nil, fmt.Errorf("list friendships: %w", err)
	}
	defer rows.Close()

	var out []models.Friendship
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, fmt.Errorf("scan friendship: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (q *Queries) HasAcceptedFriendship(userID string) (bool, error) {
	var exists bool
	err := q.queryRow(
		`SELECT EXISTS (SELECT 1 FROM friendships WHERE (sender_id = ? OR receiver_id = ?) AND status = ?)`,
		userID, userID, string(models.FriendshipAccepted)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check friendships: %w", err)
	}
	return exists, nil
}
