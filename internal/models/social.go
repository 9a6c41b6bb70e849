package models

import "time"

type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipDeclined FriendshipStatus = "declined"
)

// Friendship is a directed request from sender to receiver.
type Friendship struct {
	ID         string           `json:"id"`
	SenderID   string           `json:"sender_id"`
	ReceiverID string           `json:"receiver_id"`
	Status     FriendshipStatus `json:"status"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// Other returns the id of the participant that is not userID.
func (f Friendship) Other(userID string) string {
	if f.SenderID == userID {
		return f.ReceiverID
	}
	return f.SenderID
}
