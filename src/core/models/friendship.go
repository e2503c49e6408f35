package models

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship holds one row per user pair. UserID is the requester and
// FriendID the recipient; the pair is treated as unordered, so a row in
// either direction blocks a second request. State is derived from
// AcceptedAt: nil means pending, set means accepted.
type Friendship struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_friendships_pair" json:"user_id"`
	FriendID   uuid.UUID  `gorm:"column:friend_id;type:uuid;not null;uniqueIndex:idx_friendships_pair" json:"friend_id"`
	AcceptedAt *time.Time `gorm:"column:accepted_at;type:timestamp with time zone" json:"accepted_at,omitempty"`
	CreatedAt  time.Time  `gorm:"column:created_at;type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Friendship) TableName() string {
	return "friendships"
}

// Status derives the lifecycle state from AcceptedAt.
func (f *Friendship) Status() FriendshipStatus {
	if f.AcceptedAt != nil {
		return FriendshipAccepted
	}
	return FriendshipPending
}

// Involves reports whether the given user is either side of the friendship.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.UserID == userID || f.FriendID == userID
}
