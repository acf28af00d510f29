package models

import (
	"time"
)

// Friendship represents a directional user-to-friend link.
// Only the requested direction is stored; the symmetric row is never
// auto-created.
type Friendship struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	FriendID  int64     `db:"friend_id"`
	CreatedAt time.Time `db:"created_at"`
}
