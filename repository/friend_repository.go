package repository

import (
	"context"
	"fmt"

	"pongseed/database"
	"pongseed/models"

	"github.com/jackc/pgx/v5"
)

// FriendRepository implements the service.FriendRepository interface
type FriendRepository struct {
	q queryable
}

// NewFriendRepository creates a new friend repository
func NewFriendRepository(db *database.DB) *FriendRepository {
	return &FriendRepository{q: db.Pool}
}

// newFriendRepositoryWithTx creates a new friend repository with a transaction
func newFriendRepositoryWithTx(tx queryable) *FriendRepository {
	return &FriendRepository{q: tx}
}

// Exists reports whether the ordered (user, friend) pair is already linked
func (r *FriendRepository) Exists(ctx context.Context, userID, friendID int64) (bool, error) {
	query := `
		SELECT 1
		FROM friends
		WHERE user_id = $1 AND friend_id = $2
	`

	var one int
	err := r.q.QueryRow(ctx, query, userID, friendID).Scan(&one)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check friendship %d -> %d: %w", userID, friendID, err)
	}

	return true, nil
}

// Create inserts a directional friendship and fills in its assigned ID
// and timestamp. The symmetric pair is never inserted here; callers
// seed each direction independently. An already-linked pair is a no-op.
func (r *FriendRepository) Create(ctx context.Context, friendship *models.Friendship) error {
	if friendship.UserID == friendship.FriendID {
		return fmt.Errorf("user %d cannot befriend themselves", friendship.UserID)
	}

	query := `
		INSERT INTO friends (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, friend_id) DO NOTHING
		RETURNING id, created_at
	`

	err := r.q.QueryRow(ctx, query, friendship.UserID, friendship.FriendID).Scan(&friendship.ID, &friendship.CreatedAt)
	if err == pgx.ErrNoRows {
		// Pair already linked, nothing inserted
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create friendship %d -> %d: %w", friendship.UserID, friendship.FriendID, err)
	}

	return nil
}

// CountForUser returns how many friends a user currently has
func (r *FriendRepository) CountForUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM friends WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count friends for user %d: %w", userID, err)
	}
	return count, nil
}
