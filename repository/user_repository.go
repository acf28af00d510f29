package repository

import (
	"context"
	"fmt"

	"pongseed/database"
	"pongseed/models"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// newUserRepositoryWithTx creates a new user repository with a transaction
func newUserRepositoryWithTx(tx queryable) *UserRepository {
	return &UserRepository{q: tx}
}

// Create inserts a new user and fills in its assigned ID.
// A username collision is not an error: the insert is skipped and
// Create returns (nil, nil) so bulk seeding can continue inside the
// same transaction.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		INSERT INTO users (username, email, password, provider, two_factor_enabled, avatar_filename, avatar_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (username) DO NOTHING
		RETURNING id_user, created_at
	`

	err := r.q.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.Provider,
		user.TwoFactorEnabled,
		user.AvatarFilename,
		user.AvatarType,
	).Scan(&user.ID, &user.CreatedAt)

	if err == pgx.ErrNoRows {
		// Conflicting username, nothing inserted
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user %q: %w", user.Username, err)
	}

	return user, nil
}

// GetByID retrieves a user by its identifier
func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT id_user, username, email, password, provider, two_factor_enabled, avatar_filename, avatar_type, created_at
		FROM users
		WHERE id_user = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Provider,
		&user.TwoFactorEnabled,
		&user.AvatarFilename,
		&user.AvatarType,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", userID, err)
	}

	return &user, nil
}

// GetAll returns all users in ascending identifier order
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id_user, username, email, password, provider, two_factor_enabled, avatar_filename, avatar_type, created_at
		FROM users
		ORDER BY id_user ASC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Password,
			&user.Provider,
			&user.TwoFactorEnabled,
			&user.AvatarFilename,
			&user.AvatarType,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

// Count returns the total number of users
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
