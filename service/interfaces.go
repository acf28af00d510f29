package service

import (
	"context"

	"pongseed/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user; returns (nil, nil) when the username
	// is already taken and nothing was inserted
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByID retrieves a user by its identifier
	GetByID(ctx context.Context, userID int64) (*models.User, error)

	// GetAll returns all users in ascending identifier order
	GetAll(ctx context.Context) ([]*models.User, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int, error)
}

// FriendRepository defines the interface for friendship data access
type FriendRepository interface {
	// Exists reports whether the ordered (user, friend) pair is linked
	Exists(ctx context.Context, userID, friendID int64) (bool, error)

	// Create inserts a directional friendship and fills in its
	// assigned ID; an already-linked pair is a no-op
	Create(ctx context.Context, friendship *models.Friendship) error

	// CountForUser returns how many friends a user currently has
	CountForUser(ctx context.Context, userID int64) (int, error)
}

// GameRepository defines the interface for game data access
type GameRepository interface {
	// Create persists one game record and fills in its assigned ID
	Create(ctx context.Context, game *models.Game) error

	// Count returns the total number of recorded games
	Count(ctx context.Context) (int, error)
}

// StatsRepository defines the interface for the per-user stats ledger
type StatsRepository interface {
	// Ensure creates a zero-initialized ledger row if none exists
	Ensure(ctx context.Context, userID int64) error

	// ApplyDelta adds one game's contribution to an existing ledger
	ApplyDelta(ctx context.Context, userID int64, delta *models.StatsDelta) error

	// GetByUserID retrieves a user's ledger, or nil if none exists
	GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error)
}

// TournamentRepository defines the interface for tournament data access
type TournamentRepository interface {
	// Create persists a tournament and fills in its assigned ID
	Create(ctx context.Context, tournament *models.Tournament) error

	// AddParticipant links a user into a tournament
	AddParticipant(ctx context.Context, participant *models.TournamentParticipant) error
}

// UnitOfWork groups repository operations under a single transaction
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() UserRepository
	FriendRepository() FriendRepository
	GameRepository() GameRepository
	StatsRepository() StatsRepository
	TournamentRepository() TournamentRepository
}

// UnitOfWorkFactory creates units of work
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// SeederService defines the incremental seeding operations: fixed
// users, friendship quotas and simulated games
type SeederService interface {
	// SeedUsers creates count users with sequential usernames
	SeedUsers(ctx context.Context, count int) error

	// SeedFriends gives every user up to perUser new friends
	SeedFriends(ctx context.Context, perUser int) error

	// SeedGames simulates count games between existing users
	SeedGames(ctx context.Context, count int) error
}

// GeneratorService defines the one-shot dataset generation operation
type GeneratorService interface {
	// Generate creates numUsers random users, a batch of games and,
	// when requested, one tournament, all in a single transaction
	Generate(ctx context.Context, numUsers int, withTournament bool) error
}
