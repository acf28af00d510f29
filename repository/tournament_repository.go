package repository

import (
	"context"
	"fmt"

	"pongseed/database"
	"pongseed/models"
)

// TournamentRepository implements the service.TournamentRepository interface
type TournamentRepository struct {
	q queryable
}

// NewTournamentRepository creates a new tournament repository
func NewTournamentRepository(db *database.DB) *TournamentRepository {
	return &TournamentRepository{q: db.Pool}
}

// newTournamentRepositoryWithTx creates a new tournament repository with a transaction
func newTournamentRepositoryWithTx(tx queryable) *TournamentRepository {
	return &TournamentRepository{q: tx}
}

// Create persists a tournament and fills in its assigned ID
func (r *TournamentRepository) Create(ctx context.Context, tournament *models.Tournament) error {
	query := `
		INSERT INTO tournaments (name, status, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		tournament.Name,
		tournament.Status,
		tournament.CreatedAt,
	).Scan(&tournament.ID)

	if err != nil {
		return fmt.Errorf("failed to create tournament %q: %w", tournament.Name, err)
	}

	return nil
}

// AddParticipant links a user into a tournament
func (r *TournamentRepository) AddParticipant(ctx context.Context, participant *models.TournamentParticipant) error {
	query := `
		INSERT INTO tournament_participants (id_tournament, id_user, is_ai, final_position)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.q.QueryRow(ctx, query,
		participant.TournamentID,
		participant.UserID,
		participant.IsAI,
		participant.FinalPosition,
	).Scan(&participant.ID)

	if err != nil {
		return fmt.Errorf("failed to add user %d to tournament %d: %w", participant.UserID, participant.TournamentID, err)
	}

	return nil
}
