package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"pongseed/database"
	"pongseed/models"
)

// GameRepository implements the service.GameRepository interface
type GameRepository struct {
	q queryable
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{q: db.Pool}
}

// newGameRepositoryWithTx creates a new game repository with a transaction
func newGameRepositoryWithTx(tx queryable) *GameRepository {
	return &GameRepository{q: tx}
}

// Create persists one game record and fills in its assigned ID.
// The winner pointer must agree with the result: nil iff draw.
func (r *GameRepository) Create(ctx context.Context, game *models.Game) error {
	if game.IsDraw() != (game.WinnerID == nil) {
		return fmt.Errorf("winner does not match result %q for game between users %d and %d", game.GeneralResult, game.Player1ID, game.Player2ID)
	}

	configJSON, err := json.Marshal(game.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal game config: %w", err)
	}

	query := `
		INSERT INTO games (
			player1_id, player2_id, winner_id,
			player1_score, player2_score,
			game_mode, is_tournament, general_result,
			player1_result, player2_result,
			config,
			player1_hits, player1_goals_in_favor, player1_goals_against,
			player1_powerups_picked, player1_powerdowns_picked, player1_ballchanges_picked,
			player2_hits, player2_goals_in_favor, player2_goals_against,
			player2_powerups_picked, player2_powerdowns_picked, player2_ballchanges_picked,
			default_balls_used, curve_balls_used, multiply_balls_used,
			spin_balls_used, burst_balls_used,
			bullets_used, shields_used,
			pyramids_used, escalators_used, hourglasses_used,
			lightnings_used, maws_used, rakes_used,
			trenches_used, kites_used, bowties_used,
			honeycombs_used, snakes_used, vipers_used,
			waystones_used,
			created_at
		)
		VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17,
			$18, $19, $20, $21, $22, $23,
			$24, $25, $26, $27, $28,
			$29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39, $40, $41, $42, $43,
			$44
		)
		RETURNING id
	`

	err = r.q.QueryRow(ctx, query,
		game.Player1ID, game.Player2ID, game.WinnerID,
		game.Player1Score, game.Player2Score,
		game.Mode, game.IsTournament, game.GeneralResult,
		game.Player1.Result, game.Player2.Result,
		configJSON,
		game.Player1.Hits, game.Player1.GoalsInFavor, game.Player1.GoalsAgainst,
		game.Player1.PowerupsPicked, game.Player1.PowerdownsPicked, game.Player1.BallchangesPicked,
		game.Player2.Hits, game.Player2.GoalsInFavor, game.Player2.GoalsAgainst,
		game.Player2.PowerupsPicked, game.Player2.PowerdownsPicked, game.Player2.BallchangesPicked,
		game.BallUsage.DefaultBalls, game.BallUsage.CurveBalls, game.BallUsage.MultiplyBalls,
		game.BallUsage.SpinBalls, game.BallUsage.BurstBalls,
		game.SpecialItems.Bullets, game.SpecialItems.Shields,
		game.WallElements.Pyramids, game.WallElements.Escalators, game.WallElements.Hourglasses,
		game.WallElements.Lightnings, game.WallElements.Maws, game.WallElements.Rakes,
		game.WallElements.Trenches, game.WallElements.Kites, game.WallElements.Bowties,
		game.WallElements.Honeycombs, game.WallElements.Snakes, game.WallElements.Vipers,
		game.WallElements.Waystones,
		game.CreatedAt,
	).Scan(&game.ID)

	if err != nil {
		return fmt.Errorf("failed to create game between users %d and %d: %w", game.Player1ID, game.Player2ID, err)
	}

	return nil
}

// Count returns the total number of recorded games
func (r *GameRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM games`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count games: %w", err)
	}
	return count, nil
}
