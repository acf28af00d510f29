package repository

import (
	"context"
	"fmt"

	"pongseed/database"
	"pongseed/models"

	"github.com/jackc/pgx/v5"
)

// StatsRepository implements the service.StatsRepository interface
type StatsRepository struct {
	q queryable
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *database.DB) *StatsRepository {
	return &StatsRepository{q: db.Pool}
}

// newStatsRepositoryWithTx creates a new stats repository with a transaction
func newStatsRepositoryWithTx(tx queryable) *StatsRepository {
	return &StatsRepository{q: tx}
}

// Ensure creates a zero-initialized ledger row for the user if one does
// not exist yet. The users FK rejects ledgers for unknown users, so
// stats can never be orphaned.
func (r *StatsRepository) Ensure(ctx context.Context, userID int64) error {
	query := `
		INSERT INTO user_stats (id_user)
		VALUES ($1)
		ON CONFLICT (id_user) DO NOTHING
	`

	if _, err := r.q.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to ensure stats ledger for user %d: %w", userID, err)
	}

	return nil
}

// ApplyDelta adds one game's contribution to the user's ledger.
// Every field is a plain addition, so deltas commute and the final
// totals do not depend on game order. The ledger row must already
// exist; call Ensure first.
func (r *StatsRepository) ApplyDelta(ctx context.Context, userID int64, delta *models.StatsDelta) error {
	query := `
		UPDATE user_stats SET
			wins = wins + $1,
			losses = losses + $2,
			draws = draws + $3,
			hits = hits + $4,
			goals_scored = goals_scored + $5,
			goals_conceded = goals_conceded + $6,
			powerups_picked = powerups_picked + $7,
			powerdowns_picked = powerdowns_picked + $8,
			ballchanges_picked = ballchanges_picked + $9,
			default_balls_used = default_balls_used + $10,
			curve_balls_used = curve_balls_used + $11,
			multiply_balls_used = multiply_balls_used + $12,
			spin_balls_used = spin_balls_used + $13,
			burst_balls_used = burst_balls_used + $14,
			bullets_used = bullets_used + $15,
			shields_used = shields_used + $16,
			pyramids_used = pyramids_used + $17,
			escalators_used = escalators_used + $18,
			hourglasses_used = hourglasses_used + $19,
			lightnings_used = lightnings_used + $20,
			maws_used = maws_used + $21,
			rakes_used = rakes_used + $22,
			trenches_used = trenches_used + $23,
			kites_used = kites_used + $24,
			bowties_used = bowties_used + $25,
			honeycombs_used = honeycombs_used + $26,
			snakes_used = snakes_used + $27,
			vipers_used = vipers_used + $28,
			waystones_used = waystones_used + $29,
			score = score + $30
		WHERE id_user = $31
	`

	result, err := r.q.Exec(ctx, query,
		boolToInt(delta.Win),
		boolToInt(delta.Loss),
		boolToInt(delta.Draw),
		delta.Hits,
		delta.GoalsScored,
		delta.GoalsConceded,
		delta.PowerupsPicked,
		delta.PowerdownsPicked,
		delta.BallchangesPicked,
		delta.BallUsage.DefaultBalls,
		delta.BallUsage.CurveBalls,
		delta.BallUsage.MultiplyBalls,
		delta.BallUsage.SpinBalls,
		delta.BallUsage.BurstBalls,
		delta.SpecialItems.Bullets,
		delta.SpecialItems.Shields,
		delta.WallElements.Pyramids,
		delta.WallElements.Escalators,
		delta.WallElements.Hourglasses,
		delta.WallElements.Lightnings,
		delta.WallElements.Maws,
		delta.WallElements.Rakes,
		delta.WallElements.Trenches,
		delta.WallElements.Kites,
		delta.WallElements.Bowties,
		delta.WallElements.Honeycombs,
		delta.WallElements.Snakes,
		delta.WallElements.Vipers,
		delta.WallElements.Waystones,
		delta.Score,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to apply stats delta for user %d: %w", userID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("no stats ledger for user %d", userID)
	}

	return nil
}

// GetByUserID retrieves a user's ledger, or nil if none exists yet
func (r *StatsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStats, error) {
	query := `
		SELECT
			id_user, wins, losses, draws,
			hits, goals_scored, goals_conceded,
			powerups_picked, powerdowns_picked, ballchanges_picked,
			default_balls_used, curve_balls_used, multiply_balls_used,
			spin_balls_used, burst_balls_used,
			bullets_used, shields_used,
			pyramids_used, escalators_used, hourglasses_used,
			lightnings_used, maws_used, rakes_used,
			trenches_used, kites_used, bowties_used,
			honeycombs_used, snakes_used, vipers_used,
			waystones_used,
			score
		FROM user_stats
		WHERE id_user = $1
	`

	var stats models.UserStats
	err := r.q.QueryRow(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.Wins,
		&stats.Losses,
		&stats.Draws,
		&stats.Hits,
		&stats.GoalsScored,
		&stats.GoalsConceded,
		&stats.PowerupsPicked,
		&stats.PowerdownsPicked,
		&stats.BallchangesPicked,
		&stats.BallUsage.DefaultBalls,
		&stats.BallUsage.CurveBalls,
		&stats.BallUsage.MultiplyBalls,
		&stats.BallUsage.SpinBalls,
		&stats.BallUsage.BurstBalls,
		&stats.SpecialItems.Bullets,
		&stats.SpecialItems.Shields,
		&stats.WallElements.Pyramids,
		&stats.WallElements.Escalators,
		&stats.WallElements.Hourglasses,
		&stats.WallElements.Lightnings,
		&stats.WallElements.Maws,
		&stats.WallElements.Rakes,
		&stats.WallElements.Trenches,
		&stats.WallElements.Kites,
		&stats.WallElements.Bowties,
		&stats.WallElements.Honeycombs,
		&stats.WallElements.Snakes,
		&stats.WallElements.Vipers,
		&stats.WallElements.Waystones,
		&stats.Score,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats for user %d: %w", userID, err)
	}

	return &stats, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
