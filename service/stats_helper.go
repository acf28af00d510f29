package service

import (
	"context"
	"fmt"

	"pongseed/models"
)

// AccumulateStats merges one game's delta into a user's cumulative
// ledger, creating the ledger on the user's first game. Creation and
// mutation are separate repository calls so each can be exercised on
// its own.
func AccumulateStats(ctx context.Context, statsRepo StatsRepository, userID int64, delta *models.StatsDelta) error {
	if err := statsRepo.Ensure(ctx, userID); err != nil {
		return fmt.Errorf("failed to ensure stats ledger: %w", err)
	}

	if err := statsRepo.ApplyDelta(ctx, userID, delta); err != nil {
		return fmt.Errorf("failed to apply stats delta: %w", err)
	}

	return nil
}
