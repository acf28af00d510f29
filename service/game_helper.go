package service

import (
	"context"
	"fmt"
	"math/rand"

	"pongseed/models"
)

// recordGame persists one game record and accumulates both
// participants' stats deltas within the same unit of work
func recordGame(ctx context.Context, uow UnitOfWork, game *models.Game, delta1, delta2 *models.StatsDelta) error {
	if err := uow.GameRepository().Create(ctx, game); err != nil {
		return err
	}

	if err := AccumulateStats(ctx, uow.StatsRepository(), game.Player1ID, delta1); err != nil {
		return fmt.Errorf("failed to accumulate stats for player %d: %w", game.Player1ID, err)
	}

	if err := AccumulateStats(ctx, uow.StatsRepository(), game.Player2ID, delta2); err != nil {
		return fmt.Errorf("failed to accumulate stats for player %d: %w", game.Player2ID, err)
	}

	return nil
}

// pickTwoPlayers samples two distinct users uniformly
func pickTwoPlayers(rng *rand.Rand, users []*models.User) (*models.User, *models.User) {
	i := rng.Intn(len(users))
	j := rng.Intn(len(users) - 1)
	if j >= i {
		j++
	}
	return users[i], users[j]
}
