package repository

import (
	"context"
	"testing"

	"pongseed/repository/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewGameRepository(testDB.DB)
	ctx := context.Background()

	player1, player2 := setupTwoUsers(t, userRepo)

	t.Run("decisive game", func(t *testing.T) {
		game := testutil.CreateTestGame(player1.ID, player2.ID, 7, 3)

		err := repo.Create(ctx, game)
		require.NoError(t, err)
		assert.NotZero(t, game.ID)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("draw stores no winner", func(t *testing.T) {
		game := testutil.CreateTestGame(player1.ID, player2.ID, 4, 4)
		require.Nil(t, game.WinnerID)

		err := repo.Create(ctx, game)
		require.NoError(t, err)
		assert.NotZero(t, game.ID)
	})

	t.Run("winner must agree with the result", func(t *testing.T) {
		game := testutil.CreateTestGame(player1.ID, player2.ID, 2, 2)
		game.WinnerID = &game.Player1ID

		err := repo.Create(ctx, game)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "winner does not match result")

		decisive := testutil.CreateTestGame(player1.ID, player2.ID, 6, 1)
		decisive.WinnerID = nil

		err = repo.Create(ctx, decisive)
		require.Error(t, err)
	})

	t.Run("unknown participant is rejected", func(t *testing.T) {
		game := testutil.CreateTestGame(player1.ID, 999999, 5, 1)

		err := repo.Create(ctx, game)
		assert.Error(t, err)
	})
}

func TestTournamentRepository_Create(t *testing.T) {
	testDB := testutil.SetupTestDatabase(t)

	userRepo := NewUserRepository(testDB.DB)
	repo := NewTournamentRepository(testDB.DB)
	ctx := context.Background()

	user1, user2 := setupTwoUsers(t, userRepo)

	t.Run("tournament with participants", func(t *testing.T) {
		tournament := testutil.CreateTestTournament("Championship 2023", "finished")

		err := repo.Create(ctx, tournament)
		require.NoError(t, err)
		assert.NotZero(t, tournament.ID)

		for i, user := range []int64{user1.ID, user2.ID} {
			position := i + 1
			participant := testutil.CreateTestParticipant(tournament.ID, user)
			participant.FinalPosition = &position

			err := repo.AddParticipant(ctx, participant)
			require.NoError(t, err)
			assert.NotZero(t, participant.ID)
		}
	})

	t.Run("duplicate participant is rejected", func(t *testing.T) {
		tournament := testutil.CreateTestTournament("Championship 2024", "pending")
		require.NoError(t, repo.Create(ctx, tournament))

		participant := testutil.CreateTestParticipant(tournament.ID, user1.ID)
		require.NoError(t, repo.AddParticipant(ctx, participant))

		again := testutil.CreateTestParticipant(tournament.ID, user1.ID)
		err := repo.AddParticipant(ctx, again)
		assert.Error(t, err)
	})
}
