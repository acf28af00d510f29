package sim

import (
	"testing"

	"pongseed/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	const (
		player1 int64 = 10
		player2 int64 = 20
	)

	t.Run("left win", func(t *testing.T) {
		outcome := Resolve(player1, player2, 7, 3)

		assert.Equal(t, models.GeneralResultLeftWin, outcome.General)
		assert.Equal(t, models.PlayerResultWin, outcome.Player1)
		assert.Equal(t, models.PlayerResultLose, outcome.Player2)
		require.NotNil(t, outcome.WinnerID)
		assert.Equal(t, player1, *outcome.WinnerID)
	})

	t.Run("right win", func(t *testing.T) {
		outcome := Resolve(player1, player2, 2, 9)

		assert.Equal(t, models.GeneralResultRightWin, outcome.General)
		assert.Equal(t, models.PlayerResultLose, outcome.Player1)
		assert.Equal(t, models.PlayerResultWin, outcome.Player2)
		require.NotNil(t, outcome.WinnerID)
		assert.Equal(t, player2, *outcome.WinnerID)
	})

	t.Run("draw", func(t *testing.T) {
		outcome := Resolve(player1, player2, 5, 5)

		assert.Equal(t, models.GeneralResultDraw, outcome.General)
		assert.Equal(t, models.PlayerResultDraw, outcome.Player1)
		assert.Equal(t, models.PlayerResultDraw, outcome.Player2)
		assert.Nil(t, outcome.WinnerID)
	})

	t.Run("zero-zero is a draw", func(t *testing.T) {
		outcome := Resolve(player1, player2, 0, 0)
		assert.Equal(t, models.GeneralResultDraw, outcome.General)
		assert.Nil(t, outcome.WinnerID)
	})
}

// Sweep all score pairs in a small grid: draw iff equal, and the
// winner's result is always win while the opponent's is lose.
func TestResolve_AllPairs(t *testing.T) {
	const (
		player1 int64 = 1
		player2 int64 = 2
	)

	for s1 := 0; s1 <= 11; s1++ {
		for s2 := 0; s2 <= 11; s2++ {
			outcome := Resolve(player1, player2, s1, s2)

			if s1 == s2 {
				assert.Equal(t, models.GeneralResultDraw, outcome.General)
				assert.Nil(t, outcome.WinnerID)
				continue
			}

			require.NotNil(t, outcome.WinnerID)
			if s1 > s2 {
				assert.Equal(t, models.GeneralResultLeftWin, outcome.General)
				assert.Equal(t, player1, *outcome.WinnerID)
				assert.Equal(t, models.PlayerResultWin, outcome.Player1)
				assert.Equal(t, models.PlayerResultLose, outcome.Player2)
			} else {
				assert.Equal(t, models.GeneralResultRightWin, outcome.General)
				assert.Equal(t, player2, *outcome.WinnerID)
				assert.Equal(t, models.PlayerResultWin, outcome.Player2)
				assert.Equal(t, models.PlayerResultLose, outcome.Player1)
			}
		}
	}
}
