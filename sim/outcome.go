// Package sim holds the pure game-outcome simulation core: outcome
// resolution, score generation and usage counter draws. Nothing here
// touches storage; every random draw takes an explicit *rand.Rand so
// runs are reproducible under a fixed seed.
package sim

import (
	"pongseed/models"
)

// Outcome is the resolved result of a two-player game
type Outcome struct {
	General  models.GeneralResult
	Player1  models.PlayerResult
	Player2  models.PlayerResult
	WinnerID *int64 // nil iff the game is a draw
}

// Resolve derives the outcome of a game from its final scores.
// The higher score wins; equal scores are a draw with no winner.
func Resolve(player1ID, player2ID int64, score1, score2 int) Outcome {
	switch {
	case score1 > score2:
		return Outcome{
			General:  models.GeneralResultLeftWin,
			Player1:  models.PlayerResultWin,
			Player2:  models.PlayerResultLose,
			WinnerID: &player1ID,
		}
	case score2 > score1:
		return Outcome{
			General:  models.GeneralResultRightWin,
			Player1:  models.PlayerResultLose,
			Player2:  models.PlayerResultWin,
			WinnerID: &player2ID,
		}
	default:
		return Outcome{
			General: models.GeneralResultDraw,
			Player1: models.PlayerResultDraw,
			Player2: models.PlayerResultDraw,
		}
	}
}
