package testutil

import (
	"fmt"
	"time"

	"pongseed/models"
)

// CreateTestUser creates a test user with default values
func CreateTestUser(username string) *models.User {
	return &models.User{
		Username:   username,
		Email:      fmt.Sprintf("%s@gmail.com", username),
		Password:   "$2a$10$abcdefghijklmnopqrstuvwxyz012345678901234567890123456",
		Provider:   "local",
		AvatarType: models.AvatarTypeDefault,
	}
}

// CreateTestGame creates a finished test game between two users
func CreateTestGame(player1ID, player2ID int64, score1, score2 int) *models.Game {
	game := &models.Game{
		Player1ID:     player1ID,
		Player2ID:     player2ID,
		Player1Score:  score1,
		Player2Score:  score2,
		Mode:          models.GameModeClassic,
		GeneralResult: models.GeneralResultDraw,
		Player1: models.PlayerGameStats{
			Result:       models.PlayerResultDraw,
			GoalsInFavor: score1,
			GoalsAgainst: score2,
		},
		Player2: models.PlayerGameStats{
			Result:       models.PlayerResultDraw,
			GoalsInFavor: score2,
			GoalsAgainst: score1,
		},
		Config: models.GameConfig{
			Difficulty: models.DifficultyMedium,
			TimeLimit:  600,
		},
		CreatedAt: time.Now(),
	}

	if score1 > score2 {
		game.GeneralResult = models.GeneralResultLeftWin
		game.WinnerID = &game.Player1ID
		game.Player1.Result = models.PlayerResultWin
		game.Player2.Result = models.PlayerResultLose
	} else if score2 > score1 {
		game.GeneralResult = models.GeneralResultRightWin
		game.WinnerID = &game.Player2ID
		game.Player1.Result = models.PlayerResultLose
		game.Player2.Result = models.PlayerResultWin
	}

	return game
}

// CreateTestTournament creates a test tournament
func CreateTestTournament(name string, status models.TournamentStatus) *models.Tournament {
	return &models.Tournament{
		Name:      name,
		Status:    status,
		CreatedAt: time.Now().AddDate(0, 0, -7),
	}
}

// CreateTestParticipant creates a test tournament participant
func CreateTestParticipant(tournamentID, userID int64) *models.TournamentParticipant {
	return &models.TournamentParticipant{
		TournamentID: tournamentID,
		UserID:       userID,
	}
}

// CreateTestDelta creates a stats delta for a win with fixed figures
func CreateTestDelta() *models.StatsDelta {
	return &models.StatsDelta{
		Win:               true,
		Hits:              12,
		GoalsScored:       7,
		GoalsConceded:     3,
		PowerupsPicked:    2,
		PowerdownsPicked:  1,
		BallchangesPicked: 1,
		BallUsage:         models.BallUsage{DefaultBalls: 2, CurveBalls: 1},
		SpecialItems:      models.SpecialItems{Bullets: 1},
		WallElements:      models.WallElements{Pyramids: 1, Snakes: 1},
		Score:             7,
	}
}
