package sim

import (
	"math/rand"
	"time"

	"pongseed/models"
)

// Per-player bounds for simulated in-game figures (inclusive)
const (
	maxHits        = 20
	maxPowerups    = 5
	maxPowerdowns  = 3
	maxBallchanges = 2
)

var (
	gameModes    = []models.GameMode{models.GameModeClassic, models.GameModeArcade, models.GameModeTimeAttack}
	difficulties = []models.Difficulty{models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard}
	timeLimits   = []int{300, 600, 900}
)

// RollGameMode draws a random game mode
func RollGameMode(rng *rand.Rand) models.GameMode {
	return gameModes[rng.Intn(len(gameModes))]
}

// RollGameConfig draws a random difficulty and time limit
func RollGameConfig(rng *rand.Rand) models.GameConfig {
	return models.GameConfig{
		Difficulty: difficulties[rng.Intn(len(difficulties))],
		TimeLimit:  timeLimits[rng.Intn(len(timeLimits))],
	}
}

// GameParams fixes the non-random inputs of one simulated game
type GameParams struct {
	Player1ID    int64
	Player2ID    int64
	Score1       int
	Score2       int
	IsTournament bool
	CreatedAt    time.Time
}

// BuildGame assembles one game record from the given scores plus fresh
// random draws, along with each participant's stats delta. Counter
// draws are independent per player; the game record carries the
// field-wise total of both sides.
func BuildGame(rng *rand.Rand, params GameParams) (*models.Game, *models.StatsDelta, *models.StatsDelta) {
	outcome := Resolve(params.Player1ID, params.Player2ID, params.Score1, params.Score2)

	counters1 := RollPlayerCounters(rng)
	counters2 := RollPlayerCounters(rng)

	side1 := rollPlayerGameStats(rng, outcome.Player1, params.Score1, params.Score2)
	side2 := rollPlayerGameStats(rng, outcome.Player2, params.Score2, params.Score1)

	game := &models.Game{
		Player1ID:     params.Player1ID,
		Player2ID:     params.Player2ID,
		WinnerID:      outcome.WinnerID,
		Player1Score:  params.Score1,
		Player2Score:  params.Score2,
		Mode:          RollGameMode(rng),
		IsTournament:  params.IsTournament,
		GeneralResult: outcome.General,
		Player1:       side1,
		Player2:       side2,
		BallUsage:     counters1.BallUsage.Add(counters2.BallUsage),
		SpecialItems:  counters1.SpecialItems.Add(counters2.SpecialItems),
		WallElements:  counters1.WallElements.Add(counters2.WallElements),
		Config:        RollGameConfig(rng),
		CreatedAt:     params.CreatedAt,
	}

	delta1 := playerDelta(side1, counters1)
	delta2 := playerDelta(side2, counters2)

	return game, delta1, delta2
}

func rollPlayerGameStats(rng *rand.Rand, result models.PlayerResult, ownScore, opponentScore int) models.PlayerGameStats {
	return models.PlayerGameStats{
		Result:            result,
		Hits:              rng.Intn(maxHits + 1),
		GoalsInFavor:      ownScore,
		GoalsAgainst:      opponentScore,
		PowerupsPicked:    rng.Intn(maxPowerups + 1),
		PowerdownsPicked:  rng.Intn(maxPowerdowns + 1),
		BallchangesPicked: rng.Intn(maxBallchanges + 1),
	}
}

func playerDelta(side models.PlayerGameStats, counters PlayerCounters) *models.StatsDelta {
	return &models.StatsDelta{
		Win:               side.Result == models.PlayerResultWin,
		Loss:              side.Result == models.PlayerResultLose,
		Draw:              side.Result == models.PlayerResultDraw,
		Hits:              side.Hits,
		GoalsScored:       side.GoalsInFavor,
		GoalsConceded:     side.GoalsAgainst,
		PowerupsPicked:    side.PowerupsPicked,
		PowerdownsPicked:  side.PowerdownsPicked,
		BallchangesPicked: side.BallchangesPicked,
		BallUsage:         counters.BallUsage,
		SpecialItems:      counters.SpecialItems,
		WallElements:      counters.WallElements,
		Score:             side.GoalsInFavor,
	}
}
