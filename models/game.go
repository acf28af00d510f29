package models

import (
	"time"
)

// GeneralResult classifies a finished game from the left player's side
type GeneralResult string

const (
	GeneralResultLeftWin  GeneralResult = "leftWin"
	GeneralResultRightWin GeneralResult = "rightWin"
	GeneralResultDraw     GeneralResult = "draw"
)

// PlayerResult classifies a game from one participant's perspective
type PlayerResult string

const (
	PlayerResultWin  PlayerResult = "win"
	PlayerResultLose PlayerResult = "lose"
	PlayerResultDraw PlayerResult = "draw"
)

// GameMode represents the mode a game was played in
type GameMode string

const (
	GameModeClassic    GameMode = "classic"
	GameModeArcade     GameMode = "arcade"
	GameModeTimeAttack GameMode = "time_attack"
)

// Difficulty represents a game difficulty setting
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GameConfig holds the free-form configuration stored with each game
type GameConfig struct {
	Difficulty Difficulty `json:"difficulty"`
	TimeLimit  int        `json:"time_limit"` // seconds: 300, 600 or 900
}

// PlayerGameStats holds one participant's per-game figures
type PlayerGameStats struct {
	Result            PlayerResult
	Hits              int
	GoalsInFavor      int
	GoalsAgainst      int
	PowerupsPicked    int
	PowerdownsPicked  int
	BallchangesPicked int
}

// Game represents one finished match between two users
type Game struct {
	ID            int64         `db:"id"`
	Player1ID     int64         `db:"player1_id"`
	Player2ID     int64         `db:"player2_id"`
	WinnerID      *int64        `db:"winner_id"` // nil iff the game is a draw
	Player1Score  int           `db:"player1_score"`
	Player2Score  int           `db:"player2_score"`
	Mode          GameMode      `db:"game_mode"`
	IsTournament  bool          `db:"is_tournament"`
	GeneralResult GeneralResult `db:"general_result"`
	Player1       PlayerGameStats
	Player2       PlayerGameStats
	BallUsage     BallUsage
	SpecialItems  SpecialItems
	WallElements  WallElements
	Config        GameConfig `db:"config"`
	CreatedAt     time.Time  `db:"created_at"`
}

// IsDraw reports whether the game ended without a winner
func (g *Game) IsDraw() bool {
	return g.GeneralResult == GeneralResultDraw
}
