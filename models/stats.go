package models

// UserStats is the cumulative per-user ledger of game outcomes and
// counter usage. A row is created lazily on a user's first game and
// every field only ever grows.
type UserStats struct {
	UserID            int64 `db:"id_user"`
	Wins              int   `db:"wins"`
	Losses            int   `db:"losses"`
	Draws             int   `db:"draws"`
	Hits              int   `db:"hits"`
	GoalsScored       int   `db:"goals_scored"`
	GoalsConceded     int   `db:"goals_conceded"`
	PowerupsPicked    int   `db:"powerups_picked"`
	PowerdownsPicked  int   `db:"powerdowns_picked"`
	BallchangesPicked int   `db:"ballchanges_picked"`
	BallUsage         BallUsage
	SpecialItems      SpecialItems
	WallElements      WallElements
	Score             int `db:"score"`
}

// StatsDelta is one game's contribution to a single user's ledger.
// Booleans count as 0 or 1; all other fields are non-negative amounts
// added as-is.
type StatsDelta struct {
	Win               bool
	Loss              bool
	Draw              bool
	Hits              int
	GoalsScored       int
	GoalsConceded     int
	PowerupsPicked    int
	PowerdownsPicked  int
	BallchangesPicked int
	BallUsage         BallUsage
	SpecialItems      SpecialItems
	WallElements      WallElements
	Score             int
}

// Apply adds a delta to the ledger in memory. The repository performs
// the same addition in SQL; this keeps the merge rule in one testable
// place.
func (s *UserStats) Apply(delta *StatsDelta) {
	s.Wins += boolToInt(delta.Win)
	s.Losses += boolToInt(delta.Loss)
	s.Draws += boolToInt(delta.Draw)
	s.Hits += delta.Hits
	s.GoalsScored += delta.GoalsScored
	s.GoalsConceded += delta.GoalsConceded
	s.PowerupsPicked += delta.PowerupsPicked
	s.PowerdownsPicked += delta.PowerdownsPicked
	s.BallchangesPicked += delta.BallchangesPicked
	s.BallUsage = s.BallUsage.Add(delta.BallUsage)
	s.SpecialItems = s.SpecialItems.Add(delta.SpecialItems)
	s.WallElements = s.WallElements.Add(delta.WallElements)
	s.Score += delta.Score
}

// GamesPlayed returns the total number of games recorded in the ledger
func (s *UserStats) GamesPlayed() int {
	return s.Wins + s.Losses + s.Draws
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
