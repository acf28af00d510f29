package models

// BallUsage counts how often each ball type appeared in a game
type BallUsage struct {
	DefaultBalls  int `db:"default_balls_used"`
	CurveBalls    int `db:"curve_balls_used"`
	MultiplyBalls int `db:"multiply_balls_used"`
	SpinBalls     int `db:"spin_balls_used"`
	BurstBalls    int `db:"burst_balls_used"`
}

// SpecialItems counts special item activations in a game
type SpecialItems struct {
	Bullets int `db:"bullets_used"`
	Shields int `db:"shields_used"`
}

// WallElements counts wall element appearances in a game
type WallElements struct {
	Pyramids    int `db:"pyramids_used"`
	Escalators  int `db:"escalators_used"`
	Hourglasses int `db:"hourglasses_used"`
	Lightnings  int `db:"lightnings_used"`
	Maws        int `db:"maws_used"`
	Rakes       int `db:"rakes_used"`
	Trenches    int `db:"trenches_used"`
	Kites       int `db:"kites_used"`
	Bowties     int `db:"bowties_used"`
	Honeycombs  int `db:"honeycombs_used"`
	Snakes      int `db:"snakes_used"`
	Vipers      int `db:"vipers_used"`
	Waystones   int `db:"waystones_used"`
}

// Add returns the field-wise sum of two ball usage counters
func (b BallUsage) Add(other BallUsage) BallUsage {
	return BallUsage{
		DefaultBalls:  b.DefaultBalls + other.DefaultBalls,
		CurveBalls:    b.CurveBalls + other.CurveBalls,
		MultiplyBalls: b.MultiplyBalls + other.MultiplyBalls,
		SpinBalls:     b.SpinBalls + other.SpinBalls,
		BurstBalls:    b.BurstBalls + other.BurstBalls,
	}
}

// Add returns the field-wise sum of two special item counters
func (s SpecialItems) Add(other SpecialItems) SpecialItems {
	return SpecialItems{
		Bullets: s.Bullets + other.Bullets,
		Shields: s.Shields + other.Shields,
	}
}

// Add returns the field-wise sum of two wall element counters
func (w WallElements) Add(other WallElements) WallElements {
	return WallElements{
		Pyramids:    w.Pyramids + other.Pyramids,
		Escalators:  w.Escalators + other.Escalators,
		Hourglasses: w.Hourglasses + other.Hourglasses,
		Lightnings:  w.Lightnings + other.Lightnings,
		Maws:        w.Maws + other.Maws,
		Rakes:       w.Rakes + other.Rakes,
		Trenches:    w.Trenches + other.Trenches,
		Kites:       w.Kites + other.Kites,
		Bowties:     w.Bowties + other.Bowties,
		Honeycombs:  w.Honeycombs + other.Honeycombs,
		Snakes:      w.Snakes + other.Snakes,
		Vipers:      w.Vipers + other.Vipers,
		Waystones:   w.Waystones + other.Waystones,
	}
}
