package sim

import (
	"math/rand"

	"pongseed/models"
)

// Per-draw upper bounds for each counter group (inclusive)
const (
	maxBallUses        = 3
	maxSpecialUses     = 2
	maxWallAppearances = 1
)

// RollBallUsage draws an independent count in [0, 3] for each ball type
func RollBallUsage(rng *rand.Rand) models.BallUsage {
	return models.BallUsage{
		DefaultBalls:  rng.Intn(maxBallUses + 1),
		CurveBalls:    rng.Intn(maxBallUses + 1),
		MultiplyBalls: rng.Intn(maxBallUses + 1),
		SpinBalls:     rng.Intn(maxBallUses + 1),
		BurstBalls:    rng.Intn(maxBallUses + 1),
	}
}

// RollSpecialItems draws an independent count in [0, 2] for each item
func RollSpecialItems(rng *rand.Rand) models.SpecialItems {
	return models.SpecialItems{
		Bullets: rng.Intn(maxSpecialUses + 1),
		Shields: rng.Intn(maxSpecialUses + 1),
	}
}

// RollWallElements draws an independent count in [0, 1] for each element
func RollWallElements(rng *rand.Rand) models.WallElements {
	return models.WallElements{
		Pyramids:    rng.Intn(maxWallAppearances + 1),
		Escalators:  rng.Intn(maxWallAppearances + 1),
		Hourglasses: rng.Intn(maxWallAppearances + 1),
		Lightnings:  rng.Intn(maxWallAppearances + 1),
		Maws:        rng.Intn(maxWallAppearances + 1),
		Rakes:       rng.Intn(maxWallAppearances + 1),
		Trenches:    rng.Intn(maxWallAppearances + 1),
		Kites:       rng.Intn(maxWallAppearances + 1),
		Bowties:     rng.Intn(maxWallAppearances + 1),
		Honeycombs:  rng.Intn(maxWallAppearances + 1),
		Snakes:      rng.Intn(maxWallAppearances + 1),
		Vipers:      rng.Intn(maxWallAppearances + 1),
		Waystones:   rng.Intn(maxWallAppearances + 1),
	}
}

// PlayerCounters bundles one participant's counter draws for a game
type PlayerCounters struct {
	BallUsage    models.BallUsage
	SpecialItems models.SpecialItems
	WallElements models.WallElements
}

// RollPlayerCounters draws a full set of usage counters for one player.
// It is called once per participant, so the two sides of a game get
// independent draws.
func RollPlayerCounters(rng *rand.Rand) PlayerCounters {
	return PlayerCounters{
		BallUsage:    RollBallUsage(rng),
		SpecialItems: RollSpecialItems(rng),
		WallElements: RollWallElements(rng),
	}
}
