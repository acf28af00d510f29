package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollBallUsage(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 500; i++ {
		usage := RollBallUsage(rng)

		for _, count := range []int{
			usage.DefaultBalls,
			usage.CurveBalls,
			usage.MultiplyBalls,
			usage.SpinBalls,
			usage.BurstBalls,
		} {
			assert.GreaterOrEqual(t, count, 0)
			assert.LessOrEqual(t, count, 3)
		}
	}
}

func TestRollSpecialItems(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 500; i++ {
		items := RollSpecialItems(rng)

		for _, count := range []int{items.Bullets, items.Shields} {
			assert.GreaterOrEqual(t, count, 0)
			assert.LessOrEqual(t, count, 2)
		}
	}
}

func TestRollWallElements(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for i := 0; i < 500; i++ {
		walls := RollWallElements(rng)

		for _, count := range []int{
			walls.Pyramids, walls.Escalators, walls.Hourglasses,
			walls.Lightnings, walls.Maws, walls.Rakes, walls.Trenches,
			walls.Kites, walls.Bowties, walls.Honeycombs, walls.Snakes,
			walls.Vipers, walls.Waystones,
		} {
			assert.GreaterOrEqual(t, count, 0)
			assert.LessOrEqual(t, count, 1)
		}
	}
}

func TestRollPlayerCounters_IndependentSides(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	// Two consecutive draws from one source should not be identical
	// across many attempts
	identical := 0
	for i := 0; i < 100; i++ {
		first := RollPlayerCounters(rng)
		second := RollPlayerCounters(rng)
		if first == second {
			identical++
		}
	}

	assert.Less(t, identical, 100)
}
