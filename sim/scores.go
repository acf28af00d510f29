package sim

import (
	"math/rand"
)

// maxSimpleScore bounds scores in the simple variant: both sides draw
// uniformly from [0, 10] and draws are allowed.
const maxSimpleScore = 10

// matchPointTargets are the winning scores a match-point game can be
// played to.
var matchPointTargets = []int{5, 7, 10, 11}

// SimpleScores draws two independent scores in [0, maxSimpleScore].
// Equal scores (a draw) are a valid result.
func SimpleScores(rng *rand.Rand) (score1, score2 int) {
	return rng.Intn(maxSimpleScore + 1), rng.Intn(maxSimpleScore + 1)
}

// MatchPointScores draws two scores for a game played to a target
// winning score chosen from matchPointTargets.
//
// After the initial draws, one side (coin flip) is pushed up to the
// target when the scores are equal, and also when both sides fell
// short of it. The second push fires even if the scores already
// differ, so a 3-2 game can still become 5-2 or 3-5; the one shape it
// rules out is a finished game where nobody reached match point.
func MatchPointScores(rng *rand.Rand) (score1, score2 int) {
	target := matchPointTargets[rng.Intn(len(matchPointTargets))]

	score1 = rng.Intn(target + 1)
	score2 = rng.Intn(target + 1)

	if score1 == score2 {
		if rng.Intn(2) == 0 {
			score1 = target
		} else {
			score2 = target
		}
	} else if score1 < target && score2 < target {
		if rng.Intn(2) == 0 {
			score1 = target
		} else {
			score2 = target
		}
	}

	return score1, score2
}
