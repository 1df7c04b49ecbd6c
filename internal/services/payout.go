package services

import "math"

// Pure payout math for every game. Nothing in this file draws randomness
// or touches a balance; callers pass game state in and get multipliers out.

const (
	minesTotalTiles = 25
	minesHouseEdge  = 0.99
	hiloHouseEdge   = 0.95
	diceHouseEdge   = 99.0 // multiplier numerator; 1% edge against 100
)

// MinesMultiplier is the inverse of the probability of drawing revealed
// safe tiles in a row from a 25-cell field with mineCount mines, scaled by
// the house edge. revealed must not exceed 25-mineCount; the reveal rule
// guarantees that because an unsafe pick busts the session first.
func MinesMultiplier(revealed, mineCount int) float64 {
	safe := minesTotalTiles - mineCount
	mult := minesHouseEdge
	for i := 0; i < revealed; i++ {
		mult *= float64(minesTotalTiles-i) / float64(safe-i)
	}
	return mult
}

// HiLoRoundMultiplier prices one correct higher/lower call against the
// current card rank (2..14). The winning-option count is clamped to 1 so an
// extreme-rank bet (higher on an Ace) stays finite.
func HiLoRoundMultiplier(rank int, prediction string) float64 {
	var options int
	if prediction == PredictionHigher {
		options = 14 - rank
	} else {
		options = rank - 2
	}
	if options < 1 {
		options = 1
	}
	return hiloHouseEdge / (float64(options) / 13.0)
}

// DiceMultiplier prices a roll-under bet. target is the exclusive upper
// bound of the winning range in [0,100).
func DiceMultiplier(target int) float64 {
	return diceHouseEdge / float64(target)
}

// CrashPoint maps a uniform draw in [0,1) to a crash multiplier. 3% of
// draws bust instantly at 1.00; the rest follow the inverse distribution
// floored to 2 decimals.
func CrashPoint(r float64) float64 {
	if r <= 0.03 {
		return 1.00
	}
	point := math.Floor(100/(1-r)) / 100
	return math.Max(1.00, point)
}

// plinkoSteps maps distance-from-center to a multiplier. Monotone: the
// center bucket pays half the stake back, the extremes pay the board max.
var plinkoSteps = []struct {
	distance   float64
	multiplier float64
}{
	{0, 0.5},
	{1, 1.0},
	{2, 1.1},
	{3, 1.4},
	{4, 2.0},
	{5, 4.0},
	{6, 9.0},
	{7, 26.0},
	{8, 110.0},
}

// PlinkoMultiplier maps a landing bucket (0..rows) to its payout. The
// bucket index is the count of rightward bounces, so the distance from
// rows/2 follows a binomial distribution centered on zero.
func PlinkoMultiplier(rows, bucket int) float64 {
	distance := math.Abs(float64(bucket) - float64(rows)/2)
	mult := plinkoSteps[len(plinkoSteps)-1].multiplier
	for _, step := range plinkoSteps {
		if distance <= step.distance {
			mult = step.multiplier
			break
		}
	}
	return mult
}
