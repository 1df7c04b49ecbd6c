package models

import "time"

type BetOutcome string

const (
	BetOutcomeWon  BetOutcome = "won"
	BetOutcomeLost BetOutcome = "lost"
	// Sports bets carry the side the user backed instead of a result.
	BetOutcomeHome BetOutcome = "home"
	BetOutcomeAway BetOutcome = "away"
	BetOutcomeDraw BetOutcome = "draw"
)

type BetStatus string

const (
	BetStatusOpen    BetStatus = "OPEN"
	BetStatusSettled BetStatus = "SETTLED"
)

// BetRecord is one immutable row of a user's wager history. Mini-game
// settlements are written already settled; sports bets stay OPEN.
type BetRecord struct {
	ID           string     `json:"id" redis:"id"`
	UserID       string     `json:"user_id" redis:"user_id"`
	MatchID      string     `json:"match_id" redis:"match_id"`
	Details      string     `json:"details" redis:"details"`
	Outcome      BetOutcome `json:"outcome" redis:"outcome"`
	Odds         float64    `json:"odds" redis:"odds"`
	Stake        float64    `json:"stake" redis:"stake"`
	PotentialWin float64    `json:"potential_win" redis:"potential_win"`
	Status       BetStatus  `json:"status" redis:"status"`
	CreatedAt    time.Time  `json:"created_at" redis:"created_at"`
}
