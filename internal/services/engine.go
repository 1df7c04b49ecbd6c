package services

import (
	"context"
	"log"
	"time"

	"betblitz-backend/internal/models"
)

// Engine runs every wager: it validates the stake against the ledger,
// draws the outcome, prices it, and settles balance plus bet history.
// Multi-round games park their state in the session store between
// requests; single-shot games settle inside one call.
type Engine struct {
	rng      RNG
	sessions *SessionStore
	ledger   Ledger
	history  BetHistory
}

func NewEngine(rng RNG, sessions *SessionStore, ledger Ledger, history BetHistory) *Engine {
	return &Engine{
		rng:      rng,
		sessions: sessions,
		ledger:   ledger,
		history:  history,
	}
}

// record appends a settlement row. History is fire-and-forget: a failed
// append never unwinds a settled balance, it only gets logged.
func (e *Engine) record(ctx context.Context, rec *models.BetRecord) {
	if err := e.history.Append(ctx, rec); err != nil {
		log.Printf("bet history append failed for %s: %v", rec.UserID, err)
	}
}

func newSettlement(userID, matchID, details string, outcome models.BetOutcome, odds, stake, winnings float64) *models.BetRecord {
	return &models.BetRecord{
		ID:           models.NewBetID(),
		UserID:       userID,
		MatchID:      matchID,
		Details:      details,
		Outcome:      outcome,
		Odds:         odds,
		Stake:        stake,
		PotentialWin: winnings,
		Status:       models.BetStatusSettled,
		CreatedAt:    time.Now(),
	}
}
