package services

import (
	"context"
	"fmt"
	"time"

	"betblitz-backend/internal/models"
)

// SportsBet places a fixed-odds bet on a simulated live match. The stake is
// debited and the bet stays OPEN; the simulator never settles matches.
func (e *Engine) SportsBet(ctx context.Context, userID string, req *models.SportsBetRequest) (*models.SportsBetResult, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidParameter)
	}
	if req.Odds <= 1 {
		return nil, fmt.Errorf("%w: odds must exceed 1.00", ErrInvalidParameter)
	}

	balance, err := e.ledger.Debit(ctx, userID, req.Amount)
	if err != nil {
		return nil, err
	}

	bet := &models.BetRecord{
		ID:           models.NewBetID(),
		UserID:       userID,
		MatchID:      req.MatchID,
		Details:      req.Details,
		Outcome:      models.BetOutcome(req.Outcome),
		Odds:         req.Odds,
		Stake:        req.Amount,
		PotentialWin: req.Amount * req.Odds,
		Status:       models.BetStatusOpen,
		CreatedAt:    time.Now(),
	}
	e.record(ctx, bet)

	return &models.SportsBetResult{
		Balance: balance,
		Bet:     bet,
	}, nil
}
