package services

import (
	"context"
	"fmt"

	"betblitz-backend/internal/models"
)

const plinkoMatchID = "plinko_game"

// PlinkoBet drops one ball: rows fair coin flips form the path, the bucket
// is the count of rightward bounces, and settlement is immediate. The path
// is returned for the client animation and not persisted.
func (e *Engine) PlinkoBet(ctx context.Context, userID string, amount float64, rows int) (*models.PlinkoResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidParameter)
	}
	if rows < 8 || rows > 16 {
		return nil, fmt.Errorf("%w: rows must be in [8,16]", ErrInvalidParameter)
	}

	balance, err := e.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	path := make([]int, rows)
	bucket := 0
	for i := range path {
		path[i] = e.rng.UniformInt(2)
		bucket += path[i]
	}

	multiplier := PlinkoMultiplier(rows, bucket)
	winnings := amount * multiplier

	balance, err = e.ledger.Credit(ctx, userID, winnings)
	if err != nil {
		if _, cerr := e.ledger.Credit(ctx, userID, amount); cerr != nil {
			return nil, fmt.Errorf("%w: debit stranded: %v", ErrUpstream, cerr)
		}
		return nil, err
	}

	outcome := models.BetOutcomeLost
	if winnings > amount {
		outcome = models.BetOutcomeWon
	}
	e.record(ctx, newSettlement(
		userID, plinkoMatchID,
		fmt.Sprintf("Plinko %d rows, bucket %d @ %.2fx", rows, bucket, multiplier),
		outcome, multiplier, amount, winnings,
	))

	return &models.PlinkoResult{
		Path:       path,
		Bucket:     bucket,
		Multiplier: multiplier,
		Winnings:   winnings,
		Balance:    balance,
	}, nil
}
