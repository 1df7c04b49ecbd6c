package services

import (
	"context"
	"fmt"
	"math"

	"betblitz-backend/internal/models"
)

const diceMatchID = "dice_game"

// DiceBet is a single-shot roll-under wager: the roll lands in [0,100) and
// wins when it comes in below target.
func (e *Engine) DiceBet(ctx context.Context, userID string, amount float64, target int) (*models.DiceResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidParameter)
	}
	if target < 1 || target > 95 {
		return nil, fmt.Errorf("%w: target must be in [1,95]", ErrInvalidParameter)
	}

	balance, err := e.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	// Two decimals, matching the multiplier precision shown to the player.
	roll := math.Floor(e.rng.Uniform()*10000) / 100
	multiplier := DiceMultiplier(target)
	won := roll < float64(target)

	var payout float64
	if won {
		payout = amount * multiplier
		balance, err = e.ledger.Credit(ctx, userID, payout)
		if err != nil {
			// The debit went through but the win cannot be paid; give the
			// stake back rather than leave a half-settled wager.
			if _, cerr := e.ledger.Credit(ctx, userID, amount); cerr != nil {
				return nil, fmt.Errorf("%w: debit stranded: %v", ErrUpstream, cerr)
			}
			return nil, err
		}
	}

	outcome := models.BetOutcomeLost
	if won {
		outcome = models.BetOutcomeWon
	}
	e.record(ctx, newSettlement(
		userID, diceMatchID,
		fmt.Sprintf("Dice under %d, rolled %.2f", target, roll),
		outcome, multiplier, amount, payout,
	))

	return &models.DiceResult{
		Roll:       roll,
		Target:     target,
		Won:        won,
		Multiplier: multiplier,
		Payout:     payout,
		Balance:    balance,
	}, nil
}
