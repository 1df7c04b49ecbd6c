package services

import (
	"context"
	"fmt"

	"betblitz-backend/internal/models"
)

const crashMatchID = "crash_game"

// CrashBet debits the stake and returns the crash point up front so the
// client can animate the full run. Disclosing the point at bet time makes
// this a non-adversarial mode: settlement trusts the client's claimed
// cashout multiplier instead of running the timer server-side.
func (e *Engine) CrashBet(ctx context.Context, userID string, amount float64) (*models.CrashBetResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidParameter)
	}

	balance, err := e.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	point := CrashPoint(e.rng.Uniform())

	return &models.CrashBetResult{
		Balance:    balance,
		CrashPoint: point,
	}, nil
}

// CrashWin credits a claimed cashout. No timing verification happens here;
// see the note on CrashBet.
func (e *Engine) CrashWin(ctx context.Context, userID string, amount, multiplier float64) (*models.CrashSettleResult, error) {
	if amount <= 0 || multiplier < 1 {
		return nil, fmt.Errorf("%w: bad stake or multiplier", ErrInvalidParameter)
	}

	winnings := amount * multiplier
	balance, err := e.ledger.Credit(ctx, userID, winnings)
	if err != nil {
		return nil, err
	}

	e.record(ctx, newSettlement(
		userID, crashMatchID,
		fmt.Sprintf("Crash @ %.2fx", multiplier),
		models.BetOutcomeWon, multiplier, amount, winnings,
	))

	return &models.CrashSettleResult{Balance: balance}, nil
}

// CrashLose only writes the history row; the stake was taken at bet time.
func (e *Engine) CrashLose(ctx context.Context, userID string, amount, crashPoint float64) error {
	if amount <= 0 || crashPoint < 1 {
		return fmt.Errorf("%w: bad stake or crash point", ErrInvalidParameter)
	}

	e.record(ctx, newSettlement(
		userID, crashMatchID,
		fmt.Sprintf("Crashed @ %.2fx", crashPoint),
		models.BetOutcomeLost, 0, amount, 0,
	))
	return nil
}
