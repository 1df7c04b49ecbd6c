package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"betblitz-backend/internal/models"
)

const minesMatchID = "mines_game"

// MinesStart opens a mines session: one per user at a time. The conflict
// check happens before the debit so a rejected start never moves money.
func (e *Engine) MinesStart(ctx context.Context, userID string, amount float64, mineCount int) (*models.MinesStartResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidParameter)
	}
	if mineCount < 1 || mineCount > 24 {
		return nil, fmt.Errorf("%w: mineCount must be in [1,24]", ErrInvalidParameter)
	}

	unlock := e.sessions.Lock(userID, models.GameKindMines)
	defer unlock()

	if _, active := e.sessions.Get(userID, models.GameKindMines); active {
		return nil, ErrSessionConflict
	}

	balance, err := e.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	sess := &models.WagerSession{
		ID:         models.NewSessionID(),
		UserID:     userID,
		Kind:       models.GameKindMines,
		Stake:      amount,
		Multiplier: 1.00,
		MineCount:  mineCount,
		Mines:      e.drawMines(mineCount),
		CreatedAt:  time.Now(),
	}

	if err := e.sessions.Create(sess); err != nil {
		// Unreachable while the key lock is held; refund anyway.
		if _, cerr := e.ledger.Credit(ctx, userID, amount); cerr != nil {
			log.Printf("mines start refund failed for %s: %v", userID, cerr)
		}
		return nil, err
	}

	return &models.MinesStartResult{
		SessionID: sess.ID,
		Balance:   balance,
		MineCount: mineCount,
	}, nil
}

// drawMines picks distinct tiles by rejection sampling: draw, discard
// repeats, until the field holds mineCount mines.
func (e *Engine) drawMines(mineCount int) []int {
	mines := make([]int, 0, mineCount)
	taken := make(map[int]bool, mineCount)

	for len(mines) < mineCount {
		tile := e.rng.UniformInt(minesTotalTiles)
		if taken[tile] {
			continue
		}
		taken[tile] = true
		mines = append(mines, tile)
	}
	return mines
}

// MinesReveal uncovers one tile. A mine ends the session with no credit and
// discloses the full mine set for the board render; a safe tile advances
// the multiplier and keeps the session live.
func (e *Engine) MinesReveal(ctx context.Context, userID string, tileIndex int) (*models.MinesRevealResult, error) {
	if tileIndex < 0 || tileIndex >= minesTotalTiles {
		return nil, fmt.Errorf("%w: tileIndex must be in [0,24]", ErrInvalidParameter)
	}

	unlock := e.sessions.Lock(userID, models.GameKindMines)
	defer unlock()

	sess, active := e.sessions.Get(userID, models.GameKindMines)
	if !active {
		return nil, ErrNoActiveSession
	}

	if sess.HasRevealed(tileIndex) {
		return nil, ErrAlreadyRevealed
	}

	if sess.IsMine(tileIndex) {
		e.sessions.Remove(userID, models.GameKindMines)
		e.record(ctx, newSettlement(
			userID, minesMatchID,
			fmt.Sprintf("Mines bust on tile %d (%d mines)", tileIndex, sess.MineCount),
			models.BetOutcomeLost, 0, sess.Stake, 0,
		))
		return &models.MinesRevealResult{
			Status:    "boom",
			TileIndex: tileIndex,
			Mines:     sess.Mines,
		}, nil
	}

	sess.Revealed = append(sess.Revealed, tileIndex)
	sess.Rounds++
	sess.Multiplier = MinesMultiplier(len(sess.Revealed), sess.MineCount)

	return &models.MinesRevealResult{
		Status:     "safe",
		TileIndex:  tileIndex,
		Multiplier: sess.Multiplier,
		Revealed:   sess.Revealed,
	}, nil
}

// MinesCashout settles the live session at the current multiplier.
func (e *Engine) MinesCashout(ctx context.Context, userID string) (*models.MinesCashoutResult, error) {
	unlock := e.sessions.Lock(userID, models.GameKindMines)
	defer unlock()

	sess, active := e.sessions.Remove(userID, models.GameKindMines)
	if !active {
		return nil, ErrNoActiveSession
	}

	multiplier := MinesMultiplier(len(sess.Revealed), sess.MineCount)
	winnings := sess.Stake * multiplier

	balance, err := e.ledger.Credit(ctx, userID, winnings)
	if err != nil {
		// Put the session back so the cashout can be retried; the stake
		// must not vanish on a ledger outage.
		if cerr := e.sessions.Create(sess); cerr != nil {
			log.Printf("mines cashout session restore failed for %s: %v", userID, cerr)
		}
		return nil, err
	}

	e.record(ctx, newSettlement(
		userID, minesMatchID,
		fmt.Sprintf("Mines cashout @ %.2fx after %d reveals", multiplier, len(sess.Revealed)),
		models.BetOutcomeWon, multiplier, sess.Stake, winnings,
	))

	return &models.MinesCashoutResult{
		Multiplier: multiplier,
		Winnings:   winnings,
		Balance:    balance,
	}, nil
}
