package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"betblitz-backend/internal/models"
)

const hiloMatchID = "hilo_game"

const (
	PredictionHigher = "higher"
	PredictionLower  = "lower"
)

var hiloSuits = []string{"H", "D", "C", "S"}

// drawCard picks from a conceptual infinite deck: rank and suit are
// independent uniform draws, no depletion.
func (e *Engine) drawCard() models.Card {
	return models.Card{
		Rank: 2 + e.rng.UniformInt(13),
		Suit: hiloSuits[e.rng.UniformInt(4)],
	}
}

// HiLoStart debits the stake and deals the opening card.
func (e *Engine) HiLoStart(ctx context.Context, userID string, amount float64) (*models.HiLoStartResult, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidParameter)
	}

	unlock := e.sessions.Lock(userID, models.GameKindHiLo)
	defer unlock()

	if _, active := e.sessions.Get(userID, models.GameKindHiLo); active {
		return nil, ErrSessionConflict
	}

	balance, err := e.ledger.Debit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	sess := &models.WagerSession{
		ID:         models.NewSessionID(),
		UserID:     userID,
		Kind:       models.GameKindHiLo,
		Stake:      amount,
		Multiplier: 1.00,
		Card:       e.drawCard(),
		CreatedAt:  time.Now(),
	}

	if err := e.sessions.Create(sess); err != nil {
		if _, cerr := e.ledger.Credit(ctx, userID, amount); cerr != nil {
			log.Printf("hilo start refund failed for %s: %v", userID, cerr)
		}
		return nil, err
	}

	return &models.HiLoStartResult{
		SessionID: sess.ID,
		Card:      sess.Card,
		Balance:   balance,
	}, nil
}

// HiLoNext resolves one higher/lower call. Rank ties are redrawn, so a
// round always settles strictly higher or strictly lower.
func (e *Engine) HiLoNext(ctx context.Context, userID, prediction string) (*models.HiLoNextResult, error) {
	if prediction != PredictionHigher && prediction != PredictionLower {
		return nil, fmt.Errorf("%w: prediction must be higher or lower", ErrInvalidParameter)
	}

	unlock := e.sessions.Lock(userID, models.GameKindHiLo)
	defer unlock()

	sess, active := e.sessions.Get(userID, models.GameKindHiLo)
	if !active {
		return nil, ErrNoActiveSession
	}

	next := e.drawCard()
	for next.Rank == sess.Card.Rank {
		next = e.drawCard()
	}

	won := (prediction == PredictionHigher && next.Rank > sess.Card.Rank) ||
		(prediction == PredictionLower && next.Rank < sess.Card.Rank)

	if !won {
		e.sessions.Remove(userID, models.GameKindHiLo)
		e.record(ctx, newSettlement(
			userID, hiloMatchID,
			fmt.Sprintf("HiLo bust after %d rounds", sess.Rounds),
			models.BetOutcomeLost, 0, sess.Stake, 0,
		))
		return &models.HiLoNextResult{
			Status: "lost",
			Card:   next,
			Rounds: sess.Rounds,
		}, nil
	}

	sess.Multiplier *= HiLoRoundMultiplier(sess.Card.Rank, prediction)
	sess.Card = next
	sess.Rounds++

	return &models.HiLoNextResult{
		Status:     "won",
		Card:       next,
		Multiplier: sess.Multiplier,
		Rounds:     sess.Rounds,
	}, nil
}

// HiLoCashout settles at the accumulated multiplier. Cashing out before
// any guess is allowed and simply returns the stake at 1.00x.
func (e *Engine) HiLoCashout(ctx context.Context, userID string) (*models.HiLoCashoutResult, error) {
	unlock := e.sessions.Lock(userID, models.GameKindHiLo)
	defer unlock()

	sess, active := e.sessions.Remove(userID, models.GameKindHiLo)
	if !active {
		return nil, ErrNoActiveSession
	}

	winnings := sess.Stake * sess.Multiplier

	balance, err := e.ledger.Credit(ctx, userID, winnings)
	if err != nil {
		if cerr := e.sessions.Create(sess); cerr != nil {
			log.Printf("hilo cashout session restore failed for %s: %v", userID, cerr)
		}
		return nil, err
	}

	e.record(ctx, newSettlement(
		userID, hiloMatchID,
		fmt.Sprintf("HiLo cashout @ %.2fx after %d rounds", sess.Multiplier, sess.Rounds),
		models.BetOutcomeWon, sess.Multiplier, sess.Stake, winnings,
	))

	return &models.HiLoCashoutResult{
		Multiplier: sess.Multiplier,
		Winnings:   winnings,
		Rounds:     sess.Rounds,
		Balance:    balance,
	}, nil
}
