package models

// Engine results. Every settlement-bearing result carries the updated
// balance so the client never needs a follow-up fetch.

type CrashBetResult struct {
	Balance    float64 `json:"balance"`
	CrashPoint float64 `json:"crashPoint"`
}

type CrashSettleResult struct {
	Balance float64 `json:"balance"`
}

type DiceResult struct {
	Roll       float64 `json:"result"`
	Target     int     `json:"target"`
	Won        bool    `json:"won"`
	Multiplier float64 `json:"multiplier"`
	Payout     float64 `json:"payout"`
	Balance    float64 `json:"balance"`
}

type MinesStartResult struct {
	SessionID string  `json:"sessionId"`
	Balance   float64 `json:"balance"`
	MineCount int     `json:"mineCount"`
}

type MinesRevealResult struct {
	Status     string  `json:"status"` // "safe" or "boom"
	TileIndex  int     `json:"tileIndex"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Revealed   []int   `json:"revealed,omitempty"`
	Mines      []int   `json:"mines,omitempty"` // disclosed only on boom
}

type MinesCashoutResult struct {
	Multiplier float64 `json:"multiplier"`
	Winnings   float64 `json:"winnings"`
	Balance    float64 `json:"balance"`
}

type HiLoStartResult struct {
	SessionID string  `json:"sessionId"`
	Card      Card    `json:"card"`
	Balance   float64 `json:"balance"`
}

type HiLoNextResult struct {
	Status     string  `json:"status"` // "won" or "lost"
	Card       Card    `json:"card"`
	Multiplier float64 `json:"multiplier,omitempty"`
	Rounds     int     `json:"rounds"`
}

type HiLoCashoutResult struct {
	Multiplier float64 `json:"multiplier"`
	Winnings   float64 `json:"winnings"`
	Rounds     int     `json:"rounds"`
	Balance    float64 `json:"balance"`
}

type PlinkoResult struct {
	Path       []int   `json:"path"` // 0 = left, 1 = right
	Bucket     int     `json:"bucket"`
	Multiplier float64 `json:"multiplier"`
	Winnings   float64 `json:"winnings"`
	Balance    float64 `json:"balance"`
}

type SportsBetResult struct {
	Balance float64    `json:"balance"`
	Bet     *BetRecord `json:"bet"`
}
