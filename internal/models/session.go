package models

import "time"

// GameKind identifies a mini-game. Only the multi-round games hold a
// WagerSession between requests; the single-shot games settle in place.
type GameKind string

const (
	GameKindCrash  GameKind = "crash"
	GameKindDice   GameKind = "dice"
	GameKindMines  GameKind = "mines"
	GameKindHiLo   GameKind = "hilo"
	GameKindPlinko GameKind = "plinko"
)

type Card struct {
	Rank int    `json:"rank"` // 2..14, 11=J 12=Q 13=K 14=A
	Suit string `json:"suit"` // H, D, C, S
}

// WagerSession is the server-held state of one in-progress multi-round
// game. The stake is debited when the session is created and never changes.
type WagerSession struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Kind       GameKind `json:"game_kind"`
	Stake      float64  `json:"stake"`
	Rounds     int      `json:"rounds"`
	Multiplier float64  `json:"multiplier"`

	// Mines state.
	MineCount int   `json:"mine_count,omitempty"`
	Mines     []int `json:"-"`
	Revealed  []int `json:"revealed,omitempty"`

	// HiLo state.
	Card Card `json:"card,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *WagerSession) HasRevealed(tile int) bool {
	for _, t := range s.Revealed {
		if t == tile {
			return true
		}
	}
	return false
}

func (s *WagerSession) IsMine(tile int) bool {
	for _, m := range s.Mines {
		if m == tile {
			return true
		}
	}
	return false
}
