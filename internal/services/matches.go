package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"betblitz-backend/internal/models"
)

// MatchSimulator drives the cosmetic live-sports board: a fixed set of
// matches whose scores and odds drift on a timer. It never settles bets;
// the board only exists to quote odds and feed the websocket ticker.
type MatchSimulator struct {
	mu          sync.Mutex
	rng         RNG
	matches     []*matchState
	broadcaster Broadcaster
	interval    time.Duration
}

type matchState struct {
	id      string
	sport   models.Sport
	home    string
	away    string
	details string

	oddsHome float64
	oddsAway float64
	oddsDraw float64

	// Cricket scoreboard.
	runs    int
	wickets int
	overs   int
	balls   int
	awayBat string

	// Football scoreboard.
	homeGoals int
	awayGoals int
	minute    int

	// Chess scoreboard.
	eval     float64
	lastMove string
}

func NewMatchSimulator(rng RNG, interval time.Duration) *MatchSimulator {
	return &MatchSimulator{
		rng:      rng,
		interval: interval,
		matches: []*matchState{
			{
				id: "cric_01", sport: models.SportCricket,
				home: "India", away: "Australia", details: "T20 World Cup Final",
				oddsHome: 1.65, oddsAway: 2.25,
				runs: 142, wickets: 3, overs: 18, balls: 2, awayBat: "Yet to bat",
			},
			{
				id: "foot_01", sport: models.SportFootball,
				home: "Arsenal", away: "Liverpool", details: "Premier League",
				oddsHome: 2.80, oddsAway: 2.90, oddsDraw: 2.40,
				homeGoals: 1, awayGoals: 1, minute: 72,
			},
			{
				id: "chess_01", sport: models.SportChess,
				home: "Magnus Carlsen", away: "Hikaru Nakamura", details: "Speed Chess Championship",
				oddsHome: 1.85, oddsAway: 1.85, oddsDraw: 3.50,
				eval: 0.5, lastMove: "24... Nf6",
			},
			{
				id: "cric_02", sport: models.SportCricket,
				home: "England", away: "New Zealand", details: "ICC Test Championship",
				oddsHome: 1.50, oddsAway: 2.60,
				runs: 210, wickets: 5, overs: 42, balls: 0, awayBat: "Yet to bat",
			},
			{
				id: "foot_02", sport: models.SportFootball,
				home: "Real Madrid", away: "Barcelona", details: "El Clasico",
				oddsHome: 3.10, oddsAway: 1.90, oddsDraw: 3.20,
				homeGoals: 2, awayGoals: 3, minute: 88,
			},
		},
	}
}

func (m *MatchSimulator) SetBroadcaster(b Broadcaster) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.broadcaster = b
}

// Run ticks the board until the context ends. Meant for a goroutine from
// main.
func (m *MatchSimulator) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.Tick()
		case <-ctx.Done():
			return
		}
	}
}

// Tick advances every match that doesn't sit this interval out, then
// broadcasts the fresh board.
func (m *MatchSimulator) Tick() {
	m.mu.Lock()
	for _, match := range m.matches {
		// 30% of ticks leave a match untouched, so the board doesn't
		// move in lockstep.
		if m.rng.Uniform() < 0.3 {
			continue
		}

		switch match.sport {
		case models.SportCricket:
			m.tickCricket(match)
		case models.SportFootball:
			m.tickFootball(match)
		case models.SportChess:
			m.tickChess(match)
		}
	}
	b := m.broadcaster
	m.mu.Unlock()

	if b != nil {
		b.BroadcastMatches(m.Snapshot())
	}
}

func (m *MatchSimulator) tickCricket(match *matchState) {
	event := m.rng.Uniform()
	switch {
	case event < 0.05 && match.wickets < 10:
		match.wickets++
		match.oddsHome += 0.5
		match.oddsAway -= 0.3
	case event < 0.10:
		match.runs += 6
		match.oddsHome -= 0.1
	case event < 0.25:
		match.runs += 4
		match.oddsHome -= 0.05
	default:
		match.runs += 1 + m.rng.UniformInt(3)
	}

	match.balls++
	if match.balls >= 6 {
		match.balls = 0
		match.overs++
	}

	match.oddsHome = clampOdds(match.oddsHome)
	match.oddsAway = clampOdds(match.oddsAway)
}

func (m *MatchSimulator) tickFootball(match *matchState) {
	if match.minute < 90 {
		match.minute++
	}
	if m.rng.Uniform() < 0.03 {
		if m.rng.Uniform() > 0.5 {
			match.homeGoals++
		} else {
			match.awayGoals++
		}
	}
}

func (m *MatchSimulator) tickChess(match *matchState) {
	match.eval += (m.rng.Uniform() - 0.5) * 0.4
}

func clampOdds(o float64) float64 {
	if o < 1.01 {
		return 1.01
	}
	return o
}

// Snapshot renders the current board as plain match models. The returned
// slice shares nothing with simulator state.
func (m *MatchSimulator) Snapshot() []models.Match {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.Match, 0, len(m.matches))
	for _, match := range m.matches {
		mm := models.Match{
			ID:      match.id,
			Sport:   match.sport,
			Home:    match.home,
			Away:    match.away,
			Status:  "LIVE",
			Details: match.details,
			Odds: models.Odds{
				Home: round2(match.oddsHome),
				Away: round2(match.oddsAway),
				Draw: round2(match.oddsDraw),
			},
		}

		switch match.sport {
		case models.SportCricket:
			mm.Score = models.Score{
				Home:  fmt.Sprintf("%d/%d", match.runs, match.wickets),
				Away:  match.awayBat,
				Overs: fmt.Sprintf("%d.%d", match.overs, match.balls),
			}
		case models.SportFootball:
			mm.Score = models.Score{
				Home: match.homeGoals,
				Away: match.awayGoals,
				Time: fmt.Sprintf("%d'", match.minute),
			}
		case models.SportChess:
			eval := fmt.Sprintf("%.2f", match.eval)
			if match.eval > 0 {
				eval = "+" + eval
			}
			mm.Score = models.Score{
				Eval: eval,
				Move: match.lastMove,
			}
		}

		out = append(out, mm)
	}
	return out
}

// GetMatch looks a match up by ID.
func (m *MatchSimulator) GetMatch(id string) (models.Match, bool) {
	for _, match := range m.Snapshot() {
		if match.ID == id {
			return match, true
		}
	}
	return models.Match{}, false
}

func round2(f float64) float64 {
	return float64(int(f*100+0.5)) / 100
}
