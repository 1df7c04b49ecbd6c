package services_test

import (
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"betblitz-backend/internal/models"
	"betblitz-backend/internal/services"
)

type recordingBroadcaster struct {
	mu     sync.Mutex
	boards [][]models.Match
}

func (b *recordingBroadcaster) BroadcastMatches(matches []models.Match) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.boards = append(b.boards, matches)
}

func (b *recordingBroadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.boards)
}

func TestSimulatorSnapshot(t *testing.T) {
	sim := services.NewMatchSimulator(services.NewRNG(), time.Second)

	board := sim.Snapshot()
	if len(board) != 5 {
		t.Fatalf("expected 5 seeded matches, got %d", len(board))
	}
	for _, m := range board {
		if m.Status != "LIVE" {
			t.Errorf("match %s status %q, want LIVE", m.ID, m.Status)
		}
		if m.Odds.Home < 1.01 || m.Odds.Away < 1.01 {
			t.Errorf("match %s quotes odds below the floor: %+v", m.ID, m.Odds)
		}
	}

	match, ok := sim.GetMatch("cric_01")
	if !ok || match.Sport != models.SportCricket {
		t.Fatalf("GetMatch(cric_01) = %+v, %v", match, ok)
	}
	if _, ok := sim.GetMatch("nope"); ok {
		t.Fatal("GetMatch should miss on unknown ID")
	}
}

func TestSimulatorInvariantsOverManyTicks(t *testing.T) {
	sim := services.NewMatchSimulator(services.NewRNG(), time.Second)

	for i := 0; i < 300; i++ {
		sim.Tick()
	}

	for _, m := range sim.Snapshot() {
		if m.Odds.Home < 1.01 || m.Odds.Away < 1.01 {
			t.Errorf("match %s odds dropped below 1.01: %+v", m.ID, m.Odds)
		}

		switch m.Sport {
		case models.SportCricket:
			// Overs format is O.B with balls in [0,5].
			parts := strings.Split(m.Score.Overs, ".")
			if len(parts) != 2 {
				t.Fatalf("match %s has malformed overs %q", m.ID, m.Score.Overs)
			}
			balls, err := strconv.Atoi(parts[1])
			if err != nil || balls < 0 || balls > 5 {
				t.Errorf("match %s balls out of range in %q", m.ID, m.Score.Overs)
			}
		case models.SportFootball:
			// The clock stops at 90.
			minute, err := strconv.Atoi(strings.TrimSuffix(m.Score.Time, "'"))
			if err != nil || minute > 90 {
				t.Errorf("match %s clock reads %q", m.ID, m.Score.Time)
			}
		}
	}
}

func TestSimulatorFootballClockStopsAt90(t *testing.T) {
	sim := services.NewMatchSimulator(services.NewRNG(), time.Second)

	for i := 0; i < 500; i++ {
		sim.Tick()
	}

	m, ok := sim.GetMatch("foot_02")
	if !ok {
		t.Fatal("foot_02 missing")
	}
	if m.Score.Time != "90'" {
		t.Errorf("after 500 ticks the clock should read 90', got %q", m.Score.Time)
	}
}

func TestSimulatorSnapshotIsolation(t *testing.T) {
	sim := services.NewMatchSimulator(services.NewRNG(), time.Second)

	board := sim.Snapshot()
	board[0].ID = "mutated"
	board[0].Odds.Home = 0

	fresh := sim.Snapshot()
	if fresh[0].ID == "mutated" || fresh[0].Odds.Home == 0 {
		t.Fatal("snapshot shares state with the simulator")
	}
}

func TestSimulatorBroadcastsEachTick(t *testing.T) {
	sim := services.NewMatchSimulator(services.NewRNG(), time.Second)

	rec := &recordingBroadcaster{}
	sim.SetBroadcaster(rec)

	sim.Tick()
	sim.Tick()
	sim.Tick()

	if rec.count() != 3 {
		t.Fatalf("expected 3 broadcasts, got %d", rec.count())
	}
}
