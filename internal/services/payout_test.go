package services_test

import (
	"math"
	"testing"

	"betblitz-backend/internal/services"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func TestMinesMultiplier(t *testing.T) {
	// 3 mines: 0.99 * 25/22 after one safe reveal.
	got := services.MinesMultiplier(1, 3)
	if !almostEqual(got, 0.99*25.0/22.0, 1e-9) {
		t.Errorf("expected %.4f, got %.4f", 0.99*25.0/22.0, got)
	}
	if !almostEqual(got, 1.1250, 0.0005) {
		t.Errorf("expected about 1.1250, got %.4f", got)
	}

	// Two safe reveals: 0.99 * 25/22 * 24/21.
	got = services.MinesMultiplier(2, 3)
	if !almostEqual(got, 1.2857, 0.0005) {
		t.Errorf("expected about 1.2857, got %.4f", got)
	}

	// Zero reveals pay the bare house-edge factor.
	if got := services.MinesMultiplier(0, 3); got != 0.99 {
		t.Errorf("expected 0.99 at zero reveals, got %.4f", got)
	}

	// Multiplier grows with every reveal and with mine count.
	prev := 0.0
	for k := 0; k <= 22; k++ {
		m := services.MinesMultiplier(k, 3)
		if m <= prev {
			t.Fatalf("multiplier not increasing at k=%d: %.4f <= %.4f", k, m, prev)
		}
		prev = m
	}
	if services.MinesMultiplier(1, 10) <= services.MinesMultiplier(1, 3) {
		t.Error("more mines should pay more per reveal")
	}
}

func TestHiLoRoundMultiplier(t *testing.T) {
	// Rank 7, higher: 7 of 13 ranks win.
	got := services.HiLoRoundMultiplier(7, services.PredictionHigher)
	if !almostEqual(got, 0.95*13.0/7.0, 1e-9) {
		t.Errorf("expected %.4f, got %.4f", 0.95*13.0/7.0, got)
	}

	// Ace, higher: zero options clamp to one.
	got = services.HiLoRoundMultiplier(14, services.PredictionHigher)
	if !almostEqual(got, 12.35, 1e-9) {
		t.Errorf("expected 12.35, got %.4f", got)
	}

	// Deuce, lower: same clamp on the other edge.
	got = services.HiLoRoundMultiplier(2, services.PredictionLower)
	if !almostEqual(got, 12.35, 1e-9) {
		t.Errorf("expected 12.35, got %.4f", got)
	}
}

func TestDiceMultiplier(t *testing.T) {
	if got := services.DiceMultiplier(50); !almostEqual(got, 1.98, 1e-9) {
		t.Errorf("expected 1.98, got %.4f", got)
	}
	if got := services.DiceMultiplier(99); !almostEqual(got, 1.0, 1e-9) {
		t.Errorf("expected 1.00 at target 99, got %.4f", got)
	}
}

func TestCrashPoint(t *testing.T) {
	// The bottom 3% bust instantly.
	if got := services.CrashPoint(0.0); got != 1.00 {
		t.Errorf("expected 1.00, got %.2f", got)
	}
	if got := services.CrashPoint(0.03); got != 1.00 {
		t.Errorf("expected 1.00 at the 3%% boundary, got %.2f", got)
	}

	// Inverse distribution, floored to cents.
	if got := services.CrashPoint(0.5); got != 2.00 {
		t.Errorf("expected 2.00, got %.2f", got)
	}
	if got := services.CrashPoint(0.9); got != 10.00 {
		t.Errorf("expected 10.00, got %.2f", got)
	}

	// Never below 1.00, always two decimals.
	for _, r := range []float64{0.031, 0.1, 0.25, 0.6, 0.99, 0.9999} {
		got := services.CrashPoint(r)
		if got < 1.00 {
			t.Errorf("crash point below 1.00 for r=%.4f: %.4f", r, got)
		}
		if math.Floor(got*100) != got*100 && !almostEqual(math.Floor(got*100), got*100, 1e-6) {
			t.Errorf("crash point not floored to 2 decimals for r=%.4f: %v", r, got)
		}
	}
}

func TestPlinkoMultiplier(t *testing.T) {
	// Center bucket on a 16-row board pays half.
	if got := services.PlinkoMultiplier(16, 8); got != 0.5 {
		t.Errorf("expected 0.5 at center, got %.2f", got)
	}

	// Extreme buckets pay the board max.
	if got := services.PlinkoMultiplier(16, 0); got != 110.0 {
		t.Errorf("expected 110.0 at the edge, got %.2f", got)
	}
	if got := services.PlinkoMultiplier(16, 16); got != 110.0 {
		t.Errorf("expected 110.0 at the edge, got %.2f", got)
	}

	// Monotone in distance from center.
	prev := 0.0
	for bucket := 8; bucket <= 16; bucket++ {
		m := services.PlinkoMultiplier(16, bucket)
		if m < prev {
			t.Fatalf("multiplier decreasing at bucket %d: %.2f < %.2f", bucket, m, prev)
		}
		prev = m
	}

	// Symmetric around the center.
	for d := 0; d <= 8; d++ {
		left := services.PlinkoMultiplier(16, 8-d)
		right := services.PlinkoMultiplier(16, 8+d)
		if left != right {
			t.Errorf("asymmetric payouts at distance %d: %.2f vs %.2f", d, left, right)
		}
	}

	// Odd distances on an odd center still resolve (rows=9, center 4.5).
	if got := services.PlinkoMultiplier(9, 4); got != 1.0 {
		t.Errorf("expected 1.0 half a step off center, got %.2f", got)
	}
}
