package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"betblitz-backend/internal/config"
	"betblitz-backend/internal/models"
	"betblitz-backend/internal/services"
)

// Integration tests against a local Redis. They skip when no server is
// listening on the default port.
func newTestRedis(t *testing.T) *services.RedisService {
	t.Helper()

	svc, err := services.NewRedisService(&config.Config{
		RedisAddr:       "localhost:6379",
		RedisDB:         15,
		StartingBalance: 1000,
	})
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	t.Cleanup(func() { svc.Close() })
	return svc
}

func testUserID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UnixNano())
}

func TestRedisLedger(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedis(t)

	userID := testUserID("ledger")
	t.Cleanup(func() { svc.DeleteBalance(ctx, userID) })

	// First touch seeds the starting balance.
	balance, err := svc.Balance(ctx, userID)
	if err != nil || balance != 1000 {
		t.Fatalf("seed balance %.2f (%v), want 1000", balance, err)
	}

	balance, err = svc.Debit(ctx, userID, 250)
	if err != nil || balance != 750 {
		t.Fatalf("debit: %.2f (%v)", balance, err)
	}
	balance, err = svc.Credit(ctx, userID, 10.5)
	if err != nil || balance != 760.5 {
		t.Fatalf("credit: %.2f (%v)", balance, err)
	}

	if _, err := svc.Debit(ctx, userID, 1e9); err != services.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// The rejected debit moved nothing.
	balance, _ = svc.Balance(ctx, userID)
	if balance != 760.5 {
		t.Fatalf("balance moved on rejected debit: %.2f", balance)
	}
}

func TestRedisHistory(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedis(t)

	userID := testUserID("history")

	base := time.Now()
	for i := 0; i < 3; i++ {
		err := svc.Append(ctx, &models.BetRecord{
			ID:        models.NewBetID(),
			UserID:    userID,
			Details:   fmt.Sprintf("row %d", i),
			Status:    models.BetStatusSettled,
			CreatedAt: base.Add(time.Duration(i) * time.Millisecond),
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recs, err := svc.List(ctx, userID, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Details != "row 2" {
		t.Errorf("expected newest first, got %q", recs[0].Details)
	}
}

func TestRedisUserStore(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedis(t)

	suffix := time.Now().UnixNano()
	user := &models.User{
		ID:       models.NewUserID(),
		Username: fmt.Sprintf("redis_user_%d", suffix),
		Email:    fmt.Sprintf("redis_%d@example.com", suffix),
	}
	t.Cleanup(func() { svc.DeleteUser(ctx, user) })

	if err := svc.CreateUser(ctx, user); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &models.User{
		ID:       models.NewUserID(),
		Username: user.Username,
		Email:    fmt.Sprintf("other_%d@example.com", suffix),
	}
	if err := svc.CreateUser(ctx, dup); err != services.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	got, err := svc.GetUserByUsername(ctx, user.Username)
	if err != nil || got.ID != user.ID {
		t.Fatalf("lookup by username: %v (%v)", got, err)
	}
	got, err = svc.GetUserByEmail(ctx, user.Email)
	if err != nil || got.ID != user.ID {
		t.Fatalf("lookup by email: %v (%v)", got, err)
	}

	got.Verified = true
	if err := svc.UpdateUser(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = svc.GetUser(ctx, user.ID)
	if !got.Verified {
		t.Fatal("update did not persist")
	}
}

func TestRedisRateLimiter(t *testing.T) {
	ctx := context.Background()
	svc := newTestRedis(t)

	userID := testUserID("rl")

	for i := 0; i < 3; i++ {
		ok, err := svc.Allow(ctx, userID, "bet", 3, time.Minute)
		if err != nil || !ok {
			t.Fatalf("call %d should be allowed: %v %v", i+1, ok, err)
		}
	}

	ok, err := svc.Allow(ctx, userID, "bet", 3, time.Minute)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("fourth call within the window should be blocked")
	}

	// Independent action buckets.
	ok, err = svc.Allow(ctx, userID, "cashout", 3, time.Minute)
	if err != nil || !ok {
		t.Fatalf("different action should have its own bucket: %v %v", ok, err)
	}
}
