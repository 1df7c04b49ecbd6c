package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"betblitz-backend/internal/models"
	"betblitz-backend/internal/services"
)

func TestMemoryLedgerDebitCredit(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewMemoryLedger(1000)

	balance, err := ledger.Balance(ctx, "u1")
	if err != nil || balance != 1000 {
		t.Fatalf("expected starting balance 1000, got %.2f (%v)", balance, err)
	}

	balance, err = ledger.Debit(ctx, "u1", 250)
	if err != nil || balance != 750 {
		t.Fatalf("debit: got %.2f (%v)", balance, err)
	}

	balance, err = ledger.Credit(ctx, "u1", 100)
	if err != nil || balance != 850 {
		t.Fatalf("credit: got %.2f (%v)", balance, err)
	}
}

func TestMemoryLedgerInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewMemoryLedger(100)

	if _, err := ledger.Debit(ctx, "u1", 100.01); err != services.ErrInsufficientFunds {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	// A rejected debit leaves the balance untouched.
	balance, _ := ledger.Balance(ctx, "u1")
	if balance != 100 {
		t.Fatalf("balance moved on rejected debit: %.2f", balance)
	}

	// Exact balance is spendable.
	if _, err := ledger.Debit(ctx, "u1", 100); err != nil {
		t.Fatalf("exact-balance debit failed: %v", err)
	}
}

func TestMemoryLedgerConcurrentDebits(t *testing.T) {
	ctx := context.Background()
	ledger := services.NewMemoryLedger(1000)

	// 100 goroutines race to take 15 each; at most 66 can succeed and the
	// balance must never go negative.
	const workers = 100
	const stake = 15.0

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := ledger.Debit(ctx, "u1", stake); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	balance, _ := ledger.Balance(ctx, "u1")
	if balance < 0 {
		t.Fatalf("balance went negative: %.2f", balance)
	}
	if want := 1000 - float64(succeeded)*stake; balance != want {
		t.Fatalf("conservation broken: %d debits succeeded but balance is %.2f, want %.2f",
			succeeded, balance, want)
	}
}

func TestMemoryHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	history := services.NewMemoryHistory()

	base := time.Now()
	for i := 0; i < 5; i++ {
		history.Append(ctx, &models.BetRecord{
			ID:        models.NewBetID(),
			UserID:    "u1",
			Details:   "row",
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	recs, err := history.List(ctx, "u1", 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].CreatedAt.After(recs[i-1].CreatedAt) {
			t.Fatal("history not newest-first")
		}
	}

	// Other users see nothing.
	recs, _ = history.List(ctx, "u2", 10)
	if len(recs) != 0 {
		t.Fatalf("expected empty history for u2, got %d", len(recs))
	}
}

func TestMemoryUserStoreUniqueness(t *testing.T) {
	ctx := context.Background()
	store := services.NewMemoryUserStore()

	user := &models.User{ID: models.NewUserID(), Username: "alice", Email: "alice@example.com"}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}

	dup := &models.User{ID: models.NewUserID(), Username: "alice", Email: "other@example.com"}
	if err := store.CreateUser(ctx, dup); err != services.ErrUserExists {
		t.Fatalf("expected ErrUserExists on username clash, got %v", err)
	}

	dup = &models.User{ID: models.NewUserID(), Username: "bob", Email: "alice@example.com"}
	if err := store.CreateUser(ctx, dup); err != services.ErrUserExists {
		t.Fatalf("expected ErrUserExists on email clash, got %v", err)
	}

	got, err := store.GetUserByUsername(ctx, "alice")
	if err != nil || got.ID != user.ID {
		t.Fatalf("lookup by username: %v, %v", got, err)
	}
	if _, err := store.GetUser(ctx, "missing"); err != services.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
