package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"betblitz-backend/internal/models"
)

// Ledger is the account-balance collaborator. Implementations must make
// each call atomic per account: a debit is a conditional
// check-subtract-persist, never a read followed by a blind write.
type Ledger interface {
	Balance(ctx context.Context, userID string) (float64, error)
	// Debit subtracts amount and returns the new balance, or
	// ErrInsufficientFunds leaving the balance untouched.
	Debit(ctx context.Context, userID string, amount float64) (float64, error)
	// Credit adds amount and returns the new balance.
	Credit(ctx context.Context, userID string, amount float64) (float64, error)
}

// BetHistory is the append-only settlement record collaborator.
type BetHistory interface {
	Append(ctx context.Context, rec *models.BetRecord) error
	List(ctx context.Context, userID string, limit int) ([]*models.BetRecord, error)
}

// UserStore holds registered users.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}

// RateLimiter bounds per-user action frequency.
type RateLimiter interface {
	Allow(ctx context.Context, userID, action string, limit int, window time.Duration) (bool, error)
}

// ---- In-memory implementations. Used in dev mode (no REDIS_ADDR) and in
// tests; the Redis-backed versions live in redis.go.

type memoryAccount struct {
	mu      sync.Mutex
	balance float64
}

type MemoryLedger struct {
	mu              sync.Mutex
	accounts        map[string]*memoryAccount
	startingBalance float64
}

func NewMemoryLedger(startingBalance float64) *MemoryLedger {
	return &MemoryLedger{
		accounts:        make(map[string]*memoryAccount),
		startingBalance: startingBalance,
	}
}

// account returns the per-user record, creating it with the starting
// balance on first touch.
func (l *MemoryLedger) account(userID string) *memoryAccount {
	l.mu.Lock()
	defer l.mu.Unlock()

	acct, ok := l.accounts[userID]
	if !ok {
		acct = &memoryAccount{balance: l.startingBalance}
		l.accounts[userID] = acct
	}
	return acct
}

func (l *MemoryLedger) Balance(ctx context.Context, userID string) (float64, error) {
	acct := l.account(userID)
	acct.mu.Lock()
	defer acct.mu.Unlock()
	return acct.balance, nil
}

func (l *MemoryLedger) Debit(ctx context.Context, userID string, amount float64) (float64, error) {
	acct := l.account(userID)
	acct.mu.Lock()
	defer acct.mu.Unlock()

	if acct.balance < amount {
		return acct.balance, ErrInsufficientFunds
	}
	acct.balance -= amount
	return acct.balance, nil
}

func (l *MemoryLedger) Credit(ctx context.Context, userID string, amount float64) (float64, error) {
	acct := l.account(userID)
	acct.mu.Lock()
	defer acct.mu.Unlock()

	acct.balance += amount
	return acct.balance, nil
}

type MemoryHistory struct {
	mu      sync.Mutex
	records map[string][]*models.BetRecord
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{records: make(map[string][]*models.BetRecord)}
}

func (h *MemoryHistory) Append(ctx context.Context, rec *models.BetRecord) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records[rec.UserID] = append(h.records[rec.UserID], rec)
	return nil
}

func (h *MemoryHistory) List(ctx context.Context, userID string, limit int) ([]*models.BetRecord, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	recs := h.records[userID]
	out := make([]*models.BetRecord, len(recs))
	copy(out, recs)

	// Newest first, like the original history view.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]*models.User)}
}

func (s *MemoryUserStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username || u.Email == user.Email {
			return ErrUserExists
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *MemoryUserStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *MemoryUserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) UpdateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return ErrUserNotFound
	}
	s.users[user.ID] = user
	return nil
}

// NoopRateLimiter always allows; dev mode runs without Redis.
type NoopRateLimiter struct{}

func (NoopRateLimiter) Allow(ctx context.Context, userID, action string, limit int, window time.Duration) (bool, error) {
	return true, nil
}
