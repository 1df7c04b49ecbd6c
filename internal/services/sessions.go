package services

import (
	"sync"

	"betblitz-backend/internal/models"
)

type sessionKey struct {
	userID string
	kind   models.GameKind
}

// SessionStore holds the live multi-round game sessions, one per
// (user, game kind). The record's existence is the mutex: Create is a
// test-and-set, Remove a test-and-clear, and Lock serializes every
// start/reveal/cashout touching the same key so a cashout can never race a
// reveal on the same round state.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[sessionKey]*models.WagerSession
	locks    map[sessionKey]*sync.Mutex
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[sessionKey]*models.WagerSession),
		locks:    make(map[sessionKey]*sync.Mutex),
	}
}

// Lock acquires the per-key mutex. The caller must hold it for the whole
// operation, ledger calls included, and release it via the returned func.
// Mutexes are kept after Remove so a retry never races its own cleanup;
// the map grows one entry per (user, game) pair ever seen.
func (s *SessionStore) Lock(userID string, kind models.GameKind) func() {
	key := sessionKey{userID, kind}

	s.mu.Lock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// Create installs a new session. Fails with ErrSessionConflict if one is
// already active for the key.
func (s *SessionStore) Create(sess *models.WagerSession) error {
	key := sessionKey{sess.UserID, sess.Kind}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.sessions[key]; exists {
		return ErrSessionConflict
	}
	s.sessions[key] = sess
	return nil
}

func (s *SessionStore) Get(userID string, kind models.GameKind) (*models.WagerSession, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionKey{userID, kind}]
	return sess, ok
}

// Remove clears the session on a terminal transition. Returns the removed
// session, or false if none was active.
func (s *SessionStore) Remove(userID string, kind models.GameKind) (*models.WagerSession, bool) {
	key := sessionKey{userID, kind}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[key]
	if ok {
		delete(s.sessions, key)
	}
	return sess, ok
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
