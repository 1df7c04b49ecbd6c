package services

import "time"

const (
	KeyBalance       = "balance:%s"
	KeyUserInfo      = "user:%s:info"
	KeyUsernameIndex = "user:name:%s"
	KeyEmailIndex    = "user:email:%s"
	KeyBet           = "bet:%s"
	KeyUserBets      = "user:%s:bets"
	KeyRateLimit     = "ratelimit:%s:%s"

	TTLUserInfo = 0                   // users never expire
	TTLBet      = 90 * 24 * time.Hour // keep a quarter of history

	// Only the most recent records stay in the per-user index.
	MaxHistoryEntries = 100

	RateLimitBets    = 30  // bets per minute
	RateLimitCashout = 60  // cashouts per minute
	RateLimitReveal  = 120 // mines reveals / hilo guesses per minute
)
