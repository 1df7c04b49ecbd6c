package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"betblitz-backend/internal/config"
	"betblitz-backend/internal/models"
)

// RedisService backs the Ledger, BetHistory, UserStore, and RateLimiter
// collaborators with one Redis connection. Balance mutations run as Lua
// scripts so the check-subtract-persist step is atomic per account.
type RedisService struct {
	client          *redis.Client
	startingBalance float64
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %v", err)
	}

	return &RedisService{
		client:          client,
		startingBalance: cfg.StartingBalance,
	}, nil
}

func (s *RedisService) Close() error {
	return s.client.Close()
}

// ---- Ledger

var debitScript = redis.NewScript(`
	local key = KEYS[1]
	local amount = tonumber(ARGV[1])
	local starting = tonumber(ARGV[2])

	local bal = tonumber(redis.call("GET", key))
	if not bal then
		bal = starting
	end

	if bal < amount then
		return redis.error_reply("insufficient balance")
	end

	bal = bal - amount
	redis.call("SET", key, tostring(bal))

	return tostring(bal)
`)

var creditScript = redis.NewScript(`
	local key = KEYS[1]
	local amount = tonumber(ARGV[1])
	local starting = tonumber(ARGV[2])

	local bal = tonumber(redis.call("GET", key))
	if not bal then
		bal = starting
	end

	bal = bal + amount
	redis.call("SET", key, tostring(bal))

	return tostring(bal)
`)

func (s *RedisService) Balance(ctx context.Context, userID string) (float64, error) {
	key := fmt.Sprintf(KeyBalance, userID)

	val, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// First touch seeds the account with the starting balance.
		if err := s.client.Set(ctx, key, fmt.Sprintf("%g", s.startingBalance), 0).Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
		return s.startingBalance, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	bal, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: corrupt balance for %s", ErrUpstream, userID)
	}
	return bal, nil
}

func (s *RedisService) Debit(ctx context.Context, userID string, amount float64) (float64, error) {
	key := fmt.Sprintf(KeyBalance, userID)

	val, err := debitScript.Run(ctx, s.client, []string{key}, amount, s.startingBalance).Result()
	if err != nil {
		if strings.Contains(err.Error(), "insufficient balance") {
			return 0, ErrInsufficientFunds
		}
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return parseScriptBalance(val)
}

func (s *RedisService) Credit(ctx context.Context, userID string, amount float64) (float64, error) {
	key := fmt.Sprintf(KeyBalance, userID)

	val, err := creditScript.Run(ctx, s.client, []string{key}, amount, s.startingBalance).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return parseScriptBalance(val)
}

func parseScriptBalance(val interface{}) (float64, error) {
	str, ok := val.(string)
	if !ok {
		return 0, fmt.Errorf("%w: unexpected script reply %T", ErrUpstream, val)
	}
	bal, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return bal, nil
}

// ---- BetHistory

func (s *RedisService) Append(ctx context.Context, rec *models.BetRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to marshal bet record: %v", err)
	}

	betKey := fmt.Sprintf(KeyBet, rec.ID)
	if err := s.client.Set(ctx, betKey, data, TTLBet).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	userKey := fmt.Sprintf(KeyUserBets, rec.UserID)
	if err := s.client.ZAdd(ctx, userKey, redis.Z{
		Score:  float64(rec.CreatedAt.UnixNano()),
		Member: rec.ID,
	}).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	s.client.ZRemRangeByRank(ctx, userKey, 0, int64(-MaxHistoryEntries-1))
	return nil
}

func (s *RedisService) List(ctx context.Context, userID string, limit int) ([]*models.BetRecord, error) {
	if limit <= 0 || limit > MaxHistoryEntries {
		limit = 50
	}

	userKey := fmt.Sprintf(KeyUserBets, userID)
	ids, err := s.client.ZRevRange(ctx, userKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var records []*models.BetRecord
	for _, id := range ids {
		data, err := s.client.Get(ctx, fmt.Sprintf(KeyBet, id)).Result()
		if err != nil {
			continue
		}

		var rec models.BetRecord
		if err := json.Unmarshal([]byte(data), &rec); err != nil {
			continue
		}
		records = append(records, &rec)
	}
	return records, nil
}

// ---- UserStore

func (s *RedisService) CreateUser(ctx context.Context, user *models.User) error {
	nameKey := fmt.Sprintf(KeyUsernameIndex, strings.ToLower(user.Username))
	emailKey := fmt.Sprintf(KeyEmailIndex, strings.ToLower(user.Email))

	ok, err := s.client.SetNX(ctx, nameKey, user.ID, TTLUserInfo).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !ok {
		return ErrUserExists
	}

	ok, err = s.client.SetNX(ctx, emailKey, user.ID, TTLUserInfo).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if !ok {
		s.client.Del(ctx, nameKey)
		return ErrUserExists
	}

	return s.saveUser(ctx, user)
}

func (s *RedisService) saveUser(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %v", err)
	}
	key := fmt.Sprintf(KeyUserInfo, user.ID)
	if err := s.client.Set(ctx, key, data, TTLUserInfo).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return nil
}

func (s *RedisService) GetUser(ctx context.Context, id string) (*models.User, error) {
	data, err := s.client.Get(ctx, fmt.Sprintf(KeyUserInfo, id)).Result()
	if err == redis.Nil {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %v", err)
	}
	return &user, nil
}

func (s *RedisService) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUserByIndex(ctx, fmt.Sprintf(KeyUsernameIndex, strings.ToLower(username)))
}

func (s *RedisService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUserByIndex(ctx, fmt.Sprintf(KeyEmailIndex, strings.ToLower(email)))
}

func (s *RedisService) getUserByIndex(ctx context.Context, indexKey string) (*models.User, error) {
	id, err := s.client.Get(ctx, indexKey).Result()
	if err == redis.Nil {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return s.GetUser(ctx, id)
}

func (s *RedisService) UpdateUser(ctx context.Context, user *models.User) error {
	if _, err := s.GetUser(ctx, user.ID); err != nil {
		return err
	}
	user.UpdatedAt = time.Now()
	return s.saveUser(ctx, user)
}

// ---- RateLimiter

func (s *RedisService) Allow(ctx context.Context, userID, action string, limit int, window time.Duration) (bool, error) {
	key := fmt.Sprintf(KeyRateLimit, userID, action)

	count, err := s.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	if count == 1 {
		s.client.Expire(ctx, key, window)
	}
	return count <= int64(limit), nil
}

// ---- test helpers

func (s *RedisService) DeleteUser(ctx context.Context, user *models.User) error {
	s.client.Del(ctx, fmt.Sprintf(KeyUsernameIndex, strings.ToLower(user.Username)))
	s.client.Del(ctx, fmt.Sprintf(KeyEmailIndex, strings.ToLower(user.Email)))
	return s.client.Del(ctx, fmt.Sprintf(KeyUserInfo, user.ID)).Err()
}

func (s *RedisService) DeleteBalance(ctx context.Context, userID string) error {
	return s.client.Del(ctx, fmt.Sprintf(KeyBalance, userID)).Err()
}
