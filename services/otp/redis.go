package otp

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// verifyScript performs the whole lookup/expiry/attempt/compare sequence
// server-side, so two concurrent verify calls for the same phone cannot both
// observe attempts below the limit.
var verifyScript = redis.NewScript(`
local key = KEYS[1]
local candidate = ARGV[1]
local now = tonumber(ARGV[2])
local maxAttempts = tonumber(ARGV[3])
if redis.call("EXISTS", key) == 0 then
  return "not_found"
end
local expires = tonumber(redis.call("HGET", key, "expires_at"))
if now > expires then
  redis.call("DEL", key)
  return "expired"
end
local attempts = tonumber(redis.call("HGET", key, "attempts"))
if attempts >= maxAttempts then
  redis.call("DEL", key)
  return "exhausted"
end
redis.call("HINCRBY", key, "attempts", 1)
if redis.call("HGET", key, "code") == candidate then
  redis.call("DEL", key)
  return "ok"
end
return "mismatch"
`)

// RedisStore keeps OTP records in Redis hashes with a TTL. It is the shared,
// restart-surviving store for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func otpKey(phone string) string {
	return "otp:" + phone
}

// Issue generates and stores a fresh code for the phone.
func (s *RedisStore) Issue(ctx context.Context, phone string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	key := otpKey(phone)
	expiresAt := time.Now().Add(TTL).Unix()

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, "code", code, "attempts", 0, "expires_at", expiresAt)
	// Key TTL sits above the logical expiry so a late verify still reports
	// Expired instead of NotFound.
	pipe.Expire(ctx, key, 2*TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to store OTP: %w", err)
	}
	return code, nil
}

// Verify checks a candidate code atomically.
func (s *RedisStore) Verify(ctx context.Context, phone, candidate string) error {
	res, err := verifyScript.Run(ctx, s.client, []string{otpKey(phone)},
		candidate, time.Now().Unix(), MaxAttempts).Text()
	if err != nil {
		return fmt.Errorf("failed to verify OTP: %w", err)
	}

	switch res {
	case "ok":
		return nil
	case "not_found":
		return ErrNotFound
	case "expired":
		return ErrExpired
	case "exhausted":
		return ErrTooManyAttempts
	default:
		return ErrMismatch
	}
}

// Delete removes any record for the phone.
func (s *RedisStore) Delete(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, otpKey(phone)).Err(); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
