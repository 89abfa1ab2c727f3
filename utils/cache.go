// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"saarthi/config"

	"github.com/go-redis/redis/v8"
)

// OTPCacheClient is the dedicated Redis client backing the OTP store.
var OTPCacheClient *redis.Client

// InitOTPCache initializes the Redis client for OTP storage. It is only
// called when REDIS_ADDR is configured; without it the backend falls back
// to the in-memory OTP store.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := OTPCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (OTP Cache): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for OTP storage.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}
