package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"calbook/config"
)

// CacheClient is the Redis client used for read-side caching.
// It stays nil when no Redis address is configured; callers must
// treat a nil client as "cache disabled".
var CacheClient *redis.Client

// InitCache initializes the Redis cache client from AppConfig.
func InitCache() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("Redis not configured, slot cache disabled")
		return
	}
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client, which may be nil.
func GetCacheClient() *redis.Client {
	return CacheClient
}
