// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"ard/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client (feed sessions and friends).
	CacheClient *redis.Client
	// SearchCacheClient is the dedicated client for cached AI search results.
	SearchCacheClient *redis.Client
)

// InitCache initializes the generic Redis cache client.
func InitCache() {
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

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitSearchCache initializes the Redis client that holds resolved search results.
func InitSearchCache() {
	SearchCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSearchDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SearchCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Search Cache): %v", err)
	}
}

// GetSearchCacheClient returns the Redis client for search result caching.
func GetSearchCacheClient() *redis.Client {
	if SearchCacheClient == nil {
		InitSearchCache()
	}
	return SearchCacheClient
}
