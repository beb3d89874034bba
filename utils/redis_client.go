package utils

import (
	"context"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/twtrd/twtrd/config"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// GetRedis returns the singleton Redis client used for response caching.
// The cache is best-effort: short timeouts and a small pool, sized for a
// handful of list/detail keys rather than a hot data path. An unreachable
// Redis is logged once and every cache call then degrades to a miss.
func GetRedis() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.Get()
		redisClient = redis.NewClient(&redis.Options{
			Addr:         net.JoinHostPort(cfg.RedisHost, strconv.Itoa(cfg.RedisPort)),
			ClientName:   "twtrd",
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			DialTimeout:  3 * time.Second,
			ReadTimeout:  2 * time.Second,
			WriteTimeout: 2 * time.Second,
			PoolSize:     10,
			MinIdleConns: 2,
			MaxRetries:   2,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil && Sugar != nil {
			Sugar.Warnf("redis unavailable, response caching degrades to passthrough: %v", err)
		}
	})
	return redisClient
}
