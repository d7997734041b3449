package rdx

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	Conn = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Conn.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unavailable at %s: %v (caching disabled)", addr, err)
	}
}

// CacheSet stores a value with a TTL; failures are logged, never fatal.
func CacheSet(ctx context.Context, key, value string, ttl time.Duration) {
	if err := Conn.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Printf("Redis SET %s failed: %v", key, err)
	}
}

// CacheGet returns the cached value and whether it was present.
func CacheGet(ctx context.Context, key string) (string, bool) {
	val, err := Conn.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheDel drops a key, e.g. after availability changes.
func CacheDel(ctx context.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := Conn.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Redis DEL failed: %v", err)
	}
}
