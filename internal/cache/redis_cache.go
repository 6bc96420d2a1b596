package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"thread-translator/internal/translation"
)

// RedisCache is an optional Redis-backed implementation of Store for
// deployments that want translations shared across restarts. Hit/miss
// counters are tracked locally and remain process-lifetime scoped.
type RedisCache struct {
	client *redis.Client
	ctx    context.Context
	hits   atomic.Int64
	misses atomic.Int64
}

// ------------------------------------------------------------------------------------------------------
// NewRedisCache creates a Redis-backed cache, verifying connectivity first
func NewRedisCache(addr, password string) (*RedisCache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCache{
		client: rdb,
		ctx:    ctx,
	}, nil
}

// ------------------------------------------------------------------------------------------------------
// Get retrieves a cached translation result. Any Redis error is treated as
// a miss; the cache is an optional layer and must never fail a request.
func (r *RedisCache) Get(key string) (*translation.Result, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		r.misses.Add(1)
		return nil, false
	}

	var result translation.Result
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		r.misses.Add(1)
		return nil, false
	}

	r.hits.Add(1)
	return &result, true
}

// ------------------------------------------------------------------------------------------------------
func (r *RedisCache) Set(key string, value *translation.Result, ttl time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	_ = r.client.Set(r.ctx, key, data, ttl).Err()
}

// ------------------------------------------------------------------------------------------------------
func (r *RedisCache) Delete(key string) {
	_ = r.client.Del(r.ctx, key).Err()
}

// ------------------------------------------------------------------------------------------------------
func (r *RedisCache) Clear() {
	_ = r.client.FlushDB(r.ctx).Err()
	r.hits.Store(0)
	r.misses.Store(0)
}

// ------------------------------------------------------------------------------------------------------
func (r *RedisCache) Stats() Stats {
	hits := r.hits.Load()
	misses := r.misses.Load()

	total := hits + misses
	rate := 0.0
	if total > 0 {
		rate = float64(hits) / float64(total)
	}

	size := 0
	if n, err := r.client.DBSize(r.ctx).Result(); err == nil {
		size = int(n)
	}

	return Stats{
		Hits:    hits,
		Misses:  misses,
		HitRate: rate,
		Size:    size,
	}
}

// ------------------------------------------------------------------------------------------------------
// Destroy closes the Redis connection
func (r *RedisCache) Destroy() {
	_ = r.client.Close()
}
