// Package cache provides a Redis-backed cache for computed dashboard
// statistics, invalidated on every record write.
package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yusuke/career-tracker/internal/stats"
)

const statsTTL = 5 * time.Minute

// StatsCache caches one Stats snapshot per user. A nil *StatsCache or one
// created with an empty address is a no-op, so deployments without Redis
// simply recompute on every request. All failures are best-effort: a cache
// error is logged and treated as a miss, never surfaced to the caller.
type StatsCache struct {
	rdb *redis.Client
}

// New creates a stats cache against the given Redis address. An empty
// address disables caching.
func New(addr string) *StatsCache {
	if addr == "" {
		return &StatsCache{}
	}
	return &StatsCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
	}
}

// Close releases the Redis connection.
func (c *StatsCache) Close() {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Close(); err != nil {
		log.Printf("stats cache close error: %v", err)
	}
}

func statsKey(userID uuid.UUID) string {
	return "dashboard:stats:" + userID.String()
}

// Get returns the cached stats for a user, or false on a miss.
func (c *StatsCache) Get(ctx context.Context, userID uuid.UUID) (*stats.Stats, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("stats cache get error: %v", err)
		}
		return nil, false
	}

	var s stats.Stats
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("stats cache decode error: %v", err)
		return nil, false
	}
	return &s, true
}

// Set stores a user's stats snapshot.
func (c *StatsCache) Set(ctx context.Context, userID uuid.UUID, s *stats.Stats) {
	if c == nil || c.rdb == nil {
		return
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("stats cache encode error: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, statsKey(userID), data, statsTTL).Err(); err != nil {
		log.Printf("stats cache set error: %v", err)
	}
}

// Invalidate drops a user's cached stats. Called after every write to that
// user's projects or entries so the next dashboard load refetches.
func (c *StatsCache) Invalidate(ctx context.Context, userID uuid.UUID) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, statsKey(userID)).Err(); err != nil {
		log.Printf("stats cache invalidate error: %v", err)
	}
}
