package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/yusuke/career-tracker/internal/stats"
)

// A disabled cache (no Redis address) must be safe to call and always miss.
func TestDisabledCacheIsNoOp(t *testing.T) {
	c := New("")
	ctx := context.Background()
	userID := uuid.New()

	_, ok := c.Get(ctx, userID)
	assert.False(t, ok)

	c.Set(ctx, userID, &stats.Stats{TotalProjects: 3})
	_, ok = c.Get(ctx, userID)
	assert.False(t, ok)

	c.Invalidate(ctx, userID)
	c.Close()
}

func TestNilCacheIsNoOp(t *testing.T) {
	var c *StatsCache
	ctx := context.Background()
	userID := uuid.New()

	_, ok := c.Get(ctx, userID)
	assert.False(t, ok)
	c.Set(ctx, userID, &stats.Stats{})
	c.Invalidate(ctx, userID)
	c.Close()
}

func TestStatsKeyPerUser(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.NotEqual(t, statsKey(a), statsKey(b))
	assert.Contains(t, statsKey(a), a.String())
}
