package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

const statsKey = "habitgarden:stats"

// StatsCache keeps the latest stats payload in Redis as JSON. Every method
// degrades to a miss on Redis trouble; the stats endpoint must keep working
// with the cache down.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context) (*domain.Stats, bool) {
	val, err := c.client.Get(ctx, statsKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.WithError(err).Warn("stats cache read failed")
		}
		return nil, false
	}

	var stats domain.Stats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		log.Warn("stats cache held corrupted data, dropping key")
		c.client.Del(ctx, statsKey)
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, stats *domain.Stats) {
	data, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey, data, c.ttl).Err(); err != nil {
		log.WithError(err).Warn("stats cache write failed")
	}
}

func (c *StatsCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, statsKey).Err(); err != nil {
		log.WithError(err).Warn("stats cache invalidation failed")
	}
}
