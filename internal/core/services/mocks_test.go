package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

// fakeCache is an in-process SummaryCache recording its traffic.
type fakeCache struct {
	mu          sync.Mutex
	stats       *domain.Stats
	invalidated int
	sets        int
}

func (c *fakeCache) Get(ctx context.Context) (*domain.Stats, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return nil, false
	}
	return c.stats, true
}

func (c *fakeCache) Set(ctx context.Context, stats *domain.Stats) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = stats
	c.sets++
}

func (c *fakeCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats = nil
	c.invalidated++
}

// fakeQueue counts refresh signals instead of running a worker.
type fakeQueue struct {
	mu       sync.Mutex
	enqueued int
}

func (q *fakeQueue) Enqueue() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.enqueued++
}

func (q *fakeQueue) count() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.enqueued
}

func fixedClock(day string) func() time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}
