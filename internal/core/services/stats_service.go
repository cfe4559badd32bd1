package services

import (
	"context"
	"time"

	"github.com/mcolombo/habit-garden/internal/core/domain"
	"github.com/mcolombo/habit-garden/internal/core/schedule"
	"github.com/mcolombo/habit-garden/internal/core/scoring"
)

// SummaryCache holds the last computed stats payload. Implementations must
// degrade silently: a broken cache behaves like an always-empty one.
type SummaryCache interface {
	Get(ctx context.Context) (*domain.Stats, bool)
	Set(ctx context.Context, stats *domain.Stats)
	Invalidate(ctx context.Context)
}

// RefreshQueue asks the background worker to recompute the snapshot.
type RefreshQueue interface {
	Enqueue()
}

// statsInvalidator is shared by every mutating service: drop the snapshot
// synchronously so the next read is correct, then queue a warm recompute.
type statsInvalidator struct {
	cache SummaryCache
	queue RefreshQueue
}

func (i statsInvalidator) bustStats(ctx context.Context) {
	if i.cache != nil {
		i.cache.Invalidate(ctx)
	}
	if i.queue != nil {
		i.queue.Enqueue()
	}
}

// StatsService derives the aggregate stats payload. The streak window covers
// the last windowDays days ending today; the scoring engine itself never
// sees the clock, it receives today as a value.
type StatsService struct {
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
	shopRepo       domain.ShopRepository
	cache          SummaryCache
	windowDays     int
	now            func() time.Time
}

const DefaultWindowDays = 60

func NewStatsService(habitRepo domain.HabitRepository, completionRepo domain.CompletionRepository, shopRepo domain.ShopRepository, cache SummaryCache, windowDays int) *StatsService {
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}
	return &StatsService{
		habitRepo:      habitRepo,
		completionRepo: completionRepo,
		shopRepo:       shopRepo,
		cache:          cache,
		windowDays:     windowDays,
		now:            time.Now,
	}
}

// WithClock overrides the time source. Tests pin "today" with it.
func (s *StatsService) WithClock(now func() time.Time) *StatsService {
	s.now = now
	return s
}

// Summary serves the cached snapshot when present, otherwise recomputes and
// re-caches it.
func (s *StatsService) Summary(ctx context.Context) (*domain.Stats, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}

	stats, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return stats, nil
}

// Refresh recomputes the snapshot and overwrites the cache. The background
// worker and the midnight cron both come through here.
func (s *StatsService) Refresh(ctx context.Context) error {
	stats, err := s.compute(ctx)
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Set(ctx, stats)
	}
	return nil
}

func (s *StatsService) compute(ctx context.Context) (*domain.Stats, error) {
	active, err := s.habitRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	all, err := s.habitRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	completions, err := s.completionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	total, err := s.completionRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	spent, err := s.shopRepo.TotalSpent(ctx)
	if err != nil {
		return nil, err
	}

	today := s.now()
	from := today.AddDate(0, 0, -s.windowDays)
	window := schedule.Window(active, from, today)

	records := make([]scoring.Record, len(completions))
	for i, c := range completions {
		records[i] = scoring.Record{HabitID: c.HabitID, Date: c.Date}
	}

	summary := scoring.Summarize(len(active), total, records, window, scoring.Day(today))

	return &domain.Stats{
		TotalHabits:      summary.TotalHabits,
		TotalCompletions: summary.TotalCompletions,
		CurrentStreak:    summary.CurrentStreak,
		LongestStreak:    summary.LongestStreak,
		Currency:         summary.Currency,
		Coins:            coinReport(all, completions, spent),
	}, nil
}

// coinReport weighs every completion by its habit's difficulty and nets out
// the shop spend. Archived habits still count for coins already earned.
func coinReport(habits []*domain.Habit, completions []*domain.Completion, spent int) domain.CoinReport {
	value := make(map[int64]int, len(habits))
	for _, h := range habits {
		value[h.ID] = h.CoinValue()
	}

	earned := 0
	for _, c := range completions {
		earned += value[c.HabitID]
	}

	balance := earned - spent
	if balance < 0 {
		balance = 0
	}

	return domain.CoinReport{Earned: earned, Spent: spent, Balance: balance}
}
