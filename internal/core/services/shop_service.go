package services

import (
	"context"
	"time"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

type ShopService struct {
	repo           domain.ShopRepository
	habitRepo      domain.HabitRepository
	completionRepo domain.CompletionRepository
	now            func() time.Time
	statsInvalidator
}

func NewShopService(repo domain.ShopRepository, habitRepo domain.HabitRepository, completionRepo domain.CompletionRepository, cache SummaryCache, queue RefreshQueue) *ShopService {
	return &ShopService{
		repo:             repo,
		habitRepo:        habitRepo,
		completionRepo:   completionRepo,
		now:              time.Now,
		statsInvalidator: statsInvalidator{cache: cache, queue: queue},
	}
}

func (s *ShopService) Items(ctx context.Context) ([]*domain.Item, error) {
	return s.repo.ListItems(ctx)
}

func (s *ShopService) Purchases(ctx context.Context) ([]*domain.Purchase, error) {
	return s.repo.ListPurchases(ctx)
}

// Balance computes the current coin report from scratch.
func (s *ShopService) Balance(ctx context.Context) (domain.CoinReport, error) {
	habits, err := s.habitRepo.ListAll(ctx)
	if err != nil {
		return domain.CoinReport{}, err
	}

	completions, err := s.completionRepo.ListAll(ctx)
	if err != nil {
		return domain.CoinReport{}, err
	}

	spent, err := s.repo.TotalSpent(ctx)
	if err != nil {
		return domain.CoinReport{}, err
	}

	return coinReport(habits, completions, spent), nil
}

// Purchase buys one item, freezing its cost. Fails with
// ErrInsufficientFunds when the balance does not cover it.
func (s *ShopService) Purchase(ctx context.Context, itemID int64) (*domain.Purchase, error) {
	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	report, err := s.Balance(ctx)
	if err != nil {
		return nil, err
	}
	if report.Balance < item.Cost {
		return nil, domain.ErrInsufficientFunds
	}

	purchase := &domain.Purchase{
		ItemID:         item.ID,
		CostAtPurchase: item.Cost,
		PurchasedAt:    s.now().UTC(),
	}
	if err := s.repo.CreatePurchase(ctx, purchase); err != nil {
		return nil, err
	}

	s.bustStats(ctx)
	return purchase, nil
}
