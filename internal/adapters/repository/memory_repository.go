package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

// In-memory repositories backing unit tests and local experiments. They
// mirror the SQL implementations' contracts, including the uniqueness of
// (habit, date) completions.

type InMemoryHabitRepository struct {
	mu     sync.RWMutex
	nextID int64
	store  map[int64]*domain.Habit
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{store: make(map[int64]*domain.Habit)}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	habit.ID = r.nextID
	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

func (r *InMemoryHabitRepository) GetByID(ctx context.Context, id int64) (*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	habit, ok := r.store[id]
	if !ok {
		return nil, domain.ErrHabitNotFound
	}
	clone := *habit
	return &clone, nil
}

func (r *InMemoryHabitRepository) ListActive(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		if h.ArchivedAt == nil {
			clone := *h
			habits = append(habits, &clone)
		}
	}

	// Newest first, matching the SQL ORDER BY id DESC.
	sort.Slice(habits, func(i, j int) bool { return habits[i].ID > habits[j].ID })
	return habits, nil
}

func (r *InMemoryHabitRepository) ListAll(ctx context.Context) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		clone := *h
		habits = append(habits, &clone)
	}
	sort.Slice(habits, func(i, j int) bool { return habits[i].ID > habits[j].ID })
	return habits, nil
}

func (r *InMemoryHabitRepository) Update(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[habit.ID]; !ok {
		return domain.ErrHabitNotFound
	}
	clone := *habit
	r.store[habit.ID] = &clone
	return nil
}

type completionKey struct {
	habitID int64
	date    string
}

type InMemoryCompletionRepository struct {
	mu    sync.RWMutex
	store map[completionKey]struct{}
}

func NewInMemoryCompletionRepository() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{store: make(map[completionKey]struct{})}
}

func (r *InMemoryCompletionRepository) Create(ctx context.Context, c *domain.Completion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := completionKey{habitID: c.HabitID, date: c.Date}
	if _, exists := r.store[key]; exists {
		return domain.ErrDuplicateCompletion
	}
	r.store[key] = struct{}{}
	return nil
}

func (r *InMemoryCompletionRepository) Delete(ctx context.Context, habitID int64, date string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := completionKey{habitID: habitID, date: date}
	if _, exists := r.store[key]; !exists {
		return false, nil
	}
	delete(r.store, key)
	return true, nil
}

func (r *InMemoryCompletionRepository) ListRange(ctx context.Context, habitID int64, from, to string) ([]*domain.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Completion
	for key := range r.store {
		if key.habitID == habitID && key.date >= from && key.date <= to {
			out = append(out, &domain.Completion{HabitID: key.habitID, Date: key.date})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (r *InMemoryCompletionRepository) ListAll(ctx context.Context) ([]*domain.Completion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Completion
	for key := range r.store {
		out = append(out, &domain.Completion{HabitID: key.habitID, Date: key.date})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].HabitID < out[j].HabitID
	})
	return out, nil
}

func (r *InMemoryCompletionRepository) CountAll(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.store), nil
}

type InMemoryShopRepository struct {
	mu        sync.RWMutex
	nextID    int64
	items     map[int64]*domain.Item
	purchases []*domain.Purchase
}

func NewInMemoryShopRepository() *InMemoryShopRepository {
	return &InMemoryShopRepository{items: make(map[int64]*domain.Item)}
}

// AddItem seeds the catalog; tests use it in place of the SQL seed.
func (r *InMemoryShopRepository) AddItem(name string, cost int) *domain.Item {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	item := &domain.Item{ID: r.nextID, Name: name, Cost: cost}
	r.items[item.ID] = item
	return item
}

func (r *InMemoryShopRepository) ListItems(ctx context.Context) ([]*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []*domain.Item
	for _, it := range r.items {
		clone := *it
		items = append(items, &clone)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *InMemoryShopRepository) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.ErrItemNotFound
	}
	clone := *item
	return &clone, nil
}

func (r *InMemoryShopRepository) CreatePurchase(ctx context.Context, p *domain.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	clone := *p
	r.purchases = append(r.purchases, &clone)
	return nil
}

func (r *InMemoryShopRepository) ListPurchases(ctx context.Context) ([]*domain.Purchase, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first, matching the SQL ORDER BY purchased_at DESC.
	out := make([]*domain.Purchase, len(r.purchases))
	for i, p := range r.purchases {
		clone := *p
		out[len(r.purchases)-1-i] = &clone
	}
	return out, nil
}

func (r *InMemoryShopRepository) TotalSpent(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, p := range r.purchases {
		total += p.CostAtPurchase
	}
	return total, nil
}
