package domain

import (
	"context"
	"errors"
)

var (
	ErrHabitNotFound       = errors.New("habit not found")
	ErrDuplicateCompletion = errors.New("habit already completed for that date")
	ErrCompletionNotFound  = errors.New("no completion for that date")
)

type HabitRepository interface {
	// Create persists a new habit and fills in its assigned id.
	Create(ctx context.Context, habit *Habit) error

	// GetByID retrieves a habit by id, archived or not.
	GetByID(ctx context.Context, id int64) (*Habit, error)

	// ListActive returns all non-archived habits, newest first.
	ListActive(ctx context.Context) ([]*Habit, error)

	// ListAll returns every habit including archived ones. Coin accounting
	// needs the difficulty of habits that were archived after earning coins.
	ListAll(ctx context.Context) ([]*Habit, error)

	// Update writes back name, frequency, mask, difficulty and archive state.
	Update(ctx context.Context, habit *Habit) error
}

type CompletionRepository interface {
	// Create inserts one completion. A second insert for the same
	// (habit, date) pair returns ErrDuplicateCompletion.
	Create(ctx context.Context, c *Completion) error

	// Delete removes the completion for the given habit and day, reporting
	// whether a record existed.
	Delete(ctx context.Context, habitID int64, date string) (bool, error)

	// ListRange returns a habit's completions between two days inclusive,
	// oldest first.
	ListRange(ctx context.Context, habitID int64, from, to string) ([]*Completion, error)

	// ListAll returns the full completion log.
	ListAll(ctx context.Context) ([]*Completion, error)

	// CountAll returns the total number of completions ever logged.
	CountAll(ctx context.Context) (int, error)
}

type ShopRepository interface {
	ListItems(ctx context.Context) ([]*Item, error)
	GetItem(ctx context.Context, id int64) (*Item, error)
	CreatePurchase(ctx context.Context, p *Purchase) error
	ListPurchases(ctx context.Context) ([]*Purchase, error)

	// TotalSpent sums cost_at_purchase over all purchases.
	TotalSpent(ctx context.Context) (int, error)
}
