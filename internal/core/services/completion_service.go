package services

import (
	"context"
	"time"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

type CompletionService struct {
	repo      domain.CompletionRepository
	habitRepo domain.HabitRepository
	now       func() time.Time
	statsInvalidator
}

func NewCompletionService(repo domain.CompletionRepository, habitRepo domain.HabitRepository, cache SummaryCache, queue RefreshQueue) *CompletionService {
	return &CompletionService{
		repo:             repo,
		habitRepo:        habitRepo,
		now:              time.Now,
		statsInvalidator: statsInvalidator{cache: cache, queue: queue},
	}
}

// WithClock overrides the time source used for the "default to today" rule.
func (s *CompletionService) WithClock(now func() time.Time) *CompletionService {
	s.now = now
	return s
}

// resolveDay validates an explicit day or defaults to today.
func (s *CompletionService) resolveDay(date string) (string, error) {
	if date == "" {
		return domain.FormatDay(s.now()), nil
	}
	return domain.ParseDay(date)
}

// Complete marks the habit done for a day (today when date is empty).
// Archived habits cannot be completed; a repeat for the same day surfaces
// the store's uniqueness as ErrDuplicateCompletion.
func (s *CompletionService) Complete(ctx context.Context, habitID int64, date string) (*domain.Completion, error) {
	day, err := s.resolveDay(date)
	if err != nil {
		return nil, err
	}

	habit, err := s.habitRepo.GetByID(ctx, habitID)
	if err != nil {
		return nil, err
	}
	if habit.ArchivedAt != nil {
		return nil, domain.ErrHabitArchived
	}

	completion := &domain.Completion{HabitID: habitID, Date: day}
	if err := s.repo.Create(ctx, completion); err != nil {
		return nil, err
	}

	s.bustStats(ctx)
	return completion, nil
}

// Uncomplete removes the completion for a day (today when date is empty).
func (s *CompletionService) Uncomplete(ctx context.Context, habitID int64, date string) error {
	day, err := s.resolveDay(date)
	if err != nil {
		return err
	}

	removed, err := s.repo.Delete(ctx, habitID, day)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrCompletionNotFound
	}

	s.bustStats(ctx)
	return nil
}

// ListRange returns a habit's completions between two days inclusive.
func (s *CompletionService) ListRange(ctx context.Context, habitID int64, from, to string) ([]*domain.Completion, error) {
	if _, err := s.habitRepo.GetByID(ctx, habitID); err != nil {
		return nil, err
	}
	return s.repo.ListRange(ctx, habitID, from, to)
}
