package services

import (
	"context"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

type HabitService struct {
	repo domain.HabitRepository
	statsInvalidator
}

func NewHabitService(repo domain.HabitRepository, cache SummaryCache, queue RefreshQueue) *HabitService {
	return &HabitService{
		repo:             repo,
		statsInvalidator: statsInvalidator{cache: cache, queue: queue},
	}
}

type CreateHabitInput struct {
	Name       string
	Frequency  string
	WeeklyMask string
	Difficulty string
}

// UpdateHabitInput patches a habit. Nil fields are left untouched; frequency
// and mask travel together because a custom frequency needs its mask.
type UpdateHabitInput struct {
	ID         int64
	Name       *string
	Frequency  *string
	WeeklyMask *string
	Archived   *bool
}

func (s *HabitService) Create(ctx context.Context, input CreateHabitInput) (*domain.Habit, error) {
	habit, err := domain.NewHabit(input.Name, input.Frequency, input.WeeklyMask, input.Difficulty)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, habit); err != nil {
		return nil, err
	}

	s.bustStats(ctx)
	return habit, nil
}

func (s *HabitService) List(ctx context.Context) ([]*domain.Habit, error) {
	return s.repo.ListActive(ctx)
}

func (s *HabitService) Get(ctx context.Context, id int64) (*domain.Habit, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *HabitService) Update(ctx context.Context, input UpdateHabitInput) (*domain.Habit, error) {
	habit, err := s.repo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	// Restore first so a restore+rename patch works in one call.
	if input.Archived != nil && !*input.Archived {
		habit.Restore()
	}

	if input.Name != nil {
		if err := habit.Rename(*input.Name); err != nil {
			return nil, err
		}
	}

	if input.Frequency != nil {
		mask := habit.WeeklyMask
		if input.WeeklyMask != nil {
			mask = *input.WeeklyMask
		}
		if err := habit.Reschedule(*input.Frequency, mask); err != nil {
			return nil, err
		}
	}

	if input.Archived != nil && *input.Archived {
		habit.Archive()
	}

	if err := s.repo.Update(ctx, habit); err != nil {
		return nil, err
	}

	s.bustStats(ctx)
	return habit, nil
}
