package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcolombo/habit-garden/internal/adapters/repository"
	"github.com/mcolombo/habit-garden/internal/core/domain"
	"github.com/mcolombo/habit-garden/internal/core/services"
)

func TestCompletionService_Complete(t *testing.T) {
	ctx := context.Background()
	habits := repository.NewInMemoryHabitRepository()
	completions := repository.NewInMemoryCompletionRepository()
	cache := &fakeCache{}
	queue := &fakeQueue{}

	svc := services.NewCompletionService(completions, habits, cache, queue).
		WithClock(fixedClock("2024-02-10"))

	habit := seedHabit(t, habits, "Meditate", domain.FreqDaily, "", "")

	t.Run("Empty date defaults to today", func(t *testing.T) {
		c, err := svc.Complete(ctx, habit.ID, "")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-10", c.Date)
		assert.Equal(t, 1, cache.invalidated)
		assert.Equal(t, 1, queue.count())
	})

	t.Run("Explicit date is honored", func(t *testing.T) {
		c, err := svc.Complete(ctx, habit.ID, "2024-02-08")
		require.NoError(t, err)
		assert.Equal(t, "2024-02-08", c.Date)
	})

	t.Run("Same day twice", func(t *testing.T) {
		_, err := svc.Complete(ctx, habit.ID, "2024-02-08")
		assert.ErrorIs(t, err, domain.ErrDuplicateCompletion)
	})

	t.Run("Malformed date", func(t *testing.T) {
		_, err := svc.Complete(ctx, habit.ID, "08/02/2024")
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("Unknown habit", func(t *testing.T) {
		_, err := svc.Complete(ctx, 9999, "")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})

	t.Run("Archived habit", func(t *testing.T) {
		habit.Archive()
		require.NoError(t, habits.Update(ctx, habit))

		_, err := svc.Complete(ctx, habit.ID, "")
		assert.ErrorIs(t, err, domain.ErrHabitArchived)
	})
}

func TestCompletionService_Uncomplete(t *testing.T) {
	ctx := context.Background()
	habits := repository.NewInMemoryHabitRepository()
	completions := repository.NewInMemoryCompletionRepository()
	cache := &fakeCache{}
	queue := &fakeQueue{}

	svc := services.NewCompletionService(completions, habits, cache, queue).
		WithClock(fixedClock("2024-02-10"))

	habit := seedHabit(t, habits, "Journal", domain.FreqDaily, "", "")

	_, err := svc.Complete(ctx, habit.ID, "")
	require.NoError(t, err)
	bustsBefore := queue.count()

	t.Run("Removes today's completion", func(t *testing.T) {
		require.NoError(t, svc.Uncomplete(ctx, habit.ID, ""))
		assert.Equal(t, bustsBefore+1, queue.count())
	})

	t.Run("Nothing left to remove", func(t *testing.T) {
		err := svc.Uncomplete(ctx, habit.ID, "")
		assert.ErrorIs(t, err, domain.ErrCompletionNotFound)
	})
}

func TestCompletionService_ListRange(t *testing.T) {
	ctx := context.Background()
	habits := repository.NewInMemoryHabitRepository()
	completions := repository.NewInMemoryCompletionRepository()

	svc := services.NewCompletionService(completions, habits, nil, nil)

	habit := seedHabit(t, habits, "Read", domain.FreqDaily, "", "")
	for _, d := range []string{"2024-02-01", "2024-02-05", "2024-02-09"} {
		seedCompletion(t, completions, habit.ID, d)
	}

	t.Run("Bounds are inclusive", func(t *testing.T) {
		got, err := svc.ListRange(ctx, habit.ID, "2024-02-01", "2024-02-05")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2024-02-01", got[0].Date)
		assert.Equal(t, "2024-02-05", got[1].Date)
	})

	t.Run("Unknown habit", func(t *testing.T) {
		_, err := svc.ListRange(ctx, 9999, "2024-02-01", "2024-02-28")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}
