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

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestHabitService_Create(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryHabitRepository()
	cache := &fakeCache{}
	queue := &fakeQueue{}
	svc := services.NewHabitService(repo, cache, queue)

	t.Run("Valid input persists and busts the stats", func(t *testing.T) {
		habit, err := svc.Create(ctx, services.CreateHabitInput{Name: "Stretch"})
		require.NoError(t, err)
		assert.NotZero(t, habit.ID)
		assert.Equal(t, domain.FreqDaily, habit.Frequency)
		assert.Equal(t, domain.DifficultyMedium, habit.Difficulty)
		assert.Equal(t, 1, cache.invalidated)
		assert.Equal(t, 1, queue.count())
	})

	t.Run("Invalid input never reaches the store", func(t *testing.T) {
		_, err := svc.Create(ctx, services.CreateHabitInput{Name: "   "})
		assert.ErrorIs(t, err, domain.ErrHabitNameEmpty)

		active, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})
}

func TestHabitService_Update(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewInMemoryHabitRepository()
	cache := &fakeCache{}
	queue := &fakeQueue{}
	svc := services.NewHabitService(repo, cache, queue)

	habit, err := svc.Create(ctx, services.CreateHabitInput{
		Name:       "Run",
		Frequency:  domain.FreqCustom,
		WeeklyMask: "1010100",
	})
	require.NoError(t, err)

	t.Run("Rename only leaves the schedule alone", func(t *testing.T) {
		got, err := svc.Update(ctx, services.UpdateHabitInput{ID: habit.ID, Name: strPtr("Morning run")})
		require.NoError(t, err)
		assert.Equal(t, "Morning run", got.Name)
		assert.Equal(t, "1010100", got.WeeklyMask)
	})

	t.Run("Frequency change without a mask keeps the old one", func(t *testing.T) {
		got, err := svc.Update(ctx, services.UpdateHabitInput{ID: habit.ID, Frequency: strPtr(domain.FreqCustom)})
		require.NoError(t, err)
		assert.Equal(t, "1010100", got.WeeklyMask)
	})

	t.Run("Switch to daily discards the mask", func(t *testing.T) {
		got, err := svc.Update(ctx, services.UpdateHabitInput{ID: habit.ID, Frequency: strPtr(domain.FreqDaily)})
		require.NoError(t, err)
		assert.Equal(t, domain.FreqDaily, got.Frequency)
		assert.Empty(t, got.WeeklyMask)
	})

	t.Run("Archive hides the habit from the active list", func(t *testing.T) {
		got, err := svc.Update(ctx, services.UpdateHabitInput{ID: habit.ID, Archived: boolPtr(true)})
		require.NoError(t, err)
		assert.NotNil(t, got.ArchivedAt)

		active, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, active)
	})

	t.Run("Archived habit rejects edits until restored", func(t *testing.T) {
		_, err := svc.Update(ctx, services.UpdateHabitInput{ID: habit.ID, Name: strPtr("New name")})
		assert.ErrorIs(t, err, domain.ErrHabitArchived)

		// Restore and rename in one patch.
		got, err := svc.Update(ctx, services.UpdateHabitInput{
			ID:       habit.ID,
			Name:     strPtr("Evening run"),
			Archived: boolPtr(false),
		})
		require.NoError(t, err)
		assert.Nil(t, got.ArchivedAt)
		assert.Equal(t, "Evening run", got.Name)
	})

	t.Run("Unknown id", func(t *testing.T) {
		_, err := svc.Update(ctx, services.UpdateHabitInput{ID: 9999, Name: strPtr("Ghost")})
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}
