package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcolombo/habit-garden/internal/core/domain"
)

func TestNewHabit(t *testing.T) {
	t.Run("Defaults to daily medium", func(t *testing.T) {
		h, err := domain.NewHabit("Drink water", "", "", "")
		require.NoError(t, err)

		assert.Equal(t, "Drink water", h.Name)
		assert.Equal(t, domain.FreqDaily, h.Frequency)
		assert.Equal(t, domain.DifficultyMedium, h.Difficulty)
		assert.Empty(t, h.WeeklyMask)
		assert.Nil(t, h.ArchivedAt)
	})

	t.Run("Trims whitespace from the name", func(t *testing.T) {
		h, err := domain.NewHabit("  Read 10 pages  ", "", "", "")
		require.NoError(t, err)
		assert.Equal(t, "Read 10 pages", h.Name)
	})

	t.Run("Custom frequency keeps a valid mask", func(t *testing.T) {
		h, err := domain.NewHabit("Gym", domain.FreqCustom, "1010100", domain.DifficultyHard)
		require.NoError(t, err)
		assert.Equal(t, "1010100", h.WeeklyMask)
	})

	t.Run("Daily frequency discards any mask", func(t *testing.T) {
		h, err := domain.NewHabit("Gym", domain.FreqDaily, "1111111", "")
		require.NoError(t, err)
		assert.Empty(t, h.WeeklyMask)
	})

	tests := []struct {
		name       string
		habitName  string
		frequency  string
		mask       string
		difficulty string
		wantErr    error
	}{
		{"Empty name", "   ", "", "", "", domain.ErrHabitNameEmpty},
		{"Name over 80 chars", strings.Repeat("x", 81), "", "", "", domain.ErrHabitNameTooLong},
		{"Unknown frequency", "X", "weekly", "", "", domain.ErrInvalidFrequency},
		{"Mask too short", "X", domain.FreqCustom, "101", "", domain.ErrInvalidWeeklyMask},
		{"Mask with bad chars", "X", domain.FreqCustom, "10a0100", "", domain.ErrInvalidWeeklyMask},
		{"Unknown difficulty", "X", "", "", "extreme", domain.ErrInvalidDifficulty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.NewHabit(tt.habitName, tt.frequency, tt.mask, tt.difficulty)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHabitMutators(t *testing.T) {
	t.Run("Rename validates like creation", func(t *testing.T) {
		h, err := domain.NewHabit("Walk", "", "", "")
		require.NoError(t, err)

		require.NoError(t, h.Rename("  Walk 20 minutes "))
		assert.Equal(t, "Walk 20 minutes", h.Name)

		assert.ErrorIs(t, h.Rename("   "), domain.ErrHabitNameEmpty)
	})

	t.Run("Archived habits reject edits", func(t *testing.T) {
		h, err := domain.NewHabit("Walk", "", "", "")
		require.NoError(t, err)

		h.Archive()
		require.NotNil(t, h.ArchivedAt)

		assert.ErrorIs(t, h.Rename("New name"), domain.ErrHabitArchived)
		assert.ErrorIs(t, h.Reschedule(domain.FreqDaily, ""), domain.ErrHabitArchived)

		h.Restore()
		assert.Nil(t, h.ArchivedAt)
		assert.NoError(t, h.Rename("New name"))
	})

	t.Run("Archive is idempotent", func(t *testing.T) {
		h, err := domain.NewHabit("Walk", "", "", "")
		require.NoError(t, err)

		h.Archive()
		first := *h.ArchivedAt
		h.Archive()
		assert.Equal(t, first, *h.ArchivedAt)
	})

	t.Run("Reschedule to custom requires a mask", func(t *testing.T) {
		h, err := domain.NewHabit("Walk", "", "", "")
		require.NoError(t, err)

		assert.ErrorIs(t, h.Reschedule(domain.FreqCustom, ""), domain.ErrInvalidWeeklyMask)
		require.NoError(t, h.Reschedule(domain.FreqCustom, "0000011"))
		assert.Equal(t, "0000011", h.WeeklyMask)
	})
}

func TestCoinValue(t *testing.T) {
	tests := []struct {
		difficulty string
		want       int
	}{
		{domain.DifficultyEasy, 50},
		{domain.DifficultyMedium, 100},
		{domain.DifficultyHard, 200},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty, func(t *testing.T) {
			h := &domain.Habit{Difficulty: tt.difficulty}
			assert.Equal(t, tt.want, h.CoinValue())
		})
	}
}

func TestParseDay(t *testing.T) {
	t.Run("Valid day", func(t *testing.T) {
		d, err := domain.ParseDay("2024-01-31")
		require.NoError(t, err)
		assert.Equal(t, "2024-01-31", d)
	})

	t.Run("Rejects other layouts", func(t *testing.T) {
		for _, s := range []string{"31-01-2024", "2024/01/31", "2024-1-3", "not-a-date", ""} {
			_, err := domain.ParseDay(s)
			assert.ErrorIs(t, err, domain.ErrInvalidDate, s)
		}
	})
}
