package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcolombo/habit-garden/internal/core/domain"
	"github.com/mcolombo/habit-garden/internal/core/schedule"
)

// 2024-01-01 was a Monday.
var monday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDueOn(t *testing.T) {
	t.Run("Daily habits are due every day", func(t *testing.T) {
		h := &domain.Habit{ID: 1, Frequency: domain.FreqDaily}
		for i := 0; i < 7; i++ {
			assert.True(t, schedule.DueOn(h, monday.AddDate(0, 0, i)))
		}
	})

	t.Run("Custom mask uses Monday as index zero", func(t *testing.T) {
		// Due Monday, Wednesday, Friday.
		h := &domain.Habit{ID: 1, Frequency: domain.FreqCustom, WeeklyMask: "1010100"}

		want := []bool{true, false, true, false, true, false, false}
		for i, w := range want {
			day := monday.AddDate(0, 0, i)
			assert.Equal(t, w, schedule.DueOn(h, day), day.Weekday().String())
		}
	})

	t.Run("Sunday is the last mask position", func(t *testing.T) {
		h := &domain.Habit{ID: 1, Frequency: domain.FreqCustom, WeeklyMask: "0000001"}
		sunday := monday.AddDate(0, 0, 6)
		require.Equal(t, time.Sunday, sunday.Weekday())
		assert.True(t, schedule.DueOn(h, sunday))
		assert.False(t, schedule.DueOn(h, monday))
	})

	t.Run("Malformed masks mean never due", func(t *testing.T) {
		for _, mask := range []string{"", "101", "10101000", "1x10100"} {
			h := &domain.Habit{ID: 1, Frequency: domain.FreqCustom, WeeklyMask: mask}
			for i := 0; i < 7; i++ {
				assert.False(t, schedule.DueOn(h, monday.AddDate(0, 0, i)), "mask %q", mask)
			}
		}
	})

	t.Run("Unknown frequency means never due", func(t *testing.T) {
		h := &domain.Habit{ID: 1, Frequency: "weekly"}
		assert.False(t, schedule.DueOn(h, monday))
	})

	t.Run("Archived habits are never due", func(t *testing.T) {
		archived := time.Now().UTC()
		h := &domain.Habit{ID: 1, Frequency: domain.FreqDaily, ArchivedAt: &archived}
		assert.False(t, schedule.DueOn(h, monday))
	})
}

func TestWindow(t *testing.T) {
	habits := []*domain.Habit{
		{ID: 1, Frequency: domain.FreqDaily},
		{ID: 2, Frequency: domain.FreqCustom, WeeklyMask: "1000000"}, // Mondays only
	}

	t.Run("Covers every day inclusive", func(t *testing.T) {
		sched := schedule.Window(habits, monday, monday.AddDate(0, 0, 2))
		require.Len(t, sched, 3)

		assert.Equal(t, 2, len(sched["2024-01-01"])) // Monday: both due
		assert.Equal(t, 1, len(sched["2024-01-02"]))
		assert.Equal(t, 1, len(sched["2024-01-03"]))
		assert.True(t, sched["2024-01-01"][2])
	})

	t.Run("Keeps empty entries for zero-due days", func(t *testing.T) {
		mondayOnly := []*domain.Habit{
			{ID: 2, Frequency: domain.FreqCustom, WeeklyMask: "1000000"},
		}
		sched := schedule.Window(mondayOnly, monday, monday.AddDate(0, 0, 1))

		tuesday, ok := sched["2024-01-02"]
		require.True(t, ok, "zero-due day must stay in the schedule")
		assert.Empty(t, tuesday)
	})

	t.Run("Single-day window", func(t *testing.T) {
		sched := schedule.Window(habits, monday, monday)
		require.Len(t, sched, 1)
	})

	t.Run("No habits still yields the window shape", func(t *testing.T) {
		sched := schedule.Window(nil, monday, monday.AddDate(0, 0, 1))
		require.Len(t, sched, 2)
		assert.Empty(t, sched["2024-01-01"])
	})
}
