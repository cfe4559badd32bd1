// Package schedule computes which habits are due on which calendar days from
// each habit's frequency rule. It is the sole producer of the scoring
// engine's due-schedule input and stays pure so both sides test in isolation.
package schedule

import (
	"time"

	"github.com/mcolombo/habit-garden/internal/core/domain"
	"github.com/mcolombo/habit-garden/internal/core/scoring"
)

// weekdayIndex maps time.Weekday to the mask index, Monday = 0.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// DueOn reports whether a habit is scheduled for the given day. Archived
// habits are never due. A malformed mask or unknown frequency means "not
// due" rather than an error; the engine treats such habits as unscheduled.
func DueOn(h *domain.Habit, day time.Time) bool {
	if h.ArchivedAt != nil {
		return false
	}

	switch h.Frequency {
	case domain.FreqDaily:
		return true
	case domain.FreqCustom:
		mask := h.WeeklyMask
		return len(mask) == 7 && mask[weekdayIndex(day)] == '1'
	default:
		return false
	}
}

// DueSet collects the ids of all habits due on a day.
func DueSet(habits []*domain.Habit, day time.Time) scoring.IDSet {
	due := make(scoring.IDSet)
	for _, h := range habits {
		if DueOn(h, day) {
			due[h.ID] = true
		}
	}
	return due
}

// Window builds the due schedule for every day between from and to
// inclusive. Days where nothing is due keep an empty entry so the streak
// walk can tell "nothing scheduled" apart from "outside the window".
func Window(habits []*domain.Habit, from, to time.Time) scoring.Schedule {
	sched := make(scoring.Schedule)
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		sched[scoring.Day(day)] = DueSet(habits, day)
	}
	return sched
}
