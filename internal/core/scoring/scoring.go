// Package scoring turns a raw completion log and a per-day due schedule into
// streaks and a currency balance. Everything in here is a pure function:
// no clock, no storage, no side effects. Callers supply "today" explicitly.
package scoring

import (
	"sort"
	"time"
)

// DayFormat is the calendar-day key used throughout the engine.
const DayFormat = "2006-01-02"

// Day formats a time as a day key, ignoring the time-of-day part.
func Day(t time.Time) string {
	return t.Format(DayFormat)
}

// Record is one habit finished on one day. At most one record exists per
// (habit, day) pair; the store enforces that.
type Record struct {
	HabitID int64
	Date    string
}

// IDSet is a set of habit ids.
type IDSet map[int64]bool

// Schedule maps a day key to the set of habit ids due that day. A day with
// an empty set is a day with nothing scheduled: it is neutral for streak
// accounting, it neither breaks nor extends a run.
type Schedule map[string]IDSet

// Summary is the full stats payload. Recomputed on demand, never persisted.
type Summary struct {
	TotalHabits      int `json:"total_habits"`
	TotalCompletions int `json:"total_completions"`
	CurrentStreak    int `json:"current_streak"`
	LongestStreak    int `json:"longest_streak"`
	Currency         int `json:"currency"`
}

func indexByDate(records []Record) map[string]IDSet {
	byDate := make(map[string]IDSet, len(records))
	for _, r := range records {
		set, ok := byDate[r.Date]
		if !ok {
			set = make(IDSet)
			byDate[r.Date] = set
		}
		set[r.HabitID] = true
	}
	return byDate
}

func isSubset(due, completed IDSet) bool {
	for id := range due {
		if !completed[id] {
			return false
		}
	}
	return true
}

// CurrentStreak counts the run of consecutive due days, ending today, on
// which every due habit was completed. Today is always part of the candidate
// dates even when the schedule has no entry for it; a missing entry acts as
// an empty (neutral) due set. Days with nothing due are skipped. The walk
// stops at the first due day that was not fully completed, so an incomplete
// "today" yields 0 rather than crediting a partial day.
func CurrentStreak(records []Record, schedule Schedule, today string) int {
	if len(schedule) == 0 {
		return 0
	}

	byDate := indexByDate(records)

	dates := make([]string, 0, len(schedule)+1)
	for d := range schedule {
		dates = append(dates, d)
	}
	if _, ok := schedule[today]; !ok {
		dates = append(dates, today)
	}
	// ISO day keys sort lexicographically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	streak := 0
	for _, d := range dates {
		if d > today {
			continue
		}
		due := schedule[d]
		if len(due) == 0 {
			continue
		}
		if isSubset(due, byDate[d]) {
			streak++
		} else {
			break
		}
	}
	return streak
}

// LongestStreak returns the longest contiguous run of fully-completed due
// days anywhere in the schedule. Zero-due days leave the running counter
// untouched; a due day that was not fully completed resets it.
func LongestStreak(records []Record, schedule Schedule) int {
	if len(schedule) == 0 {
		return 0
	}

	byDate := indexByDate(records)

	dates := make([]string, 0, len(schedule))
	for d := range schedule {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	best, cur := 0, 0
	for _, d := range dates {
		due := schedule[d]
		if len(due) == 0 {
			continue
		}
		if isSubset(due, byDate[d]) {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

// Currency grants one unit per completion ever logged plus a bonus unit for
// every current-streak day beyond the first.
func Currency(totalCompletions, currentStreak int) int {
	bonus := currentStreak - 1
	if bonus < 0 {
		bonus = 0
	}
	return totalCompletions + bonus
}

// Summarize composes the three calculations above into the summary payload.
// The two scalar counts are supplied by the store and passed through as-is.
func Summarize(totalHabits, totalCompletions int, records []Record, schedule Schedule, today string) Summary {
	cur := CurrentStreak(records, schedule, today)
	return Summary{
		TotalHabits:      totalHabits,
		TotalCompletions: totalCompletions,
		CurrentStreak:    cur,
		LongestStreak:    LongestStreak(records, schedule),
		Currency:         Currency(totalCompletions, cur),
	}
}
