package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidDate = errors.New("invalid date (expected YYYY-MM-DD)")
)

const dayFormat = "2006-01-02"

// Completion marks one habit as finished on one calendar day. The pair
// (habit, date) is unique in the store; a completion is immutable and is
// simply deleted on uncomplete.
type Completion struct {
	HabitID int64  `json:"habit_id" db:"habit_id"`
	Date    string `json:"date" db:"date"`
}

// ParseDay validates a YYYY-MM-DD day string and normalizes it.
func ParseDay(s string) (string, error) {
	t, err := time.Parse(dayFormat, s)
	if err != nil {
		return "", ErrInvalidDate
	}
	return t.Format(dayFormat), nil
}

// FormatDay renders a time as the store's day key.
func FormatDay(t time.Time) string {
	return t.Format(dayFormat)
}
