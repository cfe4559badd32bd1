package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrHabitNameEmpty    = errors.New("habit name cannot be empty")
	ErrHabitNameTooLong  = errors.New("habit name is too long (max 80 chars)")
	ErrInvalidFrequency  = errors.New("invalid frequency (must be daily or custom)")
	ErrInvalidWeeklyMask = errors.New("invalid weekly mask (must be 7 chars of 0/1)")
	ErrInvalidDifficulty = errors.New("invalid difficulty (must be easy, medium, or hard)")
	ErrHabitArchived     = errors.New("habit is archived")
)

const (
	FreqDaily  = "daily"
	FreqCustom = "custom"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"

	MaxNameLen = 80
)

// Habit is one trackable habit. Frequency decides when it is due: "daily"
// habits are due every day, "custom" habits carry a 7-character 0/1 mask
// indexed by weekday with Monday at index 0.
type Habit struct {
	ID         int64      `json:"id" db:"id"`
	Name       string     `json:"name" db:"name"`
	Frequency  string     `json:"frequency" db:"frequency"`
	WeeklyMask string     `json:"weekly_mask,omitempty" db:"weekly_mask"`
	Difficulty string     `json:"difficulty" db:"difficulty"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	ArchivedAt *time.Time `json:"archived_at,omitempty" db:"archived_at"`
}

func validMask(mask string) bool {
	if len(mask) != 7 {
		return false
	}
	for _, c := range mask {
		if c != '0' && c != '1' {
			return false
		}
	}
	return true
}

func validateHabit(name, frequency, mask, difficulty string) error {
	if name == "" {
		return ErrHabitNameEmpty
	}
	if len(name) > MaxNameLen {
		return ErrHabitNameTooLong
	}

	switch frequency {
	case FreqDaily:
	case FreqCustom:
		if !validMask(mask) {
			return ErrInvalidWeeklyMask
		}
	default:
		return ErrInvalidFrequency
	}

	switch difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return ErrInvalidDifficulty
	}

	return nil
}

// NewHabit builds a validated habit. Empty frequency defaults to daily and
// empty difficulty to medium; the mask is only kept for custom habits.
func NewHabit(name, frequency, mask, difficulty string) (*Habit, error) {
	name = strings.TrimSpace(name)

	if frequency == "" {
		frequency = FreqDaily
	}
	if difficulty == "" {
		difficulty = DifficultyMedium
	}
	if frequency != FreqCustom {
		mask = ""
	}

	if err := validateHabit(name, frequency, mask, difficulty); err != nil {
		return nil, err
	}

	return &Habit{
		Name:       name,
		Frequency:  frequency,
		WeeklyMask: mask,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// Rename changes the habit name, applying the same validation as creation.
func (h *Habit) Rename(name string) error {
	if h.ArchivedAt != nil {
		return ErrHabitArchived
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrHabitNameEmpty
	}
	if len(name) > MaxNameLen {
		return ErrHabitNameTooLong
	}

	h.Name = name
	return nil
}

// Reschedule swaps the frequency rule.
func (h *Habit) Reschedule(frequency, mask string) error {
	if h.ArchivedAt != nil {
		return ErrHabitArchived
	}
	if frequency != FreqCustom {
		mask = ""
	}
	if err := validateHabit(h.Name, frequency, mask, h.Difficulty); err != nil {
		return err
	}

	h.Frequency = frequency
	h.WeeklyMask = mask
	return nil
}

func (h *Habit) Archive() {
	if h.ArchivedAt != nil {
		return
	}
	now := time.Now().UTC()
	h.ArchivedAt = &now
}

func (h *Habit) Restore() {
	h.ArchivedAt = nil
}

// CoinValue is the coin reward for completing this habit once.
func (h *Habit) CoinValue() int {
	switch h.Difficulty {
	case DifficultyEasy:
		return 50
	case DifficultyHard:
		return 200
	default:
		return 100
	}
}
