package domain

// CoinReport is the earned/spent/balance breakdown for the garden shop.
// Earned weighs each completion by the habit's difficulty; balance never
// goes below zero.
type CoinReport struct {
	Earned  int `json:"earned"`
	Spent   int `json:"spent"`
	Balance int `json:"balance"`
}

// Stats is the aggregate payload served by GET /api/stats: the streak
// summary plus the coin report. Derived on demand, never stored.
type Stats struct {
	TotalHabits      int        `json:"total_habits"`
	TotalCompletions int        `json:"total_completions"`
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	Currency         int        `json:"currency"`
	Coins            CoinReport `json:"coins"`
}
