package models

// Period selects the window a leaderboard covers
type Period string

const (
	PeriodAllTime Period = "alltime"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// LeaderboardEntry is one ranked row
type LeaderboardEntry struct {
	// Rank starting at 1
	Rank int

	// UserID is the Discord user ID
	UserID string

	// Username for display
	Username string

	// Score is points for the points board or spend for the spentboard
	Score float64
}
