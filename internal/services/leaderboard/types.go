package leaderboard

import "github.com/KirkDiggler/rewardsbot/internal/models"

// TopInput contains parameters for a ranked board
type TopInput struct {
	Period models.Period

	// Limit defaults to 10
	Limit int
}

// TopSpendersInput contains parameters for the spentboard
type TopSpendersInput struct {
	// Limit defaults to 10
	Limit int
}

// TopOutput contains ranked entries, best first
type TopOutput struct {
	Period  models.Period
	Entries []*models.LeaderboardEntry
}
