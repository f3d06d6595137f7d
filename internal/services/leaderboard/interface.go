package leaderboard

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/leaderboard Service

import "context"

// Service ranks users by balance or by spend
type Service interface {
	// Top ranks by balance for alltime, or by purchase spend inside the window
	// for weekly and monthly. Only positive scores are listed.
	Top(ctx context.Context, input *TopInput) (*TopOutput, error)

	// TopSpenders ranks by lifetime purchase spend
	TopSpenders(ctx context.Context, input *TopSpendersInput) (*TopOutput, error)

	// Invalidate drops every cached board
	Invalidate()
}
