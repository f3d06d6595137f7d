package status

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/status Service

import "context"

// Service resolves the tier a user actually holds
type Service interface {
	// EffectiveTier returns the higher of the points tier and any retained tier.
	// It stamps tier history for the points tier when retention applies and the
	// entry is missing or expired.
	EffectiveTier(ctx context.Context, input *EffectiveTierInput) (*EffectiveTierOutput, error)
}
