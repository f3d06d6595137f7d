package multiplier

import "github.com/KirkDiggler/rewardsbot/internal/tier"

// ActiveInput contains parameters for resolving the multiplier
type ActiveInput struct {
	UserID string

	// Points decides the tier whose multiplier applies
	Points int
}

// ActiveOutput contains the combined multiplier and its parts
type ActiveOutput struct {
	Multiplier      float64
	EventMultiplier float64
	TierMultiplier  float64
	Tier            tier.Tier
}
