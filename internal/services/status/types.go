package status

import "github.com/KirkDiggler/rewardsbot/internal/tier"

// EffectiveTierInput contains parameters for resolving a tier
type EffectiveTierInput struct {
	// UserID may be empty, in which case retention is ignored
	UserID string

	Points int
}

// EffectiveTierOutput contains the resolved tiers
type EffectiveTierOutput struct {
	// Tier is the effective tier
	Tier tier.Tier

	// PointsTier is what the balance alone earns
	PointsTier tier.Tier

	// Retained is the highest tier still inside its retention window, Bronze if none
	Retained tier.Tier
}
