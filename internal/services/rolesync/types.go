package rolesync

import "github.com/KirkDiggler/rewardsbot/internal/tier"

// Basis decides how the effective tier of a sync is obtained
type Basis interface {
	isBasis()
}

// ByPoints resolves the effective tier from a balance and retained tiers
type ByPoints struct {
	Points int
}

// ForcedTier uses Tier as the effective tier without any computation.
// Points is only shown in the tier message.
type ForcedTier struct {
	Tier   tier.Tier
	Points int
}

func (ByPoints) isBasis()   {}
func (ForcedTier) isBasis() {}

// SyncInput contains parameters for a role sync
type SyncInput struct {
	UserID   string
	Username string
	Basis    Basis

	// Silent records a transition without announcing it
	Silent bool
}

// SyncOutput contains the outcome of a role sync
type SyncOutput struct {
	Tier tier.Tier

	// Previous is the stored tier key before the sync, empty for a first sync
	Previous string

	// Transitioned is true when Tier differs from Previous
	Transitioned bool
}
