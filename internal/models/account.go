package models

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Account is the persisted ledger record of one Discord user
type Account struct {
	// UserID is the Discord user ID
	UserID string

	// Username is the last display name seen for the user
	Username string

	// Points is the raw balance. It can be negative after an admin purchase reset.
	Points int

	// CurrentTier is the lowercase tier name the last role sync completed for.
	// Empty until the first sync.
	CurrentTier string

	// LastDaily is when the daily reward was last claimed
	LastDaily time.Time

	// TotalSpent is the sum of recorded purchase prices
	TotalSpent float64

	// TierHistory maps a tier to the last time it was achieved
	TierHistory map[tier.Tier]time.Time

	// Purchases in recording order
	Purchases []*Purchase
}

// DisplayPoints is the balance shown to users, never below zero
func (a *Account) DisplayPoints() int {
	if a == nil || a.Points < 0 {
		return 0
	}
	return a.Points
}

// Reason describes why a balance changed
type Reason string

const (
	ReasonPurchase Reason = "purchase"
	ReasonDaily    Reason = "daily"
	ReasonTransfer Reason = "transfer"
	ReasonAdmin    Reason = "admin"
	ReasonGame     Reason = "game"
	ReasonShop     Reason = "shop"
	ReasonReset    Reason = "reset"
)
