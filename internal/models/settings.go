package models

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Retention configures how long an achieved tier is kept.
// Global and PerTier are mutually exclusive; Global wins when both are set.
type Retention struct {
	Global  int               `json:"all,omitempty"`
	PerTier map[tier.Tier]int `json:"perTier,omitempty"`
}

// DaysFor returns the retention window for a tier, 0 meaning none
func (r Retention) DaysFor(t tier.Tier) int {
	if r.Global > 0 {
		return r.Global
	}
	return r.PerTier[t]
}

// Enabled reports whether any tier has a retention window
func (r Retention) Enabled() bool {
	if r.Global > 0 {
		return true
	}
	for _, d := range r.PerTier {
		if d > 0 {
			return true
		}
	}
	return false
}

// MultiplierEvent is a time-boxed bonus on earned points
type MultiplierEvent struct {
	ID         string    `json:"id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Multiplier float64   `json:"multiplier"`
	CreatedBy  string    `json:"createdBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ActiveAt reports whether t falls inside the event window, both ends inclusive
func (e *MultiplierEvent) ActiveAt(t time.Time) bool {
	return !t.Before(e.Start) && !t.After(e.End)
}

// TransferSettings bound user-to-user transfers
type TransferSettings struct {
	Min int     `json:"min" yaml:"min"`
	Max int     `json:"max" yaml:"max"`
	Tax float64 `json:"tax" yaml:"tax"`
}

// DefaultTransferSettings applies before an admin configures transfers
func DefaultTransferSettings() TransferSettings {
	return TransferSettings{Min: 1, Max: 1000000, Tax: 0}
}

// DailyRange bounds the daily reward roll
type DailyRange struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// DefaultDailyRange applies before an admin configures the daily reward
func DefaultDailyRange() DailyRange {
	return DailyRange{Min: 10, Max: 50}
}

// DefaultCurrencyName is shown until an admin names the currency
const DefaultCurrencyName = "points"

// Product is a role sold in the shop
type Product struct {
	// RoleID granted on purchase
	RoleID string `json:"roleId"`

	// RoleName for display
	RoleName string `json:"roleName"`

	// Price in points before tier discount
	Price int `json:"price"`

	// Hours the role lasts, 0 for permanent
	Hours int `json:"hours"`
}

// Temporary reports whether the role expires
func (p *Product) Temporary() bool {
	return p.Hours > 0
}
