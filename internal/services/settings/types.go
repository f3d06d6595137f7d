package settings

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// SetThresholdInput contains parameters for changing a threshold
type SetThresholdInput struct {
	Tier   tier.Tier
	Points int
}

// SetGlobalRetentionInput contains parameters for the global retention window
type SetGlobalRetentionInput struct {
	Days int
}

// SetTierRetentionInput contains parameters for a per-tier retention window
type SetTierRetentionInput struct {
	Tier tier.Tier
	Days int
}

// AddMultiplierEventInput contains parameters for a bonus window
type AddMultiplierEventInput struct {
	Start      time.Time
	End        time.Time
	Multiplier float64
	CreatedBy  string
}

// RemoveMultiplierEventInput contains parameters for deleting a bonus window
type RemoveMultiplierEventInput struct {
	ID string
}

// SetTierMultiplierInput contains parameters for a tier multiplier
type SetTierMultiplierInput struct {
	Tier       tier.Tier
	Multiplier float64
}

// SetRoleInput contains parameters for a tier role mapping
type SetRoleInput struct {
	Tier   tier.Tier
	RoleID string
}

// SetTierMessageInput contains parameters for a tier DM template
type SetTierMessageInput struct {
	Tier    tier.Tier
	Message string
}

// RemoveTierMessageInput contains parameters for removing a tier DM template
type RemoveTierMessageInput struct {
	Tier tier.Tier
}

// SetCurrencyNameInput contains parameters for renaming the currency
type SetCurrencyNameInput struct {
	Name string
}

// SetTransferSettingsInput contains parameters for transfer limits
type SetTransferSettingsInput struct {
	Settings models.TransferSettings
}

// SetDailyRangeInput contains parameters for the daily reward range
type SetDailyRangeInput struct {
	Range models.DailyRange
}

// SetDiscountInput contains parameters for a tier discount
type SetDiscountInput struct {
	Tier    tier.Tier
	Percent int
}

// SetBenefitsInput contains parameters for a tier's benefit list
type SetBenefitsInput struct {
	Tier     tier.Tier
	Benefits []string
}

// SaveProductInput contains parameters for a shop product
type SaveProductInput struct {
	Product *models.Product
}

// RemoveProductInput contains parameters for removing a shop product
type RemoveProductInput struct {
	RoleID string
}

// Defaults seed configuration that no admin has written yet
type Defaults struct {
	Thresholds   tier.Thresholds
	Transfer     models.TransferSettings
	Daily        models.DailyRange
	CurrencyName string
}
