package settings

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/settings Service

import (
	"context"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Reader exposes the economy configuration. Returned maps and slices are
// copies the caller may modify.
type Reader interface {
	Thresholds(ctx context.Context) (tier.Thresholds, error)
	Retention(ctx context.Context) (models.Retention, error)
	MultiplierEvents(ctx context.Context) ([]*models.MultiplierEvent, error)
	TierMultipliers(ctx context.Context) (map[tier.Tier]float64, error)
	Roles(ctx context.Context) (map[tier.Tier]string, error)
	TierMessages(ctx context.Context) (map[tier.Tier]string, error)
	CurrencyName(ctx context.Context) (string, error)
	TransferSettings(ctx context.Context) (models.TransferSettings, error)
	DailyRange(ctx context.Context) (models.DailyRange, error)
	Discounts(ctx context.Context) (map[tier.Tier]int, error)
	Products(ctx context.Context) ([]*models.Product, error)
	Benefits(ctx context.Context) (map[tier.Tier][]string, error)
}

// Service is the configuration store: cached reads plus validated admin writes
type Service interface {
	Reader

	// SetThreshold changes one tier's threshold. Ordering violations leave the old value.
	SetThreshold(ctx context.Context, input *SetThresholdInput) error

	// SetGlobalRetention sets one window for every tier and clears per-tier windows.
	// Zero disables retention and wipes every user's tier history.
	SetGlobalRetention(ctx context.Context, input *SetGlobalRetentionInput) error

	// SetTierRetention sets one tier's window and clears the global window.
	// Zero removes that tier from every user's tier history.
	SetTierRetention(ctx context.Context, input *SetTierRetentionInput) error

	// AddMultiplierEvent schedules a bonus window
	AddMultiplierEvent(ctx context.Context, input *AddMultiplierEventInput) (*models.MultiplierEvent, error)

	// RemoveMultiplierEvent deletes a bonus window by id
	RemoveMultiplierEvent(ctx context.Context, input *RemoveMultiplierEventInput) error

	// ListMultiplierEvents returns events that have not ended, by start time
	ListMultiplierEvents(ctx context.Context) ([]*models.MultiplierEvent, error)

	// SetTierMultiplier sets the earning multiplier for a tier
	SetTierMultiplier(ctx context.Context, input *SetTierMultiplierInput) error

	// SetRole maps a tier to a Discord role. An empty role removes the mapping.
	SetRole(ctx context.Context, input *SetRoleInput) error

	// SetTierMessage sets the DM template sent on reaching a tier
	SetTierMessage(ctx context.Context, input *SetTierMessageInput) error

	// RemoveTierMessage deletes a tier's DM template
	RemoveTierMessage(ctx context.Context, input *RemoveTierMessageInput) error

	// SetCurrencyName renames the currency
	SetCurrencyName(ctx context.Context, input *SetCurrencyNameInput) error

	// SetTransferSettings configures user transfers
	SetTransferSettings(ctx context.Context, input *SetTransferSettingsInput) error

	// SetDailyRange configures the daily reward roll
	SetDailyRange(ctx context.Context, input *SetDailyRangeInput) error

	// SetDiscount sets a tier's shop discount percent
	SetDiscount(ctx context.Context, input *SetDiscountInput) error

	// SetBenefits sets the benefit list shown for a tier
	SetBenefits(ctx context.Context, input *SetBenefitsInput) error

	// SaveProduct adds or replaces a shop product by role
	SaveProduct(ctx context.Context, input *SaveProductInput) error

	// RemoveProduct deletes a shop product by role
	RemoveProduct(ctx context.Context, input *RemoveProductInput) error
}
