package points

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// BalanceInput contains parameters for reading a balance
type BalanceInput struct {
	UserID        string
	WithPurchases bool
}

// BalanceOutput contains a user's standing
type BalanceOutput struct {
	Account *models.Account

	// Points is the display balance, never negative
	Points int

	Tier       tier.Tier
	PointsTier tier.Tier
}

// CreditInput contains parameters for adding points
type CreditInput struct {
	UserID   string
	Username string
	Amount   int
	Reason   models.Reason
}

// DebitInput contains parameters for removing points
type DebitInput struct {
	UserID   string
	Username string
	Amount   int
	Reason   models.Reason
}

// SetBalanceInput contains parameters for overwriting a balance
type SetBalanceInput struct {
	UserID   string
	Username string
	Points   int
	Reason   models.Reason
}

// BalanceChangeOutput contains the balance after a change
type BalanceChangeOutput struct {
	Points int

	// Tier after role sync, empty when the sync failed
	Tier tier.Tier
}

// TransferInput contains parameters for a user to user transfer
type TransferInput struct {
	FromID       string
	FromUsername string
	ToID         string
	ToUsername   string

	// ToIsBot marks a recipient that is not a person
	ToIsBot bool

	Amount int
}

// TransferOutput contains the outcome of a transfer
type TransferOutput struct {
	Amount     int
	Tax        int
	Received   int
	FromPoints int
	ToPoints   int
}

// ApplyPurchaseInput contains one parsed purchase log line
type ApplyPurchaseInput struct {
	UserID        string
	Username      string
	Item          string
	Price         float64
	TransactionID string
}

// ApplyPurchaseOutput contains the outcome of a purchase
type ApplyPurchaseOutput struct {
	// Replayed is true for an already seen transaction. Nothing was awarded.
	Replayed bool

	Purchase      *models.Purchase
	PointsAwarded int
	Multiplier    float64
	Points        int
	Tier          tier.Tier
}

// ResetPurchaseInput contains parameters for removing a purchase
type ResetPurchaseInput struct {
	UserID string

	// Index into the purchase list, oldest first
	Index int

	AdminID string
}

// ResetPurchaseOutput contains the removed purchase and resulting standing
type ResetPurchaseOutput struct {
	Purchase      *models.Purchase
	PointsRemoved int
	Points        int
	Tier          tier.Tier
}

// SetTierInput contains parameters for forcing a tier
type SetTierInput struct {
	UserID   string
	Username string
	Tier     tier.Tier
}

// ClaimDailyInput contains parameters for the daily reward
type ClaimDailyInput struct {
	UserID   string
	Username string
}

// ClaimDailyOutput contains the daily reward, or when it is next available
type ClaimDailyOutput struct {
	Amount     int
	Roll       int
	Multiplier float64
	Points     int

	// NextClaim is set when the claim was refused
	NextClaim time.Time
}

// ManyInput contains parameters for a bulk grant or charge
type ManyInput struct {
	UserIDs []string
	Amount  int
	Reason  models.Reason
}

// ManyOutput reports per-user results of a bulk operation
type ManyOutput struct {
	Succeeded []string

	// Skipped users could not afford the charge
	Skipped []string

	Failed []string
}

// ResetDailyInput contains parameters for clearing daily cooldowns
type ResetDailyInput struct {
	// UserID empty resets every user
	UserID  string
	AdminID string
}

// AdminActionsInput contains parameters for reading a user's audit trail
type AdminActionsInput struct {
	UserID string
}

// AdminActionsOutput contains audit entries, oldest first
type AdminActionsOutput struct {
	Actions []*models.AdminAction
}

// ResyncAllOutput reports a full role resync
type ResyncAllOutput struct {
	Synced int
	Failed int
}
