package ledger

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Board names a ranked sorted set
type Board string

const (
	BoardPoints Board = "points"
	BoardSpent  Board = "spent"
)

// GetAccountInput contains parameters for loading a record
type GetAccountInput struct {
	UserID string

	// WithPurchases also loads the purchase list
	WithPurchases bool
}

// IncrementPointsInput contains parameters for a balance delta
type IncrementPointsInput struct {
	UserID string

	// Username is stored when non-empty
	Username string

	Delta int

	// RequireBalance rejects a negative delta larger than the balance
	// with ErrInsufficientBalance instead of applying it
	RequireBalance bool
}

// IncrementPointsOutput contains the balance after the delta
type IncrementPointsOutput struct {
	Points int
}

// SetPointsInput contains parameters for overwriting a balance
type SetPointsInput struct {
	UserID   string
	Username string
	Points   int
}

// TransferInput contains parameters for moving points
type TransferInput struct {
	FromID string
	ToID   string

	// Amount debited from the sender
	Amount int

	// Received is credited to the recipient, Amount minus tax
	Received int
}

// TransferOutput contains both balances after the move
type TransferOutput struct {
	FromPoints int
	ToPoints   int
}

// RecordPurchaseInput contains parameters for recording a purchase
type RecordPurchaseInput struct {
	UserID   string
	Username string

	// Purchase to store on first sighting. Purchase.PointsAwarded is credited.
	Purchase *models.Purchase
}

// RecordPurchaseOutput contains the outcome of recording a purchase
type RecordPurchaseOutput struct {
	// Replayed is true when the transaction was already recorded
	Replayed bool

	// Purchase as stored after the call
	Purchase *models.Purchase

	// PointsBefore and PointsAfter bracket the credit. Equal on replay.
	PointsBefore int
	PointsAfter  int
}

// RemovePurchaseInput contains parameters for removing a purchase
type RemovePurchaseInput struct {
	UserID string

	// Index into the purchase list, oldest first
	Index int
}

// RemovePurchaseOutput contains the removed purchase and new balance
type RemovePurchaseOutput struct {
	Purchase      *models.Purchase
	PointsRemoved int
	Points        int
}

// ClaimDailyInput contains parameters for claiming the daily reward
type ClaimDailyInput struct {
	UserID   string
	Username string
	Amount   int
	Now      time.Time
	Cooldown time.Duration
}

// ClaimDailyOutput contains the result of a daily claim
type ClaimDailyOutput struct {
	// Claimed is false when the cooldown was still running
	Claimed bool

	// Points after the claim
	Points int

	// LastClaim is the claim that started the running cooldown when Claimed is false
	LastClaim time.Time
}

// ResetDailyInput contains parameters for clearing daily cooldowns
type ResetDailyInput struct {
	// UserID empty means every user
	UserID string
}

// SetCurrentTierInput contains parameters for recording the synced tier
type SetCurrentTierInput struct {
	UserID string
	Tier   tier.Tier
}

// StampTierInput contains parameters for a tier history write
type StampTierInput struct {
	UserID string
	Tier   tier.Tier
	At     time.Time
}

// ClearTierHistoryInput contains parameters for clearing tier history
type ClearTierHistoryInput struct {
	// UserID empty means every user
	UserID string

	// Tier set removes only that tier's entry
	Tier tier.Tier
}

// AddAdminActionInput contains parameters for an audit entry
type AddAdminActionInput struct {
	UserID string
	Action *models.AdminAction
}

// GetAdminActionsInput contains parameters for listing audit entries
type GetAdminActionsInput struct {
	UserID string
}

// GetAdminActionsOutput contains audit entries
type GetAdminActionsOutput struct {
	Actions []*models.AdminAction
}

// ListUsersOutput contains every known user id
type ListUsersOutput struct {
	UserIDs []string
}

// TopInput contains parameters for reading a board
type TopInput struct {
	Board Board
	Limit int
}

// TopOutput contains ranked entries
type TopOutput struct {
	Entries []*models.LeaderboardEntry
}

// SpendSinceInput contains parameters for windowed spend totals
type SpendSinceInput struct {
	Since time.Time
}

// SpendSinceOutput contains per-user totals
type SpendSinceOutput struct {
	Totals map[string]int
}
