package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/rewardsbot/internal/repositories/ledger Repository

import (
	"context"

	"github.com/KirkDiggler/rewardsbot/internal/models"
)

// Repository defines the interface for per-user ledger persistence
type Repository interface {
	// GetAccount loads a user's record. Unknown users get an empty record.
	GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error)

	// IncrementPoints atomically adds Delta to the balance
	IncrementPoints(ctx context.Context, input *IncrementPointsInput) (*IncrementPointsOutput, error)

	// SetPoints overwrites the balance
	SetPoints(ctx context.Context, input *SetPointsInput) error

	// Transfer moves points between two users in one transaction
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// RecordPurchase stores a first-seen purchase and credits its points,
	// or merges the item into an already recorded transaction
	RecordPurchase(ctx context.Context, input *RecordPurchaseInput) (*RecordPurchaseOutput, error)

	// RemovePurchase deletes a purchase by position and debits floor(price)
	RemovePurchase(ctx context.Context, input *RemovePurchaseInput) (*RemovePurchaseOutput, error)

	// ClaimDaily credits the daily reward unless the cooldown is still running
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)

	// ResetDaily clears the daily cooldown for one user or, with no user, everyone
	ResetDaily(ctx context.Context, input *ResetDailyInput) error

	// SetCurrentTier records the tier the last role sync completed for
	SetCurrentTier(ctx context.Context, input *SetCurrentTierInput) error

	// StampTier merges tierHistory[tier] = At
	StampTier(ctx context.Context, input *StampTierInput) error

	// ClearTierHistory removes history entries for one user or, with no user, everyone
	ClearTierHistory(ctx context.Context, input *ClearTierHistoryInput) error

	// AddAdminAction appends an audit entry
	AddAdminAction(ctx context.Context, input *AddAdminActionInput) error

	// GetAdminActions lists audit entries oldest first
	GetAdminActions(ctx context.Context, input *GetAdminActionsInput) (*GetAdminActionsOutput, error)

	// ListUsers returns every user with a ledger record
	ListUsers(ctx context.Context) (*ListUsersOutput, error)

	// Top returns the highest scores of a board
	Top(ctx context.Context, input *TopInput) (*TopOutput, error)

	// SpendSince sums floor(price) of purchases newer than Since, per user
	SpendSince(ctx context.Context, input *SpendSinceInput) (*SpendSinceOutput, error)
}
