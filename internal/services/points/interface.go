package points

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/points Service

import "context"

// Service applies every balance change and keeps roles in step with it.
// Role sync failures are logged and never fail the balance change.
type Service interface {
	// Balance returns the record, display balance and effective tier of a user
	Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error)

	// Credit adds a positive amount
	Credit(ctx context.Context, input *CreditInput) (*BalanceChangeOutput, error)

	// Debit removes a positive amount, refusing to take more than the balance
	Debit(ctx context.Context, input *DebitInput) (*BalanceChangeOutput, error)

	// SetBalance overwrites the balance without any sufficiency check
	SetBalance(ctx context.Context, input *SetBalanceInput) (*BalanceChangeOutput, error)

	// Transfer moves points between users, minus the configured tax
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// ApplyPurchase awards points for an external purchase, once per transaction
	ApplyPurchase(ctx context.Context, input *ApplyPurchaseInput) (*ApplyPurchaseOutput, error)

	// ResetPurchase removes a purchase and the points it was worth
	ResetPurchase(ctx context.Context, input *ResetPurchaseInput) (*ResetPurchaseOutput, error)

	// SetTier puts a user exactly at a tier's threshold
	SetTier(ctx context.Context, input *SetTierInput) (*BalanceChangeOutput, error)

	// ClaimDaily credits the daily reward once per cooldown
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)

	// GiveToMany credits each user
	GiveToMany(ctx context.Context, input *ManyInput) (*ManyOutput, error)

	// TakeFromMany debits each user, skipping those who cannot afford it
	TakeFromMany(ctx context.Context, input *ManyInput) (*ManyOutput, error)

	// ResetDaily clears the daily cooldown of one user, or of everyone when no user is given
	ResetDaily(ctx context.Context, input *ResetDailyInput) error

	// AdminActions lists the manual corrections made to a user, oldest first
	AdminActions(ctx context.Context, input *AdminActionsInput) (*AdminActionsOutput, error)

	// ResyncAll re-runs role sync for every known user
	ResyncAll(ctx context.Context) (*ResyncAllOutput, error)
}

// BoardInvalidator drops cached leaderboards after a balance change
type BoardInvalidator interface {
	Invalidate()
}
