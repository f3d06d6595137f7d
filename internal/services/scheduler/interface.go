package scheduler

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/scheduler Service

import "context"

// Service removes temporary roles when they expire. Jobs survive restarts.
type Service interface {
	// Schedule stores and arms an expiration, replacing one for the same user and role
	Schedule(ctx context.Context, input *ScheduleInput) error

	// Cancel disarms and deletes an expiration
	Cancel(ctx context.Context, input *CancelInput) error

	// Restore fires every past-due job before returning and arms the rest
	Restore(ctx context.Context) (*RestoreOutput, error)

	// Stop disarms every timer. Stored jobs are kept for the next Restore.
	Stop()
}

// RoleRemover takes a role away from a member
type RoleRemover interface {
	RemoveRole(ctx context.Context, userID, roleID string) error
}
