package rolesync

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/rolesync Service
//go:generate mockgen -package=mocks -destination=mocks/mock_guild.go github.com/KirkDiggler/rewardsbot/internal/services/rolesync Guild

import "context"

// Guild grants roles and delivers direct messages for one server
type Guild interface {
	HasRole(ctx context.Context, userID, roleID string) (bool, error)
	AddRole(ctx context.Context, userID, roleID string) error
	RemoveRole(ctx context.Context, userID, roleID string) error
	SendDirectMessage(ctx context.Context, userID, content string) error
}

// Service reconciles a member's tier roles
type Service interface {
	// Sync makes the member hold exactly the mapped roles at or below the
	// effective tier and records a tier transition when one happened.
	// Individual role failures are logged, not returned.
	Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error)
}
