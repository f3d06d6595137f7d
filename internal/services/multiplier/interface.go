package multiplier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/multiplier Service

import "context"

// Service combines event and tier multipliers
type Service interface {
	// Active returns the multiplier earned points get right now
	Active(ctx context.Context, input *ActiveInput) (*ActiveOutput, error)
}
