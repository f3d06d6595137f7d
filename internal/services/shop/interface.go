package shop

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/rewardsbot/internal/services/shop Service

import "context"

// Service sells roles for points
type Service interface {
	// Catalog lists products at the price the user would pay
	Catalog(ctx context.Context, input *CatalogInput) (*CatalogOutput, error)

	// Buy charges the discounted price and grants the role
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)
}

// RoleGranter checks and grants member roles
type RoleGranter interface {
	HasRole(ctx context.Context, userID, roleID string) (bool, error)
	AddRole(ctx context.Context, userID, roleID string) error
}
