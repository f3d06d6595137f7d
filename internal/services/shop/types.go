package shop

import (
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// CatalogInput contains parameters for listing products
type CatalogInput struct {
	UserID string
}

// CatalogItem is a product with the user's price
type CatalogItem struct {
	Product *models.Product
	Price   int
}

// CatalogOutput contains the priced products
type CatalogOutput struct {
	Items    []*CatalogItem
	Tier     tier.Tier
	Discount int
}

// BuyInput contains parameters for buying a role
type BuyInput struct {
	UserID   string
	Username string
	RoleID   string
}

// BuyOutput contains the outcome of a purchase
type BuyOutput struct {
	Product  *models.Product
	Price    int
	Discount int
	Points   int

	// ExpiresAt is zero for permanent roles
	ExpiresAt time.Time
}
