package shop

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/scheduler"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Config holds the dependencies of the shop
type Config struct {
	Settings  settings.Reader
	Points    points.Service
	Roles     RoleGranter
	Scheduler scheduler.Service
	Clock     clock.Clock
	Logger    *slog.Logger
}

type service struct {
	settings  settings.Reader
	points    points.Service
	roles     RoleGranter
	scheduler scheduler.Service
	clock     clock.Clock
	logger    *slog.Logger
}

// New creates a shop
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Settings == nil {
		return nil, ErrNilSettings
	}
	if cfg.Points == nil {
		return nil, ErrNilPoints
	}
	if cfg.Roles == nil {
		return nil, ErrNilRoles
	}
	if cfg.Scheduler == nil {
		return nil, ErrNilScheduler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		settings:  cfg.Settings,
		points:    cfg.Points,
		roles:     cfg.Roles,
		scheduler: cfg.Scheduler,
		clock:     cfg.Clock,
		logger:    logger,
	}, nil
}

func (s *service) Catalog(ctx context.Context, input *CatalogInput) (*CatalogOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}

	products, err := s.settings.Products(ctx)
	if err != nil {
		return nil, err
	}
	t, discount, err := s.discountFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	out := &CatalogOutput{Tier: t, Discount: discount}
	for _, p := range products {
		out.Items = append(out.Items, &CatalogItem{Product: p, Price: Discounted(p.Price, discount)})
	}
	return out, nil
}

func (s *service) Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error) {
	if input == nil || input.UserID == "" || input.RoleID == "" {
		return nil, fmt.Errorf("%w: user and role are required", models.ErrInvalidInput)
	}

	product, err := s.product(ctx, input.RoleID)
	if err != nil {
		return nil, err
	}

	owned, err := s.roles.HasRole(ctx, input.UserID, product.RoleID)
	if err != nil {
		return nil, models.Unavailable("check role", err)
	}
	if owned {
		return nil, fmt.Errorf("%w: %s", models.ErrAlreadyOwned, product.RoleName)
	}

	_, discount, err := s.discountFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	price := Discounted(product.Price, discount)

	out := &BuyOutput{Product: product, Price: price, Discount: discount}

	if price > 0 {
		debit, err := s.points.Debit(ctx, &points.DebitInput{
			UserID:   input.UserID,
			Username: input.Username,
			Amount:   price,
			Reason:   models.ReasonShop,
		})
		if err != nil {
			return nil, err
		}
		out.Points = debit.Points
	} else {
		bal, err := s.points.Balance(ctx, &points.BalanceInput{UserID: input.UserID})
		if err != nil {
			return nil, err
		}
		out.Points = bal.Account.Points
	}

	if err := s.roles.AddRole(ctx, input.UserID, product.RoleID); err != nil {
		s.refund(ctx, input, price)
		return nil, models.Unavailable("grant role", err)
	}

	if product.Temporary() {
		out.ExpiresAt = s.clock.Now().Add(time.Duration(product.Hours) * time.Hour)
		if err := s.scheduler.Schedule(ctx, &scheduler.ScheduleInput{Job: &models.RoleExpiration{
			UserID:   input.UserID,
			RoleID:   product.RoleID,
			RoleName: product.RoleName,
			FireAt:   out.ExpiresAt,
		}}); err != nil {
			// the role stays granted; an admin has to remove it by hand
			s.logger.ErrorContext(ctx, "Role expiration not scheduled",
				slog.String("user_id", input.UserID),
				slog.String("role_id", product.RoleID),
				slog.Any("error", err))
		}
	}

	s.logger.InfoContext(ctx, "Shop purchase",
		slog.String("user_id", input.UserID),
		slog.String("role_id", product.RoleID),
		slog.Int("price", price),
		slog.Int("discount", discount))
	return out, nil
}

// Discounted applies a percent discount, discarding the fraction
func Discounted(price, percent int) int {
	return int(math.Floor(float64(price) * (1 - float64(percent)/100)))
}

func (s *service) product(ctx context.Context, roleID string) (*models.Product, error) {
	products, err := s.settings.Products(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		if p.RoleID == roleID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: no product for role %s", models.ErrNotFound, roleID)
}

func (s *service) discountFor(ctx context.Context, userID string) (tier.Tier, int, error) {
	bal, err := s.points.Balance(ctx, &points.BalanceInput{UserID: userID})
	if err != nil {
		return "", 0, err
	}
	discounts, err := s.settings.Discounts(ctx)
	if err != nil {
		return "", 0, err
	}
	return bal.Tier, discounts[bal.Tier], nil
}

func (s *service) refund(ctx context.Context, input *BuyInput, price int) {
	if price <= 0 {
		return
	}
	if _, err := s.points.Credit(ctx, &points.CreditInput{
		UserID:   input.UserID,
		Username: input.Username,
		Amount:   price,
		Reason:   models.ReasonShop,
	}); err != nil {
		s.logger.ErrorContext(ctx, "Shop refund failed",
			slog.String("user_id", input.UserID),
			slog.Int("price", price),
			slog.Any("error", err))
	}
}
