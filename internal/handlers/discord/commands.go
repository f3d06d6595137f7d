package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/leaderboard"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/shop"
	"github.com/bwmarrin/discordgo"
)

// BalanceCommand shows the invoking user's points and tier
type BalanceCommand struct {
	BaseCommand
	points   points.Service
	currency currencyNamer
	logger   *slog.Logger
}

// NewBalanceCommand creates the balance command
func NewBalanceCommand(svc points.Service, currency currencyNamer, logger *slog.Logger) *BalanceCommand {
	return &BalanceCommand{
		BaseCommand: BaseCommand{
			Name:        "points",
			Description: "Show your points and tier",
		},
		points:   svc,
		currency: currency,
		logger:   logger,
	}
}

// Handle processes the balance command
func (c *BalanceCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	user := interactionUser(i)
	out, err := c.points.Balance(ctx, &points.BalanceInput{UserID: user.ID})
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load balance", slog.String("user_id", user.ID), slog.Any("error", err))
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithEphemeralEmbed(s, i, renderBalance(user, out, currencyName(ctx, c.currency)))
}

// DailyCommand claims the daily reward
type DailyCommand struct {
	BaseCommand
	points   points.Service
	currency currencyNamer
	logger   *slog.Logger
}

// NewDailyCommand creates the daily command
func NewDailyCommand(svc points.Service, currency currencyNamer, logger *slog.Logger) *DailyCommand {
	return &DailyCommand{
		BaseCommand: BaseCommand{
			Name:        "daily",
			Description: "Claim your daily reward",
		},
		points:   svc,
		currency: currency,
		logger:   logger,
	}
}

// Handle processes the daily command
func (c *DailyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	user := interactionUser(i)
	out, err := c.points.ClaimDaily(ctx, &points.ClaimDailyInput{
		UserID:   user.ID,
		Username: displayName(user),
	})
	switch {
	case errors.Is(err, models.ErrOnCooldown) && out != nil:
		return RespondWithEphemeralEmbed(s, i, renderCooldown(out.NextClaim))
	case err != nil:
		c.logger.ErrorContext(ctx, "Failed to claim daily", slog.String("user_id", user.ID), slog.Any("error", err))
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithEmbed(s, i, renderDaily(user, out, currencyName(ctx, c.currency)))
}

// LeaderboardCommand shows a ranked board
type LeaderboardCommand struct {
	BaseCommand
	boards   leaderboard.Service
	currency currencyNamer
	logger   *slog.Logger
}

// NewLeaderboardCommand creates the leaderboard command
func NewLeaderboardCommand(boards leaderboard.Service, currency currencyNamer, logger *slog.Logger) *LeaderboardCommand {
	return &LeaderboardCommand{
		BaseCommand: BaseCommand{
			Name:        "leaderboard",
			Description: "Show the top members",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "period",
					Description: "Which board to show",
					Choices: []*discordgo.ApplicationCommandOptionChoice{
						{Name: "All time", Value: string(models.PeriodAllTime)},
						{Name: "Weekly", Value: string(models.PeriodWeekly)},
						{Name: "Monthly", Value: string(models.PeriodMonthly)},
					},
				},
			},
		},
		boards:   boards,
		currency: currency,
		logger:   logger,
	}
}

// Handle processes the leaderboard command
func (c *LeaderboardCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	period := models.PeriodAllTime
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "period" {
			period = models.Period(opt.StringValue())
		}
	}

	out, err := c.boards.Top(ctx, &leaderboard.TopInput{Period: period})
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load leaderboard", slog.String("period", string(period)), slog.Any("error", err))
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithEmbed(s, i, renderLeaderboard(out, currencyName(ctx, c.currency)))
}

// currencyNamer resolves the configured currency display name
type currencyNamer interface {
	CurrencyName(ctx context.Context) (string, error)
}

func currencyName(ctx context.Context, c currencyNamer) string {
	if c == nil {
		return models.DefaultCurrencyName
	}
	name, err := c.CurrencyName(ctx)
	if err != nil || name == "" {
		return models.DefaultCurrencyName
	}
	return name
}

// userMessage turns an error kind into text fit for a member
func userMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrInsufficientBalance):
		return "You don't have enough points for that."
	case errors.Is(err, models.ErrAlreadyOwned):
		return "You already have that role."
	case errors.Is(err, models.ErrNotFound):
		return "That role isn't for sale."
	case errors.Is(err, models.ErrOnCooldown):
		return "That's on cooldown. Try again later."
	case errors.Is(err, models.ErrInvalidInput), errors.Is(err, models.ErrOutOfRange):
		return "That request isn't valid."
	case errors.Is(err, models.ErrExternalUnavailable):
		return "The rewards store is unavailable right now. Try again shortly."
	default:
		return "Something went wrong."
	}
}

// ShopCommand lists the roles for sale at the invoking user's price
type ShopCommand struct {
	BaseCommand
	shop     shop.Service
	currency currencyNamer
	logger   *slog.Logger
}

// NewShopCommand creates the shop command
func NewShopCommand(svc shop.Service, currency currencyNamer, logger *slog.Logger) *ShopCommand {
	return &ShopCommand{
		BaseCommand: BaseCommand{
			Name:        "shop",
			Description: "List roles you can buy",
		},
		shop:     svc,
		currency: currency,
		logger:   logger,
	}
}

// Handle processes the shop command
func (c *ShopCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	user := interactionUser(i)
	out, err := c.shop.Catalog(ctx, &shop.CatalogInput{UserID: user.ID})
	if err != nil {
		c.logger.ErrorContext(ctx, "Failed to load catalog", slog.String("user_id", user.ID), slog.Any("error", err))
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithEphemeralEmbed(s, i, renderCatalog(out, currencyName(ctx, c.currency)))
}

// BuyCommand buys a role from the shop
type BuyCommand struct {
	BaseCommand
	shop     shop.Service
	currency currencyNamer
	logger   *slog.Logger
}

// NewBuyCommand creates the buy command
func NewBuyCommand(svc shop.Service, currency currencyNamer, logger *slog.Logger) *BuyCommand {
	return &BuyCommand{
		BaseCommand: BaseCommand{
			Name:        "buy",
			Description: "Buy a role from the shop",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "The role to buy",
					Required:    true,
				},
			},
		},
		shop:     svc,
		currency: currency,
		logger:   logger,
	}
}

// Handle processes the buy command
func (c *BuyCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	ctx, cancel := context.WithTimeout(context.Background(), handlerTimeout)
	defer cancel()

	roleID := ""
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "role" {
			roleID = fmt.Sprint(opt.Value)
		}
	}

	user := interactionUser(i)
	out, err := c.shop.Buy(ctx, &shop.BuyInput{
		UserID:   user.ID,
		Username: displayName(user),
		RoleID:   roleID,
	})
	if err != nil {
		if !errors.Is(err, models.ErrInsufficientBalance) && !errors.Is(err, models.ErrAlreadyOwned) {
			c.logger.ErrorContext(ctx, "Failed to buy role",
				slog.String("user_id", user.ID),
				slog.String("role_id", roleID),
				slog.Any("error", err))
		}
		return RespondWithError(s, i, userMessage(err))
	}

	return RespondWithEmbed(s, i, renderBuy(user, out, currencyName(ctx, c.currency)))
}
