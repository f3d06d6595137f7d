package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/services/leaderboard"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/scheduler"
	"github.com/KirkDiggler/rewardsbot/internal/services/shop"
	"github.com/bwmarrin/discordgo"
)

const (
	handlerTimeout = 15 * time.Second
	restoreTimeout = time.Minute
)

// Bot represents the Discord bot instance
type Bot struct {
	session     *discordgo.Session
	commands    map[string]CommandHandler
	commandIDs  map[string]string // Maps command name to command ID
	points      points.Service
	leaderboard leaderboard.Service
	scheduler   scheduler.Service
	shop        shop.Service
	logger      *slog.Logger
	config      *Config
}

// Config holds the configuration for the bot
type Config struct {
	// Session is shared with the guild adapter
	Session *discordgo.Session

	// Application ID for the bot
	ApplicationID string

	// GuildID scopes command registration
	GuildID string

	// PurchaseChannelID is watched for purchase log lines
	PurchaseChannelID string

	PointsService      points.Service
	LeaderboardService leaderboard.Service
	Scheduler          scheduler.Service
	ShopService        shop.Service

	// Currency resolves the currency display name. Nil shows the default.
	Currency currencyNamer

	Logger *slog.Logger
}

// NewSession creates a discordgo session with the intents the bot needs
func NewSession(token string) (*discordgo.Session, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsMessageContent

	return session, nil
}

// New creates a new Discord bot
func New(cfg *Config) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Session == nil {
		return nil, errors.New("session cannot be nil")
	}

	if cfg.PointsService == nil {
		return nil, errors.New("points service cannot be nil")
	}

	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}

	if cfg.Scheduler == nil {
		return nil, errors.New("scheduler cannot be nil")
	}

	if cfg.ShopService == nil {
		return nil, errors.New("shop service cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	bot := &Bot{
		session:     cfg.Session,
		commands:    make(map[string]CommandHandler),
		commandIDs:  make(map[string]string),
		points:      cfg.PointsService,
		leaderboard: cfg.LeaderboardService,
		scheduler:   cfg.Scheduler,
		shop:        cfg.ShopService,
		logger:      logger,
		config:      cfg,
	}

	cfg.Session.AddHandler(bot.handleReady)
	cfg.Session.AddHandler(bot.handleInteraction)
	cfg.Session.AddHandler(bot.handlePurchaseMessage)

	return bot, nil
}

// Start resolves persisted role expirations, then opens the websocket
// connection and registers commands. No gateway event is handled before
// past-due roles are removed.
func (b *Bot) Start(ctx context.Context) error {
	if err := b.prepare(ctx); err != nil {
		return err
	}

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	names := make([]string, 0, len(b.commands))
	for name := range b.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := b.RegisterCommand(b.commands[name]); err != nil {
			return fmt.Errorf("failed to register %s command: %w", name, err)
		}
	}

	b.logger.Info("Bot is now running")
	return nil
}

// prepare runs everything that must finish before the gateway delivers events
func (b *Bot) prepare(ctx context.Context) error {
	restoreCtx, cancel := context.WithTimeout(ctx, restoreTimeout)
	defer cancel()

	out, err := b.scheduler.Restore(restoreCtx)
	if err != nil {
		return fmt.Errorf("failed to restore role expirations: %w", err)
	}
	b.logger.InfoContext(ctx, "Restored role expirations",
		slog.Int("armed", out.Armed),
		slog.Int("expired", out.Expired))

	for _, cmd := range []CommandHandler{
		NewBalanceCommand(b.points, b.config.Currency, b.logger),
		NewDailyCommand(b.points, b.config.Currency, b.logger),
		NewLeaderboardCommand(b.leaderboard, b.config.Currency, b.logger),
		NewShopCommand(b.shop, b.config.Currency, b.logger),
		NewBuyCommand(b.shop, b.config.Currency, b.logger),
	} {
		b.commands[cmd.GetName()] = cmd
	}

	return nil
}

// Stop removes registered commands, disarms expiry timers and closes the connection
func (b *Bot) Stop() error {
	appID := b.appID()
	for cmdName, cmdID := range b.commandIDs {
		if err := b.session.ApplicationCommandDelete(appID, b.config.GuildID, cmdID); err != nil {
			b.logger.Warn("Failed to delete command",
				slog.String("command", cmdName),
				slog.String("command_id", cmdID),
				slog.Any("error", err))
		}
	}

	b.scheduler.Stop()

	return b.session.Close()
}

// RegisterCommand creates cmd with Discord. The handler must already be in b.commands.
func (b *Bot) RegisterCommand(cmd CommandHandler) error {
	createdCmd, err := b.session.ApplicationCommandCreate(b.appID(), b.config.GuildID, cmd.GetCommand())
	if err != nil {
		return fmt.Errorf("failed to create command %s: %w", cmd.GetName(), err)
	}

	b.commandIDs[cmd.GetName()] = createdCmd.ID
	b.logger.Info("Registered command",
		slog.String("command", cmd.GetName()),
		slog.String("command_id", createdCmd.ID),
		slog.String("guild_id", b.config.GuildID))

	return nil
}

func (b *Bot) appID() string {
	if b.config.ApplicationID != "" {
		return b.config.ApplicationID
	}
	// Fall back to session user ID if application ID is not provided
	return b.session.State.User.ID
}

func (b *Bot) handleReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Connected to Discord", slog.String("user", r.User.Username))
}

// handleInteraction dispatches slash commands
func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	name := i.ApplicationCommandData().Name
	h, ok := b.commands[name]
	if !ok {
		return
	}
	if err := h.Handle(s, i); err != nil {
		b.logger.Error("Error handling command", slog.String("command", name), slog.Any("error", err))
	}
}
