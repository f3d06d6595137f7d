package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/cache"
	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/common/uuid"
	"github.com/KirkDiggler/rewardsbot/internal/config"
	"github.com/KirkDiggler/rewardsbot/internal/dice"
	"github.com/KirkDiggler/rewardsbot/internal/events"
	"github.com/KirkDiggler/rewardsbot/internal/handlers/api"
	"github.com/KirkDiggler/rewardsbot/internal/handlers/discord"
	"github.com/KirkDiggler/rewardsbot/internal/metrics"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	scheduleRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/schedule"
	settingsRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/settings"
	"github.com/KirkDiggler/rewardsbot/internal/services/leaderboard"
	"github.com/KirkDiggler/rewardsbot/internal/services/multiplier"
	"github.com/KirkDiggler/rewardsbot/internal/services/notify"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/rolesync"
	"github.com/KirkDiggler/rewardsbot/internal/services/scheduler"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/services/shop"
	"github.com/KirkDiggler/rewardsbot/internal/services/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "rewardsbot",
		Short:        "Discord loyalty and points bot",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
			defer stop()

			return run(ctx, cfg)
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "path to the YAML config file")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Level()}))
	slog.SetDefault(logger)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m, err := metrics.New(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	// Initialize repositories
	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create ledger repository: %w", err)
	}
	settingsStore, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create settings repository: %w", err)
	}
	schedules, err := scheduleRepo.NewRedis(&scheduleRepo.Config{RedisClient: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create schedule repository: %w", err)
	}

	clk := &clock.DefaultClock{}
	ids := uuid.New()

	settingsSvc, err := settings.New(&settings.Config{
		SettingsRepo:  settingsStore,
		LedgerRepo:    ledger,
		Cache:         cache.New(&cache.Config{MaxSize: 64, TTL: time.Minute, Clock: clk}),
		Clock:         clk,
		UUIDGenerator: ids,
		Logger:        logger,
		Defaults: settings.Defaults{
			Thresholds:   cfg.Economy.Thresholds,
			Transfer:     cfg.Economy.Transfer,
			Daily:        cfg.Economy.Daily,
			CurrencyName: cfg.Economy.CurrencyName,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create settings service: %w", err)
	}

	statusSvc, err := status.New(&status.Config{
		Settings:   settingsSvc,
		LedgerRepo: ledger,
		Clock:      clk,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create status service: %w", err)
	}

	multiplierSvc, err := multiplier.New(&multiplier.Config{
		Settings: settingsSvc,
		Status:   statusSvc,
		Clock:    clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create multiplier service: %w", err)
	}

	bus := events.New(logger)
	defer bus.Close()

	session, err := discord.NewSession(cfg.Discord.Token)
	if err != nil {
		return err
	}
	guild, err := discord.NewGuild(&discord.GuildConfig{
		Session:      session,
		GuildID:      cfg.Discord.GuildID,
		LogChannelID: cfg.Discord.LogChannelID,
	})
	if err != nil {
		return fmt.Errorf("failed to create guild adapter: %w", err)
	}

	roleSync, err := rolesync.New(&rolesync.Config{
		Settings:   settingsSvc,
		Status:     statusSvc,
		LedgerRepo: ledger,
		Guild:      guild,
		Publisher:  bus,
		Clock:      clk,
		Metrics:    m,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create role sync service: %w", err)
	}

	boards, err := leaderboard.New(&leaderboard.Config{
		LedgerRepo: ledger,
		Cache:      cache.New(&cache.Config{MaxSize: 32, TTL: 30 * time.Second, Clock: clk}),
		Clock:      clk,
	})
	if err != nil {
		return fmt.Errorf("failed to create leaderboard service: %w", err)
	}

	pointsSvc, err := points.New(&points.Config{
		LedgerRepo:      ledger,
		Settings:        settingsSvc,
		Status:          statusSvc,
		Multiplier:      multiplierSvc,
		RoleSync:        roleSync,
		Publisher:       bus,
		Roller:          dice.New(&dice.Config{}),
		Clock:           clk,
		UUIDGenerator:   ids,
		Boards:          boards,
		Metrics:         m,
		ResyncPerSecond: cfg.Resync.PerSecond,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create points service: %w", err)
	}

	expirations, err := scheduler.New(&scheduler.Config{
		ScheduleRepo: schedules,
		Roles:        guild,
		Publisher:    bus,
		Clock:        clk,
		Metrics:      m,
		Logger:       logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	shopSvc, err := shop.New(&shop.Config{
		Settings:  settingsSvc,
		Points:    pointsSvc,
		Roles:     guild,
		Scheduler: expirations,
		Clock:     clk,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create shop service: %w", err)
	}

	notifier, err := notify.New(&notify.Config{
		Subscriber: bus,
		Channel:    guild,
		Metrics:    m,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create notifier: %w", err)
	}
	if err := notifier.Start(ctx); err != nil {
		return fmt.Errorf("failed to start notifier: %w", err)
	}

	srv, err := api.New(&api.Config{
		Ping:               func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
		Gatherer:           registry,
		PointsService:      pointsSvc,
		LeaderboardService: boards,
		SettingsService:    settingsSvc,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create api server: %w", err)
	}
	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		logger.Info("HTTP listener started", slog.String("addr", cfg.HTTP.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP listener failed", slog.Any("error", err))
		}
	}()

	bot, err := discord.New(&discord.Config{
		Session:            session,
		ApplicationID:      cfg.Discord.ApplicationID,
		GuildID:            cfg.Discord.GuildID,
		PurchaseChannelID:  cfg.Discord.PurchaseChannelID,
		PointsService:      pointsSvc,
		LeaderboardService: boards,
		Scheduler:          expirations,
		ShopService:        shopSvc,
		Currency:           settingsSvc,
		Logger:             logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create Discord bot: %w", err)
	}

	if err := bot.Start(ctx); err != nil {
		return fmt.Errorf("failed to start Discord bot: %w", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	<-ctx.Done()

	if err := bot.Stop(); err != nil {
		logger.Error("Error stopping bot", slog.Any("error", err))
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error stopping HTTP listener", slog.Any("error", err))
	}

	logger.Info("Bot has been shut down")
	return nil
}
