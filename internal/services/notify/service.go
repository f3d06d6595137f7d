package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rewardsbot/internal/events"
	"github.com/KirkDiggler/rewardsbot/internal/metrics"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/ThreeDotsLabs/watermill/message"
)

// Config holds the dependencies of the notification consumer
type Config struct {
	Subscriber events.Subscriber
	Channel    Channel

	// Metrics may be nil
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// Service turns economy events into messages. Delivery is best-effort.
type Service struct {
	subscriber events.Subscriber
	channel    Channel
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// New creates a notification consumer
func New(cfg *Config) (*Service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Subscriber == nil {
		return nil, ErrNilSubscriber
	}
	if cfg.Channel == nil {
		return nil, ErrNilChannel
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{
		subscriber: cfg.Subscriber,
		channel:    cfg.Channel,
		metrics:    cfg.Metrics,
		logger:     logger,
	}, nil
}

// Start subscribes to every notification topic. Consumption stops with ctx.
func (s *Service) Start(ctx context.Context) error {
	handlers := map[string]events.Handler{
		events.TopicTierAchieved:     s.handleTierAchieved,
		events.TopicRoleExpired:      s.handleRoleExpired,
		events.TopicPurchaseRecorded: s.handlePurchaseRecorded,
	}
	for topic, h := range handlers {
		if err := s.subscriber.Subscribe(ctx, topic, h); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) handleTierAchieved(ctx context.Context, msg *message.Message) error {
	var ev models.TierAchieved
	if err := events.Decode(msg, &ev); err != nil {
		return err
	}

	// no template configured for the tier
	if ev.Message == "" {
		return nil
	}

	if err := s.channel.SendDirectMessage(ctx, ev.UserID, ev.Message); err != nil {
		s.metrics.NotifyFailure(events.TopicTierAchieved)
		return fmt.Errorf("tier message to %s: %w", ev.UserID, err)
	}

	s.logger.InfoContext(ctx, "Tier message sent",
		slog.String("user_id", ev.UserID),
		slog.String("tier", ev.Tier))
	return nil
}

func (s *Service) handleRoleExpired(ctx context.Context, msg *message.Message) error {
	var ev models.RoleExpired
	if err := events.Decode(msg, &ev); err != nil {
		return err
	}

	name := ev.RoleName
	if name == "" {
		name = ev.RoleID
	}
	content := fmt.Sprintf("🕒 Temporary role expired: <@%s> no longer has **%s**.", ev.UserID, name)

	return s.logOrDirect(ctx, events.TopicRoleExpired, ev.UserID, content)
}

func (s *Service) handlePurchaseRecorded(ctx context.Context, msg *message.Message) error {
	var ev models.PurchaseRecorded
	if err := events.Decode(msg, &ev); err != nil {
		return err
	}

	content := fmt.Sprintf("🧾 <@%s> bought %s for $%.2f and earned %d (x%g), balance %d.",
		ev.UserID, ev.Item, ev.Price, ev.PointsAwarded, ev.Multiplier, ev.Points)

	err := s.channel.SendLogMessage(ctx, content)
	if errors.Is(err, models.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.metrics.NotifyFailure(events.TopicPurchaseRecorded)
		return fmt.Errorf("purchase log for %s: %w", ev.UserID, err)
	}
	return nil
}

// logOrDirect posts to the log channel and falls back to the member's DMs
func (s *Service) logOrDirect(ctx context.Context, topic, userID, content string) error {
	err := s.channel.SendLogMessage(ctx, content)
	if err == nil {
		return nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		s.logger.WarnContext(ctx, "Log channel unavailable, falling back to DM",
			slog.String("topic", topic),
			slog.Any("error", err))
	}

	if err := s.channel.SendDirectMessage(ctx, userID, content); err != nil {
		s.metrics.NotifyFailure(topic)
		return fmt.Errorf("%s message to %s: %w", topic, userID, err)
	}
	return nil
}
