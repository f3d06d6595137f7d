package rolesync

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/events"
	"github.com/KirkDiggler/rewardsbot/internal/metrics"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/services/status"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Config holds the dependencies of the role sync service
type Config struct {
	Settings   settings.Reader
	Status     status.Service
	LedgerRepo ledgerRepo.Repository
	Guild      Guild
	Publisher  events.Publisher
	Clock      clock.Clock

	// Metrics may be nil
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

type service struct {
	settings  settings.Reader
	status    status.Service
	ledger    ledgerRepo.Repository
	guild     Guild
	publisher events.Publisher
	clock     clock.Clock
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// New creates a role sync service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Settings == nil {
		return nil, ErrNilSettings
	}
	if cfg.Status == nil {
		return nil, ErrNilStatus
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.Guild == nil {
		return nil, ErrNilGuild
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
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
		status:    cfg.Status,
		ledger:    cfg.LedgerRepo,
		guild:     cfg.Guild,
		publisher: cfg.Publisher,
		clock:     cfg.Clock,
		metrics:   cfg.Metrics,
		logger:    logger,
	}, nil
}

func (s *service) Sync(ctx context.Context, input *SyncInput) (*SyncOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	if input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}

	effective, points, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}

	roles, err := s.settings.Roles(ctx)
	if err != nil {
		return nil, err
	}
	s.reconcile(ctx, input.UserID, effective, roles)

	account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	out := &SyncOutput{Tier: effective, Previous: account.CurrentTier}
	if effective.Key() == account.CurrentTier {
		return out, nil
	}
	out.Transitioned = true

	s.logger.InfoContext(ctx, "Tier transition",
		slog.String("user_id", input.UserID),
		slog.String("previous", account.CurrentTier),
		slog.String("tier", effective.String()))
	s.metrics.TierTransition(effective.String())

	now := s.clock.Now()
	if !input.Silent {
		s.announce(ctx, input, effective, points, account.CurrentTier, now)
	}

	if err := s.ledger.SetCurrentTier(ctx, &ledgerRepo.SetCurrentTierInput{
		UserID: input.UserID,
		Tier:   effective,
	}); err != nil {
		return nil, err
	}

	// a transition always restamps, even over an unexpired entry
	if err := s.ledger.StampTier(ctx, &ledgerRepo.StampTierInput{
		UserID: input.UserID,
		Tier:   effective,
		At:     now,
	}); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *service) resolve(ctx context.Context, input *SyncInput) (tier.Tier, int, error) {
	switch b := input.Basis.(type) {
	case ForcedTier:
		if tier.Index(b.Tier) < 0 {
			return "", 0, fmt.Errorf("%w: %q", tier.ErrUnknownTier, b.Tier)
		}
		return b.Tier, b.Points, nil
	case ByPoints:
		effective, err := s.status.EffectiveTier(ctx, &status.EffectiveTierInput{
			UserID: input.UserID,
			Points: b.Points,
		})
		if err != nil {
			return "", 0, err
		}
		return effective.Tier, b.Points, nil
	default:
		return "", 0, fmt.Errorf("%w: sync basis is required", models.ErrInvalidInput)
	}
}

// reconcile holds every mapped role at or below effective and none above it
func (s *service) reconcile(ctx context.Context, userID string, effective tier.Tier, roles map[tier.Tier]string) {
	top := tier.Index(effective)

	for i, t := range tier.Ordered {
		roleID := roles[t]
		if roleID == "" {
			continue
		}

		has, err := s.guild.HasRole(ctx, userID, roleID)
		if err != nil {
			s.roleFailure(ctx, "check", userID, t, roleID, err)
			continue
		}

		switch {
		case i <= top && !has:
			if err := s.guild.AddRole(ctx, userID, roleID); err != nil {
				s.roleFailure(ctx, "add", userID, t, roleID, err)
				continue
			}
			s.logger.DebugContext(ctx, "Added tier role",
				slog.String("user_id", userID),
				slog.String("tier", t.String()))
		case i > top && has:
			if err := s.guild.RemoveRole(ctx, userID, roleID); err != nil {
				s.roleFailure(ctx, "remove", userID, t, roleID, err)
				continue
			}
			s.logger.DebugContext(ctx, "Removed tier role",
				slog.String("user_id", userID),
				slog.String("tier", t.String()))
		}
	}
}

func (s *service) roleFailure(ctx context.Context, action, userID string, t tier.Tier, roleID string, err error) {
	s.metrics.RoleSyncError(action)
	s.logger.WarnContext(ctx, "Role update failed",
		slog.String("action", action),
		slog.String("user_id", userID),
		slog.String("tier", t.String()),
		slog.String("role_id", roleID),
		slog.Any("error", err))
}

// announce publishes the transition. Failures are logged and dropped.
func (s *service) announce(ctx context.Context, input *SyncInput, effective tier.Tier, points int, previous string, now time.Time) {
	event := &models.TierAchieved{
		UserID:   input.UserID,
		Username: input.Username,
		Tier:     effective.String(),
		Previous: previous,
	}

	message, err := s.renderMessage(ctx, input, effective, points, now)
	if err != nil {
		s.logger.WarnContext(ctx, "Tier message not rendered",
			slog.String("user_id", input.UserID),
			slog.Any("error", err))
	}
	event.Message = message

	if err := s.publisher.Publish(ctx, events.TopicTierAchieved, event); err != nil {
		s.logger.WarnContext(ctx, "Tier achieved event dropped",
			slog.String("user_id", input.UserID),
			slog.Any("error", err))
	}
}

func (s *service) renderMessage(ctx context.Context, input *SyncInput, effective tier.Tier, points int, now time.Time) (string, error) {
	templates, err := s.settings.TierMessages(ctx)
	if err != nil {
		return "", err
	}
	template, ok := templates[effective]
	if !ok || template == "" {
		return "", nil
	}

	retention, err := s.settings.Retention(ctx)
	if err != nil {
		return "", err
	}
	days := retention.DaysFor(effective)
	if days <= 0 {
		days = defaultExpiryDays
	}

	currency, err := s.settings.CurrencyName(ctx)
	if err != nil {
		return "", err
	}

	data := &MessageData{
		Tier:         effective,
		Points:       points,
		CurrencyName: currency,
		ExpireAt:     now.Add(time.Duration(days) * 24 * time.Hour),
		UserID:       input.UserID,
		Username:     input.Username,
	}
	if next, ok := tier.Next(effective); ok {
		thresholds, err := s.settings.Thresholds(ctx)
		if err != nil {
			return "", err
		}
		data.NextTier = next
		data.NextTierPoints = thresholds.Of(next)
	}

	return RenderTierMessage(template, data), nil
}
