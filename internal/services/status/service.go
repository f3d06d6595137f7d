package status

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

const day = 24 * time.Hour

// Config holds the dependencies of the status service
type Config struct {
	Settings   settings.Reader
	LedgerRepo ledgerRepo.Repository
	Clock      clock.Clock
	Logger     *slog.Logger
}

type service struct {
	settings settings.Reader
	ledger   ledgerRepo.Repository
	clock    clock.Clock
	logger   *slog.Logger
}

// New creates a status service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Settings == nil {
		return nil, ErrNilSettings
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		settings: cfg.Settings,
		ledger:   cfg.LedgerRepo,
		clock:    cfg.Clock,
		logger:   logger,
	}, nil
}

func (s *service) EffectiveTier(ctx context.Context, input *EffectiveTierInput) (*EffectiveTierOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}

	thresholds, err := s.settings.Thresholds(ctx)
	if err != nil {
		return nil, err
	}

	current := tier.For(input.Points, thresholds)
	out := &EffectiveTierOutput{Tier: current, PointsTier: current, Retained: tier.Bronze}

	if input.UserID == "" {
		return out, nil
	}

	retention, err := s.settings.Retention(ctx)
	if err != nil {
		return nil, err
	}
	if !retention.Enabled() {
		return out, nil
	}

	account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	history := account.TierHistory

	// an unexpired entry is never refreshed here
	if days := retention.DaysFor(current); current != tier.Bronze && days > 0 {
		at, ok := history[current]
		if !ok || !within(now, at, days) {
			if err := s.ledger.StampTier(ctx, &ledgerRepo.StampTierInput{
				UserID: input.UserID,
				Tier:   current,
				At:     now,
			}); err != nil {
				return nil, err
			}
			history[current] = now
			s.logger.DebugContext(ctx, "tier history stamped",
				slog.String("user_id", input.UserID),
				slog.String("tier", current.String()))
		}
	}

	for t, at := range history {
		days := retention.DaysFor(t)
		if days > 0 && within(now, at, days) {
			out.Retained = tier.Higher(out.Retained, t)
		}
	}

	out.Tier = tier.Higher(current, out.Retained)
	return out, nil
}

func within(now, at time.Time, days int) bool {
	return now.UnixMilli()-at.UnixMilli() <= int64(days)*day.Milliseconds()
}
