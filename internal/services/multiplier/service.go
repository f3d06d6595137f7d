package multiplier

import (
	"context"
	"fmt"
	"math"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/services/status"
)

// Config holds the dependencies of the multiplier service
type Config struct {
	Settings settings.Reader
	Status   status.Service
	Clock    clock.Clock
}

type service struct {
	settings settings.Reader
	status   status.Service
	clock    clock.Clock
}

// New creates a multiplier service
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
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		settings: cfg.Settings,
		status:   cfg.Status,
		clock:    cfg.Clock,
	}, nil
}

// Active uses the first event whose window contains now. Events never stack.
func (s *service) Active(ctx context.Context, input *ActiveInput) (*ActiveOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}

	events, err := s.settings.MultiplierEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := &ActiveOutput{EventMultiplier: 1, TierMultiplier: 1}
	for _, e := range events {
		if e.ActiveAt(now) {
			out.EventMultiplier = e.Multiplier
			break
		}
	}

	effective, err := s.status.EffectiveTier(ctx, &status.EffectiveTierInput{
		UserID: input.UserID,
		Points: input.Points,
	})
	if err != nil {
		return nil, err
	}
	out.Tier = effective.Tier

	tierMultipliers, err := s.settings.TierMultipliers(ctx)
	if err != nil {
		return nil, err
	}
	if m, ok := tierMultipliers[effective.Tier]; ok && m > 0 {
		out.TierMultiplier = m
	}

	out.Multiplier = out.EventMultiplier * out.TierMultiplier
	return out, nil
}

// Apply scales base points, discarding the fraction
func Apply(base int, multiplier float64) int {
	return int(math.Floor(float64(base) * multiplier))
}

// BasePoints converts a price to points, discarding sub-unit fractions
func BasePoints(price float64) int {
	return int(math.Floor(price))
}
