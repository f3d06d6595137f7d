package leaderboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/cache"
	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var windows = map[models.Period]time.Duration{
	models.PeriodWeekly:  7 * 24 * time.Hour,
	models.PeriodMonthly: 30 * 24 * time.Hour,
}

// Config holds the dependencies of the leaderboard service
type Config struct {
	LedgerRepo ledgerRepo.Repository

	// Cache is owned by the service; Invalidate purges it. Nil disables caching.
	Cache *cache.Cache

	Clock clock.Clock
}

type service struct {
	ledger ledgerRepo.Repository
	cache  *cache.Cache
	clock  clock.Clock
}

// New creates a leaderboard service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		ledger: cfg.LedgerRepo,
		cache:  cfg.Cache,
		clock:  cfg.Clock,
	}, nil
}

func (s *service) Top(ctx context.Context, input *TopInput) (*TopOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	period := input.Period
	if period == "" {
		period = models.PeriodAllTime
	}
	limit := clampLimit(input.Limit)

	var fetch func(ctx context.Context) ([]*models.LeaderboardEntry, error)
	switch period {
	case models.PeriodAllTime:
		fetch = func(ctx context.Context) ([]*models.LeaderboardEntry, error) {
			return s.board(ctx, ledgerRepo.BoardPoints, limit)
		}
	case models.PeriodWeekly, models.PeriodMonthly:
		window := windows[period]
		fetch = func(ctx context.Context) ([]*models.LeaderboardEntry, error) {
			return s.windowed(ctx, s.clock.Now().Add(-window), limit)
		}
	default:
		return nil, fmt.Errorf("%w: unknown period %q", models.ErrInvalidInput, period)
	}

	entries, err := cache.Fetch(ctx, s.cache, fmt.Sprintf("board:%s:%d", period, limit), fetch)
	if err != nil {
		return nil, err
	}
	return &TopOutput{Period: period, Entries: entries}, nil
}

func (s *service) TopSpenders(ctx context.Context, input *TopSpendersInput) (*TopOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	limit := clampLimit(input.Limit)

	entries, err := cache.Fetch(ctx, s.cache, fmt.Sprintf("board:spent:%d", limit),
		func(ctx context.Context) ([]*models.LeaderboardEntry, error) {
			return s.board(ctx, ledgerRepo.BoardSpent, limit)
		})
	if err != nil {
		return nil, err
	}
	return &TopOutput{Period: models.PeriodAllTime, Entries: entries}, nil
}

func (s *service) Invalidate() {
	s.cache.Purge()
}

func (s *service) board(ctx context.Context, board ledgerRepo.Board, limit int) ([]*models.LeaderboardEntry, error) {
	out, err := s.ledger.Top(ctx, &ledgerRepo.TopInput{Board: board, Limit: limit})
	if err != nil {
		return nil, err
	}
	return out.Entries, nil
}

// windowed ranks by floor(price) summed over purchases newer than since
func (s *service) windowed(ctx context.Context, since time.Time, limit int) ([]*models.LeaderboardEntry, error) {
	out, err := s.ledger.SpendSince(ctx, &ledgerRepo.SpendSinceInput{Since: since})
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(out.Totals))
	for id := range out.Totals {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if out.Totals[ids[i]] != out.Totals[ids[j]] {
			return out.Totals[ids[i]] > out.Totals[ids[j]]
		}
		return ids[i] < ids[j]
	})
	if len(ids) > limit {
		ids = ids[:limit]
	}

	entries := make([]*models.LeaderboardEntry, 0, len(ids))
	for i, id := range ids {
		account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{UserID: id})
		if err != nil {
			return nil, err
		}
		entries = append(entries, &models.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   id,
			Username: account.Username,
			Score:    float64(out.Totals[id]),
		})
	}
	return entries, nil
}

func clampLimit(n int) int {
	if n <= 0 {
		return defaultLimit
	}
	if n > maxLimit {
		return maxLimit
	}
	return n
}
