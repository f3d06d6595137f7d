package points

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/common/uuid"
	"github.com/KirkDiggler/rewardsbot/internal/dice"
	"github.com/KirkDiggler/rewardsbot/internal/events"
	"github.com/KirkDiggler/rewardsbot/internal/metrics"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	"github.com/KirkDiggler/rewardsbot/internal/services/multiplier"
	"github.com/KirkDiggler/rewardsbot/internal/services/rolesync"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/services/status"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const (
	// DailyCooldown separates two daily claims
	DailyCooldown = 24 * time.Hour

	tracerName = "github.com/KirkDiggler/rewardsbot/internal/services/points"

	defaultResyncPerSecond = 5
)

// Config holds the dependencies of the points service
type Config struct {
	LedgerRepo    ledgerRepo.Repository
	Settings      settings.Reader
	Status        status.Service
	Multiplier    multiplier.Service
	RoleSync      rolesync.Service
	Publisher     events.Publisher
	Roller        dice.Roller
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Boards may be nil
	Boards BoardInvalidator

	// Metrics may be nil
	Metrics *metrics.Metrics

	// Tracer defaults to the global provider's tracer
	Tracer trace.Tracer

	// ResyncPerSecond bounds role syncs during ResyncAll
	ResyncPerSecond float64

	Logger *slog.Logger
}

type service struct {
	ledger     ledgerRepo.Repository
	settings   settings.Reader
	status     status.Service
	multiplier multiplier.Service
	roleSync   rolesync.Service
	publisher  events.Publisher
	roller     dice.Roller
	clock      clock.Clock
	uuid       uuid.UUID
	boards     BoardInvalidator
	metrics    *metrics.Metrics
	tracer     trace.Tracer
	resync     *rate.Limiter
	logger     *slog.Logger

	// dailyLocks holds one *sync.Mutex per user
	dailyLocks sync.Map
}

// New creates a points service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.Settings == nil {
		return nil, ErrNilSettings
	}
	if cfg.Status == nil {
		return nil, ErrNilStatus
	}
	if cfg.Multiplier == nil {
		return nil, ErrNilMultiplier
	}
	if cfg.RoleSync == nil {
		return nil, ErrNilRoleSync
	}
	if cfg.Publisher == nil {
		return nil, ErrNilPublisher
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	perSecond := cfg.ResyncPerSecond
	if perSecond <= 0 {
		perSecond = defaultResyncPerSecond
	}

	return &service{
		ledger:     cfg.LedgerRepo,
		settings:   cfg.Settings,
		status:     cfg.Status,
		multiplier: cfg.Multiplier,
		roleSync:   cfg.RoleSync,
		publisher:  cfg.Publisher,
		roller:     cfg.Roller,
		clock:      cfg.Clock,
		uuid:       cfg.UUIDGenerator,
		boards:     cfg.Boards,
		metrics:    cfg.Metrics,
		tracer:     tracer,
		resync:     rate.NewLimiter(rate.Limit(perSecond), 1),
		logger:     logger,
	}, nil
}

func (s *service) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}

	account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{
		UserID:        input.UserID,
		WithPurchases: input.WithPurchases,
	})
	if err != nil {
		return nil, err
	}

	effective, err := s.status.EffectiveTier(ctx, &status.EffectiveTierInput{
		UserID: input.UserID,
		Points: account.Points,
	})
	if err != nil {
		return nil, err
	}

	return &BalanceOutput{
		Account:    account,
		Points:     account.DisplayPoints(),
		Tier:       effective.Tier,
		PointsTier: effective.PointsTier,
	}, nil
}

func (s *service) Credit(ctx context.Context, input *CreditInput) (_ *BalanceChangeOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "Credit", input.UserID)
	defer func() { done(err) }()

	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive, got %d", models.ErrInvalidInput, input.Amount)
	}

	res, err := s.ledger.IncrementPoints(ctx, &ledgerRepo.IncrementPointsInput{
		UserID:   input.UserID,
		Username: input.Username,
		Delta:    input.Amount,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PointsCredited(string(input.Reason), input.Amount)
	s.logger.InfoContext(ctx, "Points credited",
		slog.String("user_id", input.UserID),
		slog.Int("amount", input.Amount),
		slog.String("reason", string(input.Reason)),
		slog.Int("points", res.Points))

	return &BalanceChangeOutput{
		Points: res.Points,
		Tier:   s.sync(ctx, input.UserID, input.Username, rolesync.ByPoints{Points: res.Points}, false),
	}, nil
}

func (s *service) Debit(ctx context.Context, input *DebitInput) (_ *BalanceChangeOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "Debit", input.UserID)
	defer func() { done(err) }()

	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive, got %d", models.ErrInvalidInput, input.Amount)
	}

	res, err := s.ledger.IncrementPoints(ctx, &ledgerRepo.IncrementPointsInput{
		UserID:         input.UserID,
		Username:       input.Username,
		Delta:          -input.Amount,
		RequireBalance: true,
	})
	if errors.Is(err, models.ErrInsufficientBalance) && res != nil {
		return nil, fmt.Errorf("%w: balance %d, needed %d", models.ErrInsufficientBalance, res.Points, input.Amount)
	}
	if err != nil {
		return nil, err
	}

	s.metrics.PointsDebited(string(input.Reason), input.Amount)
	s.logger.InfoContext(ctx, "Points debited",
		slog.String("user_id", input.UserID),
		slog.Int("amount", input.Amount),
		slog.String("reason", string(input.Reason)),
		slog.Int("points", res.Points))

	return &BalanceChangeOutput{
		Points: res.Points,
		Tier:   s.sync(ctx, input.UserID, input.Username, rolesync.ByPoints{Points: res.Points}, false),
	}, nil
}

func (s *service) SetBalance(ctx context.Context, input *SetBalanceInput) (_ *BalanceChangeOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "SetBalance", input.UserID)
	defer func() { done(err) }()

	if err := s.ledger.SetPoints(ctx, &ledgerRepo.SetPointsInput{
		UserID:   input.UserID,
		Username: input.Username,
		Points:   input.Points,
	}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Balance set",
		slog.String("user_id", input.UserID),
		slog.Int("points", input.Points),
		slog.String("reason", string(input.Reason)))

	return &BalanceChangeOutput{
		Points: input.Points,
		Tier:   s.sync(ctx, input.UserID, input.Username, rolesync.ByPoints{Points: input.Points}, false),
	}, nil
}

func (s *service) Transfer(ctx context.Context, input *TransferInput) (_ *TransferOutput, err error) {
	if input == nil || input.FromID == "" || input.ToID == "" {
		return nil, fmt.Errorf("%w: sender and recipient are required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "Transfer", input.FromID)
	defer func() { done(err) }()

	if input.FromID == input.ToID {
		return nil, fmt.Errorf("%w: cannot transfer to yourself", models.ErrInvalidTarget)
	}
	if input.ToIsBot {
		return nil, fmt.Errorf("%w: cannot transfer to a bot", models.ErrInvalidTarget)
	}

	limits, err := s.settings.TransferSettings(ctx)
	if err != nil {
		return nil, err
	}
	if input.Amount < limits.Min || input.Amount > limits.Max {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", models.ErrOutOfRange, input.Amount, limits.Min, limits.Max)
	}

	tax := int(math.Floor(float64(input.Amount) * limits.Tax / 100))
	received := input.Amount - tax

	res, err := s.ledger.Transfer(ctx, &ledgerRepo.TransferInput{
		FromID:   input.FromID,
		ToID:     input.ToID,
		Amount:   input.Amount,
		Received: received,
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PointsDebited(string(models.ReasonTransfer), input.Amount)
	s.metrics.PointsCredited(string(models.ReasonTransfer), received)
	s.logger.InfoContext(ctx, "Transfer completed",
		slog.String("from_id", input.FromID),
		slog.String("to_id", input.ToID),
		slog.Int("amount", input.Amount),
		slog.Int("tax", tax))

	s.sync(ctx, input.FromID, input.FromUsername, rolesync.ByPoints{Points: res.FromPoints}, false)
	s.sync(ctx, input.ToID, input.ToUsername, rolesync.ByPoints{Points: res.ToPoints}, false)

	return &TransferOutput{
		Amount:     input.Amount,
		Tax:        tax,
		Received:   received,
		FromPoints: res.FromPoints,
		ToPoints:   res.ToPoints,
	}, nil
}

func (s *service) ApplyPurchase(ctx context.Context, input *ApplyPurchaseInput) (_ *ApplyPurchaseOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "ApplyPurchase", input.UserID)
	defer func() { done(err) }()

	if input.TransactionID == "" {
		return nil, fmt.Errorf("%w: transaction ID is required", models.ErrInvalidInput)
	}
	if input.Price < 0 || math.IsNaN(input.Price) || math.IsInf(input.Price, 0) {
		return nil, fmt.Errorf("%w: invalid price %v", models.ErrInvalidInput, input.Price)
	}

	account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	// the multiplier is resolved against the balance before the purchase
	active, err := s.multiplier.Active(ctx, &multiplier.ActiveInput{
		UserID: input.UserID,
		Points: account.Points,
	})
	if err != nil {
		return nil, err
	}
	awarded := multiplier.Apply(multiplier.BasePoints(input.Price), active.Multiplier)

	res, err := s.ledger.RecordPurchase(ctx, &ledgerRepo.RecordPurchaseInput{
		UserID:   input.UserID,
		Username: input.Username,
		Purchase: &models.Purchase{
			Item:          input.Item,
			Items:         []string{input.Item},
			Price:         input.Price,
			Timestamp:     s.clock.Now().UnixMilli(),
			TransactionID: input.TransactionID,
			PointsAwarded: awarded,
			Username:      input.Username,
		},
	})
	if err != nil {
		return nil, err
	}

	s.metrics.PurchaseProcessed(res.Replayed)

	if res.Replayed {
		s.logger.InfoContext(ctx, "Purchase replayed, item merged",
			slog.String("user_id", input.UserID),
			slog.String("transaction_id", input.TransactionID),
			slog.String("item", input.Item))
		return &ApplyPurchaseOutput{
			Replayed: true,
			Purchase: res.Purchase,
			Points:   res.PointsAfter,
		}, nil
	}

	s.metrics.PointsCredited(string(models.ReasonPurchase), awarded)
	s.logger.InfoContext(ctx, "Purchase recorded",
		slog.String("user_id", input.UserID),
		slog.String("transaction_id", input.TransactionID),
		slog.Float64("price", input.Price),
		slog.Float64("multiplier", active.Multiplier),
		slog.Int("awarded", awarded))

	t := s.sync(ctx, input.UserID, input.Username, rolesync.ByPoints{Points: res.PointsAfter}, false)

	if err := s.publisher.Publish(ctx, events.TopicPurchaseRecorded, &models.PurchaseRecorded{
		UserID:        input.UserID,
		Username:      input.Username,
		Item:          input.Item,
		Price:         input.Price,
		TransactionID: input.TransactionID,
		PointsAwarded: awarded,
		Multiplier:    active.Multiplier,
		Points:        res.PointsAfter,
	}); err != nil {
		s.logger.WarnContext(ctx, "Purchase event dropped",
			slog.String("transaction_id", input.TransactionID),
			slog.Any("error", err))
	}

	return &ApplyPurchaseOutput{
		Purchase:      res.Purchase,
		PointsAwarded: awarded,
		Multiplier:    active.Multiplier,
		Points:        res.PointsAfter,
		Tier:          t,
	}, nil
}

func (s *service) ResetPurchase(ctx context.Context, input *ResetPurchaseInput) (_ *ResetPurchaseOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "ResetPurchase", input.UserID)
	defer func() { done(err) }()

	res, err := s.ledger.RemovePurchase(ctx, &ledgerRepo.RemovePurchaseInput{
		UserID: input.UserID,
		Index:  input.Index,
	})
	if err != nil {
		return nil, err
	}

	// retained tiers no longer reflect real spending
	if err := s.ledger.ClearTierHistory(ctx, &ledgerRepo.ClearTierHistoryInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	if err := s.ledger.AddAdminAction(ctx, &ledgerRepo.AddAdminActionInput{
		UserID: input.UserID,
		Action: &models.AdminAction{
			ID:            s.uuid.NewUUID(),
			Type:          models.AdminActionResetPurchase,
			AdminID:       input.AdminID,
			Purchase:      res.Purchase,
			PointsRemoved: res.PointsRemoved,
			Timestamp:     s.clock.Now().UnixMilli(),
		},
	}); err != nil {
		return nil, err
	}

	s.metrics.PointsDebited(string(models.ReasonReset), res.PointsRemoved)
	s.logger.InfoContext(ctx, "Purchase reset",
		slog.String("user_id", input.UserID),
		slog.String("admin_id", input.AdminID),
		slog.String("transaction_id", res.Purchase.TransactionID),
		slog.Int("points_removed", res.PointsRemoved),
		slog.Int("points", res.Points))

	thresholds, err := s.settings.Thresholds(ctx)
	if err != nil {
		return nil, err
	}
	pointsTier := tier.For(res.Points, thresholds)

	return &ResetPurchaseOutput{
		Purchase:      res.Purchase,
		PointsRemoved: res.PointsRemoved,
		Points:        res.Points,
		Tier:          s.sync(ctx, input.UserID, res.Purchase.Username, rolesync.ForcedTier{Tier: pointsTier, Points: res.Points}, false),
	}, nil
}

func (s *service) SetTier(ctx context.Context, input *SetTierInput) (_ *BalanceChangeOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "SetTier", input.UserID)
	defer func() { done(err) }()

	if tier.Index(input.Tier) < 0 {
		return nil, fmt.Errorf("%w: %w: %q", models.ErrInvalidInput, tier.ErrUnknownTier, input.Tier)
	}

	thresholds, err := s.settings.Thresholds(ctx)
	if err != nil {
		return nil, err
	}
	points := thresholds.Of(input.Tier)

	if err := s.ledger.SetPoints(ctx, &ledgerRepo.SetPointsInput{
		UserID:   input.UserID,
		Username: input.Username,
		Points:   points,
	}); err != nil {
		return nil, err
	}
	if err := s.ledger.ClearTierHistory(ctx, &ledgerRepo.ClearTierHistoryInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "Tier set",
		slog.String("user_id", input.UserID),
		slog.String("tier", input.Tier.String()),
		slog.Int("points", points))

	return &BalanceChangeOutput{
		Points: points,
		Tier:   s.sync(ctx, input.UserID, input.Username, rolesync.ForcedTier{Tier: input.Tier, Points: points}, true),
	}, nil
}

func (s *service) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (_ *ClaimDailyOutput, err error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}
	ctx, done := s.begin(ctx, "ClaimDaily", input.UserID)
	defer func() { done(err) }()

	lock := s.dailyLock(input.UserID)
	lock.Lock()
	defer lock.Unlock()

	now := s.clock.Now()
	account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	if !account.LastDaily.IsZero() && now.Sub(account.LastDaily) < DailyCooldown {
		next := account.LastDaily.Add(DailyCooldown)
		return &ClaimDailyOutput{Points: account.Points, NextClaim: next},
			fmt.Errorf("%w: next claim at %s", models.ErrOnCooldown, next.Format(time.RFC3339))
	}

	bounds, err := s.settings.DailyRange(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.multiplier.Active(ctx, &multiplier.ActiveInput{
		UserID: input.UserID,
		Points: account.Points,
	})
	if err != nil {
		return nil, err
	}

	// events boost purchases only
	roll := s.roller.Between(bounds.Min, bounds.Max)
	amount := multiplier.Apply(roll, active.TierMultiplier)

	res, err := s.ledger.ClaimDaily(ctx, &ledgerRepo.ClaimDailyInput{
		UserID:   input.UserID,
		Username: input.Username,
		Amount:   amount,
		Now:      now,
		Cooldown: DailyCooldown,
	})
	if err != nil {
		return nil, err
	}
	if !res.Claimed {
		next := res.LastClaim.Add(DailyCooldown)
		return &ClaimDailyOutput{Points: account.Points, NextClaim: next},
			fmt.Errorf("%w: next claim at %s", models.ErrOnCooldown, next.Format(time.RFC3339))
	}

	s.metrics.PointsCredited(string(models.ReasonDaily), amount)
	s.logger.InfoContext(ctx, "Daily reward claimed",
		slog.String("user_id", input.UserID),
		slog.Int("roll", roll),
		slog.Float64("multiplier", active.TierMultiplier),
		slog.Int("amount", amount))

	s.sync(ctx, input.UserID, input.Username, rolesync.ByPoints{Points: res.Points}, false)

	return &ClaimDailyOutput{
		Amount:     amount,
		Roll:       roll,
		Multiplier: active.TierMultiplier,
		Points:     res.Points,
	}, nil
}

func (s *service) GiveToMany(ctx context.Context, input *ManyInput) (*ManyOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", models.ErrInvalidInput, input.Amount)
	}

	out := &ManyOutput{}
	for _, userID := range input.UserIDs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		_, err := s.Credit(ctx, &CreditInput{UserID: userID, Amount: input.Amount, Reason: input.Reason})
		if err != nil {
			s.logger.WarnContext(ctx, "Bulk credit failed",
				slog.String("user_id", userID),
				slog.Any("error", err))
			out.Failed = append(out.Failed, userID)
			continue
		}
		out.Succeeded = append(out.Succeeded, userID)
	}
	return out, nil
}

func (s *service) TakeFromMany(ctx context.Context, input *ManyInput) (*ManyOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive, got %d", models.ErrInvalidInput, input.Amount)
	}

	out := &ManyOutput{}
	for _, userID := range input.UserIDs {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		_, err := s.Debit(ctx, &DebitInput{UserID: userID, Amount: input.Amount, Reason: input.Reason})
		switch {
		case errors.Is(err, models.ErrInsufficientBalance):
			out.Skipped = append(out.Skipped, userID)
		case err != nil:
			s.logger.WarnContext(ctx, "Bulk debit failed",
				slog.String("user_id", userID),
				slog.Any("error", err))
			out.Failed = append(out.Failed, userID)
		default:
			out.Succeeded = append(out.Succeeded, userID)
		}
	}
	return out, nil
}

func (s *service) ResetDaily(ctx context.Context, input *ResetDailyInput) error {
	if input == nil {
		return fmt.Errorf("%w: input cannot be nil", models.ErrInvalidInput)
	}

	if err := s.ledger.ResetDaily(ctx, &ledgerRepo.ResetDailyInput{UserID: input.UserID}); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "Daily cooldown reset",
		slog.String("user_id", input.UserID),
		slog.String("admin_id", input.AdminID))
	return nil
}

func (s *service) AdminActions(ctx context.Context, input *AdminActionsInput) (*AdminActionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", models.ErrInvalidInput)
	}

	out, err := s.ledger.GetAdminActions(ctx, &ledgerRepo.GetAdminActionsInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &AdminActionsOutput{Actions: out.Actions}, nil
}

func (s *service) ResyncAll(ctx context.Context) (*ResyncAllOutput, error) {
	users, err := s.ledger.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := &ResyncAllOutput{}
	for _, userID := range users.UserIDs {
		if err := s.resync.Wait(ctx); err != nil {
			return out, err
		}

		account, err := s.ledger.GetAccount(ctx, &ledgerRepo.GetAccountInput{UserID: userID})
		if err != nil {
			out.Failed++
			continue
		}
		if _, err := s.roleSync.Sync(ctx, &rolesync.SyncInput{
			UserID:   userID,
			Username: account.Username,
			Basis:    rolesync.ByPoints{Points: account.Points},
		}); err != nil {
			s.logger.WarnContext(ctx, "Resync failed",
				slog.String("user_id", userID),
				slog.Any("error", err))
			out.Failed++
			continue
		}
		out.Synced++
	}

	s.logger.InfoContext(ctx, "Resync finished",
		slog.Int("synced", out.Synced),
		slog.Int("failed", out.Failed))
	return out, nil
}

// sync runs role sync after a balance change and drops cached boards.
// It returns the synced tier, or "" when the sync failed.
func (s *service) sync(ctx context.Context, userID, username string, basis rolesync.Basis, silent bool) tier.Tier {
	if s.boards != nil {
		s.boards.Invalidate()
	}

	out, err := s.roleSync.Sync(ctx, &rolesync.SyncInput{
		UserID:   userID,
		Username: username,
		Basis:    basis,
		Silent:   silent,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Role sync failed",
			slog.String("user_id", userID),
			slog.Any("error", err))
		return ""
	}
	return out.Tier
}

// begin starts a span and returns a func that ends it and records the outcome
func (s *service) begin(ctx context.Context, op, userID string) (context.Context, func(error)) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, "points."+op, trace.WithAttributes(attribute.String("user.id", userID)))
	return ctx, func(err error) {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		s.metrics.ObserveOperation(op, time.Since(start), models.KindOf(err))
	}
}

func (s *service) dailyLock(userID string) *sync.Mutex {
	lock, _ := s.dailyLocks.LoadOrStore(userID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}
