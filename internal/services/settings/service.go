package settings

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sort"
	"strings"

	"github.com/KirkDiggler/rewardsbot/internal/common/cache"
	"github.com/KirkDiggler/rewardsbot/internal/common/clock"
	"github.com/KirkDiggler/rewardsbot/internal/common/uuid"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	settingsRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/settings"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
)

// Config holds the dependencies of the settings service
type Config struct {
	SettingsRepo settingsRepo.Repository
	LedgerRepo   ledgerRepo.Repository

	// Cache holds decoded documents. Nil disables caching.
	Cache *cache.Cache

	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Logger        *slog.Logger

	// Defaults apply to documents no admin has written
	Defaults Defaults
}

type service struct {
	repo     settingsRepo.Repository
	ledger   ledgerRepo.Repository
	cache    *cache.Cache
	clock    clock.Clock
	uuid     uuid.UUID
	logger   *slog.Logger
	defaults Defaults
}

// New creates a settings service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SettingsRepo == nil {
		return nil, ErrNilSettingsRepo
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
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

	defaults := cfg.Defaults
	if defaults.Transfer == (models.TransferSettings{}) {
		defaults.Transfer = models.DefaultTransferSettings()
	}
	if defaults.Daily == (models.DailyRange{}) {
		defaults.Daily = models.DefaultDailyRange()
	}
	if defaults.CurrencyName == "" {
		defaults.CurrencyName = models.DefaultCurrencyName
	}

	return &service{
		repo:     cfg.SettingsRepo,
		ledger:   cfg.LedgerRepo,
		cache:    cfg.Cache,
		clock:    cfg.Clock,
		uuid:     cfg.UUIDGenerator,
		logger:   logger,
		defaults: defaults,
	}, nil
}

// load reads a document through the cache, starting from its default value
func load[V any](ctx context.Context, s *service, name string, def func() V) (V, error) {
	return cache.Fetch(ctx, s.cache, name, func(ctx context.Context) (V, error) {
		return read(ctx, s, name, def)
	})
}

// read bypasses the cache; writers use it to start from the stored value
func read[V any](ctx context.Context, s *service, name string, def func() V) (V, error) {
	v := def()
	if _, err := s.repo.GetDocument(ctx, &settingsRepo.GetDocumentInput{Name: name, Target: &v}); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}

// cloneMap copies a cached map so callers cannot modify the cache
func cloneMap[K comparable, V any](m map[K]V, err error) (map[K]V, error) {
	if err != nil {
		return nil, err
	}
	return maps.Clone(m), nil
}

// cloneEach copies every element of a cached slice of records
func cloneEach[T any](items []*T, err error) ([]*T, error) {
	if err != nil || items == nil {
		return nil, err
	}
	out := make([]*T, len(items))
	for i, item := range items {
		c := *item
		out[i] = &c
	}
	return out, nil
}

func (s *service) save(ctx context.Context, name string, value any) error {
	if err := s.repo.SaveDocument(ctx, &settingsRepo.SaveDocumentInput{Name: name, Value: value}); err != nil {
		return err
	}
	s.cache.Invalidate(name)
	return nil
}

func (s *service) Thresholds(ctx context.Context) (tier.Thresholds, error) {
	return load(ctx, s, settingsRepo.DocTiers, func() tier.Thresholds { return s.defaults.Thresholds })
}

func (s *service) Retention(ctx context.Context) (models.Retention, error) {
	r, err := load(ctx, s, settingsRepo.DocRetention, func() models.Retention { return models.Retention{} })
	if err != nil {
		return models.Retention{}, err
	}
	r.PerTier = maps.Clone(r.PerTier)
	return r, nil
}

func (s *service) MultiplierEvents(ctx context.Context) ([]*models.MultiplierEvent, error) {
	return cloneEach(load(ctx, s, settingsRepo.DocMultiplierEvent, func() []*models.MultiplierEvent { return nil }))
}

func (s *service) TierMultipliers(ctx context.Context) (map[tier.Tier]float64, error) {
	return cloneMap(load(ctx, s, settingsRepo.DocTierMultipliers, func() map[tier.Tier]float64 { return map[tier.Tier]float64{} }))
}

func (s *service) Roles(ctx context.Context) (map[tier.Tier]string, error) {
	return cloneMap(load(ctx, s, settingsRepo.DocRoles, func() map[tier.Tier]string { return map[tier.Tier]string{} }))
}

func (s *service) TierMessages(ctx context.Context) (map[tier.Tier]string, error) {
	return cloneMap(load(ctx, s, settingsRepo.DocTierMessages, func() map[tier.Tier]string { return map[tier.Tier]string{} }))
}

func (s *service) CurrencyName(ctx context.Context) (string, error) {
	return load(ctx, s, settingsRepo.DocCurrency, func() string { return s.defaults.CurrencyName })
}

func (s *service) TransferSettings(ctx context.Context) (models.TransferSettings, error) {
	return load(ctx, s, settingsRepo.DocTransfer, func() models.TransferSettings { return s.defaults.Transfer })
}

func (s *service) DailyRange(ctx context.Context) (models.DailyRange, error) {
	return load(ctx, s, settingsRepo.DocDaily, func() models.DailyRange { return s.defaults.Daily })
}

func (s *service) Discounts(ctx context.Context) (map[tier.Tier]int, error) {
	return cloneMap(load(ctx, s, settingsRepo.DocDiscounts, func() map[tier.Tier]int { return map[tier.Tier]int{} }))
}

func (s *service) Products(ctx context.Context) ([]*models.Product, error) {
	return cloneEach(load(ctx, s, settingsRepo.DocProducts, func() []*models.Product { return nil }))
}

func (s *service) Benefits(ctx context.Context) (map[tier.Tier][]string, error) {
	benefits, err := load(ctx, s, settingsRepo.DocBenefits, func() map[tier.Tier][]string { return map[tier.Tier][]string{} })
	if err != nil {
		return nil, err
	}
	out := make(map[tier.Tier][]string, len(benefits))
	for t, list := range benefits {
		out[t] = slices.Clone(list)
	}
	return out, nil
}

// SetThreshold validates the full ladder before saving
func (s *service) SetThreshold(ctx context.Context, input *SetThresholdInput) error {
	if input == nil {
		return models.Invalid("input cannot be nil")
	}
	if tier.Index(input.Tier) <= 0 {
		return models.Invalid("threshold cannot be set for %q", input.Tier)
	}
	if input.Points <= 0 {
		return models.Invalid("%s threshold must be positive", input.Tier)
	}

	current, err := read(ctx, s, settingsRepo.DocTiers, func() tier.Thresholds { return s.defaults.Thresholds })
	if err != nil {
		return err
	}

	// store the effective ladder so later default changes do not reorder it
	next := current.Normalized().With(input.Tier, input.Points)
	if err := next.Validate(); err != nil {
		return models.Invalid("%v", err)
	}

	if err := s.save(ctx, settingsRepo.DocTiers, next); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "tier threshold updated",
		slog.String("tier", input.Tier.String()),
		slog.Int("points", input.Points))
	return nil
}

func (s *service) SetGlobalRetention(ctx context.Context, input *SetGlobalRetentionInput) error {
	if input == nil || input.Days < 0 {
		return models.Invalid("retention days cannot be negative")
	}

	if err := s.save(ctx, settingsRepo.DocRetention, models.Retention{Global: input.Days}); err != nil {
		return err
	}

	if input.Days == 0 {
		if err := s.ledger.ClearTierHistory(ctx, &ledgerRepo.ClearTierHistoryInput{}); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "global retention updated", slog.Int("days", input.Days))
	return nil
}

func (s *service) SetTierRetention(ctx context.Context, input *SetTierRetentionInput) error {
	if input == nil || input.Days < 0 {
		return models.Invalid("retention days cannot be negative")
	}
	if tier.Index(input.Tier) <= 0 {
		return models.Invalid("retention cannot be set for %q", input.Tier)
	}

	current, err := read(ctx, s, settingsRepo.DocRetention, func() models.Retention { return models.Retention{} })
	if err != nil {
		return err
	}

	// per-tier windows replace the global one
	next := models.Retention{PerTier: make(map[tier.Tier]int)}
	for t, d := range current.PerTier {
		next.PerTier[t] = d
	}
	if input.Days == 0 {
		delete(next.PerTier, input.Tier)
	} else {
		next.PerTier[input.Tier] = input.Days
	}

	if err := s.save(ctx, settingsRepo.DocRetention, next); err != nil {
		return err
	}

	if input.Days == 0 {
		if err := s.ledger.ClearTierHistory(ctx, &ledgerRepo.ClearTierHistoryInput{Tier: input.Tier}); err != nil {
			return err
		}
	}

	s.logger.InfoContext(ctx, "tier retention updated",
		slog.String("tier", input.Tier.String()),
		slog.Int("days", input.Days))
	return nil
}

func (s *service) AddMultiplierEvent(ctx context.Context, input *AddMultiplierEventInput) (*models.MultiplierEvent, error) {
	if input == nil {
		return nil, models.Invalid("input cannot be nil")
	}
	if input.Multiplier <= 0 {
		return nil, models.Invalid("multiplier must be positive")
	}
	if !input.End.After(input.Start) {
		return nil, models.Invalid("event must end after it starts")
	}

	events, err := read(ctx, s, settingsRepo.DocMultiplierEvent, func() []*models.MultiplierEvent { return nil })
	if err != nil {
		return nil, err
	}

	event := &models.MultiplierEvent{
		ID:         s.uuid.NewUUID(),
		Start:      input.Start,
		End:        input.End,
		Multiplier: input.Multiplier,
		CreatedBy:  input.CreatedBy,
		CreatedAt:  s.clock.Now(),
	}
	events = append(events, event)

	if err := s.save(ctx, settingsRepo.DocMultiplierEvent, events); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "multiplier event added",
		slog.String("id", event.ID),
		slog.Float64("multiplier", event.Multiplier),
		slog.Time("start", event.Start),
		slog.Time("end", event.End))
	return event, nil
}

func (s *service) RemoveMultiplierEvent(ctx context.Context, input *RemoveMultiplierEventInput) error {
	if input == nil || input.ID == "" {
		return models.Invalid("event id cannot be empty")
	}

	events, err := read(ctx, s, settingsRepo.DocMultiplierEvent, func() []*models.MultiplierEvent { return nil })
	if err != nil {
		return err
	}

	kept := make([]*models.MultiplierEvent, 0, len(events))
	for _, e := range events {
		if e.ID != input.ID {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(events) {
		return models.ErrNotFound
	}

	return s.save(ctx, settingsRepo.DocMultiplierEvent, kept)
}

func (s *service) ListMultiplierEvents(ctx context.Context) ([]*models.MultiplierEvent, error) {
	events, err := s.MultiplierEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	out := make([]*models.MultiplierEvent, 0, len(events))
	for _, e := range events {
		if !e.End.Before(now) {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (s *service) SetTierMultiplier(ctx context.Context, input *SetTierMultiplierInput) error {
	if input == nil || tier.Index(input.Tier) < 0 {
		return models.Invalid("unknown tier")
	}
	if input.Multiplier <= 0 {
		return models.Invalid("multiplier must be positive")
	}

	return updateMap(ctx, s, settingsRepo.DocTierMultipliers, func(m map[tier.Tier]float64) {
		m[input.Tier] = input.Multiplier
	})
}

func (s *service) SetRole(ctx context.Context, input *SetRoleInput) error {
	if input == nil || tier.Index(input.Tier) < 0 {
		return models.Invalid("unknown tier")
	}

	return updateMap(ctx, s, settingsRepo.DocRoles, func(m map[tier.Tier]string) {
		if input.RoleID == "" {
			delete(m, input.Tier)
			return
		}
		m[input.Tier] = input.RoleID
	})
}

func (s *service) SetTierMessage(ctx context.Context, input *SetTierMessageInput) error {
	if input == nil || tier.Index(input.Tier) < 0 {
		return models.Invalid("unknown tier")
	}
	if strings.TrimSpace(input.Message) == "" {
		return models.Invalid("message cannot be empty")
	}

	return updateMap(ctx, s, settingsRepo.DocTierMessages, func(m map[tier.Tier]string) {
		m[input.Tier] = input.Message
	})
}

func (s *service) RemoveTierMessage(ctx context.Context, input *RemoveTierMessageInput) error {
	if input == nil || tier.Index(input.Tier) < 0 {
		return models.Invalid("unknown tier")
	}

	return updateMap(ctx, s, settingsRepo.DocTierMessages, func(m map[tier.Tier]string) {
		delete(m, input.Tier)
	})
}

func (s *service) SetCurrencyName(ctx context.Context, input *SetCurrencyNameInput) error {
	if input == nil || strings.TrimSpace(input.Name) == "" {
		return models.Invalid("currency name cannot be empty")
	}

	return s.save(ctx, settingsRepo.DocCurrency, strings.TrimSpace(input.Name))
}

func (s *service) SetTransferSettings(ctx context.Context, input *SetTransferSettingsInput) error {
	if input == nil {
		return models.Invalid("input cannot be nil")
	}
	ts := input.Settings
	if ts.Min < 1 {
		return models.Invalid("minimum transfer must be at least 1")
	}
	if ts.Max < ts.Min {
		return models.Invalid("maximum transfer %d is below minimum %d", ts.Max, ts.Min)
	}
	if ts.Tax < 0 || ts.Tax > 100 {
		return models.Invalid("tax must be between 0 and 100")
	}

	return s.save(ctx, settingsRepo.DocTransfer, ts)
}

func (s *service) SetDailyRange(ctx context.Context, input *SetDailyRangeInput) error {
	if input == nil {
		return models.Invalid("input cannot be nil")
	}
	r := input.Range
	if r.Min < 0 {
		return models.Invalid("daily minimum cannot be negative")
	}
	if r.Max < r.Min {
		return models.Invalid("daily maximum %d is below minimum %d", r.Max, r.Min)
	}

	return s.save(ctx, settingsRepo.DocDaily, r)
}

func (s *service) SetDiscount(ctx context.Context, input *SetDiscountInput) error {
	if input == nil || tier.Index(input.Tier) < 0 {
		return models.Invalid("unknown tier")
	}
	if input.Percent < 0 || input.Percent > 100 {
		return models.Invalid("discount must be between 0 and 100")
	}

	return updateMap(ctx, s, settingsRepo.DocDiscounts, func(m map[tier.Tier]int) {
		if input.Percent == 0 {
			delete(m, input.Tier)
			return
		}
		m[input.Tier] = input.Percent
	})
}

func (s *service) SetBenefits(ctx context.Context, input *SetBenefitsInput) error {
	if input == nil || tier.Index(input.Tier) < 0 {
		return models.Invalid("unknown tier")
	}

	return updateMap(ctx, s, settingsRepo.DocBenefits, func(m map[tier.Tier][]string) {
		if len(input.Benefits) == 0 {
			delete(m, input.Tier)
			return
		}
		m[input.Tier] = append([]string(nil), input.Benefits...)
	})
}

func (s *service) SaveProduct(ctx context.Context, input *SaveProductInput) error {
	if input == nil || input.Product == nil || input.Product.RoleID == "" {
		return models.Invalid("product role cannot be empty")
	}
	if input.Product.Price < 0 || input.Product.Hours < 0 {
		return models.Invalid("product price and hours cannot be negative")
	}

	products, err := read(ctx, s, settingsRepo.DocProducts, func() []*models.Product { return nil })
	if err != nil {
		return err
	}

	p := *input.Product
	replaced := false
	for i, existing := range products {
		if existing.RoleID == p.RoleID {
			products[i] = &p
			replaced = true
		}
	}
	if !replaced {
		products = append(products, &p)
	}

	return s.save(ctx, settingsRepo.DocProducts, products)
}

func (s *service) RemoveProduct(ctx context.Context, input *RemoveProductInput) error {
	if input == nil || input.RoleID == "" {
		return models.Invalid("product role cannot be empty")
	}

	products, err := read(ctx, s, settingsRepo.DocProducts, func() []*models.Product { return nil })
	if err != nil {
		return err
	}

	kept := make([]*models.Product, 0, len(products))
	for _, p := range products {
		if p.RoleID != input.RoleID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return models.ErrNotFound
	}

	return s.save(ctx, settingsRepo.DocProducts, kept)
}

func updateMap[V any](ctx context.Context, s *service, name string, mutate func(map[tier.Tier]V)) error {
	m, err := read(ctx, s, name, func() map[tier.Tier]V { return map[tier.Tier]V{} })
	if err != nil {
		return err
	}
	mutate(m)
	return s.save(ctx, name, m)
}
