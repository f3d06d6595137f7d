package settings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/cache"
	"github.com/KirkDiggler/rewardsbot/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/rewardsbot/internal/common/uuid/mocks"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	settingsRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/settings"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SettingsServiceTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	ledger    ledgerRepo.Repository
	service   Service
	ctx       context.Context
	testTime  time.Time
}

func (s *SettingsServiceTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	repo, err := settingsRepo.NewRedis(&settingsRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ledger = ledger

	svc, err := New(&Config{
		SettingsRepo:  repo,
		LedgerRepo:    ledger,
		Cache:         cache.New(&cache.Config{Clock: s.mockClock}),
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.service = svc
	s.ctx = context.Background()
}

func (s *SettingsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}

func (s *SettingsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{})
	s.Equal(ErrNilSettingsRepo, err)
}

func (s *SettingsServiceTestSuite) TestDefaults() {
	th, err := s.service.Thresholds(s.ctx)
	s.Require().NoError(err)
	s.Equal(tier.DefaultGold, th.Of(tier.Gold))

	name, err := s.service.CurrencyName(s.ctx)
	s.Require().NoError(err)
	s.Equal("points", name)

	ts, err := s.service.TransferSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.TransferSettings{Min: 1, Max: 1000000, Tax: 0}, ts)

	daily, err := s.service.DailyRange(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.DailyRange{Min: 10, Max: 50}, daily)

	ret, err := s.service.Retention(s.ctx)
	s.Require().NoError(err)
	s.False(ret.Enabled())
}

func (s *SettingsServiceTestSuite) TestSetThreshold() {
	// warm the cache so the write has to invalidate it
	_, err := s.service.Thresholds(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.service.SetThreshold(s.ctx, &SetThresholdInput{Tier: tier.Gold, Points: 300}))

	th, err := s.service.Thresholds(s.ctx)
	s.Require().NoError(err)
	s.Equal(300, th.Of(tier.Gold))
	s.Equal(tier.DefaultSilver, th.Of(tier.Silver))
}

func (s *SettingsServiceTestSuite) TestSetThresholdRejectsOrderViolation() {
	err := s.service.SetThreshold(s.ctx, &SetThresholdInput{Tier: tier.Gold, Points: 20})
	s.True(errors.Is(err, models.ErrConfigurationInvalid))

	err = s.service.SetThreshold(s.ctx, &SetThresholdInput{Tier: tier.Platinum, Points: 1000})
	s.True(errors.Is(err, models.ErrConfigurationInvalid))

	th, err := s.service.Thresholds(s.ctx)
	s.Require().NoError(err)
	s.Equal(tier.DefaultGold, th.Of(tier.Gold))
	s.Equal(tier.DefaultPlatinum, th.Of(tier.Platinum))

	err = s.service.SetThreshold(s.ctx, &SetThresholdInput{Tier: tier.Bronze, Points: 5})
	s.True(errors.Is(err, models.ErrConfigurationInvalid))
}

func (s *SettingsServiceTestSuite) TestRetentionIsMutuallyExclusive() {
	s.Require().NoError(s.service.SetTierRetention(s.ctx, &SetTierRetentionInput{Tier: tier.Gold, Days: 14}))
	ret, err := s.service.Retention(s.ctx)
	s.Require().NoError(err)
	s.Equal(14, ret.DaysFor(tier.Gold))
	s.Equal(0, ret.DaysFor(tier.Silver))

	s.Require().NoError(s.service.SetGlobalRetention(s.ctx, &SetGlobalRetentionInput{Days: 30}))
	ret, err = s.service.Retention(s.ctx)
	s.Require().NoError(err)
	s.Equal(30, ret.Global)
	s.Empty(ret.PerTier)

	s.Require().NoError(s.service.SetTierRetention(s.ctx, &SetTierRetentionInput{Tier: tier.Silver, Days: 7}))
	ret, err = s.service.Retention(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, ret.Global)
	s.Equal(map[tier.Tier]int{tier.Silver: 7}, ret.PerTier)
}

func (s *SettingsServiceTestSuite) TestDisablingGlobalRetentionClearsHistory() {
	s.Require().NoError(s.ledger.SetCurrentTier(s.ctx, &ledgerRepo.SetCurrentTierInput{UserID: "u1", Tier: tier.Gold}))
	s.Require().NoError(s.ledger.StampTier(s.ctx, &ledgerRepo.StampTierInput{UserID: "u1", Tier: tier.Gold, At: s.testTime}))

	s.Require().NoError(s.service.SetGlobalRetention(s.ctx, &SetGlobalRetentionInput{Days: 0}))

	account, err := s.ledger.GetAccount(s.ctx, &ledgerRepo.GetAccountInput{UserID: "u1"})
	s.Require().NoError(err)
	s.Empty(account.TierHistory)
}

func (s *SettingsServiceTestSuite) TestDisablingTierRetentionRemovesThatTier() {
	s.Require().NoError(s.ledger.SetCurrentTier(s.ctx, &ledgerRepo.SetCurrentTierInput{UserID: "u1", Tier: tier.Gold}))
	s.Require().NoError(s.ledger.StampTier(s.ctx, &ledgerRepo.StampTierInput{UserID: "u1", Tier: tier.Gold, At: s.testTime}))
	s.Require().NoError(s.ledger.StampTier(s.ctx, &ledgerRepo.StampTierInput{UserID: "u1", Tier: tier.Silver, At: s.testTime}))

	s.Require().NoError(s.service.SetTierRetention(s.ctx, &SetTierRetentionInput{Tier: tier.Gold, Days: 0}))

	account, err := s.ledger.GetAccount(s.ctx, &ledgerRepo.GetAccountInput{UserID: "u1"})
	s.Require().NoError(err)
	s.NotContains(account.TierHistory, tier.Gold)
	s.Contains(account.TierHistory, tier.Silver)
}

func (s *SettingsServiceTestSuite) TestMultiplierEvents() {
	s.mockUUID.EXPECT().NewUUID().Return("ev-1")
	s.mockUUID.EXPECT().NewUUID().Return("ev-2")

	_, err := s.service.AddMultiplierEvent(s.ctx, &AddMultiplierEventInput{
		Start: s.testTime.Add(time.Hour), End: s.testTime.Add(2 * time.Hour), Multiplier: 2,
	})
	s.Require().NoError(err)
	_, err = s.service.AddMultiplierEvent(s.ctx, &AddMultiplierEventInput{
		Start: s.testTime.Add(-3 * time.Hour), End: s.testTime.Add(-time.Hour), Multiplier: 3,
	})
	s.Require().NoError(err)

	all, err := s.service.MultiplierEvents(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 2)

	listed, err := s.service.ListMultiplierEvents(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(listed, 1)
	s.Equal("ev-1", listed[0].ID)

	s.Require().NoError(s.service.RemoveMultiplierEvent(s.ctx, &RemoveMultiplierEventInput{ID: "ev-1"}))
	s.True(errors.Is(s.service.RemoveMultiplierEvent(s.ctx, &RemoveMultiplierEventInput{ID: "ev-1"}), models.ErrNotFound))
}

func (s *SettingsServiceTestSuite) TestAddMultiplierEventValidates() {
	_, err := s.service.AddMultiplierEvent(s.ctx, &AddMultiplierEventInput{
		Start: s.testTime, End: s.testTime, Multiplier: 2,
	})
	s.True(errors.Is(err, models.ErrConfigurationInvalid))

	_, err = s.service.AddMultiplierEvent(s.ctx, &AddMultiplierEventInput{
		Start: s.testTime, End: s.testTime.Add(time.Hour), Multiplier: 0,
	})
	s.True(errors.Is(err, models.ErrConfigurationInvalid))
}

func (s *SettingsServiceTestSuite) TestMapDocuments() {
	s.Require().NoError(s.service.SetRole(s.ctx, &SetRoleInput{Tier: tier.Silver, RoleID: "role-silver"}))
	s.Require().NoError(s.service.SetTierMultiplier(s.ctx, &SetTierMultiplierInput{Tier: tier.Gold, Multiplier: 1.5}))
	s.Require().NoError(s.service.SetTierMessage(s.ctx, &SetTierMessageInput{Tier: tier.Gold, Message: "Welcome to {Tier}"}))
	s.Require().NoError(s.service.SetDiscount(s.ctx, &SetDiscountInput{Tier: tier.Gold, Percent: 10}))
	s.Require().NoError(s.service.SetBenefits(s.ctx, &SetBenefitsInput{Tier: tier.Gold, Benefits: []string{"10% off"}}))

	roles, err := s.service.Roles(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[tier.Tier]string{tier.Silver: "role-silver"}, roles)

	mults, err := s.service.TierMultipliers(s.ctx)
	s.Require().NoError(err)
	s.Equal(1.5, mults[tier.Gold])

	msgs, err := s.service.TierMessages(s.ctx)
	s.Require().NoError(err)
	s.Equal("Welcome to {Tier}", msgs[tier.Gold])

	s.Require().NoError(s.service.RemoveTierMessage(s.ctx, &RemoveTierMessageInput{Tier: tier.Gold}))
	msgs, err = s.service.TierMessages(s.ctx)
	s.Require().NoError(err)
	s.Empty(msgs)

	discounts, err := s.service.Discounts(s.ctx)
	s.Require().NoError(err)
	s.Equal(10, discounts[tier.Gold])

	benefits, err := s.service.Benefits(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"10% off"}, benefits[tier.Gold])

	s.Require().NoError(s.service.SetRole(s.ctx, &SetRoleInput{Tier: tier.Silver}))
	roles, err = s.service.Roles(s.ctx)
	s.Require().NoError(err)
	s.Empty(roles)
}

func (s *SettingsServiceTestSuite) TestScalarDocuments() {
	s.Require().NoError(s.service.SetCurrencyName(s.ctx, &SetCurrencyNameInput{Name: " gems "}))
	name, err := s.service.CurrencyName(s.ctx)
	s.Require().NoError(err)
	s.Equal("gems", name)

	s.True(errors.Is(s.service.SetCurrencyName(s.ctx, &SetCurrencyNameInput{Name: "  "}), models.ErrConfigurationInvalid))

	s.True(errors.Is(s.service.SetDailyRange(s.ctx, &SetDailyRangeInput{Range: models.DailyRange{Min: 50, Max: 10}}), models.ErrConfigurationInvalid))
	s.Require().NoError(s.service.SetDailyRange(s.ctx, &SetDailyRangeInput{Range: models.DailyRange{Min: 5, Max: 5}}))

	s.True(errors.Is(s.service.SetTransferSettings(s.ctx, &SetTransferSettingsInput{Settings: models.TransferSettings{Min: 10, Max: 5}}), models.ErrConfigurationInvalid))
	s.True(errors.Is(s.service.SetTransferSettings(s.ctx, &SetTransferSettingsInput{Settings: models.TransferSettings{Min: 1, Max: 5, Tax: 101}}), models.ErrConfigurationInvalid))
	s.Require().NoError(s.service.SetTransferSettings(s.ctx, &SetTransferSettingsInput{Settings: models.TransferSettings{Min: 5, Max: 500, Tax: 10}}))

	ts, err := s.service.TransferSettings(s.ctx)
	s.Require().NoError(err)
	s.Equal(models.TransferSettings{Min: 5, Max: 500, Tax: 10}, ts)
}

func (s *SettingsServiceTestSuite) TestProducts() {
	s.Require().NoError(s.service.SaveProduct(s.ctx, &SaveProductInput{Product: &models.Product{RoleID: "r1", RoleName: "VIP", Price: 100}}))
	s.Require().NoError(s.service.SaveProduct(s.ctx, &SaveProductInput{Product: &models.Product{RoleID: "r1", RoleName: "VIP", Price: 150, Hours: 24}}))
	s.Require().NoError(s.service.SaveProduct(s.ctx, &SaveProductInput{Product: &models.Product{RoleID: "r2", RoleName: "Color", Price: 10}}))

	products, err := s.service.Products(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(products, 2)
	s.Equal(150, products[0].Price)
	s.Equal(24, products[0].Hours)

	s.Require().NoError(s.service.RemoveProduct(s.ctx, &RemoveProductInput{RoleID: "r2"}))
	s.True(errors.Is(s.service.RemoveProduct(s.ctx, &RemoveProductInput{RoleID: "r2"}), models.ErrNotFound))
}

func (s *SettingsServiceTestSuite) TestReadsReturnCopies() {
	s.Require().NoError(s.service.SetRole(s.ctx, &SetRoleInput{Tier: tier.Gold, RoleID: "role-gold"}))
	s.Require().NoError(s.service.SetBenefits(s.ctx, &SetBenefitsInput{Tier: tier.Gold, Benefits: []string{"10% off"}}))
	s.Require().NoError(s.service.SaveProduct(s.ctx, &SaveProductInput{Product: &models.Product{RoleID: "r1", Price: 100}}))
	s.Require().NoError(s.service.SetTierRetention(s.ctx, &SetTierRetentionInput{Tier: tier.Gold, Days: 7}))

	roles, err := s.service.Roles(s.ctx)
	s.Require().NoError(err)
	roles[tier.Gold] = "changed"
	delete(roles, tier.Silver)

	benefits, err := s.service.Benefits(s.ctx)
	s.Require().NoError(err)
	benefits[tier.Gold][0] = "changed"

	products, err := s.service.Products(s.ctx)
	s.Require().NoError(err)
	products[0].Price = 1

	retention, err := s.service.Retention(s.ctx)
	s.Require().NoError(err)
	retention.PerTier[tier.Gold] = 99

	roles, err = s.service.Roles(s.ctx)
	s.Require().NoError(err)
	s.Equal("role-gold", roles[tier.Gold])

	benefits, err = s.service.Benefits(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"10% off"}, benefits[tier.Gold])

	products, err = s.service.Products(s.ctx)
	s.Require().NoError(err)
	s.Equal(100, products[0].Price)

	retention, err = s.service.Retention(s.ctx)
	s.Require().NoError(err)
	s.Equal(7, retention.PerTier[tier.Gold])
}
