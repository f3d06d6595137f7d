package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/clock/mocks"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger/mocks"
	settingsMocks "github.com/KirkDiggler/rewardsbot/internal/services/settings/mocks"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatusServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockSettings *settingsMocks.MockService
	mockLedger   *ledgerMocks.MockRepository
	mockClock    *mocks.MockClock
	service      Service
	ctx          context.Context
	testTime     time.Time
	testUserID   string
}

func (s *StatusServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSettings = settingsMocks.NewMockService(s.mockCtrl)
	s.mockLedger = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.testUserID = "test-user-id"

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockSettings.EXPECT().Thresholds(gomock.Any()).Return(tier.Defaults(), nil).AnyTimes()

	svc, err := New(&Config{
		Settings:   s.mockSettings,
		LedgerRepo: s.mockLedger,
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *StatusServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatusServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatusServiceTestSuite))
}

func (s *StatusServiceTestSuite) expectRetention(r models.Retention) {
	s.mockSettings.EXPECT().Retention(gomock.Any()).Return(r, nil)
}

func (s *StatusServiceTestSuite) expectHistory(history map[tier.Tier]time.Time) {
	s.mockLedger.EXPECT().
		GetAccount(gomock.Any(), &ledgerRepo.GetAccountInput{UserID: s.testUserID}).
		Return(&models.Account{UserID: s.testUserID, TierHistory: history}, nil)
}

func (s *StatusServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Settings: s.mockSettings})
	s.Equal(ErrNilLedgerRepo, err)
}

func (s *StatusServiceTestSuite) TestRetentionDisabledSkipsHistory() {
	s.expectRetention(models.Retention{})

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 300})
	s.Require().NoError(err)
	s.Equal(tier.Gold, out.Tier)
	s.Equal(tier.Gold, out.PointsTier)
}

func (s *StatusServiceTestSuite) TestNoUserSkipsRetention() {
	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{Points: 30})
	s.Require().NoError(err)
	s.Equal(tier.Silver, out.Tier)
}

func (s *StatusServiceTestSuite) TestStampsMissingEntry() {
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{})
	s.mockLedger.EXPECT().StampTier(gomock.Any(), &ledgerRepo.StampTierInput{
		UserID: s.testUserID,
		Tier:   tier.Silver,
		At:     s.testTime,
	}).Return(nil)

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 30})
	s.Require().NoError(err)
	s.Equal(tier.Silver, out.Tier)
	s.Equal(tier.Silver, out.Retained)
}

func (s *StatusServiceTestSuite) TestDoesNotRefreshValidEntry() {
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{tier.Silver: s.testTime.Add(-10 * 24 * time.Hour)})
	// no StampTier expected

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 30})
	s.Require().NoError(err)
	s.Equal(tier.Silver, out.Tier)
}

func (s *StatusServiceTestSuite) TestRestampsExpiredEntry() {
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{tier.Silver: s.testTime.Add(-31 * 24 * time.Hour)})
	s.mockLedger.EXPECT().StampTier(gomock.Any(), gomock.Any()).Return(nil)

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 30})
	s.Require().NoError(err)
	s.Equal(tier.Silver, out.Tier)
}

func (s *StatusServiceTestSuite) TestRetainedTierBeatsPoints() {
	// scenario: gold stamped 10 days ago, 30 day retention, balance back at silver
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{
		tier.Gold:   s.testTime.Add(-10 * 24 * time.Hour),
		tier.Silver: s.testTime.Add(-20 * 24 * time.Hour),
	})

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 30})
	s.Require().NoError(err)
	s.Equal(tier.Gold, out.Tier)
	s.Equal(tier.Silver, out.PointsTier)
	s.Equal(tier.Gold, out.Retained)
}

func (s *StatusServiceTestSuite) TestExpiredRetentionFallsBack() {
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{
		tier.Gold:   s.testTime.Add(-31 * 24 * time.Hour),
		tier.Silver: s.testTime.Add(-time.Hour),
	})

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 30})
	s.Require().NoError(err)
	s.Equal(tier.Silver, out.Tier)
}

func (s *StatusServiceTestSuite) TestWindowBoundaryIsInclusive() {
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{
		tier.Gold: s.testTime.Add(-30 * 24 * time.Hour),
	})

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 0})
	s.Require().NoError(err)
	s.Equal(tier.Gold, out.Tier)
}

func (s *StatusServiceTestSuite) TestBronzeIsNeverStamped() {
	s.expectRetention(models.Retention{Global: 30})
	s.expectHistory(map[tier.Tier]time.Time{})

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: -40})
	s.Require().NoError(err)
	s.Equal(tier.Bronze, out.Tier)
}

func (s *StatusServiceTestSuite) TestPerTierWindows() {
	// gold has no window, so its old stamp does not count and is not refreshed
	s.expectRetention(models.Retention{PerTier: map[tier.Tier]int{tier.Platinum: 7}})
	s.expectHistory(map[tier.Tier]time.Time{
		tier.Platinum: s.testTime.Add(-6 * 24 * time.Hour),
		tier.Diamond:  s.testTime.Add(-time.Hour),
	})

	out, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 300})
	s.Require().NoError(err)
	s.Equal(tier.Platinum, out.Tier)
	s.Equal(tier.Gold, out.PointsTier)
}

func (s *StatusServiceTestSuite) TestStoreErrorsPropagate() {
	boom := models.Unavailable("get account", errors.New("down"))
	s.expectRetention(models.Retention{Global: 30})
	s.mockLedger.EXPECT().GetAccount(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := s.service.EffectiveTier(s.ctx, &EffectiveTierInput{UserID: s.testUserID, Points: 30})
	s.True(errors.Is(err, models.ErrExternalUnavailable))
}
