package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/common/cache"
	"github.com/KirkDiggler/rewardsbot/internal/common/clock/mocks"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	ledgerRepo "github.com/KirkDiggler/rewardsbot/internal/repositories/ledger"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LeaderboardServiceTestSuite struct {
	suite.Suite
	mr        *miniredis.Miniredis
	client    *redis.Client
	mockCtrl  *gomock.Controller
	mockClock *mocks.MockClock
	ledger    ledgerRepo.Repository
	service   *service
	ctx       context.Context
	testTime  time.Time
}

func (s *LeaderboardServiceTestSuite) SetupTest() {
	var err error
	s.mr, err = miniredis.Run()
	s.Require().NoError(err)
	s.client = redis.NewClient(&redis.Options{Addr: s.mr.Addr()})

	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()
	s.testTime = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: s.client})
	s.Require().NoError(err)
	s.ledger = ledger

	svc, err := New(&Config{
		LedgerRepo: ledger,
		Cache:      cache.New(&cache.Config{Clock: s.mockClock}),
		Clock:      s.mockClock,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *LeaderboardServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
	s.client.Close()
	s.mr.Close()
}

func TestLeaderboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaderboardServiceTestSuite))
}

func (s *LeaderboardServiceTestSuite) record(userID, txID string, price float64, age time.Duration) {
	_, err := s.ledger.RecordPurchase(s.ctx, &ledgerRepo.RecordPurchaseInput{
		UserID:   userID,
		Username: "name-" + userID,
		Purchase: &models.Purchase{
			Item:          "Item [Type]",
			Items:         []string{"Item [Type]"},
			Price:         price,
			Timestamp:     s.testTime.Add(-age).UnixMilli(),
			TransactionID: txID,
			PointsAwarded: int(price),
		},
	})
	s.Require().NoError(err)
}

func (s *LeaderboardServiceTestSuite) ids(out *TopOutput) []string {
	ids := make([]string, 0, len(out.Entries))
	for _, e := range out.Entries {
		ids = append(ids, e.UserID)
	}
	return ids
}

func (s *LeaderboardServiceTestSuite) TestAllTimeSkipsNonPositive() {
	s.record("a", "t1", 50, time.Hour)
	s.record("b", "t2", 80, time.Hour)
	s.Require().NoError(s.ledger.SetPoints(s.ctx, &ledgerRepo.SetPointsInput{UserID: "c", Points: -3}))

	out, err := s.service.Top(s.ctx, &TopInput{Period: models.PeriodAllTime})
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, s.ids(out))
	s.Equal(1, out.Entries[0].Rank)
	s.Equal("name-b", out.Entries[0].Username)
}

func (s *LeaderboardServiceTestSuite) TestWeeklyWindow() {
	s.record("a", "t1", 500, 10*24*time.Hour)
	s.record("a", "t2", 5.99, time.Hour)
	s.record("b", "t3", 20, 2*24*time.Hour)
	s.record("c", "t4", 0.5, time.Hour)

	out, err := s.service.Top(s.ctx, &TopInput{Period: models.PeriodWeekly})
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, s.ids(out))
	s.Equal(20.0, out.Entries[0].Score)
	s.Equal(5.0, out.Entries[1].Score)

	out, err = s.service.Top(s.ctx, &TopInput{Period: models.PeriodMonthly})
	s.Require().NoError(err)
	s.Equal([]string{"a", "b"}, s.ids(out))
	s.Equal(505.0, out.Entries[0].Score)
}

func (s *LeaderboardServiceTestSuite) TestCachedUntilInvalidated() {
	s.record("a", "t1", 10, time.Hour)

	out, err := s.service.Top(s.ctx, &TopInput{Period: models.PeriodAllTime, Limit: 5})
	s.Require().NoError(err)
	s.Len(out.Entries, 1)

	s.record("b", "t2", 20, time.Hour)

	out, err = s.service.Top(s.ctx, &TopInput{Period: models.PeriodAllTime, Limit: 5})
	s.Require().NoError(err)
	s.Len(out.Entries, 1)

	s.service.Invalidate()

	out, err = s.service.Top(s.ctx, &TopInput{Period: models.PeriodAllTime, Limit: 5})
	s.Require().NoError(err)
	s.Equal([]string{"b", "a"}, s.ids(out))
}

func (s *LeaderboardServiceTestSuite) TestTopSpenders() {
	s.record("a", "t1", 10.5, time.Hour)
	s.record("a", "t2", 10.5, time.Hour)
	s.record("b", "t3", 15, time.Hour)

	out, err := s.service.TopSpenders(s.ctx, &TopSpendersInput{Limit: 1})
	s.Require().NoError(err)
	s.Equal([]string{"a"}, s.ids(out))
	s.Equal(21.0, out.Entries[0].Score)
}

func (s *LeaderboardServiceTestSuite) TestUnknownPeriod() {
	_, err := s.service.Top(s.ctx, &TopInput{Period: "daily"})
	s.True(errors.Is(err, models.ErrInvalidInput))
}
