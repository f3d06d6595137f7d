package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/events"
	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/notify/mocks"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotifyServiceTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockChannel *mocks.MockChannel
	bus         *events.Bus
	service     *Service
	ctx         context.Context
	cancel      context.CancelFunc
}

func (s *NotifyServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockChannel = mocks.NewMockChannel(s.mockCtrl)
	s.bus = events.New(nil)
	s.ctx, s.cancel = context.WithCancel(context.Background())

	svc, err := New(&Config{
		Subscriber: s.bus,
		Channel:    s.mockChannel,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *NotifyServiceTestSuite) TearDownTest() {
	s.cancel()
	s.Require().NoError(s.bus.Close())
	s.mockCtrl.Finish()
}

func TestNotifyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NotifyServiceTestSuite))
}

func (s *NotifyServiceTestSuite) newMessage(v any) *message.Message {
	data, err := json.Marshal(v)
	s.Require().NoError(err)
	return message.NewMessage(watermill.NewUUID(), data)
}

func (s *NotifyServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{Subscriber: s.bus})
	s.Equal(ErrNilChannel, err)
}

func (s *NotifyServiceTestSuite) TestTierMessageDeliveredThroughBus() {
	done := make(chan struct{})
	s.mockChannel.EXPECT().SendDirectMessage(gomock.Any(), "user-1", "Welcome to Gold").
		DoAndReturn(func(context.Context, string, string) error {
			close(done)
			return nil
		})

	s.Require().NoError(s.service.Start(s.ctx))
	s.Require().NoError(s.bus.Publish(s.ctx, events.TopicTierAchieved, &models.TierAchieved{
		UserID:  "user-1",
		Tier:    "Gold",
		Message: "Welcome to Gold",
	}))

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("tier message not delivered")
	}
}

func (s *NotifyServiceTestSuite) TestTierWithoutTemplateSendsNothing() {
	err := s.service.handleTierAchieved(s.ctx, s.newMessage(&models.TierAchieved{UserID: "user-1", Tier: "Silver"}))
	s.NoError(err)
}

func (s *NotifyServiceTestSuite) TestTierMessageFailureReported() {
	s.mockChannel.EXPECT().SendDirectMessage(gomock.Any(), "user-1", gomock.Any()).Return(errors.New("dms closed"))

	err := s.service.handleTierAchieved(s.ctx, s.newMessage(&models.TierAchieved{UserID: "user-1", Message: "hi"}))
	s.Error(err)
}

func (s *NotifyServiceTestSuite) TestRoleExpiredGoesToLogChannel() {
	s.mockChannel.EXPECT().SendLogMessage(gomock.Any(), "🕒 Temporary role expired: <@user-1> no longer has **VIP**.").Return(nil)

	err := s.service.handleRoleExpired(s.ctx, s.newMessage(&models.RoleExpired{UserID: "user-1", RoleID: "r1", RoleName: "VIP"}))
	s.NoError(err)
}

func (s *NotifyServiceTestSuite) TestRoleExpiredFallsBackToDM() {
	s.mockChannel.EXPECT().SendLogMessage(gomock.Any(), gomock.Any()).Return(models.ErrNotFound)
	s.mockChannel.EXPECT().SendDirectMessage(gomock.Any(), "user-1", "🕒 Temporary role expired: <@user-1> no longer has **r1**.").Return(nil)

	err := s.service.handleRoleExpired(s.ctx, s.newMessage(&models.RoleExpired{UserID: "user-1", RoleID: "r1"}))
	s.NoError(err)
}

func (s *NotifyServiceTestSuite) TestPurchaseLogSkippedWithoutChannel() {
	s.mockChannel.EXPECT().SendLogMessage(gomock.Any(), gomock.Any()).Return(models.ErrNotFound)

	err := s.service.handlePurchaseRecorded(s.ctx, s.newMessage(&models.PurchaseRecorded{
		UserID:        "user-1",
		Item:          "Monthly [Subscription]",
		Price:         30,
		PointsAwarded: 30,
		Multiplier:    1,
		Points:        30,
	}))
	s.NoError(err)
}

func (s *NotifyServiceTestSuite) TestMalformedPayload() {
	err := s.service.handleRoleExpired(s.ctx, message.NewMessage(watermill.NewUUID(), []byte("{")))
	s.Error(err)
}
