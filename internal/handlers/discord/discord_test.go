package discord

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/leaderboard"
	leaderboardMocks "github.com/KirkDiggler/rewardsbot/internal/services/leaderboard/mocks"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	pointsMocks "github.com/KirkDiggler/rewardsbot/internal/services/points/mocks"
	"github.com/KirkDiggler/rewardsbot/internal/services/scheduler"
	schedulerMocks "github.com/KirkDiggler/rewardsbot/internal/services/scheduler/mocks"
	shopMocks "github.com/KirkDiggler/rewardsbot/internal/services/shop/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DiscordTestSuite struct {
	suite.Suite
}

func TestDiscordTestSuite(t *testing.T) {
	suite.Run(t, new(DiscordTestSuite))
}

func (s *DiscordTestSuite) newBot(ctrl *gomock.Controller, sched scheduler.Service) *Bot {
	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)

	bot, err := New(&Config{
		Session:            session,
		GuildID:            "guild-1",
		PointsService:      pointsMocks.NewMockService(ctrl),
		LeaderboardService: leaderboardMocks.NewMockService(ctrl),
		Scheduler:          sched,
		ShopService:        shopMocks.NewMockService(ctrl),
	})
	s.Require().NoError(err)
	return bot
}

func (s *DiscordTestSuite) TestPrepareRestoresBeforeCommandsAreLive() {
	ctrl := gomock.NewController(s.T())
	sched := schedulerMocks.NewMockService(ctrl)
	bot := s.newBot(ctrl, sched)

	sched.EXPECT().Restore(gomock.Any()).DoAndReturn(func(context.Context) (*scheduler.RestoreOutput, error) {
		s.Empty(bot.commands)
		return &scheduler.RestoreOutput{Armed: 2, Expired: 1}, nil
	})

	s.Require().NoError(bot.prepare(context.Background()))
	for _, name := range []string{"points", "daily", "leaderboard", "shop", "buy"} {
		s.Contains(bot.commands, name)
	}

	// a reconnect must not restore again
	bot.handleReady(nil, &discordgo.Ready{User: &discordgo.User{Username: "rewards"}})
}

func (s *DiscordTestSuite) TestPrepareFailsWhenRestoreFails() {
	ctrl := gomock.NewController(s.T())
	sched := schedulerMocks.NewMockService(ctrl)
	bot := s.newBot(ctrl, sched)

	sched.EXPECT().Restore(gomock.Any()).Return(nil, models.Unavailable("list jobs", errors.New("down")))

	err := bot.prepare(context.Background())
	s.True(errors.Is(err, models.ErrExternalUnavailable))
	s.Empty(bot.commands)
}

func (s *DiscordTestSuite) TestParsePurchaseLine() {
	tests := []struct {
		name    string
		content string
		want    *PurchaseLine
	}{
		{
			name:    "dollar price with payment intent",
			content: "123456789 Monthly Membership [Subscription] $15.99 pi_3AbC9z",
			want: &PurchaseLine{
				UserID:        "123456789",
				Item:          "Monthly Membership",
				Type:          "Subscription",
				Price:         15.99,
				TransactionID: "pi_3AbC9z",
			},
		},
		{
			name:    "usd with space and upper case id",
			content: "987 Sticker [Addon] USD 4.50 ABC123",
			want: &PurchaseLine{
				UserID:        "987",
				Item:          "Sticker",
				Type:          "Addon",
				Price:         4.5,
				TransactionID: "ABC123",
			},
		},
		{
			name:    "usd without space and whole price",
			content: "New order: 42 Gift Card [Gift] USD30 TX9",
			want: &PurchaseLine{
				UserID:        "42",
				Item:          "Gift Card",
				Type:          "Gift",
				Price:         30,
				TransactionID: "TX9",
			},
		},
		{
			name:    "not a purchase",
			content: "hello everyone",
		},
		{
			name:    "lower case transaction id",
			content: "42 Gift Card [Gift] $30 abc",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			got, ok := ParsePurchaseLine(tt.content)
			if tt.want == nil {
				s.False(ok)
				s.Nil(got)
				return
			}
			s.Require().True(ok)
			s.Equal(tt.want, got)
		})
	}
}

func (s *DiscordTestSuite) TestLabel() {
	line := &PurchaseLine{Item: "Monthly", Type: "Subscription"}
	s.Equal("Monthly [Subscription]", line.Label())
}

func (s *DiscordTestSuite) TestMemberHasRole() {
	member := &discordgo.Member{Roles: []string{"silver", "gold"}}
	s.True(memberHasRole(member, "gold"))
	s.False(memberHasRole(member, "diamond"))
	s.False(memberHasRole(nil, "gold"))
}

func (s *DiscordTestSuite) TestIsUnknownMember() {
	s.True(isUnknownMember(&discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{Code: discordgo.ErrCodeUnknownMember},
	}))
	s.True(isUnknownMember(&discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusNotFound, Status: "404 Not Found"},
	}))
	s.False(isUnknownMember(errors.New("connection reset")))
}

func (s *DiscordTestSuite) TestClassify() {
	forbidden := &discordgo.RESTError{
		Response: &http.Response{StatusCode: http.StatusForbidden, Status: "403 Forbidden"},
	}
	err := classify("add role", forbidden)
	s.True(errors.Is(err, models.ErrInvalidTarget))

	err = classify("add role", errors.New("connection reset"))
	s.True(errors.Is(err, models.ErrExternalUnavailable))
}

func (s *DiscordTestSuite) TestNewGuildValidatesConfig() {
	_, err := NewGuild(nil)
	s.Error(err)

	_, err = NewGuild(&GuildConfig{Session: &discordgo.Session{}})
	s.Error(err)

	g, err := NewGuild(&GuildConfig{Session: &discordgo.Session{}, GuildID: "guild"})
	s.Require().NoError(err)

	err = g.SendLogMessage(context.Background(), "hello")
	s.True(errors.Is(err, models.ErrNotFound))
}

func (s *DiscordTestSuite) TestRenderPurchase() {
	line := &PurchaseLine{UserID: "42", Item: "Sticker", Type: "Addon", Price: 4.5, TransactionID: "TX9"}

	embed := renderPurchase(line, &points.ApplyPurchaseOutput{PointsAwarded: 9, Multiplier: 2, Points: 109})
	s.Equal("✅ Purchase Recorded", embed.Title)
	s.Len(embed.Fields, 6)
	s.Equal("9", embed.Fields[2].Value)

	embed = renderPurchase(line, &points.ApplyPurchaseOutput{
		Replayed: true,
		Purchase: &models.Purchase{Price: 15.99},
	})
	s.Equal("🔄 Purchase Updated", embed.Title)
	s.Equal("$15.99", embed.Fields[1].Value)
}

func (s *DiscordTestSuite) TestRenderLeaderboard() {
	embed := renderLeaderboard(&leaderboard.TopOutput{Period: models.PeriodWeekly}, "points")
	s.Equal("No entries yet.", embed.Description)

	embed = renderLeaderboard(&leaderboard.TopOutput{
		Period: models.PeriodAllTime,
		Entries: []*models.LeaderboardEntry{
			{Rank: 1, UserID: "a", Username: "Ann", Score: 120},
			{Rank: 4, UserID: "b", Score: 3},
		},
	}, "gems")
	s.Equal("🥇 **Ann** 120 gems\n`#4` **<@b>** 3 gems\n", embed.Description)
}

func (s *DiscordTestSuite) TestUserMessage() {
	s.Equal("You don't have enough points for that.", userMessage(models.ErrInsufficientBalance))
	s.Equal("Something went wrong.", userMessage(errors.New("boom")))
}

func (s *DiscordTestSuite) TestTitleCase() {
	s.Equal("Points", titleCase("points"))
	s.Equal("", titleCase(""))
}
