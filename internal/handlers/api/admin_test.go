package api

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"go.uber.org/mock/gomock"
)

func (s *ServerTestSuite) TestCredit() {
	s.mockPoints.EXPECT().
		Credit(gomock.Any(), &points.CreditInput{UserID: "42", Amount: 50, Reason: models.ReasonAdmin}).
		Return(&points.BalanceChangeOutput{Points: 150, Tier: tier.Silver}, nil)

	rec := s.send(http.MethodPost, "/v1/users/42/credit", `{"amount":50}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"points":150,"tier":"Silver"}`, rec.Body.String())
}

func (s *ServerTestSuite) TestDebitInsufficientBalance() {
	s.mockPoints.EXPECT().
		Debit(gomock.Any(), &points.DebitInput{UserID: "42", Amount: 500, Reason: models.ReasonGame}).
		Return(nil, models.ErrInsufficientBalance)

	rec := s.send(http.MethodPost, "/v1/users/42/debit", `{"amount":500,"reason":"game"}`)
	s.Equal(http.StatusConflict, rec.Code)
	s.Contains(rec.Body.String(), string(models.ErrInsufficientBalance))
}

func (s *ServerTestSuite) TestMalformedBody() {
	rec := s.send(http.MethodPost, "/v1/users/42/credit", `{"amount":`)
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.send(http.MethodPost, "/v1/users/42/credit", `{"amount":5,"bonus":true}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestSetBalance() {
	s.mockPoints.EXPECT().
		SetBalance(gomock.Any(), &points.SetBalanceInput{UserID: "42", Username: "ann", Points: -5, Reason: models.ReasonAdmin}).
		Return(&points.BalanceChangeOutput{Points: -5, Tier: tier.Bronze}, nil)

	rec := s.send(http.MethodPut, "/v1/users/42/points", `{"username":"ann","points":-5}`)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestSetTier() {
	s.mockPoints.EXPECT().
		SetTier(gomock.Any(), &points.SetTierInput{UserID: "42", Tier: tier.Gold}).
		Return(&points.BalanceChangeOutput{Points: 250, Tier: tier.Gold}, nil)

	rec := s.send(http.MethodPut, "/v1/users/42/tier", `{"tier":"gold"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"points":250,"tier":"Gold"}`, rec.Body.String())

	rec = s.send(http.MethodPut, "/v1/users/42/tier", `{"tier":"mithril"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestResetPurchase() {
	s.mockPoints.EXPECT().
		ResetPurchase(gomock.Any(), &points.ResetPurchaseInput{UserID: "42", Index: 1, AdminID: "admin-1"}).
		Return(&points.ResetPurchaseOutput{
			Purchase:      &models.Purchase{TransactionID: "pi_2", Price: 30},
			PointsRemoved: 30,
			Points:        20,
			Tier:          tier.Bronze,
		}, nil)

	rec := s.send(http.MethodPost, "/v1/users/42/purchases/1/reset", `{"adminId":"admin-1"}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"pointsRemoved":30`)
	s.Contains(rec.Body.String(), `"pi_2"`)

	rec = s.do(http.MethodPost, "/v1/users/42/purchases/-1/reset")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestResetMissingPurchase() {
	s.mockPoints.EXPECT().
		ResetPurchase(gomock.Any(), &points.ResetPurchaseInput{UserID: "42", Index: 9}).
		Return(nil, models.ErrNotFound)

	rec := s.do(http.MethodPost, "/v1/users/42/purchases/9/reset")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestAdminActions() {
	s.mockPoints.EXPECT().
		AdminActions(gomock.Any(), &points.AdminActionsInput{UserID: "42"}).
		Return(&points.AdminActionsOutput{}, nil)

	rec := s.do(http.MethodGet, "/v1/users/42/admin-actions")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"actions":[]}`, rec.Body.String())
}

func (s *ServerTestSuite) TestTransfer() {
	s.mockPoints.EXPECT().
		Transfer(gomock.Any(), &points.TransferInput{FromID: "1", ToID: "2", Amount: 100}).
		Return(&points.TransferOutput{Amount: 100, Tax: 10, Received: 90, FromPoints: 0, ToPoints: 90}, nil)

	rec := s.send(http.MethodPost, "/v1/transfers", `{"fromId":"1","toId":"2","amount":100}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"amount":100,"tax":10,"received":90,"fromPoints":0,"toPoints":90}`, rec.Body.String())
}

func (s *ServerTestSuite) TestTransferToBot() {
	s.mockPoints.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		Return(nil, models.ErrInvalidTarget)

	rec := s.send(http.MethodPost, "/v1/transfers", `{"fromId":"1","toId":"2","toIsBot":true,"amount":5}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestBulk() {
	s.mockPoints.EXPECT().
		GiveToMany(gomock.Any(), &points.ManyInput{UserIDs: []string{"1", "2"}, Amount: 5, Reason: models.ReasonAdmin}).
		Return(&points.ManyOutput{Succeeded: []string{"1", "2"}}, nil)
	s.mockPoints.EXPECT().
		TakeFromMany(gomock.Any(), &points.ManyInput{UserIDs: []string{"1", "2"}, Amount: 5, Reason: models.ReasonAdmin}).
		Return(&points.ManyOutput{Succeeded: []string{"1"}, Skipped: []string{"2"}}, nil)

	rec := s.send(http.MethodPost, "/v1/bulk/give", `{"userIds":["1","2"],"amount":5}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"succeeded":["1","2"],"skipped":[],"failed":[]}`, rec.Body.String())

	rec = s.send(http.MethodPost, "/v1/bulk/take", `{"userIds":["1","2"],"amount":5}`)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"succeeded":["1"],"skipped":["2"],"failed":[]}`, rec.Body.String())
}

func (s *ServerTestSuite) TestResetDaily() {
	s.mockPoints.EXPECT().
		ResetDaily(gomock.Any(), &points.ResetDailyInput{UserID: "42"}).
		Return(nil)
	s.mockPoints.EXPECT().
		ResetDaily(gomock.Any(), &points.ResetDailyInput{}).
		Return(nil)

	rec := s.send(http.MethodPost, "/v1/cooldowns/reset", `{"userId":"42"}`)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, "/v1/cooldowns/reset")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *ServerTestSuite) TestSetRole() {
	s.mockSettings.EXPECT().
		SetRole(gomock.Any(), &settings.SetRoleInput{Tier: tier.Platinum, RoleID: "role-9"}).
		Return(nil)

	rec := s.send(http.MethodPut, "/v1/settings/roles/platinum", `{"roleId":"role-9"}`)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.send(http.MethodPut, "/v1/settings/roles/mithril", `{"roleId":"role-9"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestSetThresholdRejected() {
	s.mockSettings.EXPECT().
		SetThreshold(gomock.Any(), &settings.SetThresholdInput{Tier: tier.Gold, Points: 10}).
		Return(models.Invalid("gold must exceed silver"))

	rec := s.send(http.MethodPut, "/v1/settings/tiers/gold", `{"points":10}`)
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), string(models.ErrConfigurationInvalid))
}

func (s *ServerTestSuite) TestRetention() {
	s.mockSettings.EXPECT().
		SetGlobalRetention(gomock.Any(), &settings.SetGlobalRetentionInput{Days: 30}).
		Return(nil)
	s.mockSettings.EXPECT().
		SetTierRetention(gomock.Any(), &settings.SetTierRetentionInput{Tier: tier.Diamond, Days: 0}).
		Return(nil)

	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/retention", `{"days":30}`).Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/retention/diamond", `{"days":0}`).Code)
}

func (s *ServerTestSuite) TestTierSettings() {
	s.mockSettings.EXPECT().
		SetTierMultiplier(gomock.Any(), &settings.SetTierMultiplierInput{Tier: tier.Gold, Multiplier: 1.5}).
		Return(nil)
	s.mockSettings.EXPECT().
		SetTierMessage(gomock.Any(), &settings.SetTierMessageInput{Tier: tier.Gold, Message: "Welcome {UserMention}"}).
		Return(nil)
	s.mockSettings.EXPECT().
		RemoveTierMessage(gomock.Any(), &settings.RemoveTierMessageInput{Tier: tier.Gold}).
		Return(nil)
	s.mockSettings.EXPECT().
		SetDiscount(gomock.Any(), &settings.SetDiscountInput{Tier: tier.Gold, Percent: 10}).
		Return(nil)
	s.mockSettings.EXPECT().
		SetBenefits(gomock.Any(), &settings.SetBenefitsInput{Tier: tier.Gold, Benefits: []string{"emoji"}}).
		Return(nil)

	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/tier-multipliers/gold", `{"multiplier":1.5}`).Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/messages/gold", `{"message":"Welcome {UserMention}"}`).Code)
	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/v1/settings/messages/gold").Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/discounts/gold", `{"percent":10}`).Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/benefits/gold", `{"benefits":["emoji"]}`).Code)
}

func (s *ServerTestSuite) TestEconomySettings() {
	s.mockSettings.EXPECT().
		SetCurrencyName(gomock.Any(), &settings.SetCurrencyNameInput{Name: "gems"}).
		Return(nil)
	s.mockSettings.EXPECT().
		SetTransferSettings(gomock.Any(), &settings.SetTransferSettingsInput{
			Settings: models.TransferSettings{Min: 5, Max: 500, Tax: 0.1},
		}).
		Return(nil)
	s.mockSettings.EXPECT().
		SetDailyRange(gomock.Any(), &settings.SetDailyRangeInput{Range: models.DailyRange{Min: 1, Max: 5}}).
		Return(nil)

	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/currency", `{"name":"gems"}`).Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/transfer", `{"min":5,"max":500,"tax":0.1}`).Code)
	s.Equal(http.StatusNoContent, s.send(http.MethodPut, "/v1/settings/daily", `{"min":1,"max":5}`).Code)
}

func (s *ServerTestSuite) TestMultiplierEvents() {
	start := time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	end := start.Add(48 * time.Hour)

	s.mockSettings.EXPECT().
		AddMultiplierEvent(gomock.Any(), &settings.AddMultiplierEventInput{Start: start, End: end, Multiplier: 2}).
		Return(&models.MultiplierEvent{ID: "ev-1", Start: start, End: end, Multiplier: 2}, nil)
	s.mockSettings.EXPECT().
		ListMultiplierEvents(gomock.Any()).
		Return(nil, nil)
	s.mockSettings.EXPECT().
		RemoveMultiplierEvent(gomock.Any(), &settings.RemoveMultiplierEventInput{ID: "ev-1"}).
		Return(nil)

	rec := s.send(http.MethodPost, "/v1/settings/multiplier-events",
		`{"start":"2025-04-05T10:00:00Z","end":"2025-04-07T10:00:00Z","multiplier":2}`)
	s.Require().Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"id":"ev-1"`)

	rec = s.do(http.MethodGet, "/v1/settings/multiplier-events")
	s.Require().Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"events":[]}`, rec.Body.String())

	s.Equal(http.StatusNoContent, s.do(http.MethodDelete, "/v1/settings/multiplier-events/ev-1").Code)
}

func (s *ServerTestSuite) TestProducts() {
	s.mockSettings.EXPECT().
		SaveProduct(gomock.Any(), &settings.SaveProductInput{Product: &models.Product{
			RoleID:   "role-vip",
			RoleName: "VIP",
			Price:    200,
			Hours:    24,
		}}).
		Return(nil)
	s.mockSettings.EXPECT().
		RemoveProduct(gomock.Any(), &settings.RemoveProductInput{RoleID: "role-vip"}).
		Return(models.ErrNotFound)

	rec := s.send(http.MethodPut, "/v1/settings/products/role-vip", `{"roleName":"VIP","price":200,"hours":24}`)
	s.Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodDelete, "/v1/settings/products/role-vip")
	s.Equal(http.StatusNotFound, rec.Code)
}
