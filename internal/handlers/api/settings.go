package api

import (
	"net/http"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/go-chi/chi/v5"
)

type thresholdRequest struct {
	Points int `json:"points"`
}

type roleRequest struct {
	// RoleID empty removes the mapping
	RoleID string `json:"roleId"`
}

type daysRequest struct {
	Days int `json:"days"`
}

type multiplierRequest struct {
	Multiplier float64 `json:"multiplier"`
}

type messageRequest struct {
	Message string `json:"message"`
}

type discountRequest struct {
	Percent int `json:"percent"`
}

type benefitsRequest struct {
	Benefits []string `json:"benefits"`
}

type currencyRequest struct {
	Name string `json:"name"`
}

type multiplierEventRequest struct {
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Multiplier float64   `json:"multiplier"`
	CreatedBy  string    `json:"createdBy,omitempty"`
}

type productRequest struct {
	RoleName string `json:"roleName"`
	Price    int    `json:"price"`
	Hours    int    `json:"hours"`
}

// tierWrite decodes a body for a /{tier} route and applies it
func tierWrite[T any](s *Server, w http.ResponseWriter, r *http.Request, apply func(t tier.Tier, req *T) error) {
	t, err := parseTier(chi.URLParam(r, "tier"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	var req T
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := apply(t, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// bodyWrite decodes a body and applies it
func bodyWrite[T any](s *Server, w http.ResponseWriter, r *http.Request, apply func(req *T) error) {
	var req T
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := apply(&req); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetThreshold(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *thresholdRequest) error {
		return s.settings.SetThreshold(r.Context(), &settings.SetThresholdInput{Tier: t, Points: req.Points})
	})
}

func (s *Server) handleSetRole(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *roleRequest) error {
		return s.settings.SetRole(r.Context(), &settings.SetRoleInput{Tier: t, RoleID: req.RoleID})
	})
}

func (s *Server) handleSetGlobalRetention(w http.ResponseWriter, r *http.Request) {
	bodyWrite(s, w, r, func(req *daysRequest) error {
		return s.settings.SetGlobalRetention(r.Context(), &settings.SetGlobalRetentionInput{Days: req.Days})
	})
}

func (s *Server) handleSetTierRetention(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *daysRequest) error {
		return s.settings.SetTierRetention(r.Context(), &settings.SetTierRetentionInput{Tier: t, Days: req.Days})
	})
}

func (s *Server) handleSetTierMultiplier(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *multiplierRequest) error {
		return s.settings.SetTierMultiplier(r.Context(), &settings.SetTierMultiplierInput{Tier: t, Multiplier: req.Multiplier})
	})
}

func (s *Server) handleSetTierMessage(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *messageRequest) error {
		return s.settings.SetTierMessage(r.Context(), &settings.SetTierMessageInput{Tier: t, Message: req.Message})
	})
}

func (s *Server) handleRemoveTierMessage(w http.ResponseWriter, r *http.Request) {
	t, err := parseTier(chi.URLParam(r, "tier"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.settings.RemoveTierMessage(r.Context(), &settings.RemoveTierMessageInput{Tier: t}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSetDiscount(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *discountRequest) error {
		return s.settings.SetDiscount(r.Context(), &settings.SetDiscountInput{Tier: t, Percent: req.Percent})
	})
}

func (s *Server) handleSetBenefits(w http.ResponseWriter, r *http.Request) {
	tierWrite(s, w, r, func(t tier.Tier, req *benefitsRequest) error {
		return s.settings.SetBenefits(r.Context(), &settings.SetBenefitsInput{Tier: t, Benefits: req.Benefits})
	})
}

func (s *Server) handleSetCurrencyName(w http.ResponseWriter, r *http.Request) {
	bodyWrite(s, w, r, func(req *currencyRequest) error {
		return s.settings.SetCurrencyName(r.Context(), &settings.SetCurrencyNameInput{Name: req.Name})
	})
}

func (s *Server) handleSetTransferSettings(w http.ResponseWriter, r *http.Request) {
	bodyWrite(s, w, r, func(req *models.TransferSettings) error {
		return s.settings.SetTransferSettings(r.Context(), &settings.SetTransferSettingsInput{Settings: *req})
	})
}

func (s *Server) handleSetDailyRange(w http.ResponseWriter, r *http.Request) {
	bodyWrite(s, w, r, func(req *models.DailyRange) error {
		return s.settings.SetDailyRange(r.Context(), &settings.SetDailyRangeInput{Range: *req})
	})
}

func (s *Server) handleListMultiplierEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.settings.ListMultiplierEvents(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if events == nil {
		events = []*models.MultiplierEvent{}
	}
	writeJSON(w, http.StatusOK, map[string][]*models.MultiplierEvent{"events": events})
}

func (s *Server) handleAddMultiplierEvent(w http.ResponseWriter, r *http.Request) {
	var req multiplierEventRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	event, err := s.settings.AddMultiplierEvent(r.Context(), &settings.AddMultiplierEventInput{
		Start:      req.Start,
		End:        req.End,
		Multiplier: req.Multiplier,
		CreatedBy:  req.CreatedBy,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, event)
}

func (s *Server) handleRemoveMultiplierEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.RemoveMultiplierEvent(r.Context(), &settings.RemoveMultiplierEventInput{
		ID: chi.URLParam(r, "id"),
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSaveProduct(w http.ResponseWriter, r *http.Request) {
	bodyWrite(s, w, r, func(req *productRequest) error {
		return s.settings.SaveProduct(r.Context(), &settings.SaveProductInput{Product: &models.Product{
			RoleID:   chi.URLParam(r, "roleID"),
			RoleName: req.RoleName,
			Price:    req.Price,
			Hours:    req.Hours,
		}})
	})
}

func (s *Server) handleRemoveProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.settings.RemoveProduct(r.Context(), &settings.RemoveProductInput{
		RoleID: chi.URLParam(r, "roleID"),
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
