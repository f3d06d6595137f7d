package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/go-chi/chi/v5"
)

type amountRequest struct {
	Username string        `json:"username,omitempty"`
	Amount   int           `json:"amount"`
	Reason   models.Reason `json:"reason,omitempty"`
}

type setPointsRequest struct {
	Username string `json:"username,omitempty"`
	Points   int    `json:"points"`
}

type setTierRequest struct {
	Username string `json:"username,omitempty"`
	Tier     string `json:"tier"`
}

type adminRequest struct {
	AdminID string `json:"adminId,omitempty"`
}

type transferRequest struct {
	FromID       string `json:"fromId"`
	FromUsername string `json:"fromUsername,omitempty"`
	ToID         string `json:"toId"`
	ToUsername   string `json:"toUsername,omitempty"`
	ToIsBot      bool   `json:"toIsBot,omitempty"`
	Amount       int    `json:"amount"`
}

type manyRequest struct {
	UserIDs []string      `json:"userIds"`
	Amount  int           `json:"amount"`
	Reason  models.Reason `json:"reason,omitempty"`
}

type resetDailyRequest struct {
	// UserID empty resets everyone
	UserID  string `json:"userId,omitempty"`
	AdminID string `json:"adminId,omitempty"`
}

type balanceChangeResponse struct {
	Points int    `json:"points"`
	Tier   string `json:"tier,omitempty"`
}

type transferResponse struct {
	Amount     int `json:"amount"`
	Tax        int `json:"tax"`
	Received   int `json:"received"`
	FromPoints int `json:"fromPoints"`
	ToPoints   int `json:"toPoints"`
}

type manyResponse struct {
	Succeeded []string `json:"succeeded"`
	Skipped   []string `json:"skipped"`
	Failed    []string `json:"failed"`
}

type resetPurchaseResponse struct {
	Purchase      *models.Purchase `json:"purchase"`
	PointsRemoved int              `json:"pointsRemoved"`
	Points        int              `json:"points"`
	Tier          string           `json:"tier,omitempty"`
}

func (s *Server) handleCredit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.points.Credit(r.Context(), &points.CreditInput{
		UserID:   chi.URLParam(r, "userID"),
		Username: req.Username,
		Amount:   req.Amount,
		Reason:   reasonOrAdmin(req.Reason),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceChange(out))
}

func (s *Server) handleDebit(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.points.Debit(r.Context(), &points.DebitInput{
		UserID:   chi.URLParam(r, "userID"),
		Username: req.Username,
		Amount:   req.Amount,
		Reason:   reasonOrAdmin(req.Reason),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceChange(out))
}

func (s *Server) handleSetBalance(w http.ResponseWriter, r *http.Request) {
	var req setPointsRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.points.SetBalance(r.Context(), &points.SetBalanceInput{
		UserID:   chi.URLParam(r, "userID"),
		Username: req.Username,
		Points:   req.Points,
		Reason:   models.ReasonAdmin,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceChange(out))
}

func (s *Server) handleSetTier(w http.ResponseWriter, r *http.Request) {
	var req setTierRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := parseTier(req.Tier)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.points.SetTier(r.Context(), &points.SetTierInput{
		UserID:   chi.URLParam(r, "userID"),
		Username: req.Username,
		Tier:     t,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, balanceChange(out))
}

func (s *Server) handleResetPurchase(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		s.writeError(w, r, fmt.Errorf("%w: purchase index must be a non-negative integer", models.ErrInvalidInput))
		return
	}
	var req adminRequest
	if err := decodeOptional(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.points.ResetPurchase(r.Context(), &points.ResetPurchaseInput{
		UserID:  chi.URLParam(r, "userID"),
		Index:   index,
		AdminID: req.AdminID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resetPurchaseResponse{
		Purchase:      out.Purchase,
		PointsRemoved: out.PointsRemoved,
		Points:        out.Points,
		Tier:          out.Tier.String(),
	})
}

func (s *Server) handleAdminActions(w http.ResponseWriter, r *http.Request) {
	out, err := s.points.AdminActions(r.Context(), &points.AdminActionsInput{UserID: chi.URLParam(r, "userID")})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	actions := out.Actions
	if actions == nil {
		actions = []*models.AdminAction{}
	}
	writeJSON(w, http.StatusOK, map[string][]*models.AdminAction{"actions": actions})
}

func (s *Server) handleTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := s.points.Transfer(r.Context(), &points.TransferInput{
		FromID:       req.FromID,
		FromUsername: req.FromUsername,
		ToID:         req.ToID,
		ToUsername:   req.ToUsername,
		ToIsBot:      req.ToIsBot,
		Amount:       req.Amount,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, transferResponse{
		Amount:     out.Amount,
		Tax:        out.Tax,
		Received:   out.Received,
		FromPoints: out.FromPoints,
		ToPoints:   out.ToPoints,
	})
}

func (s *Server) handleGiveToMany(w http.ResponseWriter, r *http.Request) {
	s.handleMany(w, r, s.points.GiveToMany)
}

func (s *Server) handleTakeFromMany(w http.ResponseWriter, r *http.Request) {
	s.handleMany(w, r, s.points.TakeFromMany)
}

func (s *Server) handleMany(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, input *points.ManyInput) (*points.ManyOutput, error)) {
	var req manyRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	out, err := apply(r.Context(), &points.ManyInput{
		UserIDs: req.UserIDs,
		Amount:  req.Amount,
		Reason:  reasonOrAdmin(req.Reason),
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, manyResponse{
		Succeeded: nonNil(out.Succeeded),
		Skipped:   nonNil(out.Skipped),
		Failed:    nonNil(out.Failed),
	})
}

func (s *Server) handleResetDaily(w http.ResponseWriter, r *http.Request) {
	var req resetDailyRequest
	if err := decodeOptional(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	if err := s.points.ResetDaily(r.Context(), &points.ResetDailyInput{
		UserID:  req.UserID,
		AdminID: req.AdminID,
	}); err != nil {
		s.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// decode reads a required JSON body
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed body: %w", models.ErrInvalidInput, err)
	}
	return nil
}

// decodeOptional is decode that accepts an empty body
func decodeOptional(r *http.Request, v any) error {
	err := decode(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func parseTier(name string) (tier.Tier, error) {
	t, err := tier.Parse(name)
	if err != nil {
		return "", fmt.Errorf("%w: %w", models.ErrInvalidInput, err)
	}
	return t, nil
}

func reasonOrAdmin(reason models.Reason) models.Reason {
	if reason == "" {
		return models.ReasonAdmin
	}
	return reason
}

func balanceChange(out *points.BalanceChangeOutput) balanceChangeResponse {
	return balanceChangeResponse{Points: out.Points, Tier: out.Tier.String()}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
