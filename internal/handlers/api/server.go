package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/services/leaderboard"
	"github.com/KirkDiggler/rewardsbot/internal/services/points"
	"github.com/KirkDiggler/rewardsbot/internal/services/settings"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PingFunc reports whether the document store is reachable
type PingFunc func(ctx context.Context) error

// Config holds the dependencies of the operator API
type Config struct {
	Ping               PingFunc
	Gatherer           prometheus.Gatherer
	PointsService      points.Service
	LeaderboardService leaderboard.Service
	SettingsService    settings.Service
	Logger             *slog.Logger
}

// Server serves health, metrics, economy reads and admin operations
type Server struct {
	ping        PingFunc
	gatherer    prometheus.Gatherer
	points      points.Service
	leaderboard leaderboard.Service
	settings    settings.Service
	logger      *slog.Logger
}

// New creates an operator API server
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.PointsService == nil {
		return nil, errors.New("points service cannot be nil")
	}
	if cfg.LeaderboardService == nil {
		return nil, errors.New("leaderboard service cannot be nil")
	}
	if cfg.SettingsService == nil {
		return nil, errors.New("settings service cannot be nil")
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Server{
		ping:        cfg.Ping,
		gatherer:    gatherer,
		points:      cfg.PointsService,
		leaderboard: cfg.LeaderboardService,
		settings:    cfg.SettingsService,
		logger:      logger,
	}, nil
}

// Handler returns the chi router with all routes mounted
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))

	r.Route("/v1", func(r chi.Router) {
		r.With(middleware.Timeout(10*time.Second)).Group(func(r chi.Router) {
			r.Get("/leaderboard/{period}", s.handleLeaderboard)

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/balance", s.handleBalance)
				r.Post("/credit", s.handleCredit)
				r.Post("/debit", s.handleDebit)
				r.Put("/points", s.handleSetBalance)
				r.Put("/tier", s.handleSetTier)
				r.Post("/purchases/{index}/reset", s.handleResetPurchase)
				r.Get("/admin-actions", s.handleAdminActions)
			})
			r.Post("/transfers", s.handleTransfer)
			r.Post("/bulk/give", s.handleGiveToMany)
			r.Post("/bulk/take", s.handleTakeFromMany)
			r.Post("/cooldowns/reset", s.handleResetDaily)

			r.Route("/settings", func(r chi.Router) {
				r.Put("/tiers/{tier}", s.handleSetThreshold)
				r.Put("/roles/{tier}", s.handleSetRole)
				r.Put("/retention", s.handleSetGlobalRetention)
				r.Put("/retention/{tier}", s.handleSetTierRetention)
				r.Put("/tier-multipliers/{tier}", s.handleSetTierMultiplier)
				r.Put("/messages/{tier}", s.handleSetTierMessage)
				r.Delete("/messages/{tier}", s.handleRemoveTierMessage)
				r.Put("/discounts/{tier}", s.handleSetDiscount)
				r.Put("/benefits/{tier}", s.handleSetBenefits)
				r.Put("/currency", s.handleSetCurrencyName)
				r.Put("/transfer", s.handleSetTransferSettings)
				r.Put("/daily", s.handleSetDailyRange)
				r.Get("/multiplier-events", s.handleListMultiplierEvents)
				r.Post("/multiplier-events", s.handleAddMultiplierEvent)
				r.Delete("/multiplier-events/{id}", s.handleRemoveMultiplierEvent)
				r.Put("/products/{roleID}", s.handleSaveProduct)
				r.Delete("/products/{roleID}", s.handleRemoveProduct)
			})
		})
		r.Post("/resync", s.handleResync)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ping != nil {
		if err := s.ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type balanceResponse struct {
	UserID     string `json:"userId"`
	Username   string `json:"username,omitempty"`
	Points     int    `json:"points"`
	Tier       string `json:"tier"`
	PointsTier string `json:"pointsTier"`
}

func (s *Server) handleBalance(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")

	out, err := s.points.Balance(r.Context(), &points.BalanceInput{UserID: userID})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	resp := balanceResponse{
		UserID:     userID,
		Points:     out.Points,
		Tier:       out.Tier.String(),
		PointsTier: out.PointsTier.String(),
	}
	if out.Account != nil {
		resp.Username = out.Account.Username
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit"})
			return
		}
		limit = n
	}

	period := models.Period(chi.URLParam(r, "period"))
	var (
		out *leaderboard.TopOutput
		err error
	)
	if period == "spent" {
		out, err = s.leaderboard.TopSpenders(r.Context(), &leaderboard.TopSpendersInput{Limit: limit})
	} else {
		out, err = s.leaderboard.Top(r.Context(), &leaderboard.TopInput{Period: period, Limit: limit})
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleResync(w http.ResponseWriter, r *http.Request) {
	out, err := s.points.ResyncAll(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"synced": out.Synced, "failed": out.Failed})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrOutOfRange),
		errors.Is(err, models.ErrConfigurationInvalid),
		errors.Is(err, models.ErrInvalidTarget):
		status = http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, models.ErrInsufficientBalance),
		errors.Is(err, models.ErrAlreadyOwned),
		errors.Is(err, models.ErrOnCooldown):
		status = http.StatusConflict
	case errors.Is(err, models.ErrExternalUnavailable):
		status = http.StatusServiceUnavailable
	}
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(r.Context(), "Request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
	}
	writeJSON(w, status, map[string]string{"error": models.KindOf(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
