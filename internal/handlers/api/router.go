// Package api exposes the admin panel's HTTP surface.
package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	actionLogRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/actionlog"
	sportRepo "github.com/pinnacle-pathways/matchtrack/internal/repositories/sport"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analysis"
	"github.com/pinnacle-pathways/matchtrack/internal/services/analytics"
)

// Config holds the dependencies for the HTTP handlers
type Config struct {
	AnalysisService  analysis.Service
	AnalyticsService analytics.Service
	SportRepo        sportRepo.Repository
	ActionLogRepo    actionLogRepo.Repository
	Logger           *zap.Logger
}

// Handler carries the wired dependencies for all routes
type Handler struct {
	analysis  analysis.Service
	analytics analytics.Service
	sports    sportRepo.Repository
	actions   actionLogRepo.Repository
	logger    *zap.Logger
}

// New creates the router with all routes registered
func New(cfg *Config) (http.Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.AnalysisService == nil {
		return nil, errors.New("analysis service cannot be nil")
	}

	if cfg.AnalyticsService == nil {
		return nil, errors.New("analytics service cannot be nil")
	}

	if cfg.SportRepo == nil {
		return nil, errors.New("sport repository cannot be nil")
	}

	if cfg.ActionLogRepo == nil {
		return nil, errors.New("action log repository cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	h := &Handler{
		analysis:  cfg.AnalysisService,
		analytics: cfg.AnalyticsService,
		sports:    cfg.SportRepo,
		actions:   cfg.ActionLogRepo,
		logger:    logger,
	}

	r := chi.NewRouter()
	r.Use(h.requestLogger)
	r.Use(metricsMiddleware)

	r.Get("/healthz", h.healthz)
	r.Get("/metrics", h.metrics)

	r.Route("/matches", func(r chi.Router) {
		r.Post("/", h.createMatch)
		r.Get("/", h.listMatches)
		r.Get("/{matchID}", h.getMatch)

		r.Post("/{matchID}/players", h.addPlayer)
		r.Delete("/{matchID}/players/{playerID}", h.removePlayer)

		r.Post("/{matchID}/sessions", h.addSession)
		r.Post("/{matchID}/sessions/{sessionID}/slices", h.createSlice)
		r.Post("/{matchID}/sessions/{sessionID}/slices/{sliceID}/toggle", h.toggleActivePlayer)
		r.Post("/{matchID}/sessions/{sessionID}/events", h.addEvent)
	})

	r.Get("/sports", h.listSports)
	r.Get("/sports/{sportID}", h.getSport)

	r.Post("/visits", h.startVisit)
	r.Post("/visits/{visitID}/end", h.endVisit)
	r.Get("/analytics/dashboard", h.dashboard)

	r.Get("/actions", h.listActions)

	return r, nil
}
