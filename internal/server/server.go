// Package server exposes the dashboard API: the ATM dataset with its
// backend-proxy/local-fallback behavior, the analytics dashboard, and a
// health probe.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/geomarket-ma/atmboard/internal/backendapi"
	"github.com/geomarket-ma/atmboard/internal/config"
)

// Server bundles the API handlers and their dependencies.
type Server struct {
	backend      *backendapi.Client
	snapshotPath string
}

// New creates a Server backed by the given backend client and local
// snapshot path.
func New(backend *backendapi.Client, snapshotPath string) *Server {
	return &Server{
		backend:      backend,
		snapshotPath: snapshotPath,
	}
}

// Router builds the chi router with CORS, request-id, access logging, and
// optional inbound rate limiting.
func (s *Server) Router(cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestID)
	r.Use(AccessLog)
	if cfg.RateLimitRPS > 0 {
		r.Use(RateLimit(cfg.RateLimitRPS))
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: false,
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/api/atms", s.handleATMs)
	r.Get("/api/analytics/dashboard", s.handleAnalytics)

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}
