// Package server собирает REST stub дашборда: хранилище, handlers и middleware.
package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/iudanet/bcp-audit/internal/models"
	"github.com/iudanet/bcp-audit/internal/server/handlers"
	"github.com/iudanet/bcp-audit/internal/server/middleware"
)

// Handlers содержит handler'ы, из которых собирается таблица маршрутов
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Dashboard *handlers.DashboardHandler
}

// RouterOptions задает параметры middleware
type RouterOptions struct {
	Logger      *slog.Logger
	Tokens      middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Registry    *prometheus.Registry
	CORSOrigins []string
}

// NewRouter возвращает http.Handler с полной таблицей маршрутов.
// Порядок: recovery, request id, CORS, logging, rate limit, metrics, mux.
func NewRouter(h Handlers, opts RouterOptions) http.Handler {
	logger := opts.Logger

	authenticated := middleware.AuthMiddleware(logger, opts.Tokens)
	adminOnly := func(next http.HandlerFunc) http.Handler {
		return authenticated(middleware.RequireRole(logger, models.RoleICTAdmin)(next))
	}
	protected := func(next http.HandlerFunc) http.Handler {
		return authenticated(next)
	}

	mux := http.NewServeMux()

	// Public
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("POST /api/auth/login", h.Auth.Login)
	mux.Handle("GET /metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{Registry: opts.Registry}))

	// Protected
	mux.Handle("GET /dashboard/overview", protected(h.Dashboard.Overview))
	mux.Handle("GET /forms-labels", protected(h.Dashboard.FormsAndLabels))
	mux.Handle("GET /departments", protected(h.Dashboard.Departments))
	mux.Handle("PATCH /departments/{id}/preparedness", adminOnly(h.Dashboard.UpdatePreparedness))
	mux.Handle("GET /downtime-events", protected(h.Dashboard.DowntimeEvents))
	mux.Handle("POST /downtime-events", adminOnly(h.Dashboard.CreateDowntimeEvent))
	mux.Handle("GET /downtime-events/trend", protected(h.Dashboard.Trend))
	mux.Handle("GET /compliance/overview", protected(h.Dashboard.Compliance))
	mux.Handle("GET /users/me", protected(h.Auth.Me))

	metrics := middleware.NewMetrics(opts.Registry)

	var handler http.Handler = metrics.Middleware(mux)
	if opts.RateLimiter != nil {
		handler = opts.RateLimiter.Middleware(handler)
	}
	handler = middleware.LoggingMiddleware(logger, "/metrics")(handler)
	handler = middleware.CORSMiddleware(opts.CORSOrigins)(handler)
	handler = middleware.RequestIDMiddleware(handler)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}
