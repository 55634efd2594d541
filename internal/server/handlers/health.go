package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/bcp-audit/pkg/api"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db   Pinger
	now  func() time.Time
	port string
	responder
}

// NewHealthHandler создает новый handler для health check
func NewHealthHandler(logger *slog.Logger, db Pinger, port string) *HealthHandler {
	return &HealthHandler{
		responder: responder{logger: logger},
		db:        db,
		port:      port,
		now:       time.Now,
	}
}

// Health обрабатывает GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := api.HealthResponse{
		Status:    "OK",
		Message:   "BCP Audit Backend is running",
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Port:      h.port,
	}

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.logger.ErrorContext(ctx, "database ping failed", slog.Any("error", err))
			resp.Status = "DEGRADED"
			resp.Message = "database is unavailable"
			h.sendJSON(w, resp, http.StatusServiceUnavailable)
			return
		}
	}

	h.sendJSON(w, resp, http.StatusOK)
}
