package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/bcp-audit/pkg/api"
)

// responder содержит общие для всех handler'ов методы записи ответа
type responder struct {
	logger *slog.Logger
}

// sendJSON отправляет JSON ответ
func (h responder) sendJSON(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// sendError отправляет JSON ошибку вида {error, message}
func (h responder) sendError(w http.ResponseWriter, message string, status int) {
	h.sendJSON(w, api.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	}, status)
}
