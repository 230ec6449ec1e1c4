package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/invipay/internal/logger"
	"go.uber.org/zap"
)

// ErrorResponse - модель ответа с ошибкой
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON - запись JSON-ответа с заданным статусом
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode JSON response:", zap.Error(err))
	}
}

// WriteError - запись JSON-ответа с ошибкой. Подробности остаются
// в логе сервера, наружу уходит только общее сообщение.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}
