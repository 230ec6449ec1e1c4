package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/services"
	"github.com/denmor86/invipay/internal/validators"
	"go.uber.org/zap"
)

// Заголовок с подписью нотификации шлюза
const SignatureHeader = "chipi-signature"

// WebhookHandler — приём нотификаций платёжного шлюза. Тело запроса
// проверяется на подлинность по HMAC-подписи до разбора JSON.
func WebhookHandler(s services.WebhookService, secret string) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Error("Failed to read webhook body:", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, "Webhook processing failed")
			return
		}

		// отсутствие секрета - ошибка конфигурации сервера, не клиента
		if secret == "" {
			logger.Error("Webhook secret not configured")
			WriteError(w, http.StatusInternalServerError, "Webhook secret not configured")
			return
		}

		signature := r.Header.Get(SignatureHeader)
		if signature == "" || !validators.VerifySignature(payload, signature, secret) {
			logger.Warn("Invalid webhook signature")
			WriteError(w, http.StatusUnauthorized, "Invalid signature")
			return
		}

		var event models.WebhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			logger.Error("Webhook processing error:", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, "Webhook processing failed")
			return
		}

		if err := s.ProcessEvent(r.Context(), event); err != nil {
			logger.Error("Webhook processing error:", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, "Webhook processing failed")
			return
		}

		WriteJSON(w, http.StatusOK, models.WebhookResponse{Received: true})
	})
}
