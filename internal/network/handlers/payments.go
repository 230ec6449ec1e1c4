package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/services"
	"github.com/denmor86/invipay/internal/validators"
	"go.uber.org/zap"
)

// CreatePaymentHandler — создание платёжного поручения
func CreatePaymentHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			WriteError(w, http.StatusBadRequest, "Invalid request format")
			return
		}

		if !validators.CheckAmount(request.Amount) || request.RecipientWallet == "" {
			WriteError(w, http.StatusBadRequest, "Missing required fields: amount, recipientWallet")
			return
		}

		intent, err := p.CreateIntent(r.Context(), request.Amount, request.Currency, request.RecipientWallet)
		if err != nil {
			logger.Error("Payment creation error:", zap.Error(err))
			WriteError(w, http.StatusInternalServerError, "Failed to create payment")
			return
		}

		WriteJSON(w, http.StatusOK, models.PaymentResponse{
			Success: true,
			PaymentIntent: models.PaymentIntentResponse{
				ID:              intent.ID,
				Amount:          intent.Amount,
				Currency:        intent.Currency,
				Status:          intent.Status,
				RecipientWallet: intent.RecipientWallet,
			},
		})
	})
}
