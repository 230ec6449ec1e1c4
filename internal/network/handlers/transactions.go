package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/invipay/internal/helpers"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/services"
	"github.com/denmor86/invipay/internal/store"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GetTransactionsHandler — получение истории переводов, новые сверху
func GetTransactionsHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := state.Snapshot()

		response := make([]models.TransactionResponse, 0, len(snapshot.Transactions))
		for _, tx := range snapshot.Transactions {
			response = append(response, models.MakeTransactionResponse(tx))
		}
		WriteJSON(w, http.StatusOK, response)
	})
}

// SendHandler — перевод средств другому пользователю. Перевод
// создаётся незавершённым и завершается обработчиком в фоне.
func SendHandler(p services.PaymentsService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// получение данных о пользователе
		sender, err := helpers.GetUsername(r.Context())
		if err != nil {
			logger.Warn("Failed to get username:", zap.Error(err))
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		var request models.SendRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", zap.Error(err))
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if request.RecipientUsername == "" || request.Amount <= 0 {
			http.Error(w, "Missing required fields: recipientUsername, amount", http.StatusBadRequest)
			return
		}

		tx, err := p.Send(r.Context(), sender, request.RecipientUsername, decimal.NewFromFloat(request.Amount))
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInsufficientFunds):
				http.Error(w, "Insufficient funds", http.StatusPaymentRequired)
			case errors.Is(err, services.ErrRecipientNotFound):
				http.Error(w, "Recipient not found", http.StatusNotFound)
			case errors.Is(err, services.ErrInvalidAmount):
				http.Error(w, "Invalid amount", http.StatusBadRequest)
			default:
				logger.Error("Failed to process transfer:", zap.Error(err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
			return
		}

		WriteJSON(w, http.StatusAccepted, models.SendResponse{Success: true, TransactionID: tx.ID})
	})
}
