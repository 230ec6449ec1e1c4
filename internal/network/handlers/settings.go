package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// GetSettingsHandler — получение настроек пользователя
func GetSettingsHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, state.Snapshot().Settings)
	})
}

// UpdateSettingsHandler — частичное обновление настроек: слияние по
// подгруппам, в ответе полный набор настроек после слияния
func UpdateSettingsHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var update models.SettingsUpdate
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logger.Warn("Invalid request format:", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		state.UpdateSettings(update)
		WriteJSON(w, http.StatusOK, state.Snapshot().Settings)
	})
}

// GetPaymentMethodsHandler — получение платёжных методов
func GetPaymentMethodsHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, state.Snapshot().PaymentMethods)
	})
}

// AddPaymentMethodHandler — добавление платёжного метода
func AddPaymentMethodHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var method models.PaymentMethod
		if err := json.NewDecoder(r.Body).Decode(&method); err != nil {
			logger.Warn("Invalid request format:", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if method.Type != models.PaymentMethodTypeBank && method.Type != models.PaymentMethodTypeCard {
			http.Error(w, "Unknown payment method type", http.StatusBadRequest)
			return
		}
		if method.ID == "" {
			method.ID = "pm_" + uuid.New().String()
		}

		state.AddPaymentMethod(method)
		WriteJSON(w, http.StatusCreated, method)
	})
}

// RemovePaymentMethodHandler — удаление платёжного метода. Удаление
// метода по умолчанию допустимо.
func RemovePaymentMethodHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state.RemovePaymentMethod(chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusOK)
	})
}

// SetDefaultPaymentMethodHandler — назначение метода по умолчанию
func SetDefaultPaymentMethodHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state.SetDefaultPaymentMethod(chi.URLParam(r, "id"))
		WriteJSON(w, http.StatusOK, state.Snapshot().PaymentMethods)
	})
}

// SocialConnectionRequest - модель запроса изменения привязки аккаунта
type SocialConnectionRequest struct {
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}

// GetSocialConnectionsHandler — получение привязок внешних аккаунтов
func GetSocialConnectionsHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, state.Snapshot().SocialConnections)
	})
}

// UpdateSocialConnectionHandler — изменение привязки внешнего аккаунта
func UpdateSocialConnectionHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		if provider != models.SocialProviderGoogle &&
			provider != models.SocialProviderGithub &&
			provider != models.SocialProviderEmail {
			http.Error(w, "Unknown provider", http.StatusNotFound)
			return
		}

		var request SocialConnectionRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Warn("Invalid request format:", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}

		state.UpdateSocialConnection(provider, request.Connected, request.Email)
		WriteJSON(w, http.StatusOK, state.Snapshot().SocialConnections)
	})
}
