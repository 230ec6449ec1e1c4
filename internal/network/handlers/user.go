package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/services"
)

// RegisterUserHandler — регистрация новой учётной записи по email
func RegisterUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if request.Email == "" {
			http.Error(w, "Email is required", http.StatusBadRequest)
			return
		}

		user, err := i.Register(r.Context(), request.Email)
		if err != nil {
			// учётная запись уже существует
			if errors.Is(err, services.ErrAccountExists) {
				logger.Warn("Error register user", request.Email)
				http.Error(w, "account already exist", http.StatusConflict)
			} else {
				// ошибка регистрации
				logger.Error("Error register user", err)
				http.Error(w, "Server error", http.StatusInternalServerError)
			}
			return
		}

		// Генерация JWT токена для зарегистрированного пользователя
		token, err := i.GenerateJWT(user)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}
		// Пользователь зарегистрирован и авторизован
		logger.Info("User registered and authenticated", user.Username)
		w.Header().Set("Authorization", "Bearer "+token)
		WriteJSON(w, http.StatusOK, user)
	})
}

// AuthenticateUserHandler — вход по email без пароля
func AuthenticateUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.UserRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.Error("Failed to decode request", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if request.Email == "" {
			http.Error(w, "Email is required", http.StatusBadRequest)
			return
		}

		user, err := i.Login(r.Context(), request.Email)
		if err != nil {
			if errors.Is(err, services.ErrAccountNotFound) {
				logger.Warn("Authentication failed, account not found", request.Email)
				http.Error(w, "Account not found", http.StatusNotFound)
				return
			}
			logger.Error("Error authenticate user", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		// генерация токена
		token, err := i.GenerateJWT(user)
		if err != nil {
			logger.Error("Failed to generate token", err)
			http.Error(w, "Server error", http.StatusInternalServerError)
			return
		}

		// пользователь прошел авторизацию
		logger.Info("User authenticated", user.Username)
		w.Header().Set("Authorization", "Bearer "+token)
		WriteJSON(w, http.StatusOK, user)
	})
}

// LogoutUserHandler — выход пользователя, идемпотентен
func LogoutUserHandler(i services.IdentityService) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		i.Logout(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}
