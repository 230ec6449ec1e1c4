package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/store"
	"github.com/denmor86/invipay/internal/username"
	"github.com/google/uuid"
)

// GetContactsHandler — получение списка контактов
func GetContactsHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := state.Snapshot()
		WriteJSON(w, http.StatusOK, snapshot.Users)
	})
}

// AddContactHandler — добавление контакта. Уникальность имени и email
// не проверяется, за дубли отвечает вызывающий.
func AddContactHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var user models.User
		if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
			logger.Warn("Invalid request format:", err)
			http.Error(w, "Invalid request format", http.StatusBadRequest)
			return
		}
		if user.Username == "" {
			http.Error(w, "Username is required", http.StatusBadRequest)
			return
		}
		if user.ID == "" {
			user.ID = "user_" + uuid.New().String()
		}
		if user.DisplayName == "" {
			user.DisplayName = username.DisplayName(user.Email)
		}
		if user.CreatedAt.IsZero() {
			user.CreatedAt = time.Now()
		}

		state.AddUser(user)
		WriteJSON(w, http.StatusCreated, user)
	})
}
