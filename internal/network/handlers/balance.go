package handlers

import (
	"net/http"

	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/store"
)

// GetBalanceHandler — получение агрегатов счёта пользователя
func GetBalanceHandler(state *store.Store) http.HandlerFunc {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := state.Snapshot()
		WriteJSON(w, http.StatusOK, models.MakeBalanceResponse(snapshot.Ledger))
	})
}
