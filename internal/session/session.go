package session

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=./mocks/mock_store.go -package=mocks github.com/denmor86/invipay/internal/session Store

// Фиксированные ключи слотов постоянного хранилища
const (
	UserKey            = "inviPay_user"
	RegisteredUsersKey = "inviPay_registered_users"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Store - интерфейс постоянного KV-хранилища. Значения - JSON-строки,
// подменяемая реализация: память процесса, Redis или Postgres.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
}
