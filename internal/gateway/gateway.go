package gateway

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Статусы платёжного поручения на стороне шлюза
const (
	IntentStatusPending = "pending"
	IntentStatusSuccess = "SUCCESS"
	IntentStatusFailed  = "FAILED"
)

// Intent - платёжное поручение: запрошенный, но ещё не проведённый платёж
type Intent struct {
	ID              string  `json:"id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	RecipientWallet string  `json:"recipientWallet"`
	TxHash          string  `json:"txHash,omitempty"`
}

// Gateway - интерфейс платёжного шлюза Chipi. Боевая реализация -
// HTTP-клиент, в остальных случаях используется встроенная заглушка
// с имитацией задержки проведения платежа.
type Gateway interface {
	CreateIntent(ctx context.Context, amount float64, currency string, recipientWallet string) (*Intent, error)
	Pay(ctx context.Context, intentID string, pin string) (string, error)
	GetIntent(ctx context.Context, intentID string) (*Intent, error)
}

var (
	ErrServiceUnavailable = errors.New("payment gateway unavailable")
	ErrIntentNotFound     = errors.New("payment intent not found")
)

// RateLimitError - шлюз ограничил частоту запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
