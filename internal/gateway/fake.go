package gateway

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Fake - встроенная заглушка шлюза: платёж "проводится" по истечении
// задержки с момента создания поручения, хэш транзакции случайный.
// Используется, пока адрес боевого шлюза не задан, и в тестах.
type Fake struct {
	mu          sync.Mutex
	settleDelay time.Duration
	intents     map[string]*fakeIntent
}

type fakeIntent struct {
	intent    Intent
	createdAt time.Time
}

// Создание заглушки шлюза
func NewFake(settleDelay time.Duration) *Fake {
	return &Fake{
		settleDelay: settleDelay,
		intents:     make(map[string]*fakeIntent),
	}
}

// TxHash - случайный хэш транзакции в формате 0x + 64 hex-символа
func TxHash() string {
	raw := make([]byte, 32)
	_, _ = rand.Read(raw)
	return "0x" + hex.EncodeToString(raw)
}

func (g *Fake) CreateIntent(_ context.Context, amount float64, currency string, recipientWallet string) (*Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	intent := Intent{
		ID:              "pi_" + uuid.New().String(),
		Amount:          amount,
		Currency:        currency,
		Status:          IntentStatusPending,
		RecipientWallet: recipientWallet,
	}
	g.intents[intent.ID] = &fakeIntent{intent: intent, createdAt: time.Now()}
	return &intent, nil
}

// Pay - имитация проведения платежа: ожидание задержки и случайный хэш
func (g *Fake) Pay(ctx context.Context, intentID string, _ string) (string, error) {
	g.mu.Lock()
	record, ok := g.intents[intentID]
	g.mu.Unlock()
	if !ok {
		return "", ErrIntentNotFound
	}

	select {
	case <-time.After(g.settleDelay):
	case <-ctx.Done():
		return "", ctx.Err()
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if record.intent.Status == IntentStatusPending {
		record.intent.Status = IntentStatusSuccess
		record.intent.TxHash = TxHash()
	}
	return record.intent.TxHash, nil
}

// GetIntent - состояние поручения. Незавершённое поручение считается
// проведённым, когда с момента создания прошла задержка проведения.
func (g *Fake) GetIntent(_ context.Context, intentID string) (*Intent, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	record, ok := g.intents[intentID]
	if !ok {
		return nil, ErrIntentNotFound
	}
	if record.intent.Status == IntentStatusPending && time.Since(record.createdAt) >= g.settleDelay {
		record.intent.Status = IntentStatusSuccess
		record.intent.TxHash = TxHash()
	}
	intent := record.intent
	return &intent, nil
}
