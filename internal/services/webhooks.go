package services

import (
	"context"
	"time"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Fulfiller - обработчик подтверждённого входящего платежа
type Fulfiller interface {
	FulfillPayment(ctx context.Context, tx models.WebhookTransaction) error
}

// WebhookService - разбор событий нотификаций шлюза. Подпись события
// проверяется выше по стеку, сюда попадают только подлинные события.
type WebhookService interface {
	ProcessEvent(ctx context.Context, event models.WebhookEvent) error
}

type Webhooks struct {
	Fulfiller Fulfiller
}

// Создание сервиса
func NewWebhooks(fulfiller Fulfiller) WebhookService {
	return &Webhooks{Fulfiller: fulfiller}
}

// ProcessEvent - обработка события нотификации. Неизвестные виды
// событий логируются и пропускаются без ошибки.
func (s *Webhooks) ProcessEvent(ctx context.Context, event models.WebhookEvent) error {
	switch event.Event {
	case models.WebhookEventTransactionSent:
		tx := event.Data.Transaction
		if tx.Status != models.WebhookTransactionSuccess {
			logger.Info("Transaction sent with non-success status", tx.Status)
			return nil
		}
		logger.Info("Payment received:", tx.Amount, tx.Currency, "from", tx.SenderAddress)
		return s.Fulfiller.FulfillPayment(ctx, tx)

	case models.WebhookEventTransactionFailed:
		logger.Info("Transaction failed:", event.Data.Transaction.ID)
		return nil

	default:
		logger.Info("Unhandled webhook event:", event.Event)
		return nil
	}
}

// LedgerFulfiller - зачисление подтверждённого входящего платежа:
// пополнение агрегатов счёта и входящий перевод в истории
type LedgerFulfiller struct {
	State *store.Store
}

func NewLedgerFulfiller(state *store.Store) *LedgerFulfiller {
	return &LedgerFulfiller{State: state}
}

func (f *LedgerFulfiller) FulfillPayment(_ context.Context, tx models.WebhookTransaction) error {
	amount := decimal.NewFromFloat(tx.Amount)

	now := time.Now()
	f.State.AddTransaction(models.Transaction{
		ID:               "tx_" + uuid.New().String(),
		SenderID:         tx.SenderAddress,
		SenderUsername:   tx.SenderAddress,
		ReceiverID:       store.CurrentUserID,
		ReceiverUsername: "you",
		Amount:           amount,
		Status:           models.TransactionStatusSuccess,
		TxHash:           tx.ID,
		CreatedAt:        now,
		CompletedAt:      &now,
	})
	f.State.AddDeposit(amount)
	return nil
}
