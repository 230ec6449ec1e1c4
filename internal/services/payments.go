package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/denmor86/invipay/internal/gateway"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds for transfer")
	ErrInvalidAmount     = errors.New("invalid transfer amount")
	ErrRecipientNotFound = errors.New("recipient not found")
)

// Валюта платежей по умолчанию
const DefaultCurrency = "USDC"

// PaymentsService - создание платёжных поручений и переводы между
// пользователями. Перевод создаётся незавершённым и доводится до
// конечного статуса обработчиком незавершённых переводов.
type PaymentsService interface {
	CreateIntent(ctx context.Context, amount float64, currency string, recipientWallet string) (*gateway.Intent, error)
	Send(ctx context.Context, senderUsername string, recipientUsername string, amount decimal.Decimal) (models.Transaction, error)
	PendingSettlements(ctx context.Context, count int) ([]string, error)
	Settle(ctx context.Context, transactionID string) error
}

type Payments struct {
	State   *store.Store
	Gateway gateway.Gateway

	mu      sync.Mutex
	intents map[string]string // перевод -> платёжное поручение
}

// Создание сервиса
func NewPayments(state *store.Store, gw gateway.Gateway) *Payments {
	return &Payments{
		State:   state,
		Gateway: gw,
		intents: make(map[string]string),
	}
}

// CreateIntent - создание платёжного поручения на шлюзе. Пустая валюта
// заменяется валютой по умолчанию, проверка обязательных полей выполнена
// выше по стеку.
func (s *Payments) CreateIntent(ctx context.Context, amount float64, currency string, recipientWallet string) (*gateway.Intent, error) {
	if currency == "" {
		currency = DefaultCurrency
	}

	intent, err := s.Gateway.CreateIntent(ctx, amount, currency, recipientWallet)
	if err != nil {
		logger.Error("Failed to create payment intent:", zap.Error(err))
		return nil, err
	}
	return intent, nil
}

// Send - перевод средств другому пользователю. Достаточность баланса
// проверяется здесь, на вызывающей стороне хранилища состояния: сами
// действия AddWithdrawal/AddTransaction входных данных не проверяют.
func (s *Payments) Send(ctx context.Context, senderUsername string, recipientUsername string, amount decimal.Decimal) (models.Transaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return models.Transaction{}, ErrInvalidAmount
	}

	recipient, ok := s.State.UserByUsername(recipientUsername)
	if !ok {
		logger.Warn("Recipient not found", recipientUsername)
		return models.Transaction{}, ErrRecipientNotFound
	}

	// проверяем, достаточно ли средств для перевода
	if s.State.Snapshot().Ledger.Balance.LessThan(amount) {
		return models.Transaction{}, ErrInsufficientFunds
	}

	floatAmount, _ := amount.Float64()
	intent, err := s.Gateway.CreateIntent(ctx, floatAmount, DefaultCurrency, recipient.WalletAddress)
	if err != nil {
		logger.Error("Failed to create payment intent:", zap.Error(err))
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		ID:               "tx_" + uuid.New().String(),
		SenderID:         store.CurrentUserID,
		ReceiverID:       recipient.ID,
		SenderUsername:   senderUsername,
		ReceiverUsername: recipient.Username,
		Amount:           amount,
		Status:           models.TransactionStatusPending,
		CreatedAt:        time.Now(),
	}
	s.State.AddTransaction(tx)

	s.mu.Lock()
	s.intents[tx.ID] = intent.ID
	s.mu.Unlock()

	logger.Info("Transfer created", tx.ID, recipient.Username)
	return tx, nil
}

// PendingSettlements - незавершённые переводы для обработки
func (s *Payments) PendingSettlements(_ context.Context, count int) ([]string, error) {
	pending := s.State.PendingTransactions(count)

	ids := make([]string, 0, len(pending))
	for _, tx := range pending {
		ids = append(ids, tx.ID)
	}
	return ids, nil
}

// Settle - попытка завершения перевода по состоянию поручения на шлюзе.
// Агрегаты счёта обновляются ровно один раз: списание применяется
// только при переходе перевода из незавершённого статуса в успешный.
func (s *Payments) Settle(ctx context.Context, transactionID string) error {
	tx, ok := s.State.TransactionByID(transactionID)
	if !ok || tx.Status != models.TransactionStatusPending {
		return nil
	}

	s.mu.Lock()
	intentID, ok := s.intents[transactionID]
	s.mu.Unlock()
	if !ok {
		// перевод без поручения (создан до перезапуска) завершаем с ошибкой
		s.State.SettleTransaction(transactionID, models.TransactionStatusFailed, "")
		return nil
	}

	intent, err := s.Gateway.GetIntent(ctx, intentID)
	if err != nil {
		return err
	}

	switch intent.Status {
	case gateway.IntentStatusPending:
		return nil
	case gateway.IntentStatusSuccess:
		if s.State.SettleTransaction(transactionID, models.TransactionStatusSuccess, intent.TxHash) {
			s.State.AddWithdrawal(tx.Amount)
			logger.Info("Transfer settled", transactionID, intent.TxHash)
		}
	default:
		s.State.SettleTransaction(transactionID, models.TransactionStatusFailed, "")
		logger.Warn("Transfer failed on gateway", transactionID, intent.Status)
	}

	s.mu.Lock()
	delete(s.intents, transactionID)
	s.mu.Unlock()
	return nil
}
