package services

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/gateway"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/store"
	"github.com/shopspring/decimal"
)

func newTestPayments(t *testing.T) (*Payments, *store.Store) {
	t.Helper()

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}

	state := store.NewStore(context.Background(), session.NewMemory())
	// нулевая задержка - поручение успешно сразу после создания
	return NewPayments(state, gateway.NewFake(0)), state
}

func TestPayments_Send(t *testing.T) {
	testCases := []struct {
		Name          string
		Recipient     string
		Amount        decimal.Decimal
		ExpectedError error
	}{
		{
			Name:      "Valid transfer #1",
			Recipient: "alex_crypto",
			Amount:    decimal.NewFromFloat(10.50),
		},
		{
			Name:          "Zero amount #2",
			Recipient:     "alex_crypto",
			Amount:        decimal.Zero,
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Negative amount #3",
			Recipient:     "alex_crypto",
			Amount:        decimal.NewFromInt(-5),
			ExpectedError: ErrInvalidAmount,
		},
		{
			Name:          "Unknown recipient #4",
			Recipient:     "nobody",
			Amount:        decimal.NewFromInt(10),
			ExpectedError: ErrRecipientNotFound,
		},
		{
			Name:          "Insufficient funds #5",
			Recipient:     "alex_crypto",
			Amount:        decimal.NewFromInt(1000000),
			ExpectedError: ErrInsufficientFunds,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			payments, state := newTestPayments(t)
			before := state.Snapshot().Ledger

			tx, err := payments.Send(context.Background(), "you", tc.Recipient, tc.Amount)
			if tc.ExpectedError != nil {
				if !errors.Is(err, tc.ExpectedError) {
					t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if tx.Status != models.TransactionStatusPending {
				t.Errorf("Expected status '%s', got: '%s'", models.TransactionStatusPending, tx.Status)
			}
			if !tx.Amount.Equal(tc.Amount) {
				t.Errorf("Expected amount '%s', got: '%s'", tc.Amount, tx.Amount)
			}
			// баланс не меняется до завершения перевода
			if !state.Snapshot().Ledger.Balance.Equal(before.Balance) {
				t.Errorf("Expected balance unchanged until settlement")
			}
		})
	}
}

func TestPayments_Settle(t *testing.T) {
	payments, state := newTestPayments(t)
	before := state.Snapshot().Ledger

	amount := decimal.NewFromFloat(10.50)
	tx, err := payments.Send(context.Background(), "you", "alex_crypto", amount)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	if err := payments.Settle(context.Background(), tx.ID); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	settled, ok := state.TransactionByID(tx.ID)
	if !ok || settled.Status != models.TransactionStatusSuccess {
		t.Fatalf("Expected settled transaction, got: %+v", settled)
	}
	if settled.TxHash == "" || settled.CompletedAt == nil {
		t.Errorf("Expected tx hash and completion time, got: %+v", settled)
	}
	if !state.Snapshot().Ledger.Balance.Equal(before.Balance.Sub(amount)) {
		t.Errorf("Expected balance decreased by '%s'", amount)
	}

	// повторное завершение не списывает средства второй раз
	if err := payments.Settle(context.Background(), tx.ID); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if !state.Snapshot().Ledger.Balance.Equal(before.Balance.Sub(amount)) {
		t.Errorf("Expected withdrawal applied exactly once")
	}
}

func TestPayments_SettleOrphaned(t *testing.T) {
	payments, state := newTestPayments(t)
	before := state.Snapshot().Ledger

	// незавершённый перевод без платёжного поручения
	state.AddTransaction(models.Transaction{
		ID:     "tx_orphan",
		Amount: decimal.NewFromInt(5),
		Status: models.TransactionStatusPending,
	})

	if err := payments.Settle(context.Background(), "tx_orphan"); err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	tx, _ := state.TransactionByID("tx_orphan")
	if tx.Status != models.TransactionStatusFailed {
		t.Errorf("Expected status '%s', got: '%s'", models.TransactionStatusFailed, tx.Status)
	}
	if !state.Snapshot().Ledger.Balance.Equal(before.Balance) {
		t.Errorf("Expected balance unchanged for failed transfer")
	}
}

func TestPayments_PendingSettlements(t *testing.T) {
	payments, _ := newTestPayments(t)

	tx, err := payments.Send(context.Background(), "you", "alex_crypto", decimal.NewFromInt(1))
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	ids, err := payments.PendingSettlements(context.Background(), 10)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	found := false
	for _, id := range ids {
		if id == tx.ID {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected transaction '%s' in pending settlements %v", tx.ID, ids)
	}
}

func TestPayments_CreateIntent(t *testing.T) {
	payments, _ := newTestPayments(t)

	intent, err := payments.CreateIntent(context.Background(), 10.0, "", "0x123")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if intent.Currency != DefaultCurrency {
		t.Errorf("Expected currency '%s', got: '%s'", DefaultCurrency, intent.Currency)
	}
	if intent.Status != gateway.IntentStatusPending {
		t.Errorf("Expected status '%s', got: '%s'", gateway.IntentStatusPending, intent.Status)
	}
}
