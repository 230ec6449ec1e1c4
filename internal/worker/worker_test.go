package worker

import (
	"context"
	"testing"

	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/gateway"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/services"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/store"
	"github.com/shopspring/decimal"
)

func TestWorker_ProcessSettlements(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}

	state := store.NewStore(context.Background(), session.NewMemory())
	payments := services.NewPayments(state, gateway.NewFake(0))

	amount := decimal.NewFromFloat(10.50)
	tx, err := payments.Send(context.Background(), "you", "alex_crypto", amount)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	before := state.Snapshot().Ledger

	worker := NewSettlementWorker(payments, cfg.Gateway.BatchSize, cfg.Gateway.PollInterval)
	worker.ProcessSettlements(context.Background())

	settled, ok := state.TransactionByID(tx.ID)
	if !ok || settled.Status != models.TransactionStatusSuccess {
		t.Fatalf("Expected settled transfer, got: %+v", settled)
	}
	if !state.Snapshot().Ledger.Balance.Equal(before.Balance.Sub(amount)) {
		t.Errorf("Expected balance decreased by '%s'", amount)
	}

	// повторная обработка пустой пачки безопасна
	worker.ProcessSettlements(context.Background())
	if !state.Snapshot().Ledger.Balance.Equal(before.Balance.Sub(amount)) {
		t.Errorf("Expected withdrawal applied exactly once")
	}
}
