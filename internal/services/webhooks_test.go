package services

import (
	"context"
	"testing"

	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/store"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
)

func TestWebhooks_ProcessEvent(t *testing.T) {
	testCases := []struct {
		Name           string
		Event          models.WebhookEvent
		ExpectedCredit decimal.Decimal
	}{
		{
			Name: "Successful incoming payment credited #1",
			Event: models.WebhookEvent{
				Event: models.WebhookEventTransactionSent,
				Data: models.WebhookData{
					Transaction: models.WebhookTransaction{
						ID:            "0xdeadbeef",
						Status:        models.WebhookTransactionSuccess,
						Amount:        25.75,
						Currency:      "USDC",
						SenderAddress: "0xSender",
					},
				},
			},
			ExpectedCredit: decimal.NewFromFloat(25.75),
		},
		{
			Name: "Non-success sent event ignored #2",
			Event: models.WebhookEvent{
				Event: models.WebhookEventTransactionSent,
				Data: models.WebhookData{
					Transaction: models.WebhookTransaction{ID: "0x1", Status: "PENDING", Amount: 10},
				},
			},
			ExpectedCredit: decimal.Zero,
		},
		{
			Name: "Failed event ignored #3",
			Event: models.WebhookEvent{
				Event: models.WebhookEventTransactionFailed,
				Data: models.WebhookData{
					Transaction: models.WebhookTransaction{ID: "0x2", Status: "FAILED", Amount: 10},
				},
			},
			ExpectedCredit: decimal.Zero,
		},
		{
			Name: "Unknown event ignored #4",
			Event: models.WebhookEvent{
				Event: "transaction.refunded",
			},
			ExpectedCredit: decimal.Zero,
		},
	}

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			state := store.NewStore(context.Background(), session.NewMemory())
			webhooks := NewWebhooks(NewLedgerFulfiller(state))
			before := state.Snapshot()

			if err := webhooks.ProcessEvent(context.Background(), tc.Event); err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}

			after := state.Snapshot()
			if !after.Ledger.Balance.Equal(before.Ledger.Balance.Add(tc.ExpectedCredit)) {
				t.Errorf("Expected balance credited by '%s', got: %s -> %s",
					tc.ExpectedCredit, before.Ledger.Balance, after.Ledger.Balance)
			}
			if !after.Ledger.TotalReceived.Equal(before.Ledger.TotalReceived.Add(tc.ExpectedCredit)) {
				t.Errorf("Expected total received credited by '%s'", tc.ExpectedCredit)
			}

			if tc.ExpectedCredit.IsZero() {
				diff := cmp.Diff(before.Transactions, after.Transactions)
				if len(diff) != 0 {
					t.Errorf("expected transactions unchanged:\n %s", diff)
				}
				return
			}

			if len(after.Transactions) != len(before.Transactions)+1 {
				t.Fatalf("Expected incoming transaction recorded, got: %d", len(after.Transactions))
			}
			incoming := after.Transactions[0]
			if incoming.Status != models.TransactionStatusSuccess {
				t.Errorf("Expected status '%s', got: '%s'", models.TransactionStatusSuccess, incoming.Status)
			}
			if incoming.ReceiverID != store.CurrentUserID {
				t.Errorf("Expected receiver '%s', got: '%s'", store.CurrentUserID, incoming.ReceiverID)
			}
			if incoming.TxHash != tc.Event.Data.Transaction.ID {
				t.Errorf("Expected tx hash '%s', got: '%s'", tc.Event.Data.Transaction.ID, incoming.TxHash)
			}
		})
	}
}
