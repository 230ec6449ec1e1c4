package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "chipi-gateway",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			// 5 попыток достучатся до шлюза
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("Circuit Breaker '%s': %s → %s", name, from, to)
		},
	})
}

// SettlementWorker - фоновый обработчик незавершённых переводов.
// Начатый перевод всегда доводится до конечного статуса, отмена
// переводов не поддерживается.
type SettlementWorker struct {
	Payments     services.PaymentsService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

// NewSettlementWorker - конструктор обработчика незавершённых переводов
func NewSettlementWorker(payments services.PaymentsService, batchSize int, pollInterval time.Duration) *SettlementWorker {
	return &SettlementWorker{
		Payments:     payments,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    batchSize,
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *SettlementWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *SettlementWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *SettlementWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("SettlementWorker signal stop")
			return
		case <-ticker.C:
			w.ProcessSettlements(ctx)
		}
	}
}

// ProcessSettlements - обработка пачки незавершённых переводов
func (w *SettlementWorker) ProcessSettlements(ctx context.Context) {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn("%s unavailable. Waiting...", w.Breaker.Name())
		return
	}

	transactionIDs, err := w.Payments.PendingSettlements(ctx, w.BatchSize)

	if err != nil {
		logger.Error("error get transfers for processing", err)
		return
	}

	for _, transactionID := range transactionIDs {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Payments.Settle(ctx, transactionID)
		})

		if err != nil {
			logger.Error("Error transfer processing", err)
		}
	}
}
