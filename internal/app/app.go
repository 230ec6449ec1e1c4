package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/gateway"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/network/router"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/store"
	"github.com/denmor86/invipay/internal/worker"
)

// NewSessionStore - выбор постоянного хранилища сессий по настройкам:
// Postgres, Redis или память процесса
func NewSessionStore(ctx context.Context, cfg config.SessionConfig) (session.Store, error) {
	switch {
	case cfg.DatabaseDSN != "":
		postgres, err := session.NewPostgres(cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		if err := postgres.Initialize(); err != nil {
			return nil, err
		}
		return postgres, nil
	case cfg.RedisAddr != "":
		return session.NewRedis(ctx, cfg.RedisAddr)
	default:
		return session.NewMemory(), nil
	}
}

// NewGateway - выбор платёжного шлюза: HTTP-клиент по заданному адресу
// или встроенная заглушка
func NewGateway(cfg config.GatewayConfig) gateway.Gateway {
	if cfg.GatewayAddr != "" {
		return gateway.NewChipi(cfg.GatewayAddr, &http.Client{Timeout: cfg.ProcessTimeout})
	}
	return gateway.NewFake(cfg.SettleDelay)
}

func Run(config config.Config) {

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessions, err := NewSessionStore(ctx, config.Session)
	if err != nil {
		logger.Panic("can't initialize session storage:", err)
	}

	state := store.NewStore(ctx, sessions)
	router := router.NewRouter(config, sessions, state, NewGateway(config.Gateway))

	server := &http.Server{
		Addr:    config.Server.ListenAddr,
		Handler: router.HandleRouter(),
	}
	// Создание и запуск обработчика незавершённых переводов
	worker := worker.NewSettlementWorker(router.Payments, config.Gateway.BatchSize, config.Gateway.PollInterval)
	worker.Start(ctx)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(
			"Starting server config:", config,
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("error listen server", err.Error())
		}
	}()

	<-stop
	logger.Info("Shutdown server")
	worker.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error shutdown server", err.Error())
	}
	logger.Info("Server stopped")
}
