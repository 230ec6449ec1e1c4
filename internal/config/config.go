package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env"
	"github.com/spf13/pflag"
)

type Arguments struct {
	ListenAddr    string `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"secret"`
	WebhookSecret string `env:"CHIPI_WEBHOOK_SECRET" envDefault:""`
	GatewayAddr   string `env:"CHIPI_GATEWAY_ADDRESS" envDefault:""`
	SessionDSN    string `env:"SESSION_DSN" envDefault:""`
	RedisAddr     string `env:"REDIS_ADDRESS" envDefault:""`
}

// ServerConfig модель настроек сервера
type ServerConfig struct {
	ListenAddr    string
	LogLevel      string
	JWTSecret     string
	WebhookSecret string
}

// SessionConfig модель настроек хранилища сессий.
// Если DSN и RedisAddr пустые - сессии хранятся в памяти процесса.
type SessionConfig struct {
	DatabaseDSN string
	RedisAddr   string
}

// GatewayConfig модель настроек работы с платёжным шлюзом Chipi
type GatewayConfig struct {
	GatewayAddr    string
	SettleDelay    time.Duration
	BatchSize      int
	PollInterval   time.Duration
	ProcessTimeout time.Duration
}

// Config модель настроек сервиса
type Config struct {
	Server  ServerConfig
	Session SessionConfig
	Gateway GatewayConfig
}

func NewConfig() Config {

	var args Arguments
	if err := env.Parse(&args); err != nil {
		panic(fmt.Sprintf("Failed to parse enviroment var: %s", err.Error()))
	}

	var (
		server    = pflag.StringP("server", "a", args.ListenAddr, "Server listen address in a form host:port.")
		logLevel  = pflag.StringP("log_level", "l", args.LogLevel, "Log level.")
		secret    = pflag.StringP("secret", "s", args.JWTSecret, "Secret to JWT")
		webhook   = pflag.StringP("webhook_secret", "w", args.WebhookSecret, "Secret to verify Chipi webhook signatures")
		gateway   = pflag.StringP("gateway", "g", args.GatewayAddr, "Chipi gateway address. Empty - in-process fake gateway.")
		DSN       = pflag.StringP("dsn", "d", args.SessionDSN, "Database DSN to session storage")
		redisAddr = pflag.StringP("redis", "r", args.RedisAddr, "Redis address to session storage")
	)
	pflag.Parse()

	return Config{
		Server: ServerConfig{
			ListenAddr:    *server,
			LogLevel:      *logLevel,
			JWTSecret:     *secret,
			WebhookSecret: *webhook,
		},
		Session: SessionConfig{
			DatabaseDSN: *DSN,
			RedisAddr:   *redisAddr,
		},
		Gateway: GatewayConfig{
			GatewayAddr:    *gateway,
			SettleDelay:    1500 * time.Millisecond,
			BatchSize:      10,
			PollInterval:   2 * time.Second,
			ProcessTimeout: 10 * time.Second,
		},
	}
}

func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			ListenAddr:    "localhost:8080",
			LogLevel:      "info",
			JWTSecret:     "secret",
			WebhookSecret: "",
		},
		Session: SessionConfig{},
		Gateway: GatewayConfig{
			SettleDelay:    1500 * time.Millisecond,
			BatchSize:      10,
			PollInterval:   2 * time.Second,
			ProcessTimeout: 10 * time.Second,
		},
	}
}
