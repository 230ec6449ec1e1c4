package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	mu       sync.Mutex
	instance *zap.SugaredLogger = nil
)

// Initialize - инициализирует логгер сервиса с заданным уровнем логирования.
// Повторный вызов пересоздаёт логгер (используется в тестах).
func Initialize(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	defer mu.Unlock()
	instance = logger.Sugar()
	return nil
}

// Get - метод получения объекта логгера
func Get() *zap.SugaredLogger {
	if instance == nil {
		panic("logger not initialized, call Initialize()")
	}
	return instance
}

// Sync - сброс буфферов логгера
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// Debug — логирование уровня Debug
func Debug(args ...interface{}) {
	Get().Debugln(args...)
}

// Info — логирование уровня Info
func Info(args ...interface{}) {
	Get().Infoln(args...)
}

// Warn — логирование уровня Warn
func Warn(args ...interface{}) {
	Get().Warnln(args...)
}

// Error — логирование уровня Error
func Error(args ...interface{}) {
	Get().Errorln(args...)
}

// Panic — логирование уровня Panic с паникой
func Panic(args ...interface{}) {
	Get().Panicln(args...)
}
