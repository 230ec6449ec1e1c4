package gateway

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель частоты запросов к шлюзу. По умолчанию
// запросы не ограничены, лимит включается по ответу 429.
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	blockedUntil time.Time
}

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Inf, 1),
	}
}

// Wait - ожидание разрешения на запрос. Во время окна блокировки
// ожидание ограничено концом окна, после него запросы продолжаются.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	rl.mu.Lock()
	wait := time.Until(rl.blockedUntil)
	rl.mu.Unlock()

	if wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return rl.limiter.Wait(ctx)
}

// BlockFor - полная блокировка запросов на заданное время.
// Уже начатое более позднее окно не укорачивается.
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if until := time.Now().Add(duration); until.After(rl.blockedUntil) {
		rl.blockedUntil = until
	}
}

// ParseRetryAfter - разбор заголовка Retry-After (секунды или дата)
func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute // default
	}

	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}

	return time.Minute // fallback
}
