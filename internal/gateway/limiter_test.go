package gateway

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"
)

func TestRateLimiter_Unblocked(t *testing.T) {
	rl := NewRateLimiter()

	if err := rl.Wait(context.Background()); err != nil {
		t.Errorf("Expected no error, got: '%v'", err)
	}
}

func TestRateLimiter_BlockForReleasesWaiters(t *testing.T) {
	rl := NewRateLimiter()
	rl.BlockFor(50 * time.Millisecond)

	// ожидающий без дедлайна в контексте должен освободиться
	// по окончании окна блокировки, а не висеть бесконечно
	done := make(chan error, 1)
	go func() {
		done <- rl.Wait(context.Background())
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected no error, got: '%v'", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("Expected waiter released after the block window")
	}
}

func TestRateLimiter_BlockForCancellation(t *testing.T) {
	rl := NewRateLimiter()
	rl.BlockFor(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := rl.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected error '%v', got: '%v'", context.DeadlineExceeded, err)
	}
}

func TestRateLimiter_BlockForKeepsLongestWindow(t *testing.T) {
	rl := NewRateLimiter()
	rl.BlockFor(time.Minute)
	rl.BlockFor(time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	// короткое окно не укорачивает уже действующее длинное
	if err := rl.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Expected error '%v', got: '%v'", context.DeadlineExceeded, err)
	}
}

func TestParseRetryAfter(t *testing.T) {
	testCases := []struct {
		Name     string
		Header   string
		Expected time.Duration
	}{
		{
			Name:     "Seconds #1",
			Header:   "30",
			Expected: 30 * time.Second,
		},
		{
			Name:     "Missing header #2",
			Header:   "",
			Expected: time.Minute,
		},
		{
			Name:     "Garbage #3",
			Header:   "soon",
			Expected: time.Minute,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			headers := http.Header{}
			if tc.Header != "" {
				headers.Set("Retry-After", tc.Header)
			}
			if got := ParseRetryAfter(headers); got != tc.Expected {
				t.Errorf("Expected '%v', got: '%v'", tc.Expected, got)
			}
		})
	}
}
