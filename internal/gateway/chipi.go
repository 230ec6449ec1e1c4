package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/sethvargo/go-retry"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Chipi - HTTP-клиент платёжного шлюза. Временные ошибки шлюза
// повторяются с экспоненциальной задержкой, ответ 429 блокирует
// запросы на время из Retry-After.
type Chipi struct {
	baseURL    string
	httpClient HTTPClient
	limiter    *RateLimiter
}

func NewChipi(baseURL string, client HTTPClient) *Chipi {
	return &Chipi{
		baseURL:    baseURL,
		httpClient: client,
		limiter:    NewRateLimiter(),
	}
}

// intentRequest - тело запроса создания поручения
type intentRequest struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	RecipientWallet string  `json:"recipientWallet"`
}

// payRequest - тело запроса проведения платежа
type payRequest struct {
	Pin string `json:"pin"`
}

func (c *Chipi) CreateIntent(ctx context.Context, amount float64, currency string, recipientWallet string) (*Intent, error) {
	body, err := json.Marshal(intentRequest{Amount: amount, Currency: currency, RecipientWallet: recipientWallet})
	if err != nil {
		return nil, err
	}
	return c.doIntent(ctx, "POST", c.baseURL+"/v1/intents", body)
}

func (c *Chipi) Pay(ctx context.Context, intentID string, pin string) (string, error) {
	body, err := json.Marshal(payRequest{Pin: pin})
	if err != nil {
		return "", err
	}
	intent, err := c.doIntent(ctx, "POST", c.baseURL+"/v1/intents/"+intentID+"/pay", body)
	if err != nil {
		return "", err
	}
	return intent.TxHash, nil
}

func (c *Chipi) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	return c.doIntent(ctx, "GET", c.baseURL+"/v1/intents/"+intentID, nil)
}

// doIntent - запрос к шлюзу с повторами на временных ошибках
func (c *Chipi) doIntent(ctx context.Context, method string, url string, body []byte) (*Intent, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var result Intent
	backoff := retry.WithMaxRetries(3, retry.NewExponential(500*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var reader *bytes.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		} else {
			reader = bytes.NewReader(nil)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			// сетевые ошибки считаем временными
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		switch {
		case resp.StatusCode == http.StatusOK:
			return json.NewDecoder(resp.Body).Decode(&result)
		case resp.StatusCode == http.StatusNotFound:
			return ErrIntentNotFound
		case resp.StatusCode == http.StatusTooManyRequests:
			rateErr := NewRateLimitError(resp.Header)
			logger.Warn("Too many requests to payment gateway")
			c.limiter.BlockFor(rateErr.RetryAfter)
			return rateErr
		case resp.StatusCode >= http.StatusInternalServerError:
			return retry.RetryableError(ErrServiceUnavailable)
		default:
			return fmt.Errorf("unexpected gateway status: %d", resp.StatusCode)
		}
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}
