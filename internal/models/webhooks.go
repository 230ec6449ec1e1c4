package models

// Виды событий вебхука Chipi
const (
	WebhookEventTransactionSent   = "transaction.sent"
	WebhookEventTransactionFailed = "transaction.failed"
)

// Статус успешного перевода в нотификации шлюза
const WebhookTransactionSuccess = "SUCCESS"

// WebhookTransaction - данные перевода из нотификации шлюза
type WebhookTransaction struct {
	ID            string  `json:"id"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	SenderAddress string  `json:"senderAddress"`
}

// WebhookData - вложенные данные события вебхука
type WebhookData struct {
	Transaction WebhookTransaction `json:"transaction"`
}

// WebhookEvent - модель события вебхука, приходит извне
type WebhookEvent struct {
	Event string      `json:"event"`
	Data  WebhookData `json:"data"`
}

// WebhookResponse - модель ответа на принятую нотификацию
type WebhookResponse struct {
	Received bool `json:"received"`
}
