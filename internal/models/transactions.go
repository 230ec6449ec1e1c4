package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы переводов
const (
	TransactionStatusPending = "pending"
	TransactionStatusSuccess = "success"
	TransactionStatusFailed  = "failed"
)

// Transaction - модель перевода между пользователями
type Transaction struct {
	ID               string
	SenderID         string
	ReceiverID       string
	SenderUsername   string
	ReceiverUsername string
	Amount           decimal.Decimal
	Status           string
	TxHash           string
	CreatedAt        time.Time
	CompletedAt      *time.Time
}

// SendRequest - модель запроса перевода средств другому пользователю
type SendRequest struct {
	RecipientUsername string  `json:"recipientUsername"`
	Amount            float64 `json:"amount"`
}

// SendResponse - модель ответа на запрос перевода
type SendResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId,omitempty"`
	Error         string `json:"error,omitempty"`
}

// TransactionResponse - модель перевода для выдачи
type TransactionResponse struct {
	ID               string  `json:"id"`
	SenderUsername   string  `json:"senderUsername"`
	ReceiverUsername string  `json:"receiverUsername"`
	Amount           float64 `json:"amount"`
	Status           string  `json:"status"`
	TxHash           string  `json:"txHash,omitempty"`
	CreatedAt        string  `json:"createdAt"`
	CompletedAt      string  `json:"completedAt,omitempty"`
}

// MakeTransactionResponse - преобразование модели перевода для выдачи
func MakeTransactionResponse(tx Transaction) TransactionResponse {
	amount, _ := tx.Amount.Float64()
	response := TransactionResponse{
		ID:               tx.ID,
		SenderUsername:   tx.SenderUsername,
		ReceiverUsername: tx.ReceiverUsername,
		Amount:           amount,
		Status:           tx.Status,
		TxHash:           tx.TxHash,
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.CompletedAt != nil {
		response.CompletedAt = tx.CompletedAt.Format(time.RFC3339)
	}
	return response
}
