package models

// Типы платёжных методов
const (
	PaymentMethodTypeBank = "bank"
	PaymentMethodTypeCard = "card"
)

// PaymentMethod - модель платёжного метода пользователя.
// Инвариант: не более одного метода с IsDefault = true.
type PaymentMethod struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Last4     string `json:"last4"`
	IsDefault bool   `json:"isDefault"`
}

// Провайдеры внешних аккаунтов
const (
	SocialProviderGoogle = "google"
	SocialProviderGithub = "github"
	SocialProviderEmail  = "email"
)

// SocialConnection - модель привязки внешнего аккаунта.
// По одной записи на провайдера, записи не добавляются и не удаляются.
type SocialConnection struct {
	Provider  string `json:"provider"`
	Connected bool   `json:"connected"`
	Email     string `json:"email,omitempty"`
}

// PaymentRequest - модель запроса создания платежа, приходит извне
type PaymentRequest struct {
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	RecipientWallet string  `json:"recipientWallet"`
}

// PaymentIntentResponse - модель созданного, но не проведённого платежа
type PaymentIntentResponse struct {
	ID              string  `json:"id"`
	Amount          float64 `json:"amount"`
	Currency        string  `json:"currency"`
	Status          string  `json:"status"`
	RecipientWallet string  `json:"recipientWallet"`
}

// PaymentResponse - модель ответа на запрос создания платежа
type PaymentResponse struct {
	Success       bool                  `json:"success"`
	PaymentIntent PaymentIntentResponse `json:"paymentIntent"`
}
