package store

import (
	"time"

	"github.com/denmor86/invipay/internal/models"
	"github.com/shopspring/decimal"
)

// Идентификатор текущего пользователя в демонстрационных данных
const CurrentUserID = "user_current"

// SeedState - начальное состояние с демонстрационными данными:
// агрегаты счёта, контакты, история переводов, платёжные методы,
// привязки аккаунтов и настройки по умолчанию.
func SeedState() State {
	return State{
		Ledger: models.LedgerTotals{
			Balance:            decimal.NewFromFloat(1234.56),
			MonthlyDeposits:    decimal.NewFromFloat(456.78),
			MonthlyWithdrawals: decimal.NewFromFloat(123.45),
			TotalReceived:      decimal.NewFromFloat(2500.00),
			TotalSent:          decimal.NewFromFloat(1500.00),
		},
		Users:        SeedUsers(),
		Transactions: SeedTransactions(),
		Settings: models.UserSettings{
			Notifications: models.NotificationSettings{
				Push:              true,
				Email:             true,
				TransactionAlerts: true,
				SecurityAlerts:    true,
			},
			Privacy: models.PrivacySettings{
				ShowProfile:           true,
				ShowActivity:          false,
				AllowSearchByUsername: true,
			},
			Preferences: models.PreferenceSettings{
				Language: "en",
				Currency: "USD",
				Theme:    "dark",
			},
		},
		PaymentMethods: []models.PaymentMethod{
			{ID: "pm_1", Type: models.PaymentMethodTypeBank, Name: "Chase Checking", Last4: "4242", IsDefault: true},
			{ID: "pm_2", Type: models.PaymentMethodTypeCard, Name: "Visa", Last4: "1234", IsDefault: false},
		},
		SocialConnections: []models.SocialConnection{
			{Provider: models.SocialProviderEmail, Connected: true, Email: "you@example.com"},
			{Provider: models.SocialProviderGoogle, Connected: false},
			{Provider: models.SocialProviderGithub, Connected: false},
		},
	}
}

// SeedUsers - демонстрационные контакты
func SeedUsers() []models.User {
	return []models.User{
		{
			ID:            "user_1",
			Username:      "alex_crypto",
			Email:         "alex@example.com",
			DisplayName:   "Alex Chen",
			WalletAddress: "0x1234...5678",
			KeyID:         "chipi_key_1",
			CreatedAt:     time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "user_2",
			Username:      "sarah_dev",
			Email:         "sarah@example.com",
			DisplayName:   "Sarah Johnson",
			WalletAddress: "0x2345...6789",
			KeyID:         "chipi_key_2",
			CreatedAt:     time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "user_3",
			Username:      "mike_trader",
			Email:         "mike@example.com",
			DisplayName:   "Mike Rodriguez",
			WalletAddress: "0x3456...7890",
			KeyID:         "chipi_key_3",
			CreatedAt:     time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            "user_4",
			Username:      "emma_tech",
			Email:         "emma@example.com",
			DisplayName:   "Emma Wilson",
			WalletAddress: "0x4567...8901",
			KeyID:         "chipi_key_4",
			CreatedAt:     time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:            CurrentUserID,
			Username:      "you",
			Email:         "you@example.com",
			DisplayName:   "You",
			WalletAddress: "0x5678...9012",
			KeyID:         "chipi_key_current",
			CreatedAt:     time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

// SeedTransactions - демонстрационная история переводов, новые сверху
func SeedTransactions() []models.Transaction {
	twoHoursAgo := time.Now().Add(-2 * time.Hour)
	yesterday := time.Now().Add(-24 * time.Hour)
	threeDaysAgo := time.Now().Add(-3 * 24 * time.Hour)

	return []models.Transaction{
		{
			ID:               "tx_1",
			SenderID:         "user_2",
			ReceiverID:       CurrentUserID,
			SenderUsername:   "sarah_dev",
			ReceiverUsername: "you",
			Amount:           decimal.NewFromFloat(45.0),
			Status:           models.TransactionStatusSuccess,
			TxHash:           "0xabc123...",
			CreatedAt:        twoHoursAgo,
			CompletedAt:      &twoHoursAgo,
		},
		{
			ID:               "tx_2",
			SenderID:         CurrentUserID,
			ReceiverID:       "user_1",
			SenderUsername:   "you",
			ReceiverUsername: "alex_crypto",
			Amount:           decimal.NewFromFloat(120.5),
			Status:           models.TransactionStatusSuccess,
			TxHash:           "0xdef456...",
			CreatedAt:        yesterday,
			CompletedAt:      &yesterday,
		},
		{
			ID:               "tx_3",
			SenderID:         "user_3",
			ReceiverID:       CurrentUserID,
			SenderUsername:   "mike_trader",
			ReceiverUsername: "you",
			Amount:           decimal.NewFromFloat(15.75),
			Status:           models.TransactionStatusSuccess,
			TxHash:           "0xghi789...",
			CreatedAt:        threeDaysAgo,
			CompletedAt:      &threeDaysAgo,
		},
	}
}
