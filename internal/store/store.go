package store

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/username"
	"github.com/shopspring/decimal"
)

// State - снимок состояния приложения. Наблюдатели и читатели получают
// копию, исходное состояние меняется только именованными действиями.
type State struct {
	Authenticated     bool
	UserEmail         string
	CurrentUser       *models.UserResponse
	Ledger            models.LedgerTotals
	Transactions      []models.Transaction
	Users             []models.User
	Settings          models.UserSettings
	PaymentMethods    []models.PaymentMethod
	SocialConnections []models.SocialConnection
}

// Observer - подписчик на изменения состояния
type Observer func(state State)

// Store - единственный источник истины о состоянии приложения.
// Все действия сериализуются одним мьютексом: каждое действие - это
// атомарное чтение-изменение-запись одного снимка состояния.
// Действия тотальны: суммы и достаточность баланса не проверяются,
// за корректность входа отвечает вызывающий.
type Store struct {
	mu        sync.Mutex
	sessions  session.Store
	state     State
	observers []Observer
}

// NewStore - создание хранилища состояния. Начальное состояние
// заполняется демонстрационными данными, сессия восстанавливается из
// постоянного хранилища. Битая запись сессии трактуется как её
// отсутствие: сервис стартует неавторизованным.
func NewStore(ctx context.Context, sessions session.Store) *Store {
	s := &Store{
		sessions: sessions,
		state:    SeedState(),
	}
	s.rehydrate(ctx)
	return s
}

// rehydrate - восстановление сессии при старте
func (s *Store) rehydrate(ctx context.Context) {
	data, err := s.sessions.Get(ctx, session.UserKey)
	if err != nil {
		return
	}
	var record models.Session
	if err := json.Unmarshal(data, &record); err != nil {
		logger.Warn("Malformed persisted session, starting unauthenticated", err)
		return
	}
	s.state.Authenticated = true
	s.state.UserEmail = record.Email
	s.state.CurrentUser = &models.UserResponse{Email: record.Email, Username: record.Username}
}

// Subscribe - добавление наблюдателя. Наблюдатели вызываются после
// каждого действия со снимком нового состояния, вне блокировки.
func (s *Store) Subscribe(observer Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, observer)
}

// snapshot - копия состояния, вызывается под блокировкой
func (s *Store) snapshot() State {
	state := s.state
	state.Transactions = append([]models.Transaction(nil), s.state.Transactions...)
	state.Users = append([]models.User(nil), s.state.Users...)
	state.PaymentMethods = append([]models.PaymentMethod(nil), s.state.PaymentMethods...)
	state.SocialConnections = append([]models.SocialConnection(nil), s.state.SocialConnections...)
	if s.state.CurrentUser != nil {
		user := *s.state.CurrentUser
		state.CurrentUser = &user
	}
	return state
}

// apply - выполнение действия и оповещение наблюдателей
func (s *Store) apply(action func(state *State)) State {
	s.mu.Lock()
	action(&s.state)
	state := s.snapshot()
	observers := append([]Observer(nil), s.observers...)
	s.mu.Unlock()

	for _, observer := range observers {
		observer(state)
	}
	return state
}

// Snapshot - снимок текущего состояния
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Login - вход по email. Имя пользователя детерминированно выводится
// из email, сессия записывается в постоянное хранилище. Валидации
// email нет: пустое значение отсекается выше по стеку.
func (s *Store) Login(ctx context.Context, email string) models.UserResponse {
	name := username.Generate(email)
	record := models.Session{
		Email:     email,
		Username:  name,
		LoginTime: time.Now().Format(time.RFC3339),
	}
	data, _ := json.Marshal(record)
	// отказ постоянного хранилища не прерывает вход
	if err := s.sessions.Set(ctx, session.UserKey, data); err != nil {
		logger.Warn("Failed to persist session", err)
	}

	user := models.UserResponse{Email: email, Username: name}
	s.apply(func(state *State) {
		state.Authenticated = true
		state.UserEmail = email
		state.CurrentUser = &models.UserResponse{Email: email, Username: name}
	})
	return user
}

// Logout - выход пользователя, идемпотентен
func (s *Store) Logout(ctx context.Context) {
	if err := s.sessions.Clear(ctx, session.UserKey); err != nil {
		logger.Warn("Failed to clear persisted session", err)
	}
	s.apply(func(state *State) {
		state.Authenticated = false
		state.UserEmail = ""
		state.CurrentUser = nil
	})
}

// AddDeposit - пополнение: увеличивает баланс, месячные пополнения и
// всего получено на одну и ту же сумму
func (s *Store) AddDeposit(amount decimal.Decimal) {
	s.apply(func(state *State) {
		state.Ledger.Balance = state.Ledger.Balance.Add(amount)
		state.Ledger.MonthlyDeposits = state.Ledger.MonthlyDeposits.Add(amount)
		state.Ledger.TotalReceived = state.Ledger.TotalReceived.Add(amount)
	})
}

// AddWithdrawal - списание: уменьшает баланс, увеличивает месячные
// списания и всего отправлено. Достаточность баланса не проверяется,
// отрицательный баланс представим.
func (s *Store) AddWithdrawal(amount decimal.Decimal) {
	s.apply(func(state *State) {
		state.Ledger.Balance = state.Ledger.Balance.Sub(amount)
		state.Ledger.MonthlyWithdrawals = state.Ledger.MonthlyWithdrawals.Add(amount)
		state.Ledger.TotalSent = state.Ledger.TotalSent.Add(amount)
	})
}

// AddTransaction - добавление перевода в начало списка (новые сверху).
// Агрегаты счёта не меняются: за них отвечают AddDeposit/AddWithdrawal.
func (s *Store) AddTransaction(tx models.Transaction) {
	s.apply(func(state *State) {
		state.Transactions = append([]models.Transaction{tx}, state.Transactions...)
	})
}

// PendingTransactions - незавершённые переводы для обработки, не более count
func (s *Store) PendingTransactions(count int) []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	var pending []models.Transaction
	for _, tx := range s.state.Transactions {
		if tx.Status == models.TransactionStatusPending {
			pending = append(pending, tx)
			if len(pending) == count {
				break
			}
		}
	}
	return pending
}

// SettleTransaction - завершение незавершённого перевода. Перевод в
// конечном статусе не меняется, ложь - перевод не найден или уже завершён.
func (s *Store) SettleTransaction(id string, status string, txHash string) bool {
	settled := false
	s.apply(func(state *State) {
		for i, tx := range state.Transactions {
			if tx.ID != id || tx.Status != models.TransactionStatusPending {
				continue
			}
			now := time.Now()
			state.Transactions[i].Status = status
			state.Transactions[i].TxHash = txHash
			state.Transactions[i].CompletedAt = &now
			settled = true
			return
		}
	})
	return settled
}

// TransactionByID - поиск перевода по идентификатору
func (s *Store) TransactionByID(id string) (models.Transaction, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, tx := range s.state.Transactions {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

// AddUser - добавление пользователя в конец списка. Уникальность
// идентификатора и имени не проверяется.
func (s *Store) AddUser(user models.User) {
	s.apply(func(state *State) {
		state.Users = append(state.Users, user)
	})
}

// UserByUsername - поиск пользователя по имени
func (s *Store) UserByUsername(name string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.state.Users {
		if user.Username == name {
			return user, true
		}
	}
	return models.User{}, false
}

// UpdateSettings - частичное обновление настроек: слияние по
// подгруппам, незаполненные поля сохраняют текущие значения
func (s *Store) UpdateSettings(update models.SettingsUpdate) {
	s.apply(func(state *State) {
		if n := update.Notifications; n != nil {
			if n.Push != nil {
				state.Settings.Notifications.Push = *n.Push
			}
			if n.Email != nil {
				state.Settings.Notifications.Email = *n.Email
			}
			if n.TransactionAlerts != nil {
				state.Settings.Notifications.TransactionAlerts = *n.TransactionAlerts
			}
			if n.SecurityAlerts != nil {
				state.Settings.Notifications.SecurityAlerts = *n.SecurityAlerts
			}
		}
		if p := update.Privacy; p != nil {
			if p.ShowProfile != nil {
				state.Settings.Privacy.ShowProfile = *p.ShowProfile
			}
			if p.ShowActivity != nil {
				state.Settings.Privacy.ShowActivity = *p.ShowActivity
			}
			if p.AllowSearchByUsername != nil {
				state.Settings.Privacy.AllowSearchByUsername = *p.AllowSearchByUsername
			}
		}
		if p := update.Preferences; p != nil {
			if p.Language != nil {
				state.Settings.Preferences.Language = *p.Language
			}
			if p.Currency != nil {
				state.Settings.Preferences.Currency = *p.Currency
			}
			if p.Theme != nil {
				state.Settings.Preferences.Theme = *p.Theme
			}
		}
	})
}

// AddPaymentMethod - добавление платёжного метода в конец списка
func (s *Store) AddPaymentMethod(method models.PaymentMethod) {
	s.apply(func(state *State) {
		state.PaymentMethods = append(state.PaymentMethods, method)
	})
}

// RemovePaymentMethod - удаление платёжного метода. Удаление метода
// по умолчанию допустимо и оставляет список без метода по умолчанию.
func (s *Store) RemovePaymentMethod(id string) {
	s.apply(func(state *State) {
		methods := state.PaymentMethods[:0]
		for _, method := range state.PaymentMethods {
			if method.ID != id {
				methods = append(methods, method)
			}
		}
		state.PaymentMethods = methods
	})
}

// SetDefaultPaymentMethod - назначение метода по умолчанию. После
// вызова ровно один метод имеет IsDefault = true - совпадающий по id.
// Назначение и снятие прежнего признака выполняются одним действием.
// Несуществующий id не меняет состояние.
func (s *Store) SetDefaultPaymentMethod(id string) {
	s.apply(func(state *State) {
		exists := false
		for _, method := range state.PaymentMethods {
			if method.ID == id {
				exists = true
				break
			}
		}
		if !exists {
			return
		}
		for i := range state.PaymentMethods {
			state.PaymentMethods[i].IsDefault = state.PaymentMethods[i].ID == id
		}
	})
}

// UpdateSocialConnection - обновление привязки внешнего аккаунта.
// Неизвестный провайдер игнорируется, повторный вызов с теми же
// аргументами не меняет состояние.
func (s *Store) UpdateSocialConnection(provider string, connected bool, email string) {
	s.apply(func(state *State) {
		for i := range state.SocialConnections {
			if state.SocialConnections[i].Provider == provider {
				state.SocialConnections[i].Connected = connected
				state.SocialConnections[i].Email = email
			}
		}
	})
}
