package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/models"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/store"
	"github.com/denmor86/invipay/internal/username"
	"github.com/go-chi/jwtauth/v5"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)

const (
	TokenSecterAlgo     = "HS256"
	TokenExpirationTime = 24 * time.Hour
)

// IdentityService - вход по email без пароля: учётная запись считается
// существующей, если email встречается в текущей сессии или в списке
// зарегистрированных пользователей постоянного хранилища.
type IdentityService interface {
	UserExists(ctx context.Context, email string) (bool, error)
	Register(ctx context.Context, email string) (models.UserResponse, error)
	Login(ctx context.Context, email string) (models.UserResponse, error)
	Logout(ctx context.Context)
	GenerateJWT(user models.UserResponse) (string, error)
	GetTokenAuth() *jwtauth.JWTAuth
}

type Identity struct {
	JWTAuth  *jwtauth.JWTAuth
	Sessions session.Store
	State    *store.Store
}

// Создание сервиса
func NewIdentity(cfg config.Config, sessions session.Store, state *store.Store) IdentityService {
	tokenAuth := jwtauth.New(TokenSecterAlgo, []byte(cfg.Server.JWTSecret), nil)
	return &Identity{JWTAuth: tokenAuth, Sessions: sessions, State: state}
}

// UserExists - проверка наличия учётной записи по email
func (i *Identity) UserExists(ctx context.Context, email string) (bool, error) {
	// сначала текущая сессия
	if data, err := i.Sessions.Get(ctx, session.UserKey); err == nil {
		var record models.Session
		if err := json.Unmarshal(data, &record); err == nil && record.Email == email {
			return true, nil
		}
	}

	users, err := i.registeredUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, user := range users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// Register - регистрация новой учётной записи с входом
func (i *Identity) Register(ctx context.Context, email string) (models.UserResponse, error) {
	logger.Info("Register user:", email)

	exists, err := i.UserExists(ctx, email)
	if err != nil {
		return models.UserResponse{}, err
	}
	if exists {
		logger.Warn("Account already exists", email)
		return models.UserResponse{}, ErrAccountExists
	}

	users, err := i.registeredUsers(ctx)
	if err != nil {
		return models.UserResponse{}, err
	}
	users = append(users, models.RegisteredUser{
		Email:        email,
		Username:     username.Generate(email),
		RegisteredAt: time.Now().Format(time.RFC3339),
	})
	data, err := json.Marshal(users)
	if err != nil {
		return models.UserResponse{}, err
	}
	if err := i.Sessions.Set(ctx, session.RegisteredUsersKey, data); err != nil {
		logger.Error("Error registering user", email, err)
		return models.UserResponse{}, err
	}

	return i.State.Login(ctx, email), nil
}

// Login - вход существующей учётной записи
func (i *Identity) Login(ctx context.Context, email string) (models.UserResponse, error) {
	logger.Info("Authenticate user", email)

	exists, err := i.UserExists(ctx, email)
	if err != nil {
		return models.UserResponse{}, err
	}
	if !exists {
		logger.Warn("Account not found", email)
		return models.UserResponse{}, ErrAccountNotFound
	}

	return i.State.Login(ctx, email), nil
}

// Logout - выход пользователя
func (i *Identity) Logout(ctx context.Context) {
	i.State.Logout(ctx)
}

// registeredUsers - чтение списка зарегистрированных пользователей.
// Отсутствие или нечитаемость записи - пустой список.
func (i *Identity) registeredUsers(ctx context.Context) ([]models.RegisteredUser, error) {
	data, err := i.Sessions.Get(ctx, session.RegisteredUsersKey)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var users []models.RegisteredUser
	if err := json.Unmarshal(data, &users); err != nil {
		logger.Warn("Malformed registered users record, treating as empty", err)
		return nil, nil
	}
	return users, nil
}

// Создание строки JWT токена
func (i *Identity) GenerateJWT(user models.UserResponse) (string, error) {
	expirationTime := time.Now().Add(TokenExpirationTime)

	_, tokenString, err := i.JWTAuth.Encode(map[string]interface{}{
		"username": user.Username,
		"email":    user.Email,
		"exp":      expirationTime,
	})
	return tokenString, err
}

// Возвращаем указатель на JWTAuth (chi)
func (i *Identity) GetTokenAuth() *jwtauth.JWTAuth {
	return i.JWTAuth
}
