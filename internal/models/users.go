package models

import "time"

// Session - сессия пользователя, сохраняется в постоянном KV-хранилище
type Session struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	LoginTime string `json:"loginTime"`
}

// User - модель пользователя (контакта)
type User struct {
	ID            string    `json:"id"`
	Username      string    `json:"username"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	AvatarURL     string    `json:"avatarUrl,omitempty"`
	WalletAddress string    `json:"walletAddress"`
	KeyID         string    `json:"keyId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserRequest - модель запроса входа/регистрации, приходит извне
type UserRequest struct {
	Email string `json:"email"`
}

// UserResponse - модель ответа об авторизованном пользователе
type UserResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}

// RegisteredUser - запись списка зарегистрированных пользователей
// в постоянном KV-хранилище
type RegisteredUser struct {
	Email        string `json:"email"`
	Username     string `json:"username"`
	RegisteredAt string `json:"registeredAt"`
}
