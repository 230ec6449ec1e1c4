package services

import (
	"context"
	"errors"
	"testing"

	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/logger"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/session/mocks"
	"github.com/denmor86/invipay/internal/store"
	"go.uber.org/mock/gomock"
)

func TestIdentity_UserExists(t *testing.T) {
	testCases := []struct {
		Name          string
		Email         string
		SetupMocks    func(m *mocks.MockStore)
		Expected      bool
		ExpectedError error
	}{
		{
			Name:  "User found in current session #1",
			Email: "a@b.com",
			SetupMocks: func(m *mocks.MockStore) {
				m.EXPECT().Get(gomock.Any(), session.UserKey).
					Return([]byte(`{"email":"a@b.com","username":"starklegend271"}`), nil)
			},
			Expected: true,
		},
		{
			Name:  "User found in registered users #2",
			Email: "a@b.com",
			SetupMocks: func(m *mocks.MockStore) {
				m.EXPECT().Get(gomock.Any(), session.UserKey).Return(nil, session.ErrNotFound)
				m.EXPECT().Get(gomock.Any(), session.RegisteredUsersKey).
					Return([]byte(`[{"email":"a@b.com","username":"starklegend271"}]`), nil)
			},
			Expected: true,
		},
		{
			Name:  "User not found #3",
			Email: "a@b.com",
			SetupMocks: func(m *mocks.MockStore) {
				m.EXPECT().Get(gomock.Any(), session.UserKey).Return(nil, session.ErrNotFound)
				m.EXPECT().Get(gomock.Any(), session.RegisteredUsersKey).Return(nil, session.ErrNotFound)
			},
			Expected: false,
		},
		{
			Name:  "Malformed registered users record #4",
			Email: "a@b.com",
			SetupMocks: func(m *mocks.MockStore) {
				m.EXPECT().Get(gomock.Any(), session.UserKey).Return(nil, session.ErrNotFound)
				m.EXPECT().Get(gomock.Any(), session.RegisteredUsersKey).Return([]byte("{bad json"), nil)
			},
			Expected: false,
		},
		{
			Name:  "Session backend error #5",
			Email: "a@b.com",
			SetupMocks: func(m *mocks.MockStore) {
				m.EXPECT().Get(gomock.Any(), session.UserKey).Return(nil, session.ErrNotFound)
				m.EXPECT().Get(gomock.Any(), session.RegisteredUsersKey).
					Return(nil, errors.New("connection refused"))
			},
			Expected:      false,
			ExpectedError: errors.New("connection refused"),
		},
	}

	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sessions := mocks.NewMockStore(ctrl)
			tc.SetupMocks(sessions)

			identity := &Identity{Sessions: sessions, State: store.NewStore(context.Background(), session.NewMemory())}
			exists, err := identity.UserExists(context.Background(), tc.Email)
			if tc.ExpectedError != nil {
				if err == nil || err.Error() != tc.ExpectedError.Error() {
					t.Errorf("Expected error '%v', got: '%v'", tc.ExpectedError, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got: '%v'", err)
			}
			if exists != tc.Expected {
				t.Errorf("Expected exists '%t', got: '%t'", tc.Expected, exists)
			}
		})
	}
}

func TestIdentity_RegisterAndLogin(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}

	sessions := session.NewMemory()
	identity := NewIdentity(cfg, sessions, store.NewStore(context.Background(), sessions))

	// вход до регистрации
	_, err := identity.Login(context.Background(), "a@b.com")
	if !errors.Is(err, ErrAccountNotFound) {
		t.Errorf("Expected error '%v', got: '%v'", ErrAccountNotFound, err)
	}

	user, err := identity.Register(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if user.Username != "starklegend271" {
		t.Errorf("Expected username 'starklegend271', got: '%s'", user.Username)
	}

	// повторная регистрация
	_, err = identity.Register(context.Background(), "a@b.com")
	if !errors.Is(err, ErrAccountExists) {
		t.Errorf("Expected error '%v', got: '%v'", ErrAccountExists, err)
	}

	// вход после выхода: учётная запись сохранена в списке зарегистрированных
	identity.Logout(context.Background())
	again, err := identity.Login(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if again.Username != user.Username {
		t.Errorf("Expected username '%s', got: '%s'", user.Username, again.Username)
	}
}

func TestIdentity_GenerateJWT(t *testing.T) {
	cfg := config.DefaultConfig()
	if err := logger.Initialize(cfg.Server.LogLevel); err != nil {
		t.Fatalf("can't initialize logger: %v", err)
	}

	sessions := session.NewMemory()
	identity := NewIdentity(cfg, sessions, store.NewStore(context.Background(), sessions))

	user, err := identity.Register(context.Background(), "a@b.com")
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	tokenString, err := identity.GenerateJWT(user)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}

	token, err := identity.GetTokenAuth().Decode(tokenString)
	if err != nil {
		t.Fatalf("Expected no error, got: '%v'", err)
	}
	if name, ok := token.Get("username"); !ok || name != user.Username {
		t.Errorf("Expected username claim '%s', got: '%v'", user.Username, name)
	}
	if email, ok := token.Get("email"); !ok || email != "a@b.com" {
		t.Errorf("Expected email claim 'a@b.com', got: '%v'", email)
	}
}
