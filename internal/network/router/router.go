package router

import (
	"github.com/denmor86/invipay/internal/config"
	"github.com/denmor86/invipay/internal/gateway"
	"github.com/denmor86/invipay/internal/network/handlers"
	"github.com/denmor86/invipay/internal/network/middleware"
	"github.com/denmor86/invipay/internal/services"
	"github.com/denmor86/invipay/internal/session"
	"github.com/denmor86/invipay/internal/store"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config   config.Config
	State    *store.Store
	Identity services.IdentityService
	Payments services.PaymentsService
	Webhooks services.WebhookService
}

func NewRouter(config config.Config, sessions session.Store, state *store.Store, gw gateway.Gateway) *Router {
	return &Router{
		Config:   config,
		State:    state,
		Identity: services.NewIdentity(config, sessions, state),
		Payments: services.NewPayments(state, gw),
		Webhooks: services.NewWebhooks(services.NewLedgerFulfiller(state)),
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)

		// внешние точки входа без авторизации
		r.Post("/payments", handlers.CreatePaymentHandler(router.Payments))
		r.Post("/webhooks/chipi", handlers.WebhookHandler(router.Webhooks, router.Config.Server.WebhookSecret))

		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Post("/logout", handlers.LogoutUserHandler(router.Identity))
				r.Get("/balance", handlers.GetBalanceHandler(router.State))
				r.Get("/transactions", handlers.GetTransactionsHandler(router.State))
				r.Post("/send", handlers.SendHandler(router.Payments))
				r.Get("/contacts", handlers.GetContactsHandler(router.State))
				r.Post("/contacts", handlers.AddContactHandler(router.State))
				r.Get("/settings", handlers.GetSettingsHandler(router.State))
				r.Patch("/settings", handlers.UpdateSettingsHandler(router.State))
				r.Get("/payment-methods", handlers.GetPaymentMethodsHandler(router.State))
				r.Post("/payment-methods", handlers.AddPaymentMethodHandler(router.State))
				r.Delete("/payment-methods/{id}", handlers.RemovePaymentMethodHandler(router.State))
				r.Post("/payment-methods/{id}/default", handlers.SetDefaultPaymentMethodHandler(router.State))
				r.Get("/connections", handlers.GetSocialConnectionsHandler(router.State))
				r.Post("/connections/{provider}", handlers.UpdateSocialConnectionHandler(router.State))
			})
		})
	})
	return r
}
