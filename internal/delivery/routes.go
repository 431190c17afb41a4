package delivery

import (
	"time"

	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/talkmate/talkmate-backend/internal/ports"
)

func RegisterRoutes(
	r chi.Router,
	hAuth *AuthHandler,
	hChat *ChatHandler,
	hPayment *PaymentHandler,
	authSvc ports.AuthService,
) {
	// --- auth ---
	r.With(httputil.RecoverMiddleware).Post("/auth/register", hAuth.Register)
	r.With(httputil.RecoverMiddleware).Post("/auth/login", hAuth.Login)
	r.With(httputil.RecoverMiddleware).Post("/auth/refresh", hAuth.Refresh)

	// --- payments (фронт создаёт заказ до логина) ---
	r.With(httputil.RecoverMiddleware).Post("/payment/create-order", hPayment.CreateOrder)

	// --- protected ---
	r.Route("/", func(pr chi.Router) {
		pr.Use(
			httputil.RecoverMiddleware,
			AuthMiddleware(authSvc),
		)

		pr.Post("/auth/logout", hAuth.Logout)

		// --- чат ---
		pr.With(httprate.LimitByIP(20, time.Minute)).Post("/chat/send", hChat.Send)
		pr.Get("/chat/history", hChat.History)
		pr.Post("/chat/grammar-check", hChat.CheckGrammar)
	})
}
