package wire

import (
	"artisan-market/internal/adaptor"
	"artisan-market/pkg/middleware"
	"artisan-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All auth routes are public but rate limited per IP: OTP codes and
	// passwords must not be guessable within their validity window.
	r.Route("/auth", func(auth chi.Router) {
		auth.Use(middleware.RateLimit(config.RateLimit))

		auth.Post("/register", authHandler.Register)
		auth.Post("/verify-user/{id}", authHandler.VerifyUser)
		auth.Post("/login", authHandler.Login)
		auth.Post("/forget-pass", authHandler.ForgetPass)
		auth.Post("/reset-pass", authHandler.ResetPass)
	})
}
