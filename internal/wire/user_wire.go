package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	authHandler *adaptor.AuthHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/users", func(users chi.Router) {
		// Public: anyone can view an artisan's public profile
		users.Get("/{id}/artisan", userHandler.GetArtisanProfile)

		users.Group(func(protected chi.Router) {
			protected.Use(authn)

			protected.Get("/me", userHandler.Me)
			protected.Post("/update-password", authHandler.UpdatePassword)

			protected.Get("/{id}", userHandler.GetByID)
			protected.Put("/{id}", userHandler.Update)
			protected.Delete("/{id}", userHandler.Delete)

			protected.Get("/{id}/addresses", userHandler.ListAddresses)
			protected.Post("/{id}/addresses", userHandler.CreateAddress)
			protected.Put("/{id}/addresses/{addressId}", userHandler.UpdateAddress)
			protected.Delete("/{id}/addresses/{addressId}", userHandler.DeleteAddress)

			protected.Put("/{id}/artisan", userHandler.UpsertArtisanProfile)
		})
	})
}
