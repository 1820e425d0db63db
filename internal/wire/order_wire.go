package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"
	"artisan-market/internal/data/entity"
	"artisan-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/orders", func(orders chi.Router) {
		orders.Use(authn)

		orders.Post("/", orderHandler.Create)
		orders.Get("/", orderHandler.List)
		orders.Get("/{id}", orderHandler.GetByID)

		// Fulfilment status moves are an admin concern; cancellation is
		// open to the owner too (checked in the service).
		orders.With(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleSuperAdmin)).
			Put("/{id}/status", orderHandler.UpdateStatus)
		orders.Put("/{id}/cancel-order", orderHandler.Cancel)
	})
}
