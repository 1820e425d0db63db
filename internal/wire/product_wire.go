package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"
	"artisan-market/internal/data/entity"
	"artisan-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	reviewHandler *adaptor.ReviewHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/products", func(products chi.Router) {
		// Public catalog reads
		products.Get("/", productHandler.List)
		products.Get("/{id}", productHandler.GetByID)
		products.Get("/{id}/reviews", reviewHandler.ListByProduct)

		// Any authenticated user can review a product
		products.With(authn).Post("/{id}/reviews", reviewHandler.Create)

		// Catalog writes: artisans manage their own listings, admins anything.
		// Ownership is enforced in the service against the stored product.
		products.Group(func(sellers chi.Router) {
			sellers.Use(authn)
			sellers.Use(middleware.RequireRole(log,
				entity.RoleArtisan, entity.RoleMerchant, entity.RoleAdmin, entity.RoleSuperAdmin))

			sellers.Post("/", productHandler.Create)
			sellers.Put("/{id}", productHandler.Update)
			sellers.Delete("/{id}", productHandler.Delete)
		})
	})

	// Review mutations address the review directly
	r.Route("/reviews", func(reviews chi.Router) {
		reviews.Use(authn)

		reviews.Put("/{id}", reviewHandler.Update)
		reviews.Delete("/{id}", reviewHandler.Delete)
	})
}
