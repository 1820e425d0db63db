package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"
	"artisan-market/internal/data/entity"
	"artisan-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCraftType(
	r chi.Router,
	craftTypeHandler *adaptor.CraftTypeHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/craft-types", func(craftTypes chi.Router) {
		// Public reads
		craftTypes.Get("/", craftTypeHandler.List)
		craftTypes.Get("/{id}", craftTypeHandler.GetByID)

		// Taxonomy writes are an admin concern
		craftTypes.Group(func(admin chi.Router) {
			admin.Use(authn)
			admin.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleSuperAdmin))

			admin.Post("/", craftTypeHandler.Create)
			admin.Put("/{id}", craftTypeHandler.Update)
			admin.Delete("/{id}", craftTypeHandler.Delete)
		})
	})
}
