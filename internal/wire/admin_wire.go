package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"
	"artisan-market/internal/data/entity"
	"artisan-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/admin", func(admin chi.Router) {
		admin.Use(authn)
		admin.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleSuperAdmin))

		admin.Get("/users", adminHandler.ListUsers)
		admin.Patch("/update-role/{id}", adminHandler.UpdateRole)
		admin.Post("/approved-role/{id}", adminHandler.ApproveRole)
		admin.Get("/role-requests", adminHandler.ListRoleRequests)
	})
}
