package wire

import (
	"net/http"

	"artisan-market/internal/adaptor"
	"artisan-market/internal/data/entity"
	"artisan-market/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStory(
	r chi.Router,
	storyHandler *adaptor.StoryHandler,
	authn func(http.Handler) http.Handler,
	log *zap.Logger,
) {
	r.Route("/stories", func(stories chi.Router) {
		// Public reads
		stories.Get("/", storyHandler.List)
		stories.Get("/{id}", storyHandler.GetByID)

		// Artisans publish their own stories; ownership checked in the service
		stories.Group(func(authors chi.Router) {
			authors.Use(authn)
			authors.Use(middleware.RequireRole(log,
				entity.RoleArtisan, entity.RoleAdmin, entity.RoleSuperAdmin))

			authors.Post("/", storyHandler.Create)
			authors.Put("/{id}", storyHandler.Update)
			authors.Delete("/{id}", storyHandler.Delete)
		})
	})
}
