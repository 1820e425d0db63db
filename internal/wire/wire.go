package wire

import (
	"crypto/rsa"
	"fmt"
	"net/http"

	"artisan-market/internal/adaptor"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/mailer"
	"artisan-market/pkg/middleware"
	"artisan-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers, and routes
func Wiring(repo *repository.Repository, config *utils.Config, mail mailer.Publisher, logger *zap.Logger) (*App, error) {
	privateKey, err := utils.ParseRSAPrivateKey(config.JWT.PrivateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse JWT private key: %w", err)
	}
	publicKey, err := utils.ParseRSAPublicKey(config.JWT.PublicKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("parse JWT public key: %w", err)
	}

	service := usecase.NewService(repo, config, mail, privateKey, publicKey, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, publicKey, config, logger)

	return &App{
		Router: router,
	}, nil
}

func setupRouter(
	handler *adaptor.Handler,
	publicKey *rsa.PublicKey,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	authn := middleware.Authenticate(publicKey, logger)

	r.Route("/api/v1", func(api chi.Router) {
		wireAuth(api, handler.Auth, config, logger)
		wireUser(api, handler.User, handler.Auth, authn, logger)
		wireAdmin(api, handler.Admin, authn, logger)
		wireCraftType(api, handler.CraftType, authn, logger)
		wireProduct(api, handler.Product, handler.Review, authn, logger)
		wireStory(api, handler.Story, authn, logger)
		wireCart(api, handler.Cart, authn)
		wireOrder(api, handler.Order, authn, logger)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
