package usecase

import (
	"crypto/rsa"

	"artisan-market/internal/data/repository"
	"artisan-market/pkg/mailer"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Admin     AdminService
	CraftType CraftTypeService
	Product   ProductService
	Review    ReviewService
	Story     StoryService
	Cart      CartService
	Order     OrderService
}

// NewService wires every service. The RS256 key pair is parsed once by the
// caller and shared between token issuing here and verification in the
// middleware.
func NewService(
	repo *repository.Repository,
	config *utils.Config,
	mail mailer.Publisher,
	privateKey *rsa.PrivateKey,
	publicKey *rsa.PublicKey,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:      NewAuthService(repo, config, mail, privateKey, publicKey, log),
		User:      NewUserService(repo, log),
		Admin:     NewAdminService(repo.User, log),
		CraftType: NewCraftTypeService(repo.CraftType, log),
		Product:   NewProductService(repo, log),
		Review:    NewReviewService(repo, log),
		Story:     NewStoryService(repo.Story, log),
		Cart:      NewCartService(repo, log),
		Order:     NewOrderService(repo, log),
	}
}
