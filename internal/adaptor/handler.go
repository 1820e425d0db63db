package adaptor

import (
	"net/http"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Admin     *AdminHandler
	CraftType *CraftTypeHandler
	Product   *ProductHandler
	Review    *ReviewHandler
	Story     *StoryHandler
	Cart      *CartHandler
	Order     *OrderHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Admin:     NewAdminHandler(service.Admin, log),
		CraftType: NewCraftTypeHandler(service.CraftType, log),
		Product:   NewProductHandler(service.Product, log),
		Review:    NewReviewHandler(service.Review, log),
		Story:     NewStoryHandler(service.Story, log),
		Cart:      NewCartHandler(service.Cart, log),
		Order:     NewOrderHandler(service.Order, log),
	}
}

// handleServiceError maps an error kind to the HTTP envelope. Internal
// details are logged here and never reach the client.
func handleServiceError(w http.ResponseWriter, err error, log *zap.Logger, op string) {
	message := apperr.MessageOf(err)

	switch apperr.KindOf(err) {
	case apperr.KindInvalidInput:
		utils.ResponseBadRequest(w, message)
	case apperr.KindUnauthorized:
		utils.ResponseUnauthorized(w, message)
	case apperr.KindForbidden:
		utils.ResponseForbidden(w, message)
	case apperr.KindNotFound:
		utils.ResponseNotFound(w, message)
	case apperr.KindConflict:
		utils.ResponseConflict(w, message)
	default:
		log.Error("Unhandled service error", zap.Error(err), zap.String("op", op))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// actorFrom builds the acting identity from the authenticated context.
// Routes behind Authenticate always have one; ok=false means a wiring bug.
func actorFrom(r *http.Request) (usecase.Actor, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}

	role, _ := utils.GetRoleFromContext(r.Context())
	return usecase.Actor{
		ID:   userID,
		Role: entity.UserRole(role),
	}, true
}

// pathUUID parses a UUID path parameter
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, name))
}

// paginationFrom reads ?page= and ?per_page= with sane defaults
func paginationFrom(r *http.Request) request.PaginatedRequest {
	return request.PaginatedRequest{
		Page:    utils.ParseInt(r.URL.Query().Get("page"), 1),
		PerPage: utils.ParseInt(r.URL.Query().Get("per_page"), 10),
	}
}
