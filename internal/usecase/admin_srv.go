package usecase

import (
	"context"
	"time"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/dto/response"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminService interface {
	ListUsers(ctx context.Context, filter repository.UserFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	UpdateRole(ctx context.Context, userID uuid.UUID, req *request.UpdateRoleRequest) (*response.UserResponse, error)
	ApproveRole(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	ListRoleRequests(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
}

type adminService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewAdminService(users repository.UserRepository, log *zap.Logger) AdminService {
	return &adminService{
		users: users,
		log:   log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) ListUsers(ctx context.Context, filter repository.UserFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("Failed to list users", err)
	}

	total, err := s.users.CountAll(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("Failed to count users", err)
	}

	return response.NewPaginatedResponse(response.UsersToResponse(users), page.Page, page.Limit(), total), nil
}

func (s *adminService) UpdateRole(ctx context.Context, userID uuid.UUID, req *request.UpdateRoleRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Load the account
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	// 3. Apply the new role. Promoting to artisan pushes the account back to
	// pending until activation.
	user.Role = entity.UserRole(req.Role)
	user.RequestedRole = nil
	user.ApplyRoleStatusRule()
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperr.Internal("Failed to update role", err)
	}

	s.log.Info("Role updated",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ApproveRole grants a pending role upgrade request and activates the account
func (s *adminService) ApproveRole(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	if user.RequestedRole == nil {
		return nil, apperr.InvalidInput("User has no pending role request")
	}

	user.Role = *user.RequestedRole
	user.RequestedRole = nil
	user.Status = entity.StatusActive
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, apperr.Internal("Failed to approve role", err)
	}

	s.log.Info("Role request approved",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *adminService) ListRoleRequests(ctx context.Context, page request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.users.FindRoleRequests(ctx, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("Failed to list role requests", err)
	}

	total, err := s.users.CountRoleRequests(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to count role requests", err)
	}

	return response.NewPaginatedResponse(response.UsersToResponse(users), page.Page, page.Limit(), total), nil
}
