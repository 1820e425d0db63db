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

// Actor identifies who is making the request, taken from the verified token
type Actor struct {
	ID   uuid.UUID
	Role entity.UserRole
}

// IsAdmin reports whether the actor may bypass ownership checks
func (a Actor) IsAdmin() bool {
	return a.Role == entity.RoleAdmin || a.Role == entity.RoleSuperAdmin
}

// CanAccess reports whether the actor owns the resource or is an admin
func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.ID == ownerID || a.IsAdmin()
}

type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error

	ListAddresses(ctx context.Context, actor Actor, userID uuid.UUID) ([]response.AddressResponse, error)
	CreateAddress(ctx context.Context, actor Actor, userID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error)
	UpdateAddress(ctx context.Context, actor Actor, userID, addressID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error)
	DeleteAddress(ctx context.Context, actor Actor, userID, addressID uuid.UUID) error

	GetArtisanProfile(ctx context.Context, userID uuid.UUID) (*response.ArtisanProfileResponse, error)
	UpsertArtisanProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *request.ArtisanProfileRequest) (*response.ArtisanProfileResponse, error)
}

type userService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewUserService(repo *repository.Repository, log *zap.Logger) UserService {
	return &userService{
		repo: repo,
		log:  log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. Ownership gate
	if !actor.CanAccess(id) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	// 3. Load the account
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}

	// 4. Apply the partial update
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.FullName != nil {
		user.FullName = req.FullName
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			return nil, apperr.InvalidInput("dateOfBirth must be in YYYY-MM-DD format")
		}
		user.DateOfBirth = &dob
	}
	if req.Gender != nil {
		user.Gender = req.Gender
	}
	if req.Mobile != nil {
		user.Mobile = req.Mobile
	}
	if req.Image != nil {
		user.Image = req.Image
	}
	if req.RequestedRole != nil {
		requested := entity.UserRole(*req.RequestedRole)
		user.RequestedRole = &requested
	}
	user.UpdatedAt = time.Now()

	// 5. Save
	if err := s.repo.User.Update(ctx, user); err != nil {
		kind := apperr.KindOf(err)
		if kind == apperr.KindConflict || kind == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update user", err)
	}

	s.log.Info("User updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if !actor.CanAccess(id) {
		return apperr.Forbidden("You do not have access to this resource")
	}

	if err := s.repo.User.SoftDelete(ctx, id); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return err
		}
		return apperr.Internal("Failed to delete user", err)
	}

	return nil
}

func (s *userService) ListAddresses(ctx context.Context, actor Actor, userID uuid.UUID) ([]response.AddressResponse, error) {
	if !actor.CanAccess(userID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	addresses, err := s.repo.Address.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to list addresses", err)
	}

	return response.AddressesToResponse(addresses), nil
}

func (s *userService) CreateAddress(ctx context.Context, actor Actor, userID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}
	if !actor.CanAccess(userID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	// Only one address can be the default
	if req.IsDefault {
		if err := s.repo.Address.ClearDefault(ctx, userID); err != nil {
			return nil, apperr.Internal("Failed to update default address", err)
		}
	}

	now := time.Now()
	address := &entity.Address{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    userID,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
		IsDefault: req.IsDefault,
	}

	if err := s.repo.Address.Create(ctx, address); err != nil {
		return nil, apperr.Internal("Failed to create address", err)
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *userService) UpdateAddress(ctx context.Context, actor Actor, userID, addressID uuid.UUID, req *request.AddressRequest) (*response.AddressResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}
	if !actor.CanAccess(userID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	address, err := s.repo.Address.FindByID(ctx, addressID)
	if err != nil {
		return nil, apperr.Internal("Failed to load address", err)
	}
	if address == nil || address.UserID != userID {
		return nil, apperr.NotFound("Address not found")
	}

	if req.IsDefault && !address.IsDefault {
		if err := s.repo.Address.ClearDefault(ctx, userID); err != nil {
			return nil, apperr.Internal("Failed to update default address", err)
		}
	}

	address.Street = req.Street
	address.City = req.City
	address.State = req.State
	address.Zip = req.Zip
	address.Country = req.Country
	address.IsDefault = req.IsDefault
	address.UpdatedAt = time.Now()

	if err := s.repo.Address.Update(ctx, address); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update address", err)
	}

	resp := response.AddressToResponse(address)
	return &resp, nil
}

func (s *userService) DeleteAddress(ctx context.Context, actor Actor, userID, addressID uuid.UUID) error {
	if !actor.CanAccess(userID) {
		return apperr.Forbidden("You do not have access to this resource")
	}

	address, err := s.repo.Address.FindByID(ctx, addressID)
	if err != nil {
		return apperr.Internal("Failed to load address", err)
	}
	if address == nil || address.UserID != userID {
		return apperr.NotFound("Address not found")
	}

	if err := s.repo.Address.Delete(ctx, addressID); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return err
		}
		return apperr.Internal("Failed to delete address", err)
	}

	return nil
}

// GetArtisanProfile is public: buyers can read any artisan's profile
func (s *userService) GetArtisanProfile(ctx context.Context, userID uuid.UUID) (*response.ArtisanProfileResponse, error) {
	profile, err := s.repo.ArtisanProfile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load artisan profile", err)
	}
	if profile == nil {
		return nil, apperr.NotFound("Artisan profile not found")
	}

	resp := response.ArtisanProfileToResponse(profile)
	return &resp, nil
}

func (s *userService) UpsertArtisanProfile(ctx context.Context, actor Actor, userID uuid.UUID, req *request.ArtisanProfileRequest) (*response.ArtisanProfileResponse, error) {
	// 1. Validate input and ownership
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}
	if !actor.CanAccess(userID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	// 2. The account must exist and be an artisan
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load user", err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	if user.Role != entity.RoleArtisan && !actor.IsAdmin() {
		return nil, apperr.Forbidden("Only artisan accounts have a profile")
	}

	var craftTypeID *uuid.UUID
	if req.CraftTypeID != nil {
		id, err := uuid.Parse(*req.CraftTypeID)
		if err != nil {
			return nil, apperr.InvalidInput("craftTypeId must be a valid UUID")
		}
		craftType, err := s.repo.CraftType.FindByID(ctx, id)
		if err != nil {
			return nil, apperr.Internal("Failed to load craft type", err)
		}
		if craftType == nil {
			return nil, apperr.NotFound("Craft type not found")
		}
		craftTypeID = &id
	}

	// 3. Update in place or create on first write
	profile, err := s.repo.ArtisanProfile.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load artisan profile", err)
	}

	now := time.Now()
	if profile == nil {
		profile = &entity.ArtisanProfile{
			BaseNoDelete: entity.BaseNoDelete{
				ID:        uuid.New(),
				CreatedAt: now,
				UpdatedAt: now,
			},
			UserID:          userID,
			Bio:             req.Bio,
			CraftTypeID:     craftTypeID,
			ExperienceYears: req.ExperienceYears,
			Location:        req.Location,
		}
		if err := s.repo.ArtisanProfile.Create(ctx, profile); err != nil {
			return nil, apperr.Internal("Failed to create artisan profile", err)
		}
	} else {
		if req.Bio != nil {
			profile.Bio = req.Bio
		}
		if craftTypeID != nil {
			profile.CraftTypeID = craftTypeID
		}
		if req.ExperienceYears != nil {
			profile.ExperienceYears = req.ExperienceYears
		}
		if req.Location != nil {
			profile.Location = req.Location
		}
		profile.UpdatedAt = now

		if err := s.repo.ArtisanProfile.Update(ctx, profile); err != nil {
			return nil, apperr.Internal("Failed to update artisan profile", err)
		}
	}

	resp := response.ArtisanProfileToResponse(profile)
	return &resp, nil
}
