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

type CraftTypeService interface {
	Create(ctx context.Context, req *request.CraftTypeRequest) (*response.CraftTypeResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.CraftTypeResponse, error)
	List(ctx context.Context) ([]response.CraftTypeResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *request.CraftTypeRequest) (*response.CraftTypeResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type craftTypeService struct {
	craftTypes repository.CraftTypeRepository
	log        *zap.Logger
}

func NewCraftTypeService(craftTypes repository.CraftTypeRepository, log *zap.Logger) CraftTypeService {
	return &craftTypeService{
		craftTypes: craftTypes,
		log:        log.With(zap.String("service", "craft_type")),
	}
}

func (s *craftTypeService) Create(ctx context.Context, req *request.CraftTypeRequest) (*response.CraftTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	craftType := &entity.CraftType{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.craftTypes.Create(ctx, craftType); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, apperr.Internal("Failed to create craft type", err)
	}

	s.log.Info("Craft type created", zap.String("name", craftType.Name))

	resp := response.CraftTypeToResponse(craftType)
	return &resp, nil
}

func (s *craftTypeService) GetByID(ctx context.Context, id uuid.UUID) (*response.CraftTypeResponse, error) {
	craftType, err := s.craftTypes.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load craft type", err)
	}
	if craftType == nil {
		return nil, apperr.NotFound("Craft type not found")
	}

	resp := response.CraftTypeToResponse(craftType)
	return &resp, nil
}

func (s *craftTypeService) List(ctx context.Context) ([]response.CraftTypeResponse, error) {
	craftTypes, err := s.craftTypes.FindAll(ctx)
	if err != nil {
		return nil, apperr.Internal("Failed to list craft types", err)
	}

	return response.CraftTypesToResponse(craftTypes), nil
}

func (s *craftTypeService) Update(ctx context.Context, id uuid.UUID, req *request.CraftTypeRequest) (*response.CraftTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	craftType, err := s.craftTypes.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load craft type", err)
	}
	if craftType == nil {
		return nil, apperr.NotFound("Craft type not found")
	}

	craftType.Name = req.Name
	craftType.Description = req.Description
	craftType.UpdatedAt = time.Now()

	if err := s.craftTypes.Update(ctx, craftType); err != nil {
		kind := apperr.KindOf(err)
		if kind == apperr.KindConflict || kind == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update craft type", err)
	}

	resp := response.CraftTypeToResponse(craftType)
	return &resp, nil
}

func (s *craftTypeService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.craftTypes.Delete(ctx, id); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return err
		}
		return apperr.Internal("Failed to delete craft type", err)
	}

	return nil
}
