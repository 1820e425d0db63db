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

type ProductService interface {
	Create(ctx context.Context, actor Actor, req *request.ProductRequest) (*response.ProductResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error)
	List(ctx context.Context, filter repository.ProductFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type productService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewProductService(repo *repository.Repository, log *zap.Logger) ProductService {
	return &productService{
		repo: repo,
		log:  log.With(zap.String("service", "product")),
	}
}

// validateProduct covers the checks validator tags cannot express
func (s *productService) validateProduct(ctx context.Context, req *request.ProductRequest) (*uuid.UUID, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}
	if !req.Price.IsPositive() {
		return nil, apperr.InvalidInput("price must be greater than zero")
	}

	if req.CraftTypeID == nil {
		return nil, nil
	}

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

	return &id, nil
}

func (s *productService) Create(ctx context.Context, actor Actor, req *request.ProductRequest) (*response.ProductResponse, error) {
	craftTypeID, err := s.validateProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      actor.ID,
		CraftTypeID: craftTypeID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price.Round(2),
		Category:    entity.ProductCategory(req.Category),
		Stock:       req.Stock,
		Tags:        req.Tags,
		Material:    req.Material,
		Color:       req.Color,
		Size:        req.Size,
		Images:      req.Images,
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		return nil, apperr.Internal("Failed to create product", err)
	}

	s.log.Info("Product created",
		zap.String("product_id", product.ID.String()),
		zap.String("artisan_id", actor.ID.String()),
	)

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) GetByID(ctx context.Context, id uuid.UUID) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) List(ctx context.Context, filter repository.ProductFilter, page request.PaginatedRequest) (*response.PaginatedResponse[response.ProductResponse], error) {
	products, err := s.repo.Product.FindAll(ctx, filter, page.Limit(), page.Offset())
	if err != nil {
		return nil, apperr.Internal("Failed to list products", err)
	}

	total, err := s.repo.Product.CountAll(ctx, filter)
	if err != nil {
		return nil, apperr.Internal("Failed to count products", err)
	}

	return response.NewPaginatedResponse(response.ProductsToResponse(products), page.Page, page.Limit(), total), nil
}

func (s *productService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.ProductRequest) (*response.ProductResponse, error) {
	craftTypeID, err := s.validateProduct(ctx, req)
	if err != nil {
		return nil, err
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	// Artisans can only touch their own listings
	if !actor.CanAccess(product.UserID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	product.CraftTypeID = craftTypeID
	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price.Round(2)
	product.Category = entity.ProductCategory(req.Category)
	product.Stock = req.Stock
	product.Tags = req.Tags
	product.Material = req.Material
	product.Color = req.Color
	product.Size = req.Size
	product.Images = req.Images
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update product", err)
	}

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("Failed to load product", err)
	}
	if product == nil {
		return apperr.NotFound("Product not found")
	}

	if !actor.CanAccess(product.UserID) {
		return apperr.Forbidden("You do not have access to this resource")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return err
		}
		return apperr.Internal("Failed to delete product", err)
	}

	s.log.Info("Product deleted", zap.String("product_id", id.String()))
	return nil
}
