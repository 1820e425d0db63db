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

type ReviewService interface {
	Create(ctx context.Context, actor Actor, productID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error)
	ListByProduct(ctx context.Context, productID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], *response.ReviewSummary, error)
	Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error)
	Delete(ctx context.Context, actor Actor, id uuid.UUID) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) Create(ctx context.Context, actor Actor, productID uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("Failed to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}

	now := time.Now()
	review := &entity.Review{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID: productID,
		UserID:    actor.ID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, apperr.Internal("Failed to create review", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) ListByProduct(ctx context.Context, productID uuid.UUID, page request.PaginatedRequest) (*response.PaginatedResponse[response.ReviewResponse], *response.ReviewSummary, error) {
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to load product", err)
	}
	if product == nil {
		return nil, nil, apperr.NotFound("Product not found")
	}

	reviews, err := s.repo.Review.FindByProductID(ctx, productID, page.Limit(), page.Offset())
	if err != nil {
		return nil, nil, apperr.Internal("Failed to list reviews", err)
	}

	total, err := s.repo.Review.CountByProductID(ctx, productID)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to count reviews", err)
	}

	avg, err := s.repo.Review.AverageRating(ctx, productID)
	if err != nil {
		return nil, nil, apperr.Internal("Failed to compute rating", err)
	}

	paginated := response.NewPaginatedResponse(response.ReviewsToResponse(reviews), page.Page, page.Limit(), total)
	summary := &response.ReviewSummary{AverageRating: avg, Count: total}
	return paginated, summary, nil
}

func (s *reviewService) Update(ctx context.Context, actor Actor, id uuid.UUID, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load review", err)
	}
	if review == nil {
		return nil, apperr.NotFound("Review not found")
	}

	if !actor.CanAccess(review.UserID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	review.Rating = req.Rating
	review.Comment = req.Comment
	review.UpdatedAt = time.Now()

	if err := s.repo.Review.Update(ctx, review); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update review", err)
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return apperr.Internal("Failed to load review", err)
	}
	if review == nil {
		return apperr.NotFound("Review not found")
	}

	if !actor.CanAccess(review.UserID) {
		return apperr.Forbidden("You do not have access to this resource")
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return err
		}
		return apperr.Internal("Failed to delete review", err)
	}

	return nil
}
