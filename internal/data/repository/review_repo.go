package repository

import (
	"context"
	"fmt"

	"artisan-market/internal/data/entity"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error)
	CountByProductID(ctx context.Context, productID uuid.UUID) (int64, error)
	AverageRating(ctx context.Context, productID uuid.UUID) (float64, error)
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log,
	}
}

func (rr *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := rr.db.Exec(ctx, query,
		review.ID,
		review.ProductID,
		review.UserID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)

	// one review per (product, user)
	if isUniqueViolation(err) {
		return apperr.Conflict("You have already reviewed this product")
	}
	if err != nil {
		rr.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("product_id", review.ProductID.String()),
			zap.String("user_id", review.UserID.String()),
		)
		return fmt.Errorf("create review for product %s: %w", review.ProductID.String(), err)
	}

	return nil
}

func (rr *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	query := `
		SELECT id, product_id, user_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`

	var review entity.Review
	err := rr.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.ProductID,
		&review.UserID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		rr.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (rr *reviewRepository) FindByProductID(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error) {
	query := `
		SELECT id, product_id, user_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := rr.db.Query(ctx, query, productID, limit, offset)
	if err != nil {
		rr.log.Error("Failed to list reviews",
			zap.Error(err),
			zap.String("product_id", productID.String()),
		)
		return nil, fmt.Errorf("find reviews for product %s: %w", productID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.ProductID,
			&review.UserID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			rr.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews rows: %w", err)
	}

	return reviews, nil
}

func (rr *reviewRepository) CountByProductID(ctx context.Context, productID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM reviews WHERE product_id = $1`

	var count int64
	err := rr.db.QueryRow(ctx, query, productID).Scan(&count)
	if err != nil {
		rr.log.Error("Database error counting reviews", zap.Error(err))
		return 0, fmt.Errorf("count reviews for product %s: %w", productID.String(), err)
	}

	return count, nil
}

func (rr *reviewRepository) AverageRating(ctx context.Context, productID uuid.UUID) (float64, error) {
	query := `SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE product_id = $1`

	var avg float64
	err := rr.db.QueryRow(ctx, query, productID).Scan(&avg)
	if err != nil {
		rr.log.Error("Database error averaging rating", zap.Error(err))
		return 0, fmt.Errorf("average rating for product %s: %w", productID.String(), err)
	}

	return avg, nil
}

func (rr *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1
	`

	result, err := rr.db.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
	)

	if err != nil {
		rr.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", review.ID.String()),
		)
		return fmt.Errorf("update review %s: %w", review.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Review not found")
	}

	return nil
}

func (rr *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1`

	result, err := rr.db.Exec(ctx, query, id)
	if err != nil {
		rr.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Review not found")
	}

	return nil
}
