package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"artisan-market/internal/data/entity"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CartRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type cartRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCartRepository(db database.PgxIface, log *zap.Logger) CartRepository {
	return &cartRepository{
		db:  db,
		log: log,
	}
}

func (cr *cartRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	query := `
		SELECT user_id, items, total_price, version, created_at, updated_at
		FROM carts
		WHERE user_id = $1
	`

	var cart entity.Cart
	var items []byte
	err := cr.db.QueryRow(ctx, query, userID).Scan(
		&cart.UserID,
		&items,
		&cart.TotalPrice,
		&cart.Version,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find cart for %s: %w", userID.String(), err)
	}

	if err := json.Unmarshal(items, &cart.Items); err != nil {
		return nil, fmt.Errorf("decode cart items for %s: %w", userID.String(), err)
	}

	return &cart, nil
}

// Save persists the cart with an optimistic concurrency check: a fresh cart
// (version 0) is inserted, an existing one updated only when the stored
// version still matches the one we loaded. A stale version means another
// request modified the cart in between, and the caller should retry.
func (cr *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	items, err := json.Marshal(cart.Items)
	if err != nil {
		return fmt.Errorf("encode cart items for %s: %w", cart.UserID.String(), err)
	}

	if cart.Version == 0 {
		query := `
			INSERT INTO carts (user_id, items, total_price, version, created_at, updated_at)
			VALUES ($1, $2, $3, 1, $4, $5)
		`

		_, err := cr.db.Exec(ctx, query,
			cart.UserID,
			items,
			cart.TotalPrice,
			cart.CreatedAt,
			cart.UpdatedAt,
		)

		if isUniqueViolation(err) {
			return apperr.Conflict("Cart was modified concurrently, please retry")
		}
		if err != nil {
			cr.log.Error("Failed to create cart",
				zap.Error(err),
				zap.String("user_id", cart.UserID.String()),
			)
			return fmt.Errorf("create cart for %s: %w", cart.UserID.String(), err)
		}

		cart.Version = 1
		return nil
	}

	query := `
		UPDATE carts
		SET items = $2, total_price = $3, version = version + 1, updated_at = $4
		WHERE user_id = $1 AND version = $5
	`

	result, err := cr.db.Exec(ctx, query,
		cart.UserID,
		items,
		cart.TotalPrice,
		cart.UpdatedAt,
		cart.Version,
	)

	if err != nil {
		cr.log.Error("Failed to update cart",
			zap.Error(err),
			zap.String("user_id", cart.UserID.String()),
		)
		return fmt.Errorf("update cart for %s: %w", cart.UserID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.Conflict("Cart was modified concurrently, please retry")
	}

	cart.Version++
	return nil
}

func (cr *cartRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	query := `DELETE FROM carts WHERE user_id = $1`

	result, err := cr.db.Exec(ctx, query, userID)
	if err != nil {
		cr.log.Error("Failed to delete cart",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete cart for %s: %w", userID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Cart not found")
	}

	return nil
}
