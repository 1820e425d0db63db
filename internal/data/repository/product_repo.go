package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"artisan-market/internal/data/entity"
	"artisan-market/pkg/apperr"
	"artisan-market/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProductFilter narrows the catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	Search      string
	Category    entity.ProductCategory
	CraftTypeID *uuid.UUID
	ArtisanID   *uuid.UUID
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error)
	CountAll(ctx context.Context, filter ProductFilter) (int64, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log,
	}
}

const productColumns = `id, user_id, craft_type_id, name, description, price, category,
	       stock, tags, material, color, size, images, created_at, updated_at, deleted_at`

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var product entity.Product
	err := row.Scan(
		&product.ID,
		&product.UserID,
		&product.CraftTypeID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Category,
		&product.Stock,
		&product.Tags,
		&product.Material,
		&product.Color,
		&product.Size,
		&product.Images,
		&product.CreatedAt,
		&product.UpdatedAt,
		&product.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, user_id, craft_type_id, name, description, price,
		                     category, stock, tags, material, color, size, images,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := pr.db.Exec(ctx, query,
		product.ID,
		product.UserID,
		product.CraftTypeID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.Stock,
		product.Tags,
		product.Material,
		product.Color,
		product.Size,
		product.Images,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.String("user_id", product.UserID.String()),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted_at IS NULL`

	product, err := scanProduct(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id.String(), err)
	}

	return product, nil
}

func buildProductFilter(filter ProductFilter) (string, []any) {
	clauses := []string{"deleted_at IS NULL"}
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		n := strconv.Itoa(len(args))
		clauses = append(clauses, "(name ILIKE $"+n+" OR description ILIKE $"+n+")")
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, "category = $"+strconv.Itoa(len(args)))
	}
	if filter.CraftTypeID != nil {
		args = append(args, *filter.CraftTypeID)
		clauses = append(clauses, "craft_type_id = $"+strconv.Itoa(len(args)))
	}
	if filter.ArtisanID != nil {
		args = append(args, *filter.ArtisanID)
		clauses = append(clauses, "user_id = $"+strconv.Itoa(len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		clauses = append(clauses, "price >= $"+strconv.Itoa(len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		clauses = append(clauses, "price <= $"+strconv.Itoa(len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

func (pr *productRepository) FindAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]*entity.Product, error) {
	where, args := buildProductFilter(filter)
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := pr.db.Query(ctx, query, args...)
	if err != nil {
		pr.log.Error("Failed to list products",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all products limit %d offset %d: %w", limit, offset, err)
	}
	defer rows.Close()

	var products []*entity.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			pr.log.Error("Failed to scan product row", zap.Error(err))
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products rows: %w", err)
	}

	return products, nil
}

func (pr *productRepository) CountAll(ctx context.Context, filter ProductFilter) (int64, error) {
	where, args := buildProductFilter(filter)
	query := `SELECT COUNT(*) FROM products WHERE ` + where

	var count int64
	err := pr.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		pr.log.Error("Database error counting products", zap.Error(err))
		return 0, fmt.Errorf("count all products: %w", err)
	}

	return count, nil
}

func (pr *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET craft_type_id = $2, name = $3, description = $4, price = $5,
		    category = $6, stock = $7, tags = $8, material = $9, color = $10,
		    size = $11, images = $12, updated_at = $13
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := pr.db.Exec(ctx, query,
		product.ID,
		product.CraftTypeID,
		product.Name,
		product.Description,
		product.Price,
		product.Category,
		product.Stock,
		product.Tags,
		product.Material,
		product.Color,
		product.Size,
		product.Images,
		product.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID.String()),
		)
		return fmt.Errorf("update product %s: %w", product.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product not found")
	}

	return nil
}

func (pr *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE products SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := pr.db.Exec(ctx, query, id)
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("product_id", id.String()),
		)
		return fmt.Errorf("delete product %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Product not found")
	}

	return nil
}
