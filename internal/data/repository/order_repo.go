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

type OrderRepository interface {
	CreateFromCart(ctx context.Context, order *entity.Order, cartVersion int) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

const orderColumns = `id, user_id, items, total_price, shipping_address,
	       payment_method, payment_status, status, created_at, updated_at`

func scanOrder(row pgx.Row) (*entity.Order, error) {
	var order entity.Order
	var items, shipping []byte
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&items,
		&order.TotalPrice,
		&shipping,
		&order.PaymentMethod,
		&order.PaymentStatus,
		&order.Status,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(items, &order.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	if err := json.Unmarshal(shipping, &order.ShippingAddress); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}

	return &order, nil
}

// CreateFromCart inserts the order and removes the user's cart in a single
// transaction, so an order can never coexist with the cart it consumed.
// The delete is guarded by the version read alongside the snapshot; a cart
// changed in between stays untouched and the whole transaction rolls back.
func (or *orderRepository) CreateFromCart(ctx context.Context, order *entity.Order, cartVersion int) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}
	shipping, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("encode shipping address: %w", err)
	}

	tx, err := or.db.Begin(ctx)
	if err != nil {
		or.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO orders (id, user_id, items, total_price, shipping_address,
		                   payment_method, payment_status, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, insertQuery,
		order.ID,
		order.UserID,
		items,
		order.TotalPrice,
		shipping,
		order.PaymentMethod,
		order.PaymentStatus,
		order.Status,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		or.log.Error("Failed to insert order",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("insert order for %s: %w", order.UserID.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM carts WHERE user_id = $1 AND version = $2`,
		order.UserID, cartVersion)
	if err != nil {
		or.log.Error("Failed to consume cart",
			zap.Error(err),
			zap.String("user_id", order.UserID.String()),
		)
		return fmt.Errorf("consume cart for %s: %w", order.UserID.String(), err)
	}
	if result.RowsAffected() == 0 {
		return apperr.Conflict("Cart was modified concurrently, please retry")
	}

	if err := tx.Commit(ctx); err != nil {
		or.log.Error("Failed to commit order transaction", zap.Error(err))
		return fmt.Errorf("commit order transaction: %w", err)
	}

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	order, err := scanOrder(or.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return order, nil
}

func (or *orderRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := or.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		or.log.Error("Failed to list orders for user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find orders for %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (or *orderRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := or.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		or.log.Error("Database error counting user orders", zap.Error(err))
		return 0, fmt.Errorf("count orders for %s: %w", userID.String(), err)
	}

	return count, nil
}

func (or *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	rows, err := or.db.Query(ctx, query, limit, offset)
	if err != nil {
		or.log.Error("Failed to list orders", zap.Error(err))
		return nil, fmt.Errorf("find all orders: %w", err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (or *orderRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM orders`

	var count int64
	err := or.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		or.log.Error("Database error counting orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", err)
	}

	return count, nil
}

func (or *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := or.db.Exec(ctx, query, id, status)
	if err != nil {
		or.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound("Order not found")
	}

	return nil
}

func collectOrders(rows pgx.Rows) ([]*entity.Order, error) {
	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders rows: %w", err)
	}

	return orders, nil
}
