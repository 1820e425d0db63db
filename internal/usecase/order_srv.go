package usecase

import (
	"context"
	"fmt"
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

type OrderService interface {
	Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*response.OrderResponse, error)
	List(ctx context.Context, actor Actor, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
	Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

// Create freezes the current cart into an order. The cart is consumed in the
// same transaction, so the order exists if and only if the cart is gone.
func (s *orderService) Create(ctx context.Context, userID uuid.UUID, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	// 2. The cart must exist and hold at least one item
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load cart", err)
	}
	if cart == nil || cart.IsEmpty() {
		return nil, apperr.InvalidInput("Cart is empty")
	}

	// 3. Snapshot the cart. Items are copied so later cart or catalog
	// changes cannot reach into the order.
	items := make([]entity.LineItem, len(cart.Items))
	copy(items, cart.Items)

	now := time.Now()
	order := &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userID,
		Items:      items,
		TotalPrice: cart.TotalPrice,
		ShippingAddress: entity.ShippingAddress{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			Zip:     req.ShippingAddress.Zip,
			Country: req.ShippingAddress.Country,
		},
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		PaymentStatus: entity.PaymentStatus(req.PaymentStatus),
		Status:        entity.OrderStatusPending,
	}

	// 4. Insert order and delete cart atomically. The version guard on the
	// delete rejects carts changed since the snapshot above.
	if err := s.repo.Order.CreateFromCart(ctx, order, cart.Version); err != nil {
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, apperr.Internal("Failed to create order", err)
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("total", order.TotalPrice.String()),
	)

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetByID(ctx context.Context, actor Actor, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}

	if !actor.CanAccess(order.UserID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

// List returns the actor's own orders; admins see everything
func (s *orderService) List(ctx context.Context, actor Actor, page request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	var (
		orders []*entity.Order
		total  int64
		err    error
	)

	if actor.IsAdmin() {
		orders, err = s.repo.Order.FindAll(ctx, page.Limit(), page.Offset())
		if err == nil {
			total, err = s.repo.Order.CountAll(ctx)
		}
	} else {
		orders, err = s.repo.Order.FindByUserID(ctx, actor.ID, page.Limit(), page.Offset())
		if err == nil {
			total, err = s.repo.Order.CountByUserID(ctx, actor.ID)
		}
	}
	if err != nil {
		return nil, apperr.Internal("Failed to list orders", err)
	}

	return response.NewPaginatedResponse(response.OrdersToResponse(orders), page.Page, page.Limit(), total), nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}
	next := entity.OrderStatus(req.Status)

	// 2. Load the order
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}

	// 3. The status machine only moves forward, one step at a time
	if !order.Status.CanTransitionTo(next) {
		return nil, apperr.InvalidInput(
			fmt.Sprintf("Cannot change order status from %s to %s", order.Status, next))
	}

	if err := s.repo.Order.UpdateStatus(ctx, id, next); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to update order status", err)
	}

	s.log.Info("Order status updated",
		zap.String("order_id", id.String()),
		zap.String("from", string(order.Status)),
		zap.String("to", string(next)),
	)

	order.Status = next
	order.UpdatedAt = time.Now()
	resp := response.OrderToResponse(order)
	return &resp, nil
}

// Cancel is allowed for the owner or an admin, and only before the order
// reaches a terminal state.
func (s *orderService) Cancel(ctx context.Context, actor Actor, id uuid.UUID) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("Failed to load order", err)
	}
	if order == nil {
		return nil, apperr.NotFound("Order not found")
	}

	if !actor.CanAccess(order.UserID) {
		return nil, apperr.Forbidden("You do not have access to this resource")
	}

	if !order.Status.CanTransitionTo(entity.OrderStatusCancelled) {
		return nil, apperr.InvalidInput(
			fmt.Sprintf("Order in status %s can no longer be cancelled", order.Status))
	}

	if err := s.repo.Order.UpdateStatus(ctx, id, entity.OrderStatusCancelled); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, err
		}
		return nil, apperr.Internal("Failed to cancel order", err)
	}

	s.log.Info("Order cancelled",
		zap.String("order_id", id.String()),
		zap.String("by", actor.ID.String()),
	)

	order.Status = entity.OrderStatusCancelled
	order.UpdatedAt = time.Now()
	resp := response.OrderToResponse(order)
	return &resp, nil
}
