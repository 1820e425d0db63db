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

type CartService interface {
	GetCart(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error)
	AddProduct(ctx context.Context, userID, productID uuid.UUID, req *request.AddCartItemRequest) (*response.CartResponse, error)
	RemoveProduct(ctx context.Context, userID, productID uuid.UUID) (*response.CartResponse, error)
	AdjustQuantity(ctx context.Context, userID uuid.UUID, req *request.AdjustQuantityRequest) (*response.CartResponse, error)
	ClearCart(ctx context.Context, userID uuid.UUID) error
}

type cartService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCartService(repo *repository.Repository, log *zap.Logger) CartService {
	return &cartService{
		repo: repo,
		log:  log.With(zap.String("service", "cart")),
	}
}

// GetCart returns the user's cart. No row means no cart: creating an order
// consumes the row, so the next read is a 404 until something is added again.
func (s *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*response.CartResponse, error) {
	cart, err := s.repo.Cart.FindByUserID(ctx, userID)
	if err != nil {
		return nil, apperr.Internal("Failed to load cart", err)
	}

	if cart == nil {
		return nil, apperr.NotFound("Cart not found")
	}

	resp := response.CartToResponse(cart)
	return &resp, nil
}

func (s *cartService) AddProduct(ctx context.Context, userID, productID uuid.UUID, req *request.AddCartItemRequest) (*response.CartResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	// 2. The product must exist and have stock; its current price becomes
	// the snapshot on the line item.
	product, err := s.repo.Product.FindByID(ctx, productID)
	if err != nil {
		return nil, apperr.Internal("Failed to load product", err)
	}
	if product == nil {
		return nil, apperr.NotFound("Product not found")
	}
	if product.Stock < quantity {
		return nil, apperr.InvalidInput("Insufficient stock")
	}

	// 3. Apply and save, retrying once on a concurrent write
	return s.mutate(ctx, userID, true, func(cart *entity.Cart) error {
		cart.AddItem(productID, product.Price, quantity)
		return nil
	})
}

func (s *cartService) RemoveProduct(ctx context.Context, userID, productID uuid.UUID) (*response.CartResponse, error) {
	return s.mutate(ctx, userID, false, func(cart *entity.Cart) error {
		if !cart.RemoveItem(productID) {
			return apperr.NotFound("Product not found in cart")
		}
		return nil
	})
}

func (s *cartService) AdjustQuantity(ctx context.Context, userID uuid.UUID, req *request.AdjustQuantityRequest) (*response.CartResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.InvalidInput(utils.FormatValidationErrors(errs))
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, apperr.InvalidInput("productId must be a valid UUID")
	}

	return s.mutate(ctx, userID, false, func(cart *entity.Cart) error {
		return cart.AdjustQuantity(productID, entity.QuantityAction(req.Action))
	})
}

func (s *cartService) ClearCart(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Cart.DeleteByUserID(ctx, userID); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return apperr.NotFound("Cart not found")
		}
		return apperr.Internal("Failed to clear cart", err)
	}

	s.log.Info("Cart cleared", zap.String("user_id", userID.String()))
	return nil
}

// mutate loads the cart, applies fn and persists the result. A version
// conflict from a concurrent writer is retried once against the fresh state.
// An empty result deletes the row: an empty cart and no cart are the same.
func (s *cartService) mutate(ctx context.Context, userID uuid.UUID, createIfMissing bool, fn func(*entity.Cart) error) (*response.CartResponse, error) {
	for attempt := 0; ; attempt++ {
		cart, err := s.repo.Cart.FindByUserID(ctx, userID)
		if err != nil {
			return nil, apperr.Internal("Failed to load cart", err)
		}
		if cart == nil {
			if !createIfMissing {
				return nil, apperr.NotFound("Cart not found")
			}
			cart = entity.NewCart(userID)
		}

		if err := fn(cart); err != nil {
			return nil, err
		}
		cart.UpdatedAt = time.Now()

		if cart.IsEmpty() {
			if cart.Version > 0 {
				if err := s.repo.Cart.DeleteByUserID(ctx, userID); err != nil && apperr.KindOf(err) != apperr.KindNotFound {
					return nil, apperr.Internal("Failed to delete empty cart", err)
				}
			}
			resp := response.EmptyCartResponse(userID.String())
			return &resp, nil
		}

		err = s.repo.Cart.Save(ctx, cart)
		if err == nil {
			resp := response.CartToResponse(cart)
			return &resp, nil
		}
		if apperr.KindOf(err) == apperr.KindConflict && attempt == 0 {
			s.log.Debug("Cart version conflict, retrying",
				zap.String("user_id", userID.String()))
			continue
		}
		if apperr.KindOf(err) == apperr.KindConflict {
			return nil, err
		}
		return nil, apperr.Internal("Failed to save cart", err)
	}
}
