package usecase_test

import (
	"context"
	"testing"
	"time"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCartService(cartRepo *MockCartRepository, productRepo *MockProductRepository) usecase.CartService {
	repo := &repository.Repository{Cart: cartRepo, Product: productRepo}
	return usecase.NewCartService(repo, zap.NewNop())
}

func testProduct(price string, stock int) *entity.Product {
	now := time.Now()
	return &entity.Product{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:   uuid.New(),
		Name:     "Handwoven basket",
		Price:    decimal.RequireFromString(price),
		Category: entity.CategoryOther,
		Stock:    stock,
	}
}

func persistedCart(userID uuid.UUID, items ...entity.LineItem) *entity.Cart {
	cart := entity.NewCart(userID)
	cart.Items = items
	cart.Version = 1
	cart.Recompute()
	return cart
}

// The cart row is consumed by order creation, so a missing row is a 404,
// not an empty cart.
func TestGetCart_MissingRowIsNotFound(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Once()

	resp, err := svc.GetCart(context.Background(), userID)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Cart not found", apperr.MessageOf(err))
	mockCart.AssertExpectations(t)
}

func TestGetCart_Success(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	cart := persistedCart(userID, entity.LineItem{
		ProductID: uuid.New(),
		Quantity:  2,
		Price:     decimal.RequireFromString("10.00"),
	})
	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()

	resp, err := svc.GetCart(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("20.00")))
	mockCart.AssertExpectations(t)
}

func TestAddProduct_NewCart(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	userID := uuid.New()
	product := testProduct("10.00", 5)

	mockProduct.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Once()

	var saved *entity.Cart
	mockCart.On("Save", mock.Anything, mock.AnythingOfType("*entity.Cart")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(*entity.Cart)
		}).
		Return(nil).Once()

	resp, err := svc.AddProduct(context.Background(), userID, product.ID, &request.AddCartItemRequest{Quantity: 2})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("20.00")))

	assert.NotNil(t, saved)
	assert.True(t, saved.Items[0].Price.Equal(product.Price), "price snapshot taken at add time")
	mockCart.AssertExpectations(t)
	mockProduct.AssertExpectations(t)
}

func TestAddProduct_MergesExistingLine(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	userID := uuid.New()
	product := testProduct("10.00", 10)
	cart := persistedCart(userID, entity.LineItem{
		ProductID: product.ID,
		Quantity:  2,
		Price:     decimal.RequireFromString("10.00"),
	})

	mockProduct.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()
	mockCart.On("Save", mock.Anything, cart).Return(nil).Once()

	resp, err := svc.AddProduct(context.Background(), userID, product.ID, &request.AddCartItemRequest{Quantity: 1})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1, "same product merges into one line")
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("30.00")))
	mockCart.AssertExpectations(t)
}

func TestAddProduct_DefaultsQuantityToOne(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	userID := uuid.New()
	product := testProduct("7.50", 5)

	mockProduct.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Once()
	mockCart.On("Save", mock.Anything, mock.AnythingOfType("*entity.Cart")).Return(nil).Once()

	resp, err := svc.AddProduct(context.Background(), userID, product.ID, &request.AddCartItemRequest{})

	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Items[0].Quantity)
	mockCart.AssertExpectations(t)
}

func TestAddProduct_ProductNotFound(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	productID := uuid.New()
	mockProduct.On("FindByID", mock.Anything, productID).Return(nil, nil).Once()

	resp, err := svc.AddProduct(context.Background(), uuid.New(), productID, &request.AddCartItemRequest{Quantity: 1})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	mockCart.AssertNotCalled(t, "Save")
	mockProduct.AssertExpectations(t)
}

func TestAddProduct_InsufficientStock(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	product := testProduct("10.00", 1)
	mockProduct.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()

	resp, err := svc.AddProduct(context.Background(), uuid.New(), product.ID, &request.AddCartItemRequest{Quantity: 3})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, "Insufficient stock", apperr.MessageOf(err))
	mockCart.AssertNotCalled(t, "Save")
	mockProduct.AssertExpectations(t)
}

// A concurrent writer bumps the version between load and save; the service
// reloads once and retries against the fresh state.
func TestAddProduct_RetriesOnVersionConflict(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	userID := uuid.New()
	product := testProduct("10.00", 10)

	mockProduct.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Twice()
	mockCart.On("Save", mock.Anything, mock.AnythingOfType("*entity.Cart")).
		Return(apperr.Conflict("Cart was modified concurrently, please retry")).Once()
	mockCart.On("Save", mock.Anything, mock.AnythingOfType("*entity.Cart")).
		Return(nil).Once()

	resp, err := svc.AddProduct(context.Background(), userID, product.ID, &request.AddCartItemRequest{Quantity: 1})

	assert.NoError(t, err)
	assert.Len(t, resp.Items, 1)
	mockCart.AssertExpectations(t)
}

func TestAddProduct_ConflictOnRetrySurfaces(t *testing.T) {
	mockCart := new(MockCartRepository)
	mockProduct := new(MockProductRepository)
	svc := newCartService(mockCart, mockProduct)

	userID := uuid.New()
	product := testProduct("10.00", 10)

	mockProduct.On("FindByID", mock.Anything, product.ID).Return(product, nil).Once()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Twice()
	mockCart.On("Save", mock.Anything, mock.AnythingOfType("*entity.Cart")).
		Return(apperr.Conflict("Cart was modified concurrently, please retry")).Twice()

	resp, err := svc.AddProduct(context.Background(), userID, product.ID, &request.AddCartItemRequest{Quantity: 1})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	mockCart.AssertExpectations(t)
}

func TestRemoveProduct_LastItemDeletesRow(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	productID := uuid.New()
	cart := persistedCart(userID, entity.LineItem{
		ProductID: productID,
		Quantity:  1,
		Price:     decimal.RequireFromString("10.00"),
	})

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()
	mockCart.On("DeleteByUserID", mock.Anything, userID).Return(nil).Once()

	resp, err := svc.RemoveProduct(context.Background(), userID, productID)

	assert.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.True(t, resp.TotalPrice.IsZero())
	mockCart.AssertNotCalled(t, "Save")
	mockCart.AssertExpectations(t)
}

func TestRemoveProduct_NotInCart(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	cart := persistedCart(userID, entity.LineItem{
		ProductID: uuid.New(),
		Quantity:  1,
		Price:     decimal.RequireFromString("10.00"),
	})

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()

	resp, err := svc.RemoveProduct(context.Background(), userID, uuid.New())

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Product not found in cart", apperr.MessageOf(err))
	mockCart.AssertExpectations(t)
}

func TestRemoveProduct_NoCart(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Once()

	resp, err := svc.RemoveProduct(context.Background(), userID, uuid.New())

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	mockCart.AssertExpectations(t)
}

func TestAdjustQuantity_Increment(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	productID := uuid.New()
	cart := persistedCart(userID, entity.LineItem{
		ProductID: productID,
		Quantity:  2,
		Price:     decimal.RequireFromString("10.00"),
	})

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()
	mockCart.On("Save", mock.Anything, cart).Return(nil).Once()

	resp, err := svc.AdjustQuantity(context.Background(), userID, &request.AdjustQuantityRequest{
		ProductID: productID.String(),
		Action:    "increment",
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, resp.Items[0].Quantity)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("30.00")))
	mockCart.AssertExpectations(t)
}

// Decrementing a quantity of 1 is rejected; removal is an explicit call.
func TestAdjustQuantity_DecrementFloor(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	productID := uuid.New()
	cart := persistedCart(userID, entity.LineItem{
		ProductID: productID,
		Quantity:  1,
		Price:     decimal.RequireFromString("10.00"),
	})

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()

	resp, err := svc.AdjustQuantity(context.Background(), userID, &request.AdjustQuantityRequest{
		ProductID: productID.String(),
		Action:    "decrement",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, "Quantity cannot be less than 1", apperr.MessageOf(err))
	assert.Equal(t, 1, cart.Items[0].Quantity, "cart left unchanged")
	mockCart.AssertNotCalled(t, "Save")
	mockCart.AssertExpectations(t)
}

func TestAdjustQuantity_InvalidAction(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	resp, err := svc.AdjustQuantity(context.Background(), uuid.New(), &request.AdjustQuantityRequest{
		ProductID: uuid.NewString(),
		Action:    "double",
	})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	mockCart.AssertNotCalled(t, "FindByUserID")
}

func TestClearCart_NotFound(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	mockCart.On("DeleteByUserID", mock.Anything, userID).
		Return(apperr.NotFound("Cart not found")).Once()

	err := svc.ClearCart(context.Background(), userID)

	assert.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	mockCart.AssertExpectations(t)
}

func TestClearCart_Success(t *testing.T) {
	mockCart := new(MockCartRepository)
	svc := newCartService(mockCart, new(MockProductRepository))

	userID := uuid.New()
	mockCart.On("DeleteByUserID", mock.Anything, userID).Return(nil).Once()

	err := svc.ClearCart(context.Background(), userID)

	assert.NoError(t, err)
	mockCart.AssertExpectations(t)
}
