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

func newOrderService(orderRepo *MockOrderRepository, cartRepo *MockCartRepository) usecase.OrderService {
	repo := &repository.Repository{Order: orderRepo, Cart: cartRepo}
	return usecase.NewOrderService(repo, zap.NewNop())
}

func testOrderRequest() *request.CreateOrderRequest {
	return &request.CreateOrderRequest{
		ShippingAddress: request.ShippingAddressRequest{
			Street:  "12 Kiln Lane",
			City:    "Porto",
			Country: "Portugal",
		},
		PaymentMethod: "cash_on_delivery",
		PaymentStatus: "unpaid",
	}
}

func testOrder(userID uuid.UUID, status entity.OrderStatus) *entity.Order {
	now := time.Now()
	return &entity.Order{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID: userID,
		Items: []entity.LineItem{
			{ProductID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("15.00")},
		},
		TotalPrice:    decimal.RequireFromString("30.00"),
		PaymentMethod: entity.PaymentCashOnDelivery,
		PaymentStatus: entity.PaymentStatusUnpaid,
		Status:        status,
	}
}

func TestCreateOrder_Success(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	svc := newOrderService(mockOrder, mockCart)

	userID := uuid.New()
	cart := persistedCart(userID,
		entity.LineItem{ProductID: uuid.New(), Quantity: 2, Price: decimal.RequireFromString("10.00")},
		entity.LineItem{ProductID: uuid.New(), Quantity: 1, Price: decimal.RequireFromString("5.50")},
	)

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()

	var created *entity.Order
	mockOrder.On("CreateFromCart", mock.Anything, mock.AnythingOfType("*entity.Order"), cart.Version).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Order)
		}).
		Return(nil).Once()

	resp, err := svc.Create(context.Background(), userID, testOrderRequest())

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, entity.PaymentStatusUnpaid, resp.PaymentStatus)
	assert.True(t, resp.TotalPrice.Equal(decimal.RequireFromString("25.50")))
	assert.Len(t, resp.Items, 2)

	// The order holds a copy; mutating the cart afterwards must not reach it.
	cart.Items[0].Quantity = 99
	assert.Equal(t, 2, created.Items[0].Quantity)

	mockCart.AssertExpectations(t)
	mockOrder.AssertExpectations(t)
}

func TestCreateOrder_EmptyCart(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	svc := newOrderService(mockOrder, mockCart)

	userID := uuid.New()
	mockCart.On("FindByUserID", mock.Anything, userID).Return(nil, nil).Once()

	resp, err := svc.Create(context.Background(), userID, testOrderRequest())

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Equal(t, "Cart is empty", apperr.MessageOf(err))
	mockOrder.AssertNotCalled(t, "CreateFromCart")
	mockCart.AssertExpectations(t)
}

// A completed gateway payment arrives as paymentStatus "paid" and must be
// recorded as submitted.
func TestCreateOrder_RecordsPaidStatus(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	svc := newOrderService(mockOrder, mockCart)

	userID := uuid.New()
	cart := persistedCart(userID,
		entity.LineItem{ProductID: uuid.New(), Quantity: 1, Price: decimal.RequireFromString("10.00")},
	)

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()
	mockOrder.On("CreateFromCart", mock.Anything, mock.AnythingOfType("*entity.Order"), cart.Version).
		Return(nil).Once()

	req := testOrderRequest()
	req.PaymentStatus = "paid"

	resp, err := svc.Create(context.Background(), userID, req)

	assert.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)
	mockOrder.AssertExpectations(t)
}

func TestCreateOrder_MissingPaymentStatus(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	svc := newOrderService(mockOrder, mockCart)

	req := testOrderRequest()
	req.PaymentStatus = ""

	resp, err := svc.Create(context.Background(), uuid.New(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	mockCart.AssertNotCalled(t, "FindByUserID")
	mockOrder.AssertNotCalled(t, "CreateFromCart")
}

// The cart changed between the snapshot read and the consuming delete; the
// guarded delete reports a conflict instead of dropping the new items.
func TestCreateOrder_ConcurrentCartChange(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	svc := newOrderService(mockOrder, mockCart)

	userID := uuid.New()
	cart := persistedCart(userID,
		entity.LineItem{ProductID: uuid.New(), Quantity: 1, Price: decimal.RequireFromString("10.00")},
	)

	mockCart.On("FindByUserID", mock.Anything, userID).Return(cart, nil).Once()
	mockOrder.On("CreateFromCart", mock.Anything, mock.AnythingOfType("*entity.Order"), cart.Version).
		Return(apperr.Conflict("Cart was modified concurrently, please retry")).Once()

	resp, err := svc.Create(context.Background(), userID, testOrderRequest())

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	mockOrder.AssertExpectations(t)
}

func TestCreateOrder_InvalidPaymentMethod(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	mockCart := new(MockCartRepository)
	svc := newOrderService(mockOrder, mockCart)

	req := testOrderRequest()
	req.PaymentMethod = "barter"

	resp, err := svc.Create(context.Background(), uuid.New(), req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	mockCart.AssertNotCalled(t, "FindByUserID")
}

func TestGetOrder_OwnerAllowed(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	userID := uuid.New()
	order := testOrder(userID, entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	actor := usecase.Actor{ID: userID, Role: entity.RoleCustomer}
	resp, err := svc.GetByID(context.Background(), actor, order.ID)

	assert.NoError(t, err)
	assert.Equal(t, order.ID.String(), resp.ID)
	mockOrder.AssertExpectations(t)
}

func TestGetOrder_StrangerForbidden(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer}
	resp, err := svc.GetByID(context.Background(), actor, order.ID)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	mockOrder.AssertExpectations(t)
}

func TestGetOrder_AdminAllowed(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	resp, err := svc.GetByID(context.Background(), actor, order.ID)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	mockOrder.AssertExpectations(t)
}

func TestUpdateStatus_OneStepForward(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()
	mockOrder.On("UpdateStatus", mock.Anything, order.ID, entity.OrderStatusProcessing).Return(nil).Once()

	resp, err := svc.UpdateStatus(context.Background(), order.ID, &request.UpdateOrderStatusRequest{Status: "processing"})

	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, resp.Status)
	mockOrder.AssertExpectations(t)
}

func TestUpdateStatus_SkippingStepRejected(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	resp, err := svc.UpdateStatus(context.Background(), order.ID, &request.UpdateOrderStatusRequest{Status: "shipped"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "Cannot change order status from pending to shipped")
	mockOrder.AssertNotCalled(t, "UpdateStatus")
	mockOrder.AssertExpectations(t)
}

func TestUpdateStatus_BackwardRejected(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusShipped)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	resp, err := svc.UpdateStatus(context.Background(), order.ID, &request.UpdateOrderStatusRequest{Status: "processing"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	mockOrder.AssertNotCalled(t, "UpdateStatus")
	mockOrder.AssertExpectations(t)
}

func TestUpdateStatus_TerminalStateFrozen(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusDelivered)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	resp, err := svc.UpdateStatus(context.Background(), order.ID, &request.UpdateOrderStatusRequest{Status: "cancelled"})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	mockOrder.AssertNotCalled(t, "UpdateStatus")
	mockOrder.AssertExpectations(t)
}

func TestCancelOrder_OwnerBeforeShipment(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	userID := uuid.New()
	order := testOrder(userID, entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()
	mockOrder.On("UpdateStatus", mock.Anything, order.ID, entity.OrderStatusCancelled).Return(nil).Once()

	actor := usecase.Actor{ID: userID, Role: entity.RoleCustomer}
	resp, err := svc.Cancel(context.Background(), actor, order.ID)

	assert.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, resp.Status)
	mockOrder.AssertExpectations(t)
}

func TestCancelOrder_StrangerForbidden(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	order := testOrder(uuid.New(), entity.OrderStatusPending)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer}
	resp, err := svc.Cancel(context.Background(), actor, order.ID)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	mockOrder.AssertNotCalled(t, "UpdateStatus")
	mockOrder.AssertExpectations(t)
}

func TestCancelOrder_DeliveredRejected(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	userID := uuid.New()
	order := testOrder(userID, entity.OrderStatusDelivered)
	mockOrder.On("FindByID", mock.Anything, order.ID).Return(order, nil).Once()

	actor := usecase.Actor{ID: userID, Role: entity.RoleCustomer}
	resp, err := svc.Cancel(context.Background(), actor, order.ID)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	assert.Contains(t, apperr.MessageOf(err), "can no longer be cancelled")
	mockOrder.AssertNotCalled(t, "UpdateStatus")
	mockOrder.AssertExpectations(t)
}

func TestListOrders_CustomerSeesOwnOnly(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	userID := uuid.New()
	orders := []*entity.Order{testOrder(userID, entity.OrderStatusPending)}

	mockOrder.On("FindByUserID", mock.Anything, userID, 10, 0).Return(orders, nil).Once()
	mockOrder.On("CountByUserID", mock.Anything, userID).Return(int64(1), nil).Once()

	actor := usecase.Actor{ID: userID, Role: entity.RoleCustomer}
	resp, err := svc.List(context.Background(), actor, request.PaginatedRequest{Page: 1, PerPage: 10})

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Pagination.Total)
	mockOrder.AssertNotCalled(t, "FindAll")
	mockOrder.AssertExpectations(t)
}

func TestListOrders_AdminSeesAll(t *testing.T) {
	mockOrder := new(MockOrderRepository)
	svc := newOrderService(mockOrder, new(MockCartRepository))

	orders := []*entity.Order{
		testOrder(uuid.New(), entity.OrderStatusPending),
		testOrder(uuid.New(), entity.OrderStatusShipped),
	}

	mockOrder.On("FindAll", mock.Anything, 10, 0).Return(orders, nil).Once()
	mockOrder.On("CountAll", mock.Anything).Return(int64(2), nil).Once()

	actor := usecase.Actor{ID: uuid.New(), Role: entity.RoleAdmin}
	resp, err := svc.List(context.Background(), actor, request.PaginatedRequest{Page: 1, PerPage: 10})

	assert.NoError(t, err)
	assert.Len(t, resp.Data, 2)
	mockOrder.AssertNotCalled(t, "FindByUserID")
	mockOrder.AssertExpectations(t)
}
