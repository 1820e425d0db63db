package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/v1/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.Create(r.Context(), actor.ID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "create order")
		return
	}

	utils.ResponseCreated(w, "Order created successfully", order)
}

// GetByID handles GET /api/v1/orders/{id}
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order id")
		return
	}

	order, err := h.service.GetByID(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, err, h.log, "get order")
		return
	}

	utils.ResponseSuccess(w, "Order retrieved successfully", order)
}

// List handles GET /api/v1/orders
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	result, err := h.service.List(r.Context(), actor, paginationFrom(r))
	if err != nil {
		handleServiceError(w, err, h.log, "list orders")
		return
	}

	utils.ResponseSuccessMeta(w, "Orders retrieved successfully", result.Data, result.Pagination)
}

// UpdateStatus handles PUT /api/v1/orders/{id}/status
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order id")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	order, err := h.service.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update order status")
		return
	}

	utils.ResponseSuccess(w, "Order status updated", order)
}

// Cancel handles PUT /api/v1/orders/{id}/cancel-order
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid order id")
		return
	}

	order, err := h.service.Cancel(r.Context(), actor, id)
	if err != nil {
		handleServiceError(w, err, h.log, "cancel order")
		return
	}

	utils.ResponseSuccess(w, "Order cancelled", order)
}
