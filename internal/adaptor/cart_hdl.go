package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type CartHandler struct {
	service usecase.CartService
	log     *zap.Logger
}

func NewCartHandler(service usecase.CartService, log *zap.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		log:     log,
	}
}

// GetCart handles GET /api/v1/carts
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	cart, err := h.service.GetCart(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, err, h.log, "get cart")
		return
	}

	utils.ResponseSuccess(w, "Cart retrieved successfully", cart)
}

// AddProduct handles POST /api/v1/carts/products/{productId}.
// The body is optional; without one the quantity defaults to 1.
func (h *CartHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	productID, err := pathUUID(r, "productId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	var req request.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	cart, err := h.service.AddProduct(r.Context(), actor.ID, productID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "add cart product")
		return
	}

	utils.ResponseSuccess(w, "Product added to cart", cart)
}

// RemoveProduct handles DELETE /api/v1/carts/products/{productId}
func (h *CartHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	productID, err := pathUUID(r, "productId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	cart, err := h.service.RemoveProduct(r.Context(), actor.ID, productID)
	if err != nil {
		handleServiceError(w, err, h.log, "remove cart product")
		return
	}

	utils.ResponseSuccess(w, "Product removed from cart", cart)
}

// AdjustQuantity handles PATCH /api/v1/carts/products/quantity
func (h *CartHandler) AdjustQuantity(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.AdjustQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	cart, err := h.service.AdjustQuantity(r.Context(), actor.ID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "adjust cart quantity")
		return
	}

	utils.ResponseSuccess(w, "Cart quantity updated", cart)
}

// ClearCart handles DELETE /api/v1/carts
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.ClearCart(r.Context(), actor.ID); err != nil {
		handleServiceError(w, err, h.log, "clear cart")
		return
	}

	utils.ResponseSuccess(w, "Cart cleared successfully", nil)
}
