package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/v1/products/{id}/reviews
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	productID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	review, err := h.service.Create(r.Context(), actor, productID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created successfully", review)
}

// ListByProduct handles GET /api/v1/products/{id}/reviews
func (h *ReviewHandler) ListByProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	result, summary, err := h.service.ListByProduct(r.Context(), productID, paginationFrom(r))
	if err != nil {
		handleServiceError(w, err, h.log, "list reviews")
		return
	}

	meta := struct {
		Pagination any `json:"pagination"`
		Summary    any `json:"summary"`
	}{result.Pagination, summary}

	utils.ResponseSuccessMeta(w, "Reviews retrieved successfully", result.Data, meta)
}

// Update handles PUT /api/v1/reviews/{id}
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid review id")
		return
	}

	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	review, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated successfully", review)
}

// Delete handles DELETE /api/v1/reviews/{id}
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid review id")
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, err, h.log, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted successfully", nil)
}
