package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	product, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "create product")
		return
	}

	utils.ResponseCreated(w, "Product created successfully", product)
}

// GetByID handles GET /api/v1/products/{id}
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, h.log, "get product")
		return
	}

	utils.ResponseSuccess(w, "Product retrieved successfully", product)
}

// productFilterFrom reads the catalog filters from the query string
func productFilterFrom(r *http.Request) (repository.ProductFilter, error) {
	q := r.URL.Query()
	filter := repository.ProductFilter{
		Search:   q.Get("search"),
		Category: entity.ProductCategory(q.Get("category")),
	}

	if v := q.Get("craft_type_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.CraftTypeID = &id
	}
	if v := q.Get("artisan_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return filter, err
		}
		filter.ArtisanID = &id
	}
	if v := q.Get("min_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return filter, err
		}
		filter.MinPrice = &price
	}
	if v := q.Get("max_price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			return filter, err
		}
		filter.MaxPrice = &price
	}

	return filter, nil
}

// List handles GET /api/v1/products with filters and pagination
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := productFilterFrom(r)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid filter parameters")
		return
	}

	result, err := h.service.List(r.Context(), filter, paginationFrom(r))
	if err != nil {
		handleServiceError(w, err, h.log, "list products")
		return
	}

	utils.ResponseSuccessMeta(w, "Products retrieved successfully", result.Data, result.Pagination)
}

// Update handles PUT /api/v1/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	product, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update product")
		return
	}

	utils.ResponseSuccess(w, "Product updated successfully", product)
}

// Delete handles DELETE /api/v1/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid product id")
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, err, h.log, "delete product")
		return
	}

	utils.ResponseSuccess(w, "Product deleted successfully", nil)
}
