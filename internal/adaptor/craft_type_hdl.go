package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type CraftTypeHandler struct {
	service usecase.CraftTypeService
	log     *zap.Logger
}

func NewCraftTypeHandler(service usecase.CraftTypeService, log *zap.Logger) *CraftTypeHandler {
	return &CraftTypeHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/v1/craft-types
func (h *CraftTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CraftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	craftType, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, h.log, "create craft type")
		return
	}

	utils.ResponseCreated(w, "Craft type created successfully", craftType)
}

// GetByID handles GET /api/v1/craft-types/{id}
func (h *CraftTypeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid craft type id")
		return
	}

	craftType, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, h.log, "get craft type")
		return
	}

	utils.ResponseSuccess(w, "Craft type retrieved successfully", craftType)
}

// List handles GET /api/v1/craft-types
func (h *CraftTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	craftTypes, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err, h.log, "list craft types")
		return
	}

	utils.ResponseSuccess(w, "Craft types retrieved successfully", craftTypes)
}

// Update handles PUT /api/v1/craft-types/{id}
func (h *CraftTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid craft type id")
		return
	}

	var req request.CraftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	craftType, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update craft type")
		return
	}

	utils.ResponseSuccess(w, "Craft type updated successfully", craftType)
}

// Delete handles DELETE /api/v1/craft-types/{id}
func (h *CraftTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid craft type id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err, h.log, "delete craft type")
		return
	}

	utils.ResponseSuccess(w, "Craft type deleted successfully", nil)
}
