package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type StoryHandler struct {
	service usecase.StoryService
	log     *zap.Logger
}

func NewStoryHandler(service usecase.StoryService, log *zap.Logger) *StoryHandler {
	return &StoryHandler{
		service: service,
		log:     log,
	}
}

// Create handles POST /api/v1/stories
func (h *StoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	story, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "create story")
		return
	}

	utils.ResponseCreated(w, "Story created successfully", story)
}

// GetByID handles GET /api/v1/stories/{id}
func (h *StoryHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story id")
		return
	}

	story, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, h.log, "get story")
		return
	}

	utils.ResponseSuccess(w, "Story retrieved successfully", story)
}

// List handles GET /api/v1/stories
func (h *StoryHandler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), paginationFrom(r))
	if err != nil {
		handleServiceError(w, err, h.log, "list stories")
		return
	}

	utils.ResponseSuccessMeta(w, "Stories retrieved successfully", result.Data, result.Pagination)
}

// Update handles PUT /api/v1/stories/{id}
func (h *StoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story id")
		return
	}

	var req request.StoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	story, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update story")
		return
	}

	utils.ResponseSuccess(w, "Story updated successfully", story)
}

// Delete handles DELETE /api/v1/stories/{id}
func (h *StoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid story id")
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, err, h.log, "delete story")
		return
	}

	utils.ResponseSuccess(w, "Story deleted successfully", nil)
}
