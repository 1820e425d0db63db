package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.GetByID(r.Context(), actor.ID)
	if err != nil {
		handleServiceError(w, err, h.log, "get me")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// GetByID handles GET /api/v1/users/{id}
func (h *UserHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, h.log, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// Update handles PUT /api/v1/users/{id}
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	var req request.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.Update(r.Context(), actor, id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated successfully", user)
}

// Delete handles DELETE /api/v1/users/{id}
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	if err := h.service.Delete(r.Context(), actor, id); err != nil {
		handleServiceError(w, err, h.log, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted successfully", nil)
}

// ListAddresses handles GET /api/v1/users/{id}/addresses
func (h *UserHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	addresses, err := h.service.ListAddresses(r.Context(), actor, userID)
	if err != nil {
		handleServiceError(w, err, h.log, "list addresses")
		return
	}

	utils.ResponseSuccess(w, "Addresses retrieved successfully", addresses)
}

// CreateAddress handles POST /api/v1/users/{id}/addresses
func (h *UserHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	var req request.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	address, err := h.service.CreateAddress(r.Context(), actor, userID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "create address")
		return
	}

	utils.ResponseCreated(w, "Address created successfully", address)
}

// UpdateAddress handles PUT /api/v1/users/{id}/addresses/{addressId}
func (h *UserHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}
	addressID, err := pathUUID(r, "addressId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address id")
		return
	}

	var req request.AddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	address, err := h.service.UpdateAddress(r.Context(), actor, userID, addressID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update address")
		return
	}

	utils.ResponseSuccess(w, "Address updated successfully", address)
}

// DeleteAddress handles DELETE /api/v1/users/{id}/addresses/{addressId}
func (h *UserHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}
	addressID, err := pathUUID(r, "addressId")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid address id")
		return
	}

	if err := h.service.DeleteAddress(r.Context(), actor, userID, addressID); err != nil {
		handleServiceError(w, err, h.log, "delete address")
		return
	}

	utils.ResponseSuccess(w, "Address deleted successfully", nil)
}

// GetArtisanProfile handles GET /api/v1/users/{id}/artisan
func (h *UserHandler) GetArtisanProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	profile, err := h.service.GetArtisanProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err, h.log, "get artisan profile")
		return
	}

	utils.ResponseSuccess(w, "Artisan profile retrieved successfully", profile)
}

// UpsertArtisanProfile handles PUT /api/v1/users/{id}/artisan
func (h *UserHandler) UpsertArtisanProfile(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	var req request.ArtisanProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	profile, err := h.service.UpsertArtisanProfile(r.Context(), actor, userID, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "upsert artisan profile")
		return
	}

	utils.ResponseSuccess(w, "Artisan profile saved successfully", profile)
}
