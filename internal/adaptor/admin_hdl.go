package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/data/entity"
	"artisan-market/internal/data/repository"
	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log,
	}
}

// ListUsers handles GET /api/v1/admin/users?search=&role=&status=&page=&per_page=
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.UserFilter{
		Search: q.Get("search"),
	}
	if role := q.Get("role"); role != "" {
		if !entity.ValidRole(role) {
			utils.ResponseBadRequest(w, "Unknown role filter")
			return
		}
		filter.Role = entity.UserRole(role)
	}
	if status := q.Get("status"); status != "" {
		filter.Status = entity.UserStatus(status)
	}

	result, err := h.service.ListUsers(r.Context(), filter, paginationFrom(r))
	if err != nil {
		handleServiceError(w, err, h.log, "list users")
		return
	}

	utils.ResponseSuccessMeta(w, "Users retrieved successfully", result.Data, result.Pagination)
}

// UpdateRole handles PATCH /api/v1/admin/update-role/{id}
func (h *AdminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	var req request.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.UpdateRole(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, h.log, "update role")
		return
	}

	utils.ResponseSuccess(w, "Role updated successfully", user)
}

// ApproveRole handles POST /api/v1/admin/approved-role/{id}
func (h *AdminHandler) ApproveRole(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	user, err := h.service.ApproveRole(r.Context(), id)
	if err != nil {
		handleServiceError(w, err, h.log, "approve role")
		return
	}

	utils.ResponseSuccess(w, "Role request approved", user)
}

// ListRoleRequests handles GET /api/v1/admin/role-requests
func (h *AdminHandler) ListRoleRequests(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListRoleRequests(r.Context(), paginationFrom(r))
	if err != nil {
		handleServiceError(w, err, h.log, "list role requests")
		return
	}

	utils.ResponseSuccessMeta(w, "Role requests retrieved successfully", result.Data, result.Pagination)
}
