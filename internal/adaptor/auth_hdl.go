package adaptor

import (
	"encoding/json"
	"net/http"

	"artisan-market/internal/dto/request"
	"artisan-market/internal/usecase"
	"artisan-market/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, h.log, "register")
		return
	}

	utils.ResponseCreated(w, "Registration successful. Check your e-mail for the verification code.", user)
}

// VerifyUser handles POST /api/v1/auth/verify-user/{id}
func (h *AuthHandler) VerifyUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathUUID(r, "id")
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user id")
		return
	}

	var req request.VerifyUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.VerifyUser(r.Context(), userID, &req); err != nil {
		handleServiceError(w, err, h.log, "verify user")
		return
	}

	utils.ResponseSuccess(w, "Account verified successfully", nil)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, h.log, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", auth)
}

// ForgetPass handles POST /api/v1/auth/forget-pass
func (h *AuthHandler) ForgetPass(w http.ResponseWriter, r *http.Request) {
	var req request.ForgetPassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ForgetPass(r.Context(), &req); err != nil {
		handleServiceError(w, err, h.log, "forget password")
		return
	}

	// Same answer whether or not the account exists
	utils.ResponseSuccess(w, "If the e-mail is registered, a reset link has been sent", nil)
}

// ResetPass handles POST /api/v1/auth/reset-pass
func (h *AuthHandler) ResetPass(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ResetPass(r.Context(), &req); err != nil {
		handleServiceError(w, err, h.log, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}

// UpdatePassword handles POST /api/v1/users/update-password
func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdatePassword(r.Context(), actor.ID, &req); err != nil {
		handleServiceError(w, err, h.log, "update password")
		return
	}

	utils.ResponseSuccess(w, "Password updated successfully", nil)
}
