package response

import (
	"encoding/json"
	"time"

	"artisan-market/internal/data/entity"
)

type UserResponse struct {
	ID            string            `json:"id"`
	Username      string            `json:"username"`
	Email         string            `json:"email"`
	FullName      *string           `json:"fullName,omitempty"`
	DateOfBirth   *time.Time        `json:"dateOfBirth,omitempty"`
	Gender        *string           `json:"gender,omitempty"`
	Mobile        *string           `json:"mobile,omitempty"`
	Image         json.RawMessage   `json:"image,omitempty"`
	Role          entity.UserRole   `json:"role"`
	RequestedRole *entity.UserRole  `json:"requestedRole,omitempty"`
	Status        entity.UserStatus `json:"status"`
	IsVerified    bool              `json:"isVerified"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// UserToResponse strips credentials and OTP state from the entity
func UserToResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Username:      user.Username,
		Email:         user.Email,
		FullName:      user.FullName,
		DateOfBirth:   user.DateOfBirth,
		Gender:        user.Gender,
		Mobile:        user.Mobile,
		Image:         user.Image,
		Role:          user.Role,
		RequestedRole: user.RequestedRole,
		Status:        user.Status,
		IsVerified:    user.IsVerified(),
		CreatedAt:     user.CreatedAt,
	}
}

func UsersToResponse(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, UserToResponse(user))
	}
	return out
}
