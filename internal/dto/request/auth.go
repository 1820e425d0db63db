package request

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	FullName *string `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	Mobile   *string `json:"mobile,omitempty" validate:"omitempty,min=10,max=15"`
	Role     string  `json:"role,omitempty" validate:"omitempty,oneof=customer artisan merchant"`
}

// OTP length is deployment configuration, so the tag only bounds it
type VerifyUserRequest struct {
	OTP string `json:"otp" validate:"required,numeric,min=4,max=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type ForgetPassRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPassRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
