package request

import "encoding/json"

type UpdateUserRequest struct {
	Username      *string         `json:"username,omitempty" validate:"omitempty,min=3,max=50"`
	FullName      *string         `json:"fullName,omitempty" validate:"omitempty,min=2,max=100"`
	DateOfBirth   *string         `json:"dateOfBirth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender        *string         `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Mobile        *string         `json:"mobile,omitempty" validate:"omitempty,min=10,max=15"`
	Image         json.RawMessage `json:"image,omitempty"`
	RequestedRole *string         `json:"requestedRole,omitempty" validate:"omitempty,oneof=artisan merchant"`
}
