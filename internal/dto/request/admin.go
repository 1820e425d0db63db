package request

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=super_admin admin customer artisan merchant"`
}
