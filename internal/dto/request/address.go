package request

type AddressRequest struct {
	Street    string  `json:"street" validate:"required,min=2,max=200"`
	City      string  `json:"city" validate:"required,min=2,max=100"`
	State     *string `json:"state,omitempty" validate:"omitempty,max=100"`
	Zip       *string `json:"zip,omitempty" validate:"omitempty,max=20"`
	Country   string  `json:"country" validate:"required,min=2,max=100"`
	IsDefault bool    `json:"isDefault"`
}
