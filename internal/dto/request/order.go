package request

type ShippingAddressRequest struct {
	Street  string `json:"street" validate:"required,min=2,max=200"`
	City    string `json:"city" validate:"required,min=2,max=100"`
	State   string `json:"state" validate:"omitempty,max=100"`
	Zip     string `json:"zip" validate:"omitempty,max=20"`
	Country string `json:"country" validate:"required,min=2,max=100"`
}

type CreateOrderRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shippingAddress" validate:"required"`
	PaymentMethod   string                 `json:"paymentMethod" validate:"required,oneof=credit_card online_banking cash_on_delivery"`
	PaymentStatus   string                 `json:"paymentStatus" validate:"required,oneof=paid unpaid"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}
