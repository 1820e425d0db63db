package request

type AddCartItemRequest struct {
	Quantity int `json:"quantity" validate:"omitempty,min=1"`
}

type AdjustQuantityRequest struct {
	ProductID string `json:"productId" validate:"required,uuid4"`
	Action    string `json:"action" validate:"required,oneof=increment decrement"`
}
