package response

import (
	"time"

	"artisan-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type OrderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Items           []LineItemResponse     `json:"items"`
	TotalPrice      decimal.Decimal        `json:"totalPrice"`
	ShippingAddress entity.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   entity.PaymentMethod   `json:"paymentMethod"`
	PaymentStatus   entity.PaymentStatus   `json:"paymentStatus"`
	Status          entity.OrderStatus     `json:"status"`
	CreatedAt       time.Time              `json:"createdAt"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	return OrderResponse{
		ID:              order.ID.String(),
		UserID:          order.UserID.String(),
		Items:           lineItemsToResponse(order.Items),
		TotalPrice:      order.TotalPrice,
		ShippingAddress: order.ShippingAddress,
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   order.PaymentStatus,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func OrdersToResponse(orders []*entity.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, OrderToResponse(order))
	}
	return out
}
