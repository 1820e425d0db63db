package response

import (
	"time"

	"artisan-market/internal/data/entity"

	"github.com/shopspring/decimal"
)

type LineItemResponse struct {
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	UserID     string             `json:"userId"`
	Items      []LineItemResponse `json:"items"`
	TotalPrice decimal.Decimal    `json:"totalPrice"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

func lineItemsToResponse(items []entity.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			ProductID: item.ProductID.String(),
			Quantity:  item.Quantity,
			Price:     item.Price,
			Subtotal:  item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2),
		})
	}
	return out
}

func CartToResponse(cart *entity.Cart) CartResponse {
	return CartResponse{
		UserID:     cart.UserID.String(),
		Items:      lineItemsToResponse(cart.Items),
		TotalPrice: cart.TotalPrice,
		UpdatedAt:  cart.UpdatedAt,
	}
}

// EmptyCartResponse represents the no-row case: an empty cart and no cart
// are the same thing to clients.
func EmptyCartResponse(userID string) CartResponse {
	return CartResponse{
		UserID:     userID,
		Items:      []LineItemResponse{},
		TotalPrice: decimal.Zero,
		UpdatedAt:  time.Now(),
	}
}
