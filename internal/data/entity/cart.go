package entity

import (
	"time"

	"artisan-market/pkg/apperr"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a (product, quantity, price snapshot) tuple. The price is
// frozen at add-time so later catalog changes never alter carts or orders.
type LineItem struct {
	ProductID uuid.UUID       `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type QuantityAction string

const (
	ActionIncrement QuantityAction = "increment"
	ActionDecrement QuantityAction = "decrement"
)

// Cart is the one mutable aggregate per user. Items live as JSONB on a
// single row; Version backs the optimistic concurrency check on save.
type Cart struct {
	UserID     uuid.UUID       `db:"user_id"`
	Items      []LineItem      `db:"items"`
	TotalPrice decimal.Decimal `db:"total_price"`
	Version    int             `db:"version"`
	CreatedAt  time.Time       `db:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at"`
}

func NewCart(userID uuid.UUID) *Cart {
	now := time.Now()
	return &Cart{
		UserID:     userID,
		Items:      []LineItem{},
		TotalPrice: decimal.Zero,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// AddItem merges quantity into an existing line item or appends a new one
// with the given price snapshot, then recomputes the total.
func (c *Cart) AddItem(productID uuid.UUID, price decimal.Decimal, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.Recompute()
			return
		}
	}

	c.Items = append(c.Items, LineItem{
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	})
	c.Recompute()
}

// RemoveItem filters out the line item and reports whether it was present
func (c *Cart) RemoveItem(productID uuid.UUID) bool {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.Recompute()
			return true
		}
	}
	return false
}

// AdjustQuantity changes a line item by one in the given direction.
// Decrementing below 1 is rejected and leaves the cart unchanged.
func (c *Cart) AdjustQuantity(productID uuid.UUID, action QuantityAction) error {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		switch action {
		case ActionIncrement:
			c.Items[i].Quantity++
		case ActionDecrement:
			if c.Items[i].Quantity <= 1 {
				return apperr.InvalidInput("Quantity cannot be less than 1")
			}
			c.Items[i].Quantity--
		default:
			return apperr.InvalidInput("Invalid action. Use 'increment' or 'decrement'")
		}

		c.Recompute()
		return nil
	}

	return apperr.NotFound("Product not found in cart")
}

// Recompute sets TotalPrice = Σ(price × quantity), rounded to two decimals
func (c *Cart) Recompute() {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	c.TotalPrice = total.Round(2)
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
