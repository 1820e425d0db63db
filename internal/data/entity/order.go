package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// statusRank orders the forward-only lifecycle. Cancelled sits outside the
// chain and is reached through CanCancel instead.
var statusRank = map[OrderStatus]int{
	OrderStatusPending:    0,
	OrderStatusProcessing: 1,
	OrderStatusShipped:    2,
	OrderStatusDelivered:  3,
}

// ValidOrderStatus reports whether s names a known status
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransitionTo permits exactly one step forward along the chain.
// No-ops, backward moves, and moves out of a terminal state are rejected.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if next == OrderStatusCancelled {
		return !s.IsTerminal()
	}

	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}

	return to == from+1
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "credit_card"
	PaymentOnlineBanking  PaymentMethod = "online_banking"
	PaymentCashOnDelivery PaymentMethod = "cash_on_delivery"
)

type PaymentStatus string

const (
	PaymentStatusPaid   PaymentStatus = "paid"
	PaymentStatusUnpaid PaymentStatus = "unpaid"
)

type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
}

// Order is an immutable snapshot of a cart at creation time. Items and
// total are copied, never referenced, so catalog price changes cannot
// retroactively alter existing orders.
type Order struct {
	BaseNoDelete
	UserID          uuid.UUID       `db:"user_id"`
	Items           []LineItem      `db:"items"`
	TotalPrice      decimal.Decimal `db:"total_price"`
	ShippingAddress ShippingAddress `db:"shipping_address"`
	PaymentMethod   PaymentMethod   `db:"payment_method"`
	PaymentStatus   PaymentStatus   `db:"payment_status"`
	Status          OrderStatus     `db:"status"`
}
