package domain

import "time"

// OrderStatus enumerates the five legal order states.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusInTransit OrderStatus = "in_transit"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is one of the five legal values.
// The admin workflow may set any legal value regardless of the current
// one; forward-only progression is intentionally not enforced here.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusShipped,
		OrderStatusInTransit, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderItem is a value copy of a cart entry taken at checkout time.
type OrderItem struct {
	ProductID string
	Quantity  int
}

// Order is immutable after creation except for its status, which only
// an admin may overwrite. Total is a price snapshot computed at
// checkout and never recomputed.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	Total           float64
	ShippingAddress string
	Status          OrderStatus
	CreatedAt       time.Time
}
