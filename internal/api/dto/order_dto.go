package dto

import "time"

// OrderCreateRequest payload for checkout.
type OrderCreateRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

// OrderStatusUpdateRequest payload for admin status changes.
type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is one snapshotted order line.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// OrderResponse is the customer-facing order view.
type OrderResponse struct {
	ID              string              `json:"id"`
	Items           []OrderItemResponse `json:"items"`
	Total           float64             `json:"total"`
	ShippingAddress string              `json:"shipping_address"`
	Status          string              `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
}

// AdminOrderResponse adds owner identity for the back-office listing.
type AdminOrderResponse struct {
	OrderResponse
	UserID       string `json:"user_id"`
	UserEmail    string `json:"user_email,omitempty"`
	UserFullName string `json:"user_full_name,omitempty"`
}
