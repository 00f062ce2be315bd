package dto

// CartItemRequest payload for add and update operations.
type CartItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// CartLineResponse is one cart entry with resolved prices.
type CartLineResponse struct {
	ProductID       string   `json:"product_id"`
	ProductName     string   `json:"product_name"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	MembershipPrice *float64 `json:"membership_price,omitempty"`
	ImageURL        string   `json:"image_url,omitempty"`
	Quantity        int      `json:"quantity"`
	UnitPrice       float64  `json:"unit_price"`
	Subtotal        float64  `json:"subtotal"`
}

// CartResponse is the full cart projection.
type CartResponse struct {
	Cart  []CartLineResponse `json:"cart"`
	Total float64            `json:"total"`
}

// CartCountResponse reports the entry count after a mutation.
type CartCountResponse struct {
	Message   string `json:"message"`
	CartCount int    `json:"cart_count"`
}
