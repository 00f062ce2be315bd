package dto

// ProductResponse is the public catalog view of a product.
type ProductResponse struct {
	ID              string   `json:"id"`
	ProductName     string   `json:"product_name"`
	Category        string   `json:"category"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	MembershipPrice *float64 `json:"membership_price,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Dimensions      *string  `json:"dimensions,omitempty"`
	Materials       *string  `json:"materials,omitempty"`
	Colors          *string  `json:"colors,omitempty"`
	StockStatus     string   `json:"stock_status"`
	StockAmount     *int     `json:"stock_amount,omitempty"`
	ImageURLs       []string `json:"image_urls"`
	BestSeller      bool     `json:"best_seller"`
}
