package domain

import "time"

// Product is a catalog item. Cart entries and order items reference it
// by id; it is embedded by value only at order creation (price snapshot).
type Product struct {
	ID               string
	ProductName      string
	Category         string
	Price            float64
	DiscountedPrice  *float64
	MembershipPrice  *float64
	Description      *string
	Dimensions       *string
	Materials        *string
	Colors           *string
	Barcode          *string
	StockStatus      string
	StockAmount      *int
	ImageURLs        []string
	CategoryOrder    *int
	BestSeller       bool
	SalesCount       int
	BestSellerRank   *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// UnitPrice resolves the effective price for a buyer: membership price
// when the buyer holds an active membership and the product defines one,
// else the discounted price if set, else the base price.
func (p *Product) UnitPrice(membershipActive bool) float64 {
	if membershipActive && p.MembershipPrice != nil {
		return *p.MembershipPrice
	}
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// FirstImageURL returns the primary image reference, empty when none.
func (p *Product) FirstImageURL() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}
