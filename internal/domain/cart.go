package domain

// CartItem is one cart entry. Entries carry only a product reference
// and a quantity; prices are resolved at read time so catalog changes
// are reflected on the next view. Quantity is always >= 1, entries are
// unique per product.
type CartItem struct {
	ProductID string
	Quantity  int
}
