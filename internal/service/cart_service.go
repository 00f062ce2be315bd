package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/repository"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// CartService owns the per-user cart aggregate.
type CartService struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// CartDependencies bundles repositories for cart service.
type CartDependencies struct {
	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
}

// NewCartService constructs the service.
func NewCartService(deps CartDependencies) *CartService {
	return &CartService{carts: deps.CartRepo, products: deps.ProductRepo}
}

// CartLine is the read-time projection of one cart entry with prices
// resolved against the current catalog.
type CartLine struct {
	ProductID       string
	ProductName     string
	Price           float64
	DiscountedPrice *float64
	MembershipPrice *float64
	ImageURL        string
	Quantity        int
	UnitPrice       float64
	Subtotal        float64
}

// CartView is the full cart projection.
type CartView struct {
	Items []CartLine
	Total float64
}

// Add puts quantity units of a product into the user's cart,
// incrementing the existing entry when the product is already carted.
// Returns the resulting entry count.
func (s *CartService) Add(ctx context.Context, user *domain.User, productID string, quantity int) (int, error) {
	if quantity < 1 {
		return 0, apperrors.NewValidationError("quantity must be at least 1", nil)
	}
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFound("product", nil)
		}
		return 0, err
	}
	return s.carts.AddOrIncrement(ctx, user.ID, productID, quantity)
}

// Update sets an entry's quantity. A quantity of zero or less removes
// the entry; removing an absent entry this way is a no-op.
func (s *CartService) Update(ctx context.Context, user *domain.User, productID string, quantity int) error {
	if quantity <= 0 {
		_, err := s.carts.Remove(ctx, user.ID, productID)
		return err
	}
	if err := s.carts.SetQuantity(ctx, user.ID, productID, quantity); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("cart item", nil)
		}
		return err
	}
	return nil
}

// Remove drops the entry if present; idempotent. Returns the remaining
// entry count.
func (s *CartService) Remove(ctx context.Context, user *domain.User, productID string) (int, error) {
	return s.carts.Remove(ctx, user.ID, productID)
}

// Clear empties the cart unconditionally.
func (s *CartService) Clear(ctx context.Context, user *domain.User) error {
	return s.carts.Clear(ctx, user.ID)
}

// View resolves current prices for each entry. Stored entries carry
// only product id and quantity, so catalog price changes show up on the
// next view. Entries whose product no longer exists are skipped.
func (s *CartService) View(ctx context.Context, user *domain.User) (*CartView, error) {
	items, err := s.carts.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	membershipActive := user.HasActiveMembership(time.Now())

	view := &CartView{Items: make([]CartLine, 0, len(items))}
	for _, item := range items {
		product, err := s.products.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return nil, err
		}

		unitPrice := product.UnitPrice(membershipActive)
		line := CartLine{
			ProductID:       product.ID,
			ProductName:     product.ProductName,
			Price:           product.Price,
			DiscountedPrice: product.DiscountedPrice,
			MembershipPrice: product.MembershipPrice,
			ImageURL:        product.FirstImageURL(),
			Quantity:        item.Quantity,
			UnitPrice:       unitPrice,
			Subtotal:        unitPrice * float64(item.Quantity),
		}
		view.Items = append(view.Items, line)
		view.Total += line.Subtotal
	}
	return view, nil
}
