package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/repository"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// CatalogService exposes the read-only product surface. Catalog
// management happens out of band.
type CatalogService struct {
	products repository.ProductRepository
}

// NewCatalogService constructs the service.
func NewCatalogService(products repository.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

// CatalogFilter captures public listing parameters. Price bounds apply
// to the effective price (discounted when set, else base).
type CatalogFilter struct {
	Category   *string
	SearchTerm *string
	MinPrice   *float64
	MaxPrice   *float64
}

// List returns products matching the filter, ordered by each
// category's manual sort key.
func (s *CatalogService) List(ctx context.Context, filter CatalogFilter) ([]domain.Product, error) {
	products, err := s.products.List(ctx, repository.ProductFilter{
		Category:   filter.Category,
		SearchTerm: filter.SearchTerm,
	})
	if err != nil {
		return nil, err
	}

	if filter.MinPrice == nil && filter.MaxPrice == nil {
		return products, nil
	}

	filtered := make([]domain.Product, 0, len(products))
	for _, product := range products {
		price := product.Price
		if product.DiscountedPrice != nil {
			price = *product.DiscountedPrice
		}
		if filter.MinPrice != nil && price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && price > *filter.MaxPrice {
			continue
		}
		filtered = append(filtered, product)
	}
	return filtered, nil
}

// Get returns a single product by id.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("product", nil)
		}
		return nil, err
	}
	return product, nil
}
