package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boz-concept/shop-service/internal/domain"
)

func TestCatalogService_PriceFilterUsesEffectivePrice(t *testing.T) {
	t.Parallel()

	products := newFakeProductRepo()
	svc := NewCatalogService(products)

	// Base 100 but discounted to 40: the discount decides the bucket.
	discounted := products.add(domain.Product{ProductName: "Lamp", Price: 100, DiscountedPrice: floatPtr(40)})
	products.add(domain.Product{ProductName: "Chair", Price: 100})

	maxPrice := 50.0
	out, err := svc.List(context.Background(), CatalogFilter{MaxPrice: &maxPrice})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, discounted.ID, out[0].ID)

	minPrice := 50.0
	out, err = svc.List(context.Background(), CatalogFilter{MinPrice: &minPrice})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Chair", out[0].ProductName)
}

func TestCatalogService_GetUnknownProduct(t *testing.T) {
	t.Parallel()

	svc := NewCatalogService(newFakeProductRepo())

	_, err := svc.Get(context.Background(), "missing")
	requireDomainError(t, err, "NOT_FOUND")
}
