package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// ProductsHandler serves the public read-only catalog.
type ProductsHandler struct {
	catalog *service.CatalogService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(catalogService *service.CatalogService) *ProductsHandler {
	return &ProductsHandler{catalog: catalogService}
}

// List handles GET /products.
func (h *ProductsHandler) List(c *fiber.Ctx) error {
	var filter service.CatalogFilter
	if v := c.Query("category"); v != "" {
		filter.Category = &v
	}
	if v := c.Query("search"); v != "" {
		filter.SearchTerm = &v
	}

	minPrice, err := parsePriceQuery(c, "min_price")
	if err != nil {
		return err
	}
	filter.MinPrice = minPrice
	maxPrice, err := parsePriceQuery(c, "max_price")
	if err != nil {
		return err
	}
	filter.MaxPrice = maxPrice

	products, err := h.catalog.List(c.Context(), filter)
	if err != nil {
		return err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, productResponse(&products[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// Get handles GET /products/:id.
func (h *ProductsHandler) Get(c *fiber.Ctx) error {
	product, err := h.catalog.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": productResponse(product)})
}

func parsePriceQuery(c *fiber.Ctx, name string) (*float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil || value < 0 {
		return nil, apperrors.NewValidationError(name+" must be a non-negative number", nil)
	}
	return &value, nil
}

func productResponse(p *domain.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:              p.ID,
		ProductName:     p.ProductName,
		Category:        p.Category,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		MembershipPrice: p.MembershipPrice,
		Description:     p.Description,
		Dimensions:      p.Dimensions,
		Materials:       p.Materials,
		Colors:          p.Colors,
		StockStatus:     p.StockStatus,
		StockAmount:     p.StockAmount,
		ImageURLs:       p.ImageURLs,
		BestSeller:      p.BestSeller,
	}
}
