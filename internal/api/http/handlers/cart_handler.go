package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// CartHandler manages the caller's cart endpoints.
type CartHandler struct {
	cart *service.CartService
}

// NewCartHandler constructs handler.
func NewCartHandler(cartService *service.CartService) *CartHandler {
	return &CartHandler{cart: cartService}
}

// View handles GET /cart.
func (h *CartHandler) View(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}

	view, err := h.cart.View(c.Context(), user)
	if err != nil {
		return err
	}

	lines := make([]dto.CartLineResponse, 0, len(view.Items))
	for _, line := range view.Items {
		lines = append(lines, dto.CartLineResponse{
			ProductID:       line.ProductID,
			ProductName:     line.ProductName,
			Price:           line.Price,
			DiscountedPrice: line.DiscountedPrice,
			MembershipPrice: line.MembershipPrice,
			ImageURL:        line.ImageURL,
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			Subtotal:        line.Subtotal,
		})
	}
	return c.JSON(fiber.Map{"data": dto.CartResponse{Cart: lines, Total: view.Total}})
}

// Add handles POST /cart/add.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == "" {
		return apperrors.NewValidationError("product_id required", nil)
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	count, err := h.cart.Add(c.Context(), user, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CartCountResponse{Message: "product added to cart", CartCount: count}})
}

// Update handles PUT /cart/update.
func (h *CartHandler) Update(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.CartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProductID == "" {
		return apperrors.NewValidationError("product_id required", nil)
	}

	if err := h.cart.Update(c.Context(), user, req.ProductID, req.Quantity); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "cart updated"}})
}

// Remove handles DELETE /cart/remove/:product_id.
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}

	count, err := h.cart.Remove(c.Context(), user, c.Params("product_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.CartCountResponse{Message: "item removed from cart", CartCount: count}})
}

// Clear handles DELETE /cart/clear.
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.cart.Clear(c.Context(), user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "cart cleared"}})
}
