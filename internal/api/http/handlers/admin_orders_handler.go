package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// AdminOrdersHandler manages back-office order endpoints.
type AdminOrdersHandler struct {
	orders *service.OrderService
}

// NewAdminOrdersHandler constructs handler.
func NewAdminOrdersHandler(orderService *service.OrderService) *AdminOrdersHandler {
	return &AdminOrdersHandler{orders: orderService}
}

// List handles GET /admin/orders.
func (h *AdminOrdersHandler) List(c *fiber.Ctx) error {
	if _, err := adminPrincipal(c); err != nil {
		return err
	}

	views, err := h.orders.ListAll(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.AdminOrderResponse, 0, len(views))
	for i := range views {
		items = append(items, dto.AdminOrderResponse{
			OrderResponse: orderResponse(&views[i].Order),
			UserID:        views[i].Order.UserID,
			UserEmail:     views[i].UserEmail,
			UserFullName:  views[i].UserFullName,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// SetStatus handles PUT /admin/orders/:id/status.
func (h *AdminOrdersHandler) SetStatus(c *fiber.Ctx) error {
	admin, err := adminPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.OrderStatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.orders.SetStatus(c.Context(), admin, c.Params("id"), domain.OrderStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": orderResponse(order)})
}
