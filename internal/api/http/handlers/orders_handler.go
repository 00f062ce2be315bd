package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// OrdersHandler manages customer order endpoints.
type OrdersHandler struct {
	orders *service.OrderService
}

// NewOrdersHandler constructs handler.
func NewOrdersHandler(orderService *service.OrderService) *OrdersHandler {
	return &OrdersHandler{orders: orderService}
}

// Checkout handles POST /orders.
func (h *OrdersHandler) Checkout(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.OrderCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	order, err := h.orders.Checkout(c.Context(), user, req.ShippingAddress)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": orderResponse(order)})
}

// List handles GET /orders.
func (h *OrdersHandler) List(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}

	orders, err := h.orders.ListForUser(c.Context(), user)
	if err != nil {
		return err
	}
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, orderResponse(&orders[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func orderResponse(order *domain.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		Items:           items,
		Total:           order.Total,
		ShippingAddress: order.ShippingAddress,
		Status:          string(order.Status),
		CreatedAt:       order.CreatedAt,
	}
}
