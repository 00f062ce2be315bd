package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/service"
)

// MembershipHandler manages customer membership endpoints.
type MembershipHandler struct {
	membership *service.MembershipService
}

// NewMembershipHandler constructs handler.
func NewMembershipHandler(membershipService *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{membership: membershipService}
}

// Request handles POST /boz-plus/request.
func (h *MembershipHandler) Request(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.membership.Request(c.Context(), user); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "membership request submitted"}})
}

// Status handles GET /boz-plus/status.
func (h *MembershipHandler) Status(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}

	status, err := h.membership.Status(c.Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.MembershipStatusResponse{
		Active:        status.Active,
		ExpiresAt:     status.ExpiresAt,
		DaysRemaining: status.DaysRemaining,
		Requested:     status.Requested,
	}})
}
