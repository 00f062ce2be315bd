package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// AdminMembershipHandler manages the membership approval workflow.
type AdminMembershipHandler struct {
	membership *service.MembershipService
}

// NewAdminMembershipHandler constructs handler.
func NewAdminMembershipHandler(membershipService *service.MembershipService) *AdminMembershipHandler {
	return &AdminMembershipHandler{membership: membershipService}
}

// ListRequests handles GET /admin/boz-plus/requests.
func (h *AdminMembershipHandler) ListRequests(c *fiber.Ctx) error {
	if _, err := adminPrincipal(c); err != nil {
		return err
	}

	users, err := h.membership.ListRequests(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.MembershipRequestResponse, 0, len(users))
	for _, user := range users {
		items = append(items, dto.MembershipRequestResponse{
			UserID:   user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// ListMembers handles GET /admin/boz-plus/members.
func (h *AdminMembershipHandler) ListMembers(c *fiber.Ctx) error {
	if _, err := adminPrincipal(c); err != nil {
		return err
	}

	members, err := h.membership.ListMembers(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.MemberResponse, 0, len(members))
	for _, member := range members {
		items = append(items, dto.MemberResponse{
			UserID:        member.User.ID,
			Email:         member.User.Email,
			FullName:      member.User.FullName,
			ExpiresAt:     member.User.MembershipExpiresAt,
			DaysRemaining: member.DaysRemaining,
		})
	}
	return c.JSON(fiber.Map{"data": items})
}

// Approve handles POST /admin/boz-plus/approve/:user_id.
func (h *AdminMembershipHandler) Approve(c *fiber.Ctx) error {
	admin, err := adminPrincipal(c)
	if err != nil {
		return err
	}

	expiresAt, err := h.membership.Approve(c.Context(), admin, c.Params("user_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"message":    "membership approved",
		"expires_at": expiresAt,
	}})
}

// Reject handles POST /admin/boz-plus/reject/:user_id.
func (h *AdminMembershipHandler) Reject(c *fiber.Ctx) error {
	admin, err := adminPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.membership.Reject(c.Context(), admin, c.Params("user_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "membership request rejected"}})
}

// Extend handles POST /admin/boz-plus/extend/:user_id.
func (h *AdminMembershipHandler) Extend(c *fiber.Ctx) error {
	admin, err := adminPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.MembershipExtendRequest
	if err := c.BodyParser(&req); err != nil && len(c.Body()) > 0 {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	expiresAt, err := h.membership.Extend(c.Context(), admin, c.Params("user_id"), req.Days)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"message":    "membership extended",
		"expires_at": expiresAt,
	}})
}

// Revoke handles DELETE /admin/boz-plus/revoke/:user_id.
func (h *AdminMembershipHandler) Revoke(c *fiber.Ctx) error {
	admin, err := adminPrincipal(c)
	if err != nil {
		return err
	}
	if err := h.membership.Revoke(c.Context(), admin, c.Params("user_id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "membership revoked"}})
}
