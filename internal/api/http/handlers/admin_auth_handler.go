package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// AdminAuthHandler exposes auth endpoints for back-office operators.
type AdminAuthHandler struct {
	auth *service.AuthService
}

// NewAdminAuthHandler constructs handler.
func NewAdminAuthHandler(authService *service.AuthService) *AdminAuthHandler {
	return &AdminAuthHandler{auth: authService}
}

// Login handles POST /admin/auth/login.
func (h *AdminAuthHandler) Login(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	admin, token, exp, err := h.auth.LoginAdmin(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"admin": fiber.Map{
				"id":        admin.ID,
				"email":     admin.Email,
				"full_name": admin.FullName,
			},
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Me handles GET /admin/auth/me.
func (h *AdminAuthHandler) Me(c *fiber.Ctx) error {
	admin, err := adminPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"id":        admin.ID,
			"email":     admin.Email,
			"full_name": admin.FullName,
		},
	})
}
