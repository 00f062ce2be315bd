package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/dto"
	"github.com/boz-concept/shop-service/internal/auth"
	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/service"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// AuthHandler exposes auth and profile endpoints for customers.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.UserRegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return apperrors.NewValidationError("full_name, email, password required", nil)
	}

	user, token, exp, err := h.auth.RegisterUser(c.Context(), req.FullName, req.Email, req.PhoneNumber, req.Password)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"user": userProfile(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.UserLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.LoginUser(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user": userProfile(user),
			"auth": dto.AuthResponse{Token: token, ExpiresAt: exp},
		},
	})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": userProfile(user)})
}

// UpdateEmail handles PUT /auth/update-email.
func (h *AuthHandler) UpdateEmail(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdateEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.NewEmail == "" || req.Password == "" {
		return apperrors.NewValidationError("new_email and password required", nil)
	}
	if err := h.auth.UpdateEmail(c.Context(), user, req.NewEmail, req.Password); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "email updated", "new_email": req.NewEmail}})
}

// UpdatePassword handles PUT /auth/update-password.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("current_password and new_password required", nil)
	}
	if err := h.auth.UpdatePassword(c.Context(), user, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password updated"}})
}

// UpdatePhone handles PUT /auth/update-phone.
func (h *AuthHandler) UpdatePhone(c *fiber.Ctx) error {
	user, err := userPrincipal(c)
	if err != nil {
		return err
	}
	var req dto.UpdatePhoneRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.PhoneNumber == "" {
		return apperrors.NewValidationError("phone_number required", nil)
	}
	if err := h.auth.UpdatePhone(c.Context(), user, req.PhoneNumber); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "phone number updated", "phone_number": req.PhoneNumber}})
}

// ForgotPassword handles POST /auth/forgot-password. The response is
// identical whether or not the email exists.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" {
		return apperrors.NewValidationError("email required", nil)
	}
	if err := h.auth.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "if the email is registered, a reset link has been sent"}})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Token == "" || req.NewPassword == "" {
		return apperrors.NewValidationError("token and new_password required", nil)
	}
	if err := h.auth.ConfirmPasswordReset(c.Context(), req.Token, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"message": "password reset"}})
}

func userProfile(user *domain.User) fiber.Map {
	return fiber.Map{
		"id":                    user.ID,
		"email":                 user.Email,
		"full_name":             user.FullName,
		"phone_number":          user.PhoneNumber,
		"membership_active":     user.MembershipActive,
		"membership_expires_at": user.MembershipExpiresAt,
	}
}

func userPrincipal(c *fiber.Ctx) (*domain.User, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return nil, apperrors.NewUnauthorized("user required")
	}
	return principal.User, nil
}

func adminPrincipal(c *fiber.Ctx) (*domain.Admin, error) {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Admin == nil {
		return nil, apperrors.NewUnauthorized("admin required")
	}
	return principal.Admin, nil
}
