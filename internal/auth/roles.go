package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/domain"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// RequireUser ensures a customer is authenticated.
func RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeUser || principal.User == nil {
			return apperrors.NewForbidden("user account required")
		}
		return c.Next()
	}
}

// RequireAdmin ensures the caller holds an admin-scoped token. A valid
// user token is rejected with 403 here even though user routes accept it.
func RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok || principal.SubjectType != domain.SubjectTypeAdmin || principal.Admin == nil {
			return apperrors.NewForbidden("admin access required")
		}
		if principal.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin access required")
		}
		return c.Next()
	}
}
