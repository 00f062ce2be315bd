package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"

	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/repository"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Exactly one of User
// or Admin is set; an admin token never satisfies a user-only check
// and vice versa.
type Principal struct {
	SubjectType domain.SubjectType
	User        *domain.User
	Admin       *domain.Admin
	Role        string
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
	users  repository.UserRepository
	admins repository.AdminRepository
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager, users repository.UserRepository, admins repository.AdminRepository) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, users: users, admins: admins}
}

// Handle enforces authentication for protected routes. It resolves the
// bearer token and loads the referenced subject; a subject deleted
// between issuance and use yields 401.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewUnauthorized("token expired")
		}
		return apperrors.NewUnauthorized("invalid token")
	}

	principal := &Principal{SubjectType: claims.Subject, Role: claims.Role}

	switch claims.Subject {
	case domain.SubjectTypeUser:
		user, err := m.users.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("user not found")
			}
			return apperrors.MapError(err)
		}
		principal.User = user
	case domain.SubjectTypeAdmin:
		if claims.Role != domain.RoleAdmin {
			return apperrors.NewForbidden("admin access required")
		}
		admin, err := m.admins.GetByID(c.Context(), claims.SubjectID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewUnauthorized("admin not found")
			}
			return apperrors.MapError(err)
		}
		principal.Admin = admin
	default:
		return apperrors.NewUnauthorized("unknown subject")
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated entity.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
