package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/boz-concept/shop-service/internal/auth"
	"github.com/boz-concept/shop-service/internal/config"
	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/repository"
	apperrors "github.com/boz-concept/shop-service/pkg/util"
)

// AuthService coordinates registration, login and credential flows for
// both customers and admins.
type AuthService struct {
	users      repository.UserRepository
	admins     repository.AdminRepository
	resets     repository.PasswordResetRepository
	tokenMgr   *auth.TokenManager
	logger     *zap.Logger
	bcryptCost int
	resetTTL   time.Duration
}

// AuthDependencies encapsulates repo requirements for auth service.
type AuthDependencies struct {
	UserRepo          repository.UserRepository
	AdminRepo         repository.AdminRepository
	PasswordResetRepo repository.PasswordResetRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, logger *zap.Logger, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		admins:     deps.AdminRepo,
		resets:     deps.PasswordResetRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		logger:     logger,
		bcryptCost: cfg.Auth.BcryptCost,
		resetTTL:   time.Duration(cfg.Auth.PasswordResetTTLMinutes) * time.Minute,
	}
}

// RegisterUser creates a new customer account and returns a fresh token.
func (s *AuthService) RegisterUser(ctx context.Context, fullName, email string, phone *string, password string) (*domain.User, string, time.Time, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, "", time.Time{}, apperrors.NewValidationError("email already registered", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, "", time.Time{}, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, "", time.Time{}, err
	}

	user := &domain.User{
		Email:        email,
		FullName:     fullName,
		PhoneNumber:  phone,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, "", time.Time{}, err
	}

	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.SubjectTypeUser, "")
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// LoginUser authenticates a customer.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*domain.User, string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	token, exp, err := s.tokenMgr.GenerateToken(user.ID, domain.SubjectTypeUser, "")
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return user, token, exp, nil
}

// LoginAdmin authenticates an admin and returns a role-bearing token.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (*domain.Admin, string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
		}
		return nil, "", time.Time{}, err
	}
	if err := auth.ComparePassword(admin.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid email or password")
	}
	token, exp, err := s.tokenMgr.GenerateToken(admin.ID, domain.SubjectTypeAdmin, domain.RoleAdmin)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return admin, token, exp, nil
}

// UpdateEmail changes the caller's email after re-verifying the password.
func (s *AuthService) UpdateEmail(ctx context.Context, user *domain.User, newEmail, password string) error {
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return apperrors.NewValidationError("current password is incorrect", nil)
	}
	if existing, err := s.users.GetByEmail(ctx, newEmail); err == nil {
		if existing.ID != user.ID {
			return apperrors.NewValidationError("email already in use", nil)
		}
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	user.Email = newEmail
	return s.users.Update(ctx, user)
}

// UpdatePassword verifies the current password before storing a new hash.
func (s *AuthService) UpdatePassword(ctx context.Context, user *domain.User, currentPassword, newPassword string) error {
	if err := auth.ComparePassword(user.PasswordHash, currentPassword); err != nil {
		return apperrors.NewValidationError("current password is incorrect", nil)
	}
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// UpdatePhone replaces the caller's phone number.
func (s *AuthService) UpdatePhone(ctx context.Context, user *domain.User, phone string) error {
	user.PhoneNumber = &phone
	return s.users.Update(ctx, user)
}

// RequestPasswordReset issues a one-shot reset token for the given
// email. An unregistered email is not an error: callers must answer
// with the same message either way so account existence never leaks.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	token := uuid.NewString()
	if err := s.resets.Create(ctx, token, user.ID, s.resetTTL); err != nil {
		return err
	}

	// Stands in for the reset email delivery.
	s.logger.Info("password reset token issued",
		zap.String("user_id", user.ID),
		zap.String("reset_token", token))
	return nil
}

// ConfirmPasswordReset consumes a reset token and updates the password.
func (s *AuthService) ConfirmPasswordReset(ctx context.Context, tokenStr, newPassword string) error {
	userID, err := s.resets.Consume(ctx, tokenStr)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return apperrors.NewValidationError("invalid or expired reset token", nil)
		}
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}
