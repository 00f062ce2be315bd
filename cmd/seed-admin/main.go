// Command seed-admin creates a back-office operator account. Admins have
// no registration endpoint; this is the only way to provision one.
package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/boz-concept/shop-service/internal/auth"
	"github.com/boz-concept/shop-service/internal/config"
	"github.com/boz-concept/shop-service/internal/domain"
	"github.com/boz-concept/shop-service/internal/observability"
	"github.com/boz-concept/shop-service/internal/persistence"
	"github.com/boz-concept/shop-service/internal/repository"
)

func main() {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD are required")
	}
	if name == "" {
		name = "Administrator"
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	admins := repository.NewAdminRepository(pg.PoolHandle())

	if existing, err := admins.GetByEmail(ctx, email); err == nil && existing != nil {
		logger.Info("admin already exists", zap.String("email", email))
		return
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		logger.Fatal("failed to check existing admin", zap.Error(err))
	}

	hash, err := auth.HashPassword(password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	admin := &domain.Admin{Email: email, FullName: name, PasswordHash: hash}
	if err := admins.Create(ctx, admin); err != nil {
		logger.Fatal("failed to create admin", zap.Error(err))
	}

	logger.Info("admin created", zap.String("id", admin.ID), zap.String("email", admin.Email))
}
