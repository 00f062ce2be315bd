package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/boz-concept/shop-service/internal/api/http"
	"github.com/boz-concept/shop-service/internal/api/http/handlers"
	"github.com/boz-concept/shop-service/internal/auth"
	"github.com/boz-concept/shop-service/internal/config"
	"github.com/boz-concept/shop-service/internal/events"
	"github.com/boz-concept/shop-service/internal/observability"
	"github.com/boz-concept/shop-service/internal/persistence"
	"github.com/boz-concept/shop-service/internal/repository"
	"github.com/boz-concept/shop-service/internal/service"
	"github.com/boz-concept/shop-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	adminRepo := repository.NewAdminRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)
	resetRepo := repository.NewPasswordResetRepository(redis.Client)

	dispatcher := events.NewInMemoryDispatcher()
	if forwarder := events.NewKafkaForwarder(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger); forwarder != nil {
		forwarder.Register(dispatcher)
		defer forwarder.Close() //nolint:errcheck
	}

	authService := service.NewAuthService(*cfg, logger, service.AuthDependencies{
		UserRepo:          userRepo,
		AdminRepo:         adminRepo,
		PasswordResetRepo: resetRepo,
	})
	catalogService := service.NewCatalogService(productRepo)
	cartService := service.NewCartService(service.CartDependencies{
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
	})
	orderService := service.NewOrderService(service.OrderDependencies{
		OrderRepo:   orderRepo,
		CartRepo:    cartRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Dispatcher:  dispatcher,
	})
	membershipService := service.NewMembershipService(userRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, adminRepo)

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:          handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:            handlers.NewAuthHandler(authService),
		AdminAuth:       handlers.NewAdminAuthHandler(authService),
		Products:        handlers.NewProductsHandler(catalogService),
		Cart:            handlers.NewCartHandler(cartService),
		Orders:          handlers.NewOrdersHandler(orderService),
		Membership:      handlers.NewMembershipHandler(membershipService),
		AdminOrders:     handlers.NewAdminOrdersHandler(orderService),
		AdminMembership: handlers.NewAdminMembershipHandler(membershipService),
		AuthMiddleware:  authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
