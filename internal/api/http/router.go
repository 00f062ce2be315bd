package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/boz-concept/shop-service/internal/api/http/handlers"
	"github.com/boz-concept/shop-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health          *handlers.HealthHandler
	Auth            *handlers.AuthHandler
	AdminAuth       *handlers.AdminAuthHandler
	Products        *handlers.ProductsHandler
	Cart            *handlers.CartHandler
	Orders          *handlers.OrdersHandler
	Membership      *handlers.MembershipHandler
	AdminOrders     *handlers.AdminOrdersHandler
	AdminMembership *handlers.AdminMembershipHandler
	AuthMiddleware  *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Get("/products", cfg.Products.List)
	app.Get("/products/:id", cfg.Products.Get)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/forgot-password", cfg.Auth.ForgotPassword)
	authGroup.Post("/reset-password", cfg.Auth.ResetPassword)

	// Registered before the guarded /admin group so the guard does not
	// apply to the login route.
	app.Post("/admin/auth/login", cfg.AdminAuth.Login)

	userGroup := authGroup.Group("", cfg.AuthMiddleware.Handle, auth.RequireUser())
	userGroup.Get("/me", cfg.Auth.Me)
	userGroup.Put("/update-email", cfg.Auth.UpdateEmail)
	userGroup.Put("/update-password", cfg.Auth.UpdatePassword)
	userGroup.Put("/update-phone", cfg.Auth.UpdatePhone)

	cart := app.Group("/cart", cfg.AuthMiddleware.Handle, auth.RequireUser())
	cart.Get("", cfg.Cart.View)
	cart.Post("/add", cfg.Cart.Add)
	cart.Put("/update", cfg.Cart.Update)
	cart.Delete("/remove/:product_id", cfg.Cart.Remove)
	cart.Delete("/clear", cfg.Cart.Clear)

	orders := app.Group("/orders", cfg.AuthMiddleware.Handle, auth.RequireUser())
	orders.Post("", cfg.Orders.Checkout)
	orders.Get("", cfg.Orders.List)

	bozPlus := app.Group("/boz-plus", cfg.AuthMiddleware.Handle, auth.RequireUser())
	bozPlus.Post("/request", cfg.Membership.Request)
	bozPlus.Get("/status", cfg.Membership.Status)

	admin := app.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireAdmin())
	admin.Get("/auth/me", cfg.AdminAuth.Me)
	admin.Get("/orders", cfg.AdminOrders.List)
	admin.Put("/orders/:id/status", cfg.AdminOrders.SetStatus)
	admin.Get("/boz-plus/requests", cfg.AdminMembership.ListRequests)
	admin.Get("/boz-plus/members", cfg.AdminMembership.ListMembers)
	admin.Post("/boz-plus/approve/:user_id", cfg.AdminMembership.Approve)
	admin.Post("/boz-plus/reject/:user_id", cfg.AdminMembership.Reject)
	admin.Post("/boz-plus/extend/:user_id", cfg.AdminMembership.Extend)
	admin.Delete("/boz-plus/revoke/:user_id", cfg.AdminMembership.Revoke)
}
