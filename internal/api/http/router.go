package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/realty-service/internal/api/http/handlers"
	"github.com/spec-kit/realty-service/internal/auth"
	"github.com/spec-kit/realty-service/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Listings       *handlers.ListingsHandler
	Users          *handlers.UsersHandler
	AuthMiddleware *auth.Middleware
}

// RegisterRoutes wires HTTP routes. Listing reads are public; listing writes
// and user management require a bearer token with the admin role.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	listings := app.Group("/listings")
	listings.Get("", cfg.Listings.List)
	listings.Get("/:id", cfg.Listings.Get)

	adminListings := listings.Group("", cfg.AuthMiddleware.Handle, cfg.AuthMiddleware.RequireRole(domain.RoleAdmin))
	adminListings.Post("", cfg.Listings.Create)
	adminListings.Put("/:id", cfg.Listings.Update)
	adminListings.Delete("/:id", cfg.Listings.Delete)

	users := app.Group("/users", cfg.AuthMiddleware.Handle, cfg.AuthMiddleware.RequireRole(domain.RoleAdmin))
	users.Get("", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
}
