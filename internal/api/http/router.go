package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/event-planner/internal/api/http/handlers"
	"github.com/spec-kit/event-planner/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Metrics        *handlers.MetricsHandler
	Auth           *handlers.AuthHandler
	Users          *handlers.UsersHandler
	Events         *handlers.EventsHandler
	Vendors        *handlers.VendorsHandler
	Bookings       *handlers.BookingsHandler
	AuthMiddleware *auth.AuthMiddleware
	AdminAPIKey    string
}

// RegisterRoutes wires HTTP routes. Every mutating route goes through the
// API-key gate; reads and the auth endpoints are open.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	api := app.Group("/api")
	gate := auth.RequireAPIKey(cfg.AdminAPIKey)

	api.Get("/health", cfg.Health.Status)
	api.Get("/health/ready", cfg.Health.Ready)
	api.Get("/metrics", cfg.Metrics.Snapshot)

	api.Post("/auth/signup", cfg.Auth.Signup)
	api.Post("/auth/login", cfg.Auth.Login)
	api.Get("/auth/me", cfg.AuthMiddleware.Handle, cfg.Auth.Me)

	api.Get("/users", cfg.Users.List)
	api.Post("/users", gate, cfg.Users.Create)
	api.Get("/users/:id", cfg.Users.Get)
	api.Put("/users/:id", gate, cfg.Users.Update)
	api.Delete("/users/:id", gate, cfg.Users.Delete)

	api.Get("/events", cfg.Events.List)
	api.Post("/events", gate, cfg.Events.Create)
	api.Get("/events/:id", cfg.Events.Get)
	api.Put("/events/:id", gate, cfg.Events.Update)
	api.Delete("/events/:id", gate, cfg.Events.Delete)

	api.Get("/vendors", cfg.Vendors.List)
	api.Post("/vendors", gate, cfg.Vendors.Create)
	api.Get("/vendors/:id", cfg.Vendors.Get)
	api.Put("/vendors/:id", gate, cfg.Vendors.Update)
	api.Delete("/vendors/:id", gate, cfg.Vendors.Delete)

	api.Get("/bookings", cfg.Bookings.List)
	api.Post("/bookings", gate, cfg.Bookings.Create)
	api.Get("/bookings/:id", cfg.Bookings.Get)
	api.Put("/bookings/:id", gate, cfg.Bookings.Update)
	api.Delete("/bookings/:id", gate, cfg.Bookings.Delete)
}
