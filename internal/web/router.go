package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AditiPateria/toursandtravels/internal/auth"
	"github.com/AditiPateria/toursandtravels/internal/session"
	"github.com/AditiPateria/toursandtravels/internal/web/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Session  *session.Manager
	Health   *handlers.HealthHandler
	Auth     *handlers.AuthHandler
	Tours    *handlers.ToursHandler
	Bookings *handlers.BookingsHandler
	Feedback *handlers.FeedbackHandler
	Admin    *handlers.AdminHandler
}

// RegisterRoutes wires the web client's routes. Protected routes carry the
// guard middleware; public catalog reads carry none.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	app.Get("/metrics", cfg.Health.Metrics)

	app.Get("/", cfg.Tours.List)
	app.Get("/login", cfg.Auth.LoginEntry)

	authGroup := app.Group("/auth")
	authGroup.Post("/login", cfg.Auth.Login)
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/logout", cfg.Auth.Logout)
	authGroup.Get("/session", cfg.Auth.Session)

	app.Get("/tours", cfg.Tours.List)
	app.Get("/tours/available", cfg.Tours.Available)
	app.Get("/tours/search", cfg.Tours.Search)
	app.Get("/tours/:id", cfg.Tours.Get)
	app.Get("/feedbacks/tour/:tourId", cfg.Feedback.ForTour)

	requireUser := RequireSession(cfg.Session)
	app.Get("/bookings", requireUser, cfg.Bookings.Mine)
	app.Post("/bookings", requireUser, cfg.Bookings.Create)
	app.Get("/bookings/:id", requireUser, cfg.Bookings.Get)
	app.Delete("/bookings/:id", requireUser, cfg.Bookings.Cancel)
	app.Post("/feedbacks/tour/:tourId", requireUser, cfg.Feedback.Submit)
	app.Delete("/feedbacks/:id", requireUser, cfg.Feedback.Delete)

	admin := app.Group("/admin", RequireRoles(cfg.Session, auth.RoleAdmin))
	admin.Get("/tours", cfg.Admin.Tours)
	admin.Post("/tours", cfg.Admin.CreateTour)
	admin.Delete("/tours/:id", cfg.Admin.DeleteTour)
	admin.Get("/bookings", cfg.Admin.Bookings)
	admin.Put("/bookings/:id/status", cfg.Admin.UpdateBookingStatus)
	admin.Get("/users", cfg.Admin.Users)
	admin.Put("/users/:id/role", cfg.Admin.UpdateUserRole)
	admin.Delete("/users/:id", cfg.Admin.DeleteUser)
}
