package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/shiftwell-app/backend/internal/config"
	"github.com/shiftwell-app/backend/internal/handlers"
	"github.com/shiftwell-app/backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	shiftHandler *handlers.ShiftHandler,
	journalHandler *handlers.JournalHandler,
	timeOffHandler *handlers.TimeOffHandler,
	statsHandler *handlers.StatsHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Protected routes (JWT required)
	protected := api.Group("", middleware.JWTProtected(cfg))

	protected.Post("/shifts/check-in", shiftHandler.CheckIn)
	protected.Post("/shifts/check-out", shiftHandler.CheckOut)
	protected.Get("/shifts", shiftHandler.GetShifts)
	protected.Get("/shifts/today", shiftHandler.GetToday)

	protected.Post("/journal", journalHandler.CreateEntry)
	protected.Get("/journal", journalHandler.GetEntries)
	protected.Get("/journal/:id", journalHandler.GetEntry)
	protected.Put("/journal/:id", journalHandler.UpdateEntry)
	protected.Delete("/journal/:id", journalHandler.DeleteEntry)

	protected.Post("/time-off", timeOffHandler.Create)
	protected.Get("/time-off", timeOffHandler.List)
	protected.Delete("/time-off/:id", timeOffHandler.Delete)

	protected.Get("/stats", statsHandler.GetStats)
}
