package routes

import (
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/services"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/telemetry"
	"github.com/gofiber/fiber/v2"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	userService *services.UserService,
	userHandler *handlers.UserHandler,
	mealHandler *handlers.MealHandler,
	healthHandler *handlers.HealthHandler,
) {
	app.Get("/health", healthHandler.Check)
	app.Get("/metrics", telemetry.Handler())

	requireSession := middleware.SessionRequired(userService)

	api := app.Group("", middleware.RateLimit(cfg))

	// Users: public; POST issues the session cookie.
	users := api.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/me", requireSession, userHandler.Me)
	users.Get("/:id", userHandler.Get)
	users.Delete("/:id", userHandler.Delete)

	// Meals: every route is scoped to the session user.
	// /metrics must be registered before /:mealId.
	meals := api.Group("/meals", requireSession)
	meals.Post("/", mealHandler.Create)
	meals.Get("/", mealHandler.List)
	meals.Get("/metrics", mealHandler.Metrics)
	meals.Get("/:mealId", mealHandler.Get)
	meals.Put("/:mealId", mealHandler.Update)
	meals.Delete("/:mealId", mealHandler.Delete)
}
