package routes

import (
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/config"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/services"
	"github.com/ahmetcoskunkizilkaya/daily-diet/internal/telemetry"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Options toggles middleware that is unwanted in tests.
type Options struct {
	AccessLog bool
	Sentry    bool
}

// NewApp builds the Fiber application with global middleware and all routes.
func NewApp(cfg *config.Config, db *gorm.DB, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "daily-diet",
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: handlers.ErrorHandler,
	})

	if opts.Sentry {
		app.Use(sentryfiber.New(sentryfiber.Options{
			Repanic:         true,
			WaitForDelivery: false,
		}))
	}

	app.Use(recover.New())
	app.Use(requestid.New())
	if opts.AccessLog {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		}))
	}
	app.Use(telemetry.Middleware())
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	userService := services.NewUserService(db)
	mealService := services.NewMealService(db)

	Setup(app, cfg,
		userService,
		handlers.NewUserHandler(userService, cfg),
		handlers.NewMealHandler(mealService),
		handlers.NewHealthHandler(db),
	)
	return app
}
