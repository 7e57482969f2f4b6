package server

import (
	"strings"

	"study-helper/internal/config"
	"study-helper/internal/handler"
	"study-helper/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

// New builds the fiber app with middleware and routes registered.
func New(cfg *config.Config, studyHandler *handler.StudyHandler, healthHandler *handler.HealthHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Study Helper API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           cfg.Server.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(cfg.IsDevelopment()),
		DisableStartupMessage: true,
	})

	origins := strings.Join(cfg.CORS.AllowedOrigins, ",")
	app.Use(middleware.RequestID())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		// fiber rejects credentials combined with a wildcard origin
		AllowCredentials: origins != "*",
		ExposeHeaders:    strings.Join([]string{handler.HeaderContentSource, fiber.HeaderXRequestID}, ","),
		MaxAge:           300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)
	app.Get("/health", healthHandler.Health)
	app.Get("/study", studyHandler.GetStudyMaterial)

	app.Use(handler.NotFound)

	return app
}
