package main

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"

	"zulu-bot/config"
	"zulu-bot/handlers"
	"zulu-bot/services"
	"zulu-bot/webhooks"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found")
	}

	// Initialize structured logger
	logHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(logHandler))

	// Load configuration
	cfg := config.LoadConfig()

	// Load the product catalog. Fails soft: an empty catalog means the bot
	// answers conversationally only.
	catalog := services.LoadCatalog(cfg.CatalogPath)

	// Initialize services
	store := services.NewMemoryStore()
	classifier := services.NewClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	responder := services.NewResponder(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	gallabox := services.NewGallaboxClient(cfg.GallaboxAPIURL, cfg.GallaboxAPIKey, cfg.GallaboxAPISecret, cfg.GallaboxChannelID)

	handler := handlers.NewMessageHandler(store, catalog, classifier, responder)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("Request error", "error", err, "status", code)
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,PUT,POST,DELETE,OPTIONS",
		AllowHeaders: "Content-Type, Authorization",
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path}\n",
	}))

	// Register webhook and liveness routes
	webhooks.RegisterRoutes(app, cfg, handler, gallabox)

	slog.Info("Server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server failed to start", "error", err)
		os.Exit(1)
	}
}
