package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"smartpix/auth"
	"smartpix/config"
	"smartpix/database"
	"smartpix/editor"
	handler "smartpix/handlers"
	"smartpix/images"
	"smartpix/router"
	"smartpix/storage"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	blobs, err := storage.NewLocalStore(cfg.StaticDir)
	if err != nil {
		slog.Error("failed to prepare static storage", "error", err)
		os.Exit(1)
	}

	gemini, err := editor.NewGemini(context.Background(), cfg.GeminiAPIKey)
	if err != nil {
		slog.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}

	authService := auth.NewService(database.NewUserStore(db), cfg.JWTSecret, cfg.JWTExpiry)
	imageService := images.NewService(database.NewImageStore(db), blobs, gemini, cfg.BaseURL, cfg.EditTimeout)
	h := handler.NewHandler(authService, imageService)

	app := fiber.New()
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowCredentials: cfg.AllowedOrigins != "",
	}))
	app.Static("/static", cfg.StaticDir)

	router.SetupRoutes(app, h, authService)

	slog.Info("server starting", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
