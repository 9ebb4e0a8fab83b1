package router

import (
	"github.com/gofiber/fiber/v2"

	"smartpix/auth"
	handler "smartpix/handlers"
	"smartpix/middleware"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, authService *auth.Service) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Post("/signup", h.Signup)
	app.Post("/login", h.Login)

	authed := app.Group("", middleware.RequireAuth(authService))
	authed.Post("/upload", h.Upload)
	authed.Post("/edit", h.Edit)
	authed.Get("/user-images/:user_id", h.UserImages)
	authed.Delete("/images/:image_id", h.DeleteImage)
	authed.Get("/images/:image_id/download", h.DownloadEdited)
	authed.Get("/images/:image_id/original", h.DownloadOriginal)
}
