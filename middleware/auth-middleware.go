package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"smartpix/auth"
)

const subjectKey = "subjectID"

// RequireAuth validates the bearer token and stores the session subject in
// the request context.
func RequireAuth(authService *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")

		var tokenStr string
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenStr = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenStr == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "You are not authorized!",
				"data":    nil,
			})
		}

		subjectID, err := authService.Authenticate(tokenStr)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Invalid token",
				"data":    nil,
			})
		}

		c.Locals(subjectKey, subjectID)
		return c.Next()
	}
}

// Subject returns the authenticated user id stored by RequireAuth.
func Subject(c *fiber.Ctx) string {
	subjectID, _ := c.Locals(subjectKey).(string)
	return subjectID
}
