package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"smartpix/auth"
)

type authResponse struct {
	Email string `json:"email"`
	ID    string `json:"id"`
	Token string `json:"token"`
}

// Signup registers a new user and returns a session token for immediate
// login.
func (h *Handler) Signup(c *fiber.Ctx) error {
	type signupRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	input := new(signupRequest)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid request body"))
	}
	if input.Email == "" || input.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Email and password are required"))
	}

	user, token, err := h.auth.Signup(c.UserContext(), input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidEmail):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid email address"))
		case errors.Is(err, auth.ErrDuplicateEmail):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Email already registered"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to create user"))
		}
	}

	return c.Status(fiber.StatusOK).JSON(authResponse{
		Email: user.Email,
		ID:    user.ID,
		Token: token,
	})
}

// Login accepts an x-www-form-urlencoded body with username (the email) and
// password, OAuth2 password-flow style.
func (h *Handler) Login(c *fiber.Ctx) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	if email == "" || password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Username and password are required"))
	}

	user, token, err := h.auth.Login(c.UserContext(), email, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(errorResponse("Invalid email or password"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Login failed"))
	}

	return c.Status(fiber.StatusOK).JSON(authResponse{
		Email: user.Email,
		ID:    user.ID,
		Token: token,
	})
}
