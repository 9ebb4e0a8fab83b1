package handler

import (
	"smartpix/auth"
	"smartpix/images"
)

// Handler bundles the services handlers dispatch to. Dependencies are wired
// at application start.
type Handler struct {
	auth   *auth.Service
	images *images.Service
}

func NewHandler(authService *auth.Service, imageService *images.Service) *Handler {
	return &Handler{
		auth:   authService,
		images: imageService,
	}
}

func errorResponse(message string) map[string]interface{} {
	return map[string]interface{}{
		"status":  "error",
		"message": message,
		"data":    nil,
	}
}
