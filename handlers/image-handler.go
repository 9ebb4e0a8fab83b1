package handler

import (
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"smartpix/editor"
	"smartpix/images"
	"smartpix/middleware"
	"smartpix/storage"
)

// Upload stores a multipart image and persists its metadata. Ownership is
// derived from the session subject; any user_id form field is ignored.
func (h *Handler) Upload(c *fiber.Ctx) error {
	userID := middleware.Subject(c)

	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("No file provided"))
	}

	blobFile, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Error opening the file"))
	}
	defer blobFile.Close()

	image, err := h.images.Upload(c.UserContext(), userID, file.Filename, blobFile)
	if err != nil {
		slog.Error("upload failed", "user_id", userID, "filename", file.Filename, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("File save failed"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"image_id": image.ID,
		"url":      image.OriginalURL,
	})
}

// Edit dispatches an AI edit against an owned image.
func (h *Handler) Edit(c *fiber.Ctx) error {
	userID := middleware.Subject(c)

	imageID := c.FormValue("image_id")
	editType := editor.EditType(c.FormValue("edit_type"))
	intensity, err := strconv.Atoi(c.FormValue("intensity"))
	if imageID == "" || err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Invalid form data"))
	}

	edit, err := h.images.RequestEdit(c.UserContext(), userID, imageID, editType, intensity)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrInvalidEditType):
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse("Unsupported edit type"))
		case errors.Is(err, images.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Image not found"))
		case errors.Is(err, images.ErrForbidden):
			return c.Status(fiber.StatusForbidden).JSON(errorResponse("You do not own this image"))
		case errors.Is(err, images.ErrEditService):
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Image edit failed"))
		case errors.Is(err, storage.ErrStorage):
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Storage failure"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Image edit failed"))
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"edited_url": edit.EditedURL,
	})
}

// UserImages lists the dashboard summaries for a user. The path parameter
// must match the session subject.
func (h *Handler) UserImages(c *fiber.Ctx) error {
	userID := middleware.Subject(c)

	if pathUserID := c.Params("user_id"); pathUserID != userID {
		return c.Status(fiber.StatusForbidden).JSON(errorResponse("You cannot list another user's images"))
	}

	summaries, err := h.images.ListImages(c.UserContext(), userID)
	if err != nil {
		slog.Error("listing images failed", "user_id", userID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to list images"))
	}

	return c.Status(fiber.StatusOK).JSON(summaries)
}

// DeleteImage removes an owned image, its edits, and backing files.
func (h *Handler) DeleteImage(c *fiber.Ctx) error {
	userID := middleware.Subject(c)
	imageID := c.Params("image_id")

	if err := h.images.Delete(c.UserContext(), userID, imageID); err != nil {
		if errors.Is(err, images.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Image not found"))
		}
		slog.Error("delete failed", "image_id", imageID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to delete image"))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "deleted"})
}

// DownloadEdited serves the most recent processed result for an owned image.
func (h *Handler) DownloadEdited(c *fiber.Ctx) error {
	userID := middleware.Subject(c)
	imageID := c.Params("image_id")

	path, name, err := h.images.EditedPath(c.UserContext(), userID, imageID)
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Edited image not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to read image"))
	}

	return c.Download(path, name)
}

// DownloadOriginal serves the original bytes of an owned image.
func (h *Handler) DownloadOriginal(c *fiber.Ctx) error {
	userID := middleware.Subject(c)
	imageID := c.Params("image_id")

	path, name, err := h.images.OriginalPath(c.UserContext(), userID, imageID)
	if err != nil {
		if errors.Is(err, images.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse("Original image not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse("Failed to read image"))
	}

	return c.Download(path, name)
}
