package images

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"smartpix/database"
	"smartpix/editor"
	"smartpix/models"
	"smartpix/storage"
)

var (
	ErrNotFound        = errors.New("image not found")
	ErrForbidden       = errors.New("not the resource owner")
	ErrInvalidEditType = errors.New("unsupported edit type")
	ErrEditService     = errors.New("image edit service failed")
)

// Service orchestrates the lifecycle of images and their derived edits
// across the document store, the blob store, and the external edit service.
type Service struct {
	store       database.ImageStore
	blobs       *storage.LocalStore
	transformer editor.Transformer
	baseURL     string
	editTimeout time.Duration
	now         func() time.Time
}

func NewService(store database.ImageStore, blobs *storage.LocalStore, transformer editor.Transformer, baseURL string, editTimeout time.Duration) *Service {
	return &Service{
		store:       store,
		blobs:       blobs,
		transformer: transformer,
		baseURL:     baseURL,
		editTimeout: editTimeout,
		now:         time.Now,
	}
}

// Upload stores the byte stream and persists an image record owned by
// userID. Stored names are uuid-derived so concurrent uploads never collide
// regardless of the client filename. The blob write and the metadata write
// are not transactional: a metadata failure leaves an orphaned blob behind.
func (s *Service) Upload(ctx context.Context, userID, filename string, r io.Reader) (*models.Image, error) {
	storedName := uuid.New().String() + filepath.Ext(filename)

	if err := s.blobs.Save(storage.AreaUploads, storedName, r); err != nil {
		return nil, err
	}

	image := &models.Image{
		ID:          uuid.New().String(),
		UserID:      userID,
		Filename:    filename,
		StoredName:  storedName,
		OriginalURL: "/static/uploads/" + storedName,
		UploadedAt:  s.now().UTC(),
		Tags:        []string{},
	}

	if err := s.store.CreateImage(ctx, image); err != nil {
		slog.Error("image metadata write failed after blob write", "stored_name", storedName, "error", err)
		return nil, err
	}

	return image, nil
}

// RequestEdit runs the external edit service against the image's original
// bytes and persists the result as a new edit record. No partial record is
// written on failure.
func (s *Service) RequestEdit(ctx context.Context, userID, imageID string, editType editor.EditType, intensity int) (*models.Edit, error) {
	if !editType.Valid() {
		return nil, ErrInvalidEditType
	}

	image, err := s.store.ImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, database.ErrImageNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if image.UserID != userID {
		return nil, ErrForbidden
	}

	original, err := s.blobs.Read(storage.AreaUploads, image.StoredName)
	if err != nil {
		return nil, err
	}

	editCtx, cancel := context.WithTimeout(ctx, s.editTimeout)
	defer cancel()

	edited, err := s.transformer.Transform(editCtx, original, editType, intensity)
	if err != nil {
		slog.Error("edit dispatch failed", "image_id", imageID, "edit_type", editType, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrEditService, err)
	}

	storedName := uuid.New().String() + ".png"
	if err := s.blobs.Save(storage.AreaProcessed, storedName, bytes.NewReader(edited)); err != nil {
		return nil, err
	}

	edit := &models.Edit{
		ID:         uuid.New().String(),
		ImageID:    image.ID,
		UserID:     image.UserID,
		EditType:   string(editType),
		Intensity:  intensity,
		StoredName: storedName,
		EditedURL:  "/static/processed/" + storedName,
		Prompt:     fmt.Sprintf("%s with intensity %d", editType, intensity),
		CreatedAt:  s.now().UTC(),
	}

	if err := s.store.CreateEdit(ctx, edit); err != nil {
		return nil, err
	}

	return edit, nil
}

// Summary is the dashboard view of an image. Edited fields come from the
// most recent edit, if any.
type Summary struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	OriginalImageURL string     `json:"originalImageUrl"`
	EditedImageURL   *string    `json:"editedImageUrl"`
	CreatedAt        *time.Time `json:"createdAt"`
	EditType         *string    `json:"editType"`
}

func (s *Service) ListImages(ctx context.Context, userID string) ([]Summary, error) {
	images, err := s.store.ImagesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(images))
	for _, image := range images {
		summary := Summary{
			ID:               image.ID,
			Name:             image.Filename,
			OriginalImageURL: s.baseURL + image.OriginalURL,
		}
		uploadedAt := image.UploadedAt
		summary.CreatedAt = &uploadedAt

		edit, err := s.store.LatestEditForImage(ctx, image.ID)
		if err != nil && !errors.Is(err, database.ErrEditNotFound) {
			return nil, err
		}
		if edit != nil {
			editedURL := s.baseURL + edit.EditedURL
			editType := edit.EditType
			summary.EditedImageURL = &editedURL
			summary.EditType = &editType
		}

		summaries = append(summaries, summary)
	}

	return summaries, nil
}

// Delete removes an owned image record, all edit records referencing it, and
// best-effort the backing blobs. Already-absent blobs are not an error.
func (s *Service) Delete(ctx context.Context, userID, imageID string) error {
	image, err := s.store.ImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, database.ErrImageNotFound) {
			return ErrNotFound
		}
		return err
	}
	if image.UserID != userID {
		return ErrNotFound
	}

	edits, err := s.store.EditsByImage(ctx, imageID)
	if err != nil {
		return err
	}

	if err := s.store.DeleteImage(ctx, imageID); err != nil {
		return err
	}
	if err := s.store.DeleteEditsByImage(ctx, imageID); err != nil {
		return err
	}

	if err := s.blobs.Remove(storage.AreaUploads, image.StoredName); err != nil {
		slog.Warn("failed to remove original blob", "image_id", imageID, "error", err)
	}
	for _, edit := range edits {
		if err := s.blobs.Remove(storage.AreaProcessed, edit.StoredName); err != nil {
			slog.Warn("failed to remove derived blob", "edit_id", edit.ID, "error", err)
		}
	}

	return nil
}

// OriginalPath resolves the on-disk path of an owned image's original bytes.
func (s *Service) OriginalPath(ctx context.Context, userID, imageID string) (string, string, error) {
	image, err := s.store.ImageByID(ctx, imageID)
	if err != nil {
		if errors.Is(err, database.ErrImageNotFound) {
			return "", "", ErrNotFound
		}
		return "", "", err
	}
	if image.UserID != userID {
		return "", "", ErrNotFound
	}
	if !s.blobs.Exists(storage.AreaUploads, image.StoredName) {
		return "", "", ErrNotFound
	}
	return s.blobs.Path(storage.AreaUploads, image.StoredName), image.Filename, nil
}

// EditedPath resolves the on-disk path of the most recent edit owned by
// userID for the image.
func (s *Service) EditedPath(ctx context.Context, userID, imageID string) (string, string, error) {
	edit, err := s.store.LatestEditForImageAndUser(ctx, imageID, userID)
	if err != nil {
		if errors.Is(err, database.ErrEditNotFound) {
			return "", "", ErrNotFound
		}
		return "", "", err
	}
	if !s.blobs.Exists(storage.AreaProcessed, edit.StoredName) {
		return "", "", ErrNotFound
	}
	return s.blobs.Path(storage.AreaProcessed, edit.StoredName), edit.StoredName, nil
}
