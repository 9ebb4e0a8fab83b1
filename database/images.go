package database

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"smartpix/models"
)

var (
	ErrImageNotFound = errors.New("image not found")
	ErrEditNotFound  = errors.New("edit not found")
)

// ImageStore is the persistence boundary for image and edit records.
type ImageStore interface {
	CreateImage(ctx context.Context, image *models.Image) error
	ImageByID(ctx context.Context, id string) (*models.Image, error)
	ImagesByUser(ctx context.Context, userID string) ([]models.Image, error)
	DeleteImage(ctx context.Context, id string) error

	CreateEdit(ctx context.Context, edit *models.Edit) error
	EditsByImage(ctx context.Context, imageID string) ([]models.Edit, error)
	LatestEditForImage(ctx context.Context, imageID string) (*models.Edit, error)
	LatestEditForImageAndUser(ctx context.Context, imageID, userID string) (*models.Edit, error)
	DeleteEditsByImage(ctx context.Context, imageID string) error
}

type imageStore struct {
	db *gorm.DB
}

func NewImageStore(db *gorm.DB) ImageStore {
	return &imageStore{db: db}
}

func (s *imageStore) CreateImage(ctx context.Context, image *models.Image) error {
	return s.db.WithContext(ctx).Create(image).Error
}

func (s *imageStore) ImageByID(ctx context.Context, id string) (*models.Image, error) {
	var image models.Image
	if err := s.db.WithContext(ctx).First(&image, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, err
	}
	return &image, nil
}

func (s *imageStore) ImagesByUser(ctx context.Context, userID string) ([]models.Image, error) {
	var images []models.Image
	if err := s.db.WithContext(ctx).Where(&models.Image{UserID: userID}).Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}

func (s *imageStore) DeleteImage(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&models.Image{}, "id = ?", id).Error
}

func (s *imageStore) CreateEdit(ctx context.Context, edit *models.Edit) error {
	return s.db.WithContext(ctx).Create(edit).Error
}

func (s *imageStore) EditsByImage(ctx context.Context, imageID string) ([]models.Edit, error) {
	var edits []models.Edit
	if err := s.db.WithContext(ctx).Where(&models.Edit{ImageID: imageID}).Find(&edits).Error; err != nil {
		return nil, err
	}
	return edits, nil
}

func (s *imageStore) LatestEditForImage(ctx context.Context, imageID string) (*models.Edit, error) {
	var edit models.Edit
	err := s.db.WithContext(ctx).
		Where(&models.Edit{ImageID: imageID}).
		Order("created_at DESC").
		First(&edit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEditNotFound
		}
		return nil, err
	}
	return &edit, nil
}

func (s *imageStore) LatestEditForImageAndUser(ctx context.Context, imageID, userID string) (*models.Edit, error) {
	var edit models.Edit
	err := s.db.WithContext(ctx).
		Where(&models.Edit{ImageID: imageID, UserID: userID}).
		Order("created_at DESC").
		First(&edit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEditNotFound
		}
		return nil, err
	}
	return &edit, nil
}

func (s *imageStore) DeleteEditsByImage(ctx context.Context, imageID string) error {
	return s.db.WithContext(ctx).Delete(&models.Edit{}, "image_id = ?", imageID).Error
}
