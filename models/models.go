package models

import (
	"time"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}

type Image struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	Filename    string    `json:"filename" gorm:"not null"`
	StoredName  string    `json:"stored_name" gorm:"not null"`
	OriginalURL string    `json:"original_url" gorm:"not null"`
	UploadedAt  time.Time `json:"uploaded_at"`
	// Reserved for future tagging support; always empty today.
	Tags []string `json:"tags" gorm:"serializer:json"`
}

type Edit struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	ImageID    string    `json:"image_id" gorm:"not null;index"`
	UserID     string    `json:"user_id" gorm:"not null;index"`
	EditType   string    `json:"edit_type" gorm:"not null"`
	Intensity  int       `json:"intensity"`
	StoredName string    `json:"stored_name" gorm:"not null"`
	EditedURL  string    `json:"edited_url" gorm:"not null"`
	Prompt     string    `json:"prompt"`
	CreatedAt  time.Time `json:"created_at"`
}
