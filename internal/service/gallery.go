package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/proactivefit/backend/internal/models"
	"gorm.io/gorm"
)

var ErrImageNotFound = errors.New("image not found")

// GalleryService manages the events page image gallery.
type GalleryService struct {
	db *gorm.DB
}

func NewGalleryService(db *gorm.DB) *GalleryService {
	return &GalleryService{db: db}
}

func (s *GalleryService) ListImages(ctx context.Context) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := s.db.WithContext(ctx).Order("position ASC, created_at ASC").Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery images: %w", err)
	}
	return images, nil
}

func (s *GalleryService) AddImage(ctx context.Context, url, caption string) (*models.GalleryImage, error) {
	var max int64
	s.db.WithContext(ctx).Model(&models.GalleryImage{}).Count(&max)

	image := &models.GalleryImage{
		URL:      url,
		Caption:  caption,
		Position: int(max),
	}
	if err := s.db.WithContext(ctx).Create(image).Error; err != nil {
		return nil, fmt.Errorf("failed to add gallery image: %w", err)
	}
	return image, nil
}

func (s *GalleryService) RemoveImage(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.GalleryImage{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove gallery image: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrImageNotFound
	}
	return nil
}
