// Package storage uploads ad images to Cloudinary. The engine stores only the
// returned URLs on the ad; the first image is the cover.
package storage

import (
	"context"
	"fmt"
	"io"

	"ard/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService defines the interface for ad image storage operations.
type StorageService interface {
	UploadImage(ctx context.Context, r io.Reader, folder string) (string, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	client *cloudinary.Cloudinary
}

// NewCloudinaryStorageService initializes the Cloudinary client from config.
func NewCloudinaryStorageService() (*CloudinaryStorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{client: cld}, nil
}

// UploadImage stores one image and returns its public URL.
func (s *CloudinaryStorageService) UploadImage(ctx context.Context, r io.Reader, folder string) (string, error) {
	resp, err := s.client.Upload.Upload(ctx, r, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}
	return resp.SecureURL, nil
}

// DeleteImage removes an uploaded image by its public ID.
func (s *CloudinaryStorageService) DeleteImage(ctx context.Context, publicID string) error {
	if _, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete image %s: %w", publicID, err)
	}
	return nil
}
