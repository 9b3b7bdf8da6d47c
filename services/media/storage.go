package media

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService stores uploaded report and scan images.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorage is the production StorageService.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary, cloudName string) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld, cloudName: cloudName}
}

// UploadFile uploads into the given folder and returns the permanent identifier.
func (s *CloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{
		Folder: destFolder,
	})
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile deletes a file given its public ID.
func (s *CloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete file: %w", err)
	}
	return nil
}

// GetDownloadURL constructs a public URL for an uploaded image.
func (s *CloudinaryStorage) GetDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to get asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryStorage: failed to build URL: %w", err)
	}
	return url, nil
}
