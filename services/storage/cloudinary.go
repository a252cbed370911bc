package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/spf13/viper"
)

// CloudinaryStorage uploads files to Cloudinary and returns the secure URL as
// the stored reference path.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewCloudinaryStorage initializes the Cloudinary client from configuration
// (cloudinary.cloudName / apiKey / apiSecret).
func NewCloudinaryStorage() (*CloudinaryStorage, error) {
	cloudName := viper.GetString("cloudinary.cloudName")
	apiKey := viper.GetString("cloudinary.apiKey")
	apiSecret := viper.GetString("cloudinary.apiSecret")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorage{cld: cld}, nil
}

// SaveUpload buffers the upload to a temp file, pushes it to Cloudinary under
// the given folder and returns the secure URL.
func (s *CloudinaryStorage) SaveUpload(ctx context.Context, file *multipart.FileHeader, field, folder string, maxBytes int64) (string, error) {
	if err := checkUpload(file, maxBytes); err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp("", "upload-*"+filepath.Ext(file.Filename))
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()
	if _, err := tmp.ReadFrom(src); err != nil {
		return "", fmt.Errorf("failed to buffer upload: %w", err)
	}

	result, err := s.cld.Upload.Upload(ctx, tmp.Name(), uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("no URL returned from upload")
	}
	return result.SecureURL, nil
}
