package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"
)

// Upload size ceilings enforced at ingestion.
const (
	MaxDocumentBytes = 10 << 20 // booking documents and payment proofs
	MaxImageBytes    = 5 << 20  // property images
)

var (
	// ErrNotImage is returned for non-image uploads.
	ErrNotImage = fmt.Errorf("Only image files are allowed")
	// ErrTooLarge is returned when an upload exceeds its size ceiling.
	ErrTooLarge = fmt.Errorf("File too large")
)

// StorageService stores an uploaded file and returns the reference path the
// owning record keeps. Implementations: local disk and Cloudinary.
type StorageService interface {
	SaveUpload(ctx context.Context, file *multipart.FileHeader, field, folder string, maxBytes int64) (string, error)
}

// checkUpload applies the shared image-only filter and size ceiling.
func checkUpload(file *multipart.FileHeader, maxBytes int64) error {
	if file.Size > maxBytes {
		return ErrTooLarge
	}
	if !strings.HasPrefix(file.Header.Get("Content-Type"), "image/") {
		return ErrNotImage
	}
	return nil
}
