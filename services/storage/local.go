package storage

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage buffers uploads synchronously to a local directory, served
// statically at /uploads.
type LocalStorage struct {
	Dir string
}

// NewLocalStorage creates the upload directory if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &LocalStorage{Dir: dir}, nil
}

// SaveUpload writes the file under a unique name and returns its public path.
func (s *LocalStorage) SaveUpload(ctx context.Context, file *multipart.FileHeader, field, folder string, maxBytes int64) (string, error) {
	if err := checkUpload(file, maxBytes); err != nil {
		return "", err
	}

	// <field>-<millis>-<rand><ext>, matching the upload naming the frontend expects.
	name := fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), rand.Intn(1_000_000_000), filepath.Ext(file.Filename))
	dest := filepath.Join(s.Dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", dest, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", dest, err)
	}
	return "/uploads/" + name, nil
}
