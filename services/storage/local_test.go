package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, field, filename, contentType string, payload []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	if err != nil {
		t.Fatalf("failed to create part: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("failed to write payload: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("failed to parse form: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func TestLocalSaveUpload(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	file := fileHeader(t, "renterDocumentImage", "id.png", "image/png", []byte("png-bytes"))
	path, err := store.SaveUpload(context.Background(), file, "renterDocumentImage", "bookings", MaxDocumentBytes)
	if err != nil {
		t.Fatalf("SaveUpload failed: %v", err)
	}

	if !strings.HasPrefix(path, "/uploads/renterDocumentImage-") {
		t.Fatalf("unexpected reference path %q", path)
	}
	if filepath.Ext(path) != ".png" {
		t.Fatalf("extension not preserved: %q", path)
	}
	data, err := os.ReadFile(filepath.Join(dir, filepath.Base(path)))
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Fatalf("stored bytes differ: %q", data)
	}
}

func TestLocalSaveUploadRejectsNonImage(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	file := fileHeader(t, "renterDocumentImage", "notes.txt", "text/plain", []byte("text"))
	if _, err := store.SaveUpload(context.Background(), file, "renterDocumentImage", "bookings", MaxDocumentBytes); !errors.Is(err, ErrNotImage) {
		t.Fatalf("expected ErrNotImage, got %v", err)
	}
}

func TestLocalSaveUploadRejectsOversize(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage failed: %v", err)
	}

	file := fileHeader(t, "images", "big.png", "image/png", bytes.Repeat([]byte("x"), 64))
	if _, err := store.SaveUpload(context.Background(), file, "images", "properties", 16); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
}
