package service

import (
	"errors"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/vahanscan/vahanscan/logger"

	"github.com/google/uuid"
)

// MaxUploadSize caps uploaded photos at 5MB.
const MaxUploadSize = 5 << 20

var (
	ErrPayloadTooLarge     = errors.New("file larger than 5MB")
	ErrUnsupportedMedia    = errors.New("only image files are allowed")
	allowedImageExtensions = map[string]bool{
		".jpg": true, ".jpeg": true, ".png": true,
		".gif": true, ".webp": true, ".bmp": true,
	}
)

// UploadService stores uploaded photos under the configured folder and hands
// back an opaque file name as the record's source reference.
type UploadService struct {
	dir string
}

func NewUploadService(dir string) (*UploadService, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, err
	}
	return &UploadService{dir: dir}, nil
}

// Save validates size and MIME type, then writes the file under a random
// name so original names never reach the filesystem.
func (s *UploadService) Save(fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > MaxUploadSize {
		return "", ErrPayloadTooLarge
	}
	if !strings.HasPrefix(fileHeader.Header.Get("Content-Type"), "image/") {
		return "", ErrUnsupportedMedia
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		ext = ".img"
	}
	name := uuid.NewString() + ext

	src, err := fileHeader.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, MaxUploadSize)); err != nil {
		return "", err
	}

	logger.Debug("stored upload:", name)
	return name, nil
}

// Remove deletes a stored upload. Missing files are ignored; the history
// record is the source of truth.
func (s *UploadService) Remove(name string) {
	if name == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
		logger.Warning("remove upload:", err)
	}
}
