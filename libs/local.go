package libs

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

type LocalImageStore struct {
	dir     string
	maxSize int64
}

func NewLocalImageStore(dir string, maxSize int64) (*LocalImageStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{dir: dir, maxSize: maxSize}, nil
}

func (s *LocalImageStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only png, jpg, jpeg, gif, webp allowed")
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	token := make([]byte, 8)
	if _, err := rand.Read(token); err != nil {
		return "", err
	}
	name := hex.EncodeToString(token) + "_" + SanitizeFilename(file.Filename)
	path := filepath.Join(s.dir, name)

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return "", err
	}
	return name, nil
}

// Remove deletes the file behind ref. The shared placeholder and already
// missing files are no-ops.
func (s *LocalImageStore) Remove(ctx context.Context, ref string) error {
	if ref == "" || ref == PlaceholderImage {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *LocalImageStore) Placeholder() string {
	return PlaceholderImage
}

func (s *LocalImageStore) Resolve(ref string) string {
	if ref == "" || ref == PlaceholderImage {
		return placeholderURL
	}
	return "/uploads/" + ref
}

// SanitizeFilename strips directory components and anything outside
// [a-zA-Z0-9._-] from an uploaded filename.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		}
		return -1
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "upload"
	}
	return name
}
