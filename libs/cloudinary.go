package libs

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const cloudinaryFolder = "products"

type CloudinaryImageStore struct {
	cld     *cloudinary.Cloudinary
	maxSize int64
}

func NewCloudinaryImageStore(cloudName, apiKey, apiSecret string, maxSize int64) (*CloudinaryImageStore, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryImageStore{cld: cld, maxSize: maxSize}, nil
}

func (s *CloudinaryImageStore) Save(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only png, jpg, jpeg, gif, webp allowed")
	}
	if s.maxSize > 0 && file.Size > s.maxSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	publicID := fmt.Sprintf("%d_%s", time.Now().Unix(), SanitizeFilename(file.Filename))
	publicID = strings.TrimSuffix(publicID, ext)

	resp, err := s.cld.Upload.Upload(ctx, src, uploader.UploadParams{
		PublicID:       publicID,
		Folder:         cloudinaryFolder,
		ResourceType:   "image",
		Transformation: "q_auto,f_auto",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to cloudinary: %w", err)
	}
	if resp.SecureURL == "" {
		if resp.URL != "" {
			return resp.URL, nil
		}
		return "", errors.New("cloudinary returned no URL")
	}
	return resp.SecureURL, nil
}

// Remove is a no-op: remote objects are kept across edits and deletes, only
// the row reference is dropped.
func (s *CloudinaryImageStore) Remove(ctx context.Context, ref string) error {
	return nil
}

func (s *CloudinaryImageStore) Placeholder() string {
	return placeholderURL
}

func (s *CloudinaryImageStore) Resolve(ref string) string {
	if ref == "" {
		return placeholderURL
	}
	return ref
}
