package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/rs/zerolog/log"

	appconfig "github.com/jelajahbudaya/budaya_api/internal/config"
)

// CloudinaryStore hosts catalog images on Cloudinary.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore creates a Cloudinary-backed image store.
func NewCloudinaryStore(cfg *appconfig.CloudinaryConfig) (*CloudinaryStore, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are missing")
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}

	return &CloudinaryStore{cld: cld, folder: cfg.Folder}, nil
}

// Upload pushes an image and returns its hosted URL. subfolder groups images
// per resource ("provinsi", "daerah", ...).
func (s *CloudinaryStore) Upload(ctx context.Context, subfolder string, f File) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, bytes.NewReader(f.Data), uploader.UploadParams{
		Folder: fmt.Sprintf("%s/%s", s.folder, subfolder),
	})
	if err != nil {
		return "", fmt.Errorf("cloudinary upload failed: %w", err)
	}
	return result.SecureURL, nil
}

// Delete removes a hosted image by URL. Callers treat failure as best-effort;
// an error is returned so they can log it.
func (s *CloudinaryStore) Delete(ctx context.Context, imageURL string) error {
	publicID := publicIDFromURL(imageURL)
	if publicID == "" {
		return fmt.Errorf("could not extract public id from url %q", imageURL)
	}

	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	log.Debug().Str("public_id", publicID).Msg("deleted cloudinary image")
	return nil
}

// publicIDFromURL recovers the Cloudinary public ID (folder/name without
// extension) from a delivery URL. Delivery URLs look like
// .../upload/v12345/<folder>/<sub>/<name>.<ext>.
func publicIDFromURL(imageURL string) string {
	idx := strings.Index(imageURL, "/upload/")
	if idx < 0 {
		return ""
	}
	rest := imageURL[idx+len("/upload/"):]

	// Strip the version segment if present.
	if parts := strings.SplitN(rest, "/", 2); len(parts) == 2 && strings.HasPrefix(parts[0], "v") {
		rest = parts[1]
	}

	if dot := strings.LastIndex(rest, "."); dot > 0 {
		rest = rest[:dot]
	}
	return rest
}
