package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/jelajahbudaya/budaya_api/internal/storage"
)

// MediaStore is the hosted-file dependency of the services. CloudinaryStore
// (catalog images) and S3Store (KTP/portfolio documents) both satisfy it.
type MediaStore interface {
	Upload(ctx context.Context, subfolder string, f storage.File) (string, error)
	Delete(ctx context.Context, url string) error
}

// deleteMedia removes a hosted file best-effort: failures are logged and
// never propagate into the enclosing request.
func deleteMedia(ctx context.Context, store MediaStore, url *string) {
	if store == nil || url == nil || *url == "" {
		return
	}
	if err := store.Delete(ctx, *url); err != nil {
		log.Warn().Err(err).Str("url", *url).Msg("best-effort media delete failed")
	}
}
