package service

import (
	"context"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// DaerahStore is the persistence dependency of DaerahService.
type DaerahStore interface {
	List(ctx context.Context, provinsiID int) ([]models.Daerah, error)
	GetByID(ctx context.Context, id int) (*models.Daerah, error)
	Create(ctx context.Context, d *models.Daerah) error
	Update(ctx context.Context, d *models.Daerah) error
	Delete(ctx context.Context, id int) error
}

// DaerahService handles region catalog logic.
type DaerahService struct {
	store  DaerahStore
	images MediaStore
}

// NewDaerahService constructs a DaerahService.
func NewDaerahService(store DaerahStore, images MediaStore) *DaerahService {
	return &DaerahService{store: store, images: images}
}

// List returns regions, optionally filtered by province.
func (s *DaerahService) List(ctx context.Context, provinsiID int) ([]models.Daerah, error) {
	return s.store.List(ctx, provinsiID)
}

// GetByID returns a region by id.
func (s *DaerahService) GetByID(ctx context.Context, id int) (*models.Daerah, error) {
	return s.store.GetByID(ctx, id)
}

// CreateDaerahInput is the payload for region creation.
type CreateDaerahInput struct {
	Nama       string
	ProvinsiID int
	Gambar     *storage.File
}

// Create uploads the image and inserts the region. A dangling provinsi
// reference surfaces as ErrInvalidReference from the store.
func (s *DaerahService) Create(ctx context.Context, input *CreateDaerahInput) (*models.Daerah, error) {
	if input.Gambar == nil {
		return nil, utils.ErrMissingImage
	}

	url, err := s.images.Upload(ctx, "daerah", *input.Gambar)
	if err != nil {
		return nil, err
	}

	d := &models.Daerah{Nama: input.Nama, ProvinsiID: input.ProvinsiID, Gambar: &url}
	if err := s.store.Create(ctx, d); err != nil {
		deleteMedia(ctx, s.images, &url)
		return nil, err
	}
	return d, nil
}

// UpdateDaerahInput is the payload for partial region updates.
type UpdateDaerahInput struct {
	Nama       string
	ProvinsiID *int
	Gambar     *storage.File
}

// Update applies a partial update; a replaced image is deleted best-effort
// after the row update succeeds.
func (s *DaerahService) Update(ctx context.Context, id int, input *UpdateDaerahInput) (*models.Daerah, error) {
	d, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nama != "" {
		d.Nama = input.Nama
	}
	if input.ProvinsiID != nil {
		d.ProvinsiID = *input.ProvinsiID
	}

	oldImage := d.Gambar
	if input.Gambar != nil {
		url, err := s.images.Upload(ctx, "daerah", *input.Gambar)
		if err != nil {
			return nil, err
		}
		d.Gambar = &url
	}

	if err := s.store.Update(ctx, d); err != nil {
		return nil, err
	}

	if input.Gambar != nil {
		deleteMedia(ctx, s.images, oldImage)
	}
	return d, nil
}

// Delete removes the region row, then its image best-effort.
func (s *DaerahService) Delete(ctx context.Context, id int) error {
	d, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	deleteMedia(ctx, s.images, d.Gambar)
	return nil
}
