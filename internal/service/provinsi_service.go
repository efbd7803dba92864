package service

import (
	"context"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// ProvinsiStore is the persistence dependency of ProvinsiService.
type ProvinsiStore interface {
	List(ctx context.Context) ([]models.Provinsi, error)
	GetByID(ctx context.Context, id int) (*models.Provinsi, error)
	Create(ctx context.Context, p *models.Provinsi) error
	Update(ctx context.Context, p *models.Provinsi) error
	Delete(ctx context.Context, id int) error
}

// ProvinsiService handles province catalog logic.
type ProvinsiService struct {
	store  ProvinsiStore
	images MediaStore
}

// NewProvinsiService constructs a ProvinsiService.
func NewProvinsiService(store ProvinsiStore, images MediaStore) *ProvinsiService {
	return &ProvinsiService{store: store, images: images}
}

// List returns all provinces.
func (s *ProvinsiService) List(ctx context.Context) ([]models.Provinsi, error) {
	return s.store.List(ctx)
}

// GetByID returns a province by id.
func (s *ProvinsiService) GetByID(ctx context.Context, id int) (*models.Provinsi, error) {
	return s.store.GetByID(ctx, id)
}

// CreateProvinsiInput is the payload for province creation.
type CreateProvinsiInput struct {
	Nama   string
	Gambar *storage.File
}

// Create uploads the image and inserts the province. The image is required;
// if the insert fails the uploaded image is removed best-effort.
func (s *ProvinsiService) Create(ctx context.Context, input *CreateProvinsiInput) (*models.Provinsi, error) {
	if input.Gambar == nil {
		return nil, utils.ErrMissingImage
	}

	url, err := s.images.Upload(ctx, "provinsi", *input.Gambar)
	if err != nil {
		return nil, err
	}

	p := &models.Provinsi{Nama: input.Nama, Gambar: &url}
	if err := s.store.Create(ctx, p); err != nil {
		deleteMedia(ctx, s.images, &url)
		return nil, err
	}
	return p, nil
}

// UpdateProvinsiInput is the payload for partial province updates.
type UpdateProvinsiInput struct {
	Nama   string
	Gambar *storage.File
}

// Update applies a partial update. A new image replaces the old one; the
// old image is deleted best-effort after the row update succeeds.
func (s *ProvinsiService) Update(ctx context.Context, id int, input *UpdateProvinsiInput) (*models.Provinsi, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nama != "" {
		p.Nama = input.Nama
	}

	oldImage := p.Gambar
	if input.Gambar != nil {
		url, err := s.images.Upload(ctx, "provinsi", *input.Gambar)
		if err != nil {
			return nil, err
		}
		p.Gambar = &url
	}

	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}

	if input.Gambar != nil {
		deleteMedia(ctx, s.images, oldImage)
	}
	return p, nil
}

// Delete removes the province row, then its image best-effort.
func (s *ProvinsiService) Delete(ctx context.Context, id int) error {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	deleteMedia(ctx, s.images, p.Gambar)
	return nil
}
