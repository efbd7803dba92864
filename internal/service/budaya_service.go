package service

import (
	"context"
	"fmt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// BudayaStore is the persistence dependency of BudayaService.
type BudayaStore interface {
	List(ctx context.Context, kategori string, daerahID int) ([]models.Budaya, error)
	GetByID(ctx context.Context, id int) (*models.Budaya, error)
	Create(ctx context.Context, b *models.Budaya) error
	Update(ctx context.Context, b *models.Budaya) error
	Delete(ctx context.Context, id int) error
}

// BudayaService handles cultural-item catalog logic.
type BudayaService struct {
	store  BudayaStore
	images MediaStore
}

// NewBudayaService constructs a BudayaService.
func NewBudayaService(store BudayaStore, images MediaStore) *BudayaService {
	return &BudayaService{store: store, images: images}
}

// List returns cultural items, optionally filtered by category and/or
// region. An unknown category is rejected rather than returning an empty
// list silently.
func (s *BudayaService) List(ctx context.Context, kategori string, daerahID int) ([]models.Budaya, error) {
	if kategori != "" && !models.ValidKategori(kategori) {
		return nil, fmt.Errorf("%w: kategori %q", utils.ErrInvalidStatus, kategori)
	}
	return s.store.List(ctx, kategori, daerahID)
}

// GetByID returns a cultural item by id.
func (s *BudayaService) GetByID(ctx context.Context, id int) (*models.Budaya, error) {
	return s.store.GetByID(ctx, id)
}

// CreateBudayaInput is the payload for cultural-item creation.
type CreateBudayaInput struct {
	Nama      string
	Deskripsi string
	Kategori  string
	DaerahID  int
	Gambar    *storage.File
}

// Create validates the category, uploads the image, and inserts the item.
func (s *BudayaService) Create(ctx context.Context, input *CreateBudayaInput) (*models.Budaya, error) {
	if !models.ValidKategori(input.Kategori) {
		return nil, fmt.Errorf("%w: kategori %q", utils.ErrInvalidStatus, input.Kategori)
	}
	if input.Gambar == nil {
		return nil, utils.ErrMissingImage
	}

	url, err := s.images.Upload(ctx, "budaya", *input.Gambar)
	if err != nil {
		return nil, err
	}

	b := &models.Budaya{
		Nama:      input.Nama,
		Deskripsi: input.Deskripsi,
		Kategori:  input.Kategori,
		DaerahID:  input.DaerahID,
		Gambar:    &url,
	}
	if err := s.store.Create(ctx, b); err != nil {
		deleteMedia(ctx, s.images, &url)
		return nil, err
	}
	return b, nil
}

// UpdateBudayaInput is the payload for partial cultural-item updates.
type UpdateBudayaInput struct {
	Nama      string
	Deskripsi string
	Kategori  string
	DaerahID  *int
	Gambar    *storage.File
}

// Update applies a partial update; a replaced image is deleted best-effort
// after the row update succeeds.
func (s *BudayaService) Update(ctx context.Context, id int, input *UpdateBudayaInput) (*models.Budaya, error) {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Nama != "" {
		b.Nama = input.Nama
	}
	if input.Deskripsi != "" {
		b.Deskripsi = input.Deskripsi
	}
	if input.Kategori != "" {
		if !models.ValidKategori(input.Kategori) {
			return nil, fmt.Errorf("%w: kategori %q", utils.ErrInvalidStatus, input.Kategori)
		}
		b.Kategori = input.Kategori
	}
	if input.DaerahID != nil {
		b.DaerahID = *input.DaerahID
	}

	oldImage := b.Gambar
	if input.Gambar != nil {
		url, err := s.images.Upload(ctx, "budaya", *input.Gambar)
		if err != nil {
			return nil, err
		}
		b.Gambar = &url
	}

	if err := s.store.Update(ctx, b); err != nil {
		return nil, err
	}

	if input.Gambar != nil {
		deleteMedia(ctx, s.images, oldImage)
	}
	return b, nil
}

// Delete removes the cultural-item row, then its image best-effort.
func (s *BudayaService) Delete(ctx context.Context, id int) error {
	b, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	deleteMedia(ctx, s.images, b.Gambar)
	return nil
}
