package service

import (
	"context"
	"time"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// EventStore is the persistence dependency of EventService.
type EventStore interface {
	List(ctx context.Context) ([]models.EventWithDaerah, error)
	GetByID(ctx context.Context, id int) (*models.EventWithDaerah, error)
	Create(ctx context.Context, e *models.Event) error
	Update(ctx context.Context, e *models.Event) error
	Delete(ctx context.Context, id int) error
}

// EventService handles event catalog logic.
type EventService struct {
	store  EventStore
	images MediaStore
}

// NewEventService constructs an EventService.
func NewEventService(store EventStore, images MediaStore) *EventService {
	return &EventService{store: store, images: images}
}

// List returns all events with their daerah names.
func (s *EventService) List(ctx context.Context) ([]models.EventWithDaerah, error) {
	return s.store.List(ctx)
}

// GetByID returns an event by id with its daerah name.
func (s *EventService) GetByID(ctx context.Context, id int) (*models.EventWithDaerah, error) {
	return s.store.GetByID(ctx, id)
}

// CreateEventInput is the payload for event creation.
type CreateEventInput struct {
	Nama      string
	Deskripsi string
	Tanggal   time.Time
	Lokasi    string
	DaerahID  int
	Gambar    *storage.File
}

// Create uploads the image and inserts the event.
func (s *EventService) Create(ctx context.Context, input *CreateEventInput) (*models.Event, error) {
	if input.Gambar == nil {
		return nil, utils.ErrMissingImage
	}

	url, err := s.images.Upload(ctx, "events", *input.Gambar)
	if err != nil {
		return nil, err
	}

	e := &models.Event{
		Nama:      input.Nama,
		Deskripsi: input.Deskripsi,
		Tanggal:   input.Tanggal,
		Lokasi:    input.Lokasi,
		DaerahID:  input.DaerahID,
		Gambar:    &url,
	}
	if err := s.store.Create(ctx, e); err != nil {
		deleteMedia(ctx, s.images, &url)
		return nil, err
	}
	return e, nil
}

// UpdateEventInput is the payload for partial event updates.
type UpdateEventInput struct {
	Nama      string
	Deskripsi string
	Tanggal   *time.Time
	Lokasi    string
	DaerahID  *int
	Gambar    *storage.File
}

// Update applies a partial update; a replaced image is deleted best-effort
// after the row update succeeds.
func (s *EventService) Update(ctx context.Context, id int, input *UpdateEventInput) (*models.Event, error) {
	existing, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e := existing.Event

	if input.Nama != "" {
		e.Nama = input.Nama
	}
	if input.Deskripsi != "" {
		e.Deskripsi = input.Deskripsi
	}
	if input.Tanggal != nil {
		e.Tanggal = *input.Tanggal
	}
	if input.Lokasi != "" {
		e.Lokasi = input.Lokasi
	}
	if input.DaerahID != nil {
		e.DaerahID = *input.DaerahID
	}

	oldImage := e.Gambar
	if input.Gambar != nil {
		url, err := s.images.Upload(ctx, "events", *input.Gambar)
		if err != nil {
			return nil, err
		}
		e.Gambar = &url
	}

	if err := s.store.Update(ctx, &e); err != nil {
		return nil, err
	}

	if input.Gambar != nil {
		deleteMedia(ctx, s.images, oldImage)
	}
	return &e, nil
}

// Delete removes the event row, then its image best-effort.
func (s *EventService) Delete(ctx context.Context, id int) error {
	e, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	deleteMedia(ctx, s.images, e.Gambar)
	return nil
}
