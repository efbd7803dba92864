package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

type fakeBudayaStore struct {
	rows      map[int]*models.Budaya
	nextID    int
	createErr error
}

func newFakeBudayaStore() *fakeBudayaStore {
	return &fakeBudayaStore{rows: map[int]*models.Budaya{}, nextID: 1}
}

func (s *fakeBudayaStore) List(context.Context, string, int) ([]models.Budaya, error) {
	return nil, nil
}

func (s *fakeBudayaStore) GetByID(_ context.Context, id int) (*models.Budaya, error) {
	b, ok := s.rows[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (s *fakeBudayaStore) Create(_ context.Context, b *models.Budaya) error {
	if s.createErr != nil {
		return s.createErr
	}
	b.ID = s.nextID
	s.nextID++
	clone := *b
	s.rows[b.ID] = &clone
	return nil
}

func (s *fakeBudayaStore) Update(_ context.Context, b *models.Budaya) error {
	if _, ok := s.rows[b.ID]; !ok {
		return utils.ErrNotFound
	}
	clone := *b
	s.rows[b.ID] = &clone
	return nil
}

func (s *fakeBudayaStore) Delete(_ context.Context, id int) error {
	if _, ok := s.rows[id]; !ok {
		return utils.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func budayaInput() *CreateBudayaInput {
	return &CreateBudayaInput{
		Nama:     "Tari Jaipong",
		Kategori: models.KategoriTarian,
		DaerahID: 1,
		Gambar:   &storage.File{Name: "jaipong.jpg", ContentType: "image/jpeg", Data: []byte("img")},
	}
}

func TestCreateBudaya(t *testing.T) {
	store := newFakeBudayaStore()
	media := &fakeMediaStore{}
	svc := NewBudayaService(store, media)

	a := assert.New(t)
	b, err := svc.Create(context.Background(), budayaInput())
	a.NoError(err)
	a.NotNil(b.Gambar)
	a.Len(media.uploads, 1)
	a.Empty(media.deletes)
}

func TestCreateBudayaRejectsUnknownKategori(t *testing.T) {
	store := newFakeBudayaStore()
	media := &fakeMediaStore{}
	svc := NewBudayaService(store, media)

	input := budayaInput()
	input.Kategori = "OLAHRAGA"

	_, err := svc.Create(context.Background(), input)

	a := assert.New(t)
	a.True(errors.Is(err, utils.ErrInvalidStatus))
	a.Empty(media.uploads)
	a.Empty(store.rows)
}

func TestCreateBudayaRequiresImage(t *testing.T) {
	svc := NewBudayaService(newFakeBudayaStore(), &fakeMediaStore{})

	input := budayaInput()
	input.Gambar = nil

	_, err := svc.Create(context.Background(), input)
	assert.True(t, errors.Is(err, utils.ErrMissingImage))
}

// A failed insert must not leave the uploaded image behind.
func TestCreateBudayaCompensatesOnInsertFailure(t *testing.T) {
	store := newFakeBudayaStore()
	store.createErr = utils.ErrInvalidReference
	media := &fakeMediaStore{}
	svc := NewBudayaService(store, media)

	_, err := svc.Create(context.Background(), budayaInput())

	a := assert.New(t)
	a.True(errors.Is(err, utils.ErrInvalidReference))
	a.Equal(media.uploads, media.deletes)
}

func TestUpdateBudayaReplacesImage(t *testing.T) {
	store := newFakeBudayaStore()
	media := &fakeMediaStore{}
	svc := NewBudayaService(store, media)

	oldURL := "https://store.example/budaya/old"
	store.rows[1] = &models.Budaya{ID: 1, Nama: "Angklung", Kategori: models.KategoriMusik, DaerahID: 1, Gambar: &oldURL}

	updated, err := svc.Update(context.Background(), 1, &UpdateBudayaInput{
		Gambar: &storage.File{Name: "angklung.jpg", ContentType: "image/jpeg", Data: []byte("new")},
	})

	a := assert.New(t)
	a.NoError(err)
	a.NotEqual(oldURL, *updated.Gambar)
	a.Equal([]string{oldURL}, media.deletes)
}

func TestListBudayaRejectsUnknownKategoriFilter(t *testing.T) {
	svc := NewBudayaService(newFakeBudayaStore(), &fakeMediaStore{})
	_, err := svc.List(context.Background(), "OLAHRAGA", 0)
	assert.True(t, errors.Is(err, utils.ErrInvalidStatus))
}
