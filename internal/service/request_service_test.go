package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

type fakeRequestStore struct {
	moderateCalls []string
	moderated     *models.RequestAdminDaerah
	moderateErr   error
}

func (s *fakeRequestStore) List(context.Context) ([]models.RequestDetail, int, error) {
	return nil, 0, nil
}

func (s *fakeRequestStore) GetByID(context.Context, int) (*models.RequestDetail, error) {
	return nil, utils.ErrNotFound
}

func (s *fakeRequestStore) Moderate(_ context.Context, _ int, status string) (*models.RequestAdminDaerah, error) {
	s.moderateCalls = append(s.moderateCalls, status)
	return s.moderated, s.moderateErr
}

func (s *fakeRequestStore) Delete(context.Context, int) error { return nil }

func (s *fakeRequestStore) CountsByStatus(context.Context) (*models.RequestStatusCounts, error) {
	return &models.RequestStatusCounts{}, nil
}

// An unknown status must be rejected before the store is touched.
func TestModerateRejectsUnknownStatus(t *testing.T) {
	store := &fakeRequestStore{}
	svc := NewRequestService(store)

	a := assert.New(t)
	for _, status := range []string{"", "APPROVED", "accept", "DONE"} {
		_, err := svc.Moderate(context.Background(), 1, status)
		a.True(errors.Is(err, utils.ErrInvalidStatus), "status %q", status)
	}
	a.Empty(store.moderateCalls)
}

func TestModeratePassesValidStatus(t *testing.T) {
	store := &fakeRequestStore{
		moderated: &models.RequestAdminDaerah{ID: 1, Status: models.StatusAccept},
	}
	svc := NewRequestService(store)

	a := assert.New(t)
	req, err := svc.Moderate(context.Background(), 1, models.StatusAccept)
	a.NoError(err)
	a.Equal(models.StatusAccept, req.Status)
	a.Equal([]string{models.StatusAccept}, store.moderateCalls)
}

func TestModerateNotFoundPassesThrough(t *testing.T) {
	store := &fakeRequestStore{moderateErr: utils.ErrNotFound}
	svc := NewRequestService(store)

	_, err := svc.Moderate(context.Background(), 99, models.StatusReject)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
