package service

import (
	"context"
	"fmt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// RequestStore is the persistence dependency of RequestService. Moderate
// must apply the status write and, on ACCEPT, the user promotion
// atomically.
type RequestStore interface {
	List(ctx context.Context) ([]models.RequestDetail, int, error)
	GetByID(ctx context.Context, id int) (*models.RequestDetail, error)
	Moderate(ctx context.Context, id int, status string) (*models.RequestAdminDaerah, error)
	Delete(ctx context.Context, id int) error
	CountsByStatus(ctx context.Context) (*models.RequestStatusCounts, error)
}

// RequestService handles the admin-daerah promotion workflow: a PENDING
// request is moderated to ACCEPT or REJECT, and acceptance promotes the
// requesting user.
type RequestService struct {
	store RequestStore
}

// NewRequestService constructs a RequestService.
func NewRequestService(store RequestStore) *RequestService {
	return &RequestService{store: store}
}

// List returns all requests with requester context plus the total count.
func (s *RequestService) List(ctx context.Context) ([]models.RequestDetail, int, error) {
	return s.store.List(ctx)
}

// GetByID returns a request by id with requester context.
func (s *RequestService) GetByID(ctx context.Context, id int) (*models.RequestDetail, error) {
	return s.store.GetByID(ctx, id)
}

// Moderate transitions a request to the given status. Anything outside the
// PENDING/ACCEPT/REJECT enumeration is rejected before persistence is
// touched. On ACCEPT the store promotes the user and links the daerah in
// the same transaction as the status write.
func (s *RequestService) Moderate(ctx context.Context, id int, status string) (*models.RequestAdminDaerah, error) {
	if !models.ValidStatus(status) {
		return nil, fmt.Errorf("%w: %q", utils.ErrInvalidStatus, status)
	}
	return s.store.Moderate(ctx, id, status)
}

// Delete removes a request. A promotion already applied by a prior ACCEPT
// is not reverted.
func (s *RequestService) Delete(ctx context.Context, id int) error {
	return s.store.Delete(ctx, id)
}

// CountsByStatus groups requests by status.
func (s *RequestService) CountsByStatus(ctx context.Context) (*models.RequestStatusCounts, error) {
	return s.store.CountsByStatus(ctx)
}
