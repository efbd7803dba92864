package service

import (
	"context"
	"fmt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// RatingStore is the persistence dependency of RatingService.
type RatingStore interface {
	List(ctx context.Context) ([]models.RatingWithRelations, error)
	GetByID(ctx context.Context, id int) (*models.RatingWithRelations, error)
	ListByUser(ctx context.Context, userID int) ([]models.RatingWithRelations, error)
	ListByEvent(ctx context.Context, eventID int) ([]models.RatingWithRelations, error)
	Join(ctx context.Context, userID, eventID int) (*models.UserEventRating, error)
	Rate(ctx context.Context, id, rating int, review *string) (*models.UserEventRating, error)
	Delete(ctx context.Context, id int) (*models.UserEventRating, error)
	Average(ctx context.Context, eventID int) (*models.EventAverageRating, error)
}

// AverageCache caches per-event rating averages. A nil cache disables
// caching entirely.
type AverageCache interface {
	GetAverage(ctx context.Context, eventID int) *models.EventAverageRating
	SetAverage(ctx context.Context, avg *models.EventAverageRating)
	Invalidate(ctx context.Context, eventID int)
}

// RatingService handles event participation and rating logic.
type RatingService struct {
	store RatingStore
	cache AverageCache
}

// NewRatingService constructs a RatingService.
func NewRatingService(store RatingStore, cache AverageCache) *RatingService {
	return &RatingService{store: store, cache: cache}
}

// List returns all participations with user and event context.
func (s *RatingService) List(ctx context.Context) ([]models.RatingWithRelations, error) {
	return s.store.List(ctx)
}

// GetByID returns a participation by id.
func (s *RatingService) GetByID(ctx context.Context, id int) (*models.RatingWithRelations, error) {
	return s.store.GetByID(ctx, id)
}

// ListByUser returns a user's participations.
func (s *RatingService) ListByUser(ctx context.Context, userID int) ([]models.RatingWithRelations, error) {
	return s.store.ListByUser(ctx, userID)
}

// ListByEvent returns an event's participations.
func (s *RatingService) ListByEvent(ctx context.Context, eventID int) ([]models.RatingWithRelations, error) {
	return s.store.ListByEvent(ctx, eventID)
}

// Join records a user's participation in an event with no rating yet.
// A duplicate join surfaces as ErrConflict via the unique constraint; there
// is deliberately no read-before-write, so concurrent joins cannot both
// succeed.
func (s *RatingService) Join(ctx context.Context, userID, eventID int) (*models.UserEventRating, error) {
	return s.store.Join(ctx, userID, eventID)
}

// Rate sets a 1-5 rating and optional review on a participation, then
// invalidates the event's cached average.
func (s *RatingService) Rate(ctx context.Context, id, rating int, review *string) (*models.UserEventRating, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: %d", utils.ErrInvalidRating, rating)
	}

	updated, err := s.store.Rate(ctx, id, rating, review)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, updated.EventID)
	}
	return updated, nil
}

// Cancel removes a participation and invalidates the event's cached
// average.
func (s *RatingService) Cancel(ctx context.Context, id int) error {
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx, deleted.EventID)
	}
	return nil
}

// Average returns an event's average rating, from cache when warm.
func (s *RatingService) Average(ctx context.Context, eventID int) (*models.EventAverageRating, error) {
	if s.cache != nil {
		if avg := s.cache.GetAverage(ctx, eventID); avg != nil {
			return avg, nil
		}
	}

	avg, err := s.store.Average(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.SetAverage(ctx, avg)
	}
	return avg, nil
}
