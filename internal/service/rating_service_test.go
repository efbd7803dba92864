package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

type fakeRatingStore struct {
	rows        map[int]*models.UserEventRating
	joinErr     error
	averageHits int
	average     *models.EventAverageRating
}

func (s *fakeRatingStore) List(context.Context) ([]models.RatingWithRelations, error) {
	return nil, nil
}

func (s *fakeRatingStore) GetByID(context.Context, int) (*models.RatingWithRelations, error) {
	return nil, utils.ErrNotFound
}

func (s *fakeRatingStore) ListByUser(context.Context, int) ([]models.RatingWithRelations, error) {
	return nil, nil
}

func (s *fakeRatingStore) ListByEvent(context.Context, int) ([]models.RatingWithRelations, error) {
	return nil, nil
}

func (s *fakeRatingStore) Join(_ context.Context, userID, eventID int) (*models.UserEventRating, error) {
	if s.joinErr != nil {
		return nil, s.joinErr
	}
	row := &models.UserEventRating{ID: len(s.rows) + 1, UserID: userID, EventID: eventID}
	s.rows[row.ID] = row
	return row, nil
}

func (s *fakeRatingStore) Rate(_ context.Context, id, rating int, review *string) (*models.UserEventRating, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	row.Rating = &rating
	row.Review = review
	return row, nil
}

func (s *fakeRatingStore) Delete(_ context.Context, id int) (*models.UserEventRating, error) {
	row, ok := s.rows[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	delete(s.rows, id)
	return row, nil
}

func (s *fakeRatingStore) Average(_ context.Context, eventID int) (*models.EventAverageRating, error) {
	s.averageHits++
	if s.average != nil {
		return s.average, nil
	}
	return &models.EventAverageRating{EventID: eventID}, nil
}

type fakeAverageCache struct {
	entries     map[int]*models.EventAverageRating
	invalidated []int
}

func newFakeAverageCache() *fakeAverageCache {
	return &fakeAverageCache{entries: map[int]*models.EventAverageRating{}}
}

func (c *fakeAverageCache) GetAverage(_ context.Context, eventID int) *models.EventAverageRating {
	return c.entries[eventID]
}

func (c *fakeAverageCache) SetAverage(_ context.Context, avg *models.EventAverageRating) {
	c.entries[avg.EventID] = avg
}

func (c *fakeAverageCache) Invalidate(_ context.Context, eventID int) {
	delete(c.entries, eventID)
	c.invalidated = append(c.invalidated, eventID)
}

func TestRateValidatesBounds(t *testing.T) {
	store := &fakeRatingStore{rows: map[int]*models.UserEventRating{
		1: {ID: 1, UserID: 3, EventID: 5},
	}}
	svc := NewRatingService(store, nil)

	a := assert.New(t)
	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.Rate(context.Background(), 1, rating, nil)
		a.True(errors.Is(err, utils.ErrInvalidRating), "rating %d", rating)
	}
	a.Nil(store.rows[1].Rating)

	review := "seru sekali"
	updated, err := svc.Rate(context.Background(), 1, 5, &review)
	a.NoError(err)
	a.Equal(5, *updated.Rating)
	a.Equal("seru sekali", *updated.Review)
}

func TestRateInvalidatesCachedAverage(t *testing.T) {
	store := &fakeRatingStore{rows: map[int]*models.UserEventRating{
		1: {ID: 1, UserID: 3, EventID: 5},
	}}
	cache := newFakeAverageCache()
	cache.entries[5] = &models.EventAverageRating{EventID: 5, AverageRating: 4, TotalRatings: 2}
	svc := NewRatingService(store, cache)

	a := assert.New(t)
	_, err := svc.Rate(context.Background(), 1, 3, nil)
	a.NoError(err)
	a.Equal([]int{5}, cache.invalidated)
	a.Nil(cache.entries[5])
}

func TestCancelInvalidatesCachedAverage(t *testing.T) {
	store := &fakeRatingStore{rows: map[int]*models.UserEventRating{
		1: {ID: 1, UserID: 3, EventID: 8},
	}}
	cache := newFakeAverageCache()
	svc := NewRatingService(store, cache)

	a := assert.New(t)
	a.NoError(svc.Cancel(context.Background(), 1))
	a.Equal([]int{8}, cache.invalidated)
	a.Empty(store.rows)
}

func TestJoinConflictPassesThrough(t *testing.T) {
	store := &fakeRatingStore{rows: map[int]*models.UserEventRating{}, joinErr: utils.ErrConflict}
	svc := NewRatingService(store, nil)

	_, err := svc.Join(context.Background(), 3, 5)
	assert.True(t, errors.Is(err, utils.ErrConflict))
}

func TestAverageUsesCacheWhenWarm(t *testing.T) {
	store := &fakeRatingStore{
		rows:    map[int]*models.UserEventRating{},
		average: &models.EventAverageRating{EventID: 5, AverageRating: 4.5, TotalRatings: 2},
	}
	cache := newFakeAverageCache()
	svc := NewRatingService(store, cache)

	a := assert.New(t)

	// Cold: goes to the store and fills the cache.
	avg, err := svc.Average(context.Background(), 5)
	a.NoError(err)
	a.Equal(4.5, avg.AverageRating)
	a.Equal(1, store.averageHits)

	// Warm: the store is not consulted again.
	avg, err = svc.Average(context.Background(), 5)
	a.NoError(err)
	a.Equal(4.5, avg.AverageRating)
	a.Equal(1, store.averageHits)
}
