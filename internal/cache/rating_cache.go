package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/jelajahbudaya/budaya_api/internal/models"
)

// ratingTTL bounds staleness of the cached average between invalidations.
const ratingTTL = 5 * time.Minute

// RatingCache caches per-event average ratings in Redis. Writes to a rating
// invalidate the event's entry; a miss falls through to the database.
type RatingCache struct {
	redis *RedisClient
}

// NewRatingCache creates a rating cache backed by the given Redis client.
func NewRatingCache(redis *RedisClient) *RatingCache {
	return &RatingCache{redis: redis}
}

func ratingKey(eventID int) string {
	return fmt.Sprintf("rating:avg:%d", eventID)
}

// GetAverage returns the cached average for an event, or nil on miss.
func (c *RatingCache) GetAverage(ctx context.Context, eventID int) *models.EventAverageRating {
	raw, err := c.redis.Get(ctx, ratingKey(eventID))
	if err != nil {
		return nil
	}

	var avg models.EventAverageRating
	if err := json.Unmarshal([]byte(raw), &avg); err != nil {
		log.Warn().Err(err).Int("event_id", eventID).Msg("corrupt rating cache entry")
		return nil
	}
	return &avg
}

// SetAverage stores the average for an event. Failures are logged only; the
// cache is an optimization, never a dependency.
func (c *RatingCache) SetAverage(ctx context.Context, avg *models.EventAverageRating) {
	raw, err := json.Marshal(avg)
	if err != nil {
		return
	}
	if err := c.redis.Set(ctx, ratingKey(avg.EventID), string(raw), ratingTTL); err != nil {
		log.Warn().Err(err).Int("event_id", avg.EventID).Msg("failed to cache rating average")
	}
}

// Invalidate drops the cached average for an event after a rating write.
func (c *RatingCache) Invalidate(ctx context.Context, eventID int) {
	if err := c.redis.Delete(ctx, ratingKey(eventID)); err != nil {
		log.Warn().Err(err).Int("event_id", eventID).Msg("failed to invalidate rating cache")
	}
}
