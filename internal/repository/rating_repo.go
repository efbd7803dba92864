package repository

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/jelajahbudaya/budaya_api/internal/models"
)

// RatingRepository handles database operations for event participation and
// ratings. Duplicate joins are rejected by the unique (user_id, event_id)
// index, not by a read-then-write check, so concurrent joins cannot race.
type RatingRepository struct {
	db *sqlx.DB
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(db *sqlx.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

const ratingRelationsQuery = `
	SELECT r.id, r.user_id, r.event_id, r.rating, r.review, r.created_at, r.updated_at,
	       u.username, u.email AS user_email, e.nama AS nama_event
	FROM user_event_ratings r
	JOIN users u ON u.id = r.user_id
	JOIN events e ON e.id = r.event_id
`

// List returns all ratings with user and event context.
func (r *RatingRepository) List(ctx context.Context) ([]models.RatingWithRelations, error) {
	ratings := []models.RatingWithRelations{}
	err := r.db.SelectContext(ctx, &ratings, ratingRelationsQuery+` ORDER BY r.id`)
	return ratings, translateError(err)
}

// GetByID returns a rating by id with user and event context.
func (r *RatingRepository) GetByID(ctx context.Context, id int) (*models.RatingWithRelations, error) {
	var rating models.RatingWithRelations
	err := r.db.GetContext(ctx, &rating, ratingRelationsQuery+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &rating, nil
}

// ListByUser returns a user's event participations.
func (r *RatingRepository) ListByUser(ctx context.Context, userID int) ([]models.RatingWithRelations, error) {
	ratings := []models.RatingWithRelations{}
	err := r.db.SelectContext(ctx, &ratings, ratingRelationsQuery+` WHERE r.user_id = $1 ORDER BY r.id`, userID)
	return ratings, translateError(err)
}

// ListByEvent returns an event's participations.
func (r *RatingRepository) ListByEvent(ctx context.Context, eventID int) ([]models.RatingWithRelations, error) {
	ratings := []models.RatingWithRelations{}
	err := r.db.SelectContext(ctx, &ratings, ratingRelationsQuery+` WHERE r.event_id = $1 ORDER BY r.id`, eventID)
	return ratings, translateError(err)
}

// Join inserts a participation row with rating and review unset.
func (r *RatingRepository) Join(ctx context.Context, userID, eventID int) (*models.UserEventRating, error) {
	var rating models.UserEventRating
	err := r.db.GetContext(ctx, &rating, `
		INSERT INTO user_event_ratings (user_id, event_id)
		VALUES ($1, $2)
		RETURNING id, user_id, event_id, rating, review, created_at, updated_at
	`, userID, eventID)
	if err != nil {
		return nil, translateError(err)
	}
	return &rating, nil
}

// Rate sets the rating and review on an existing participation row and
// returns the updated row.
func (r *RatingRepository) Rate(ctx context.Context, id, rating int, review *string) (*models.UserEventRating, error) {
	var updated models.UserEventRating
	err := r.db.GetContext(ctx, &updated, `
		UPDATE user_event_ratings SET rating = $1, review = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, user_id, event_id, rating, review, created_at, updated_at
	`, rating, review, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &updated, nil
}

// Delete removes a participation row and returns it, so callers can
// invalidate the event's cached average.
func (r *RatingRepository) Delete(ctx context.Context, id int) (*models.UserEventRating, error) {
	var deleted models.UserEventRating
	err := r.db.GetContext(ctx, &deleted, `
		DELETE FROM user_event_ratings WHERE id = $1
		RETURNING id, user_id, event_id, rating, review, created_at, updated_at
	`, id)
	if err != nil {
		return nil, translateError(err)
	}
	return &deleted, nil
}

// Average returns the average of the set ratings for an event. Unrated
// participation rows do not count.
func (r *RatingRepository) Average(ctx context.Context, eventID int) (*models.EventAverageRating, error) {
	var row struct {
		Average sql.NullFloat64 `db:"average"`
		Total   int             `db:"total"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT AVG(rating) AS average, COUNT(rating) AS total
		FROM user_event_ratings
		WHERE event_id = $1 AND rating IS NOT NULL
	`, eventID)
	if err != nil {
		return nil, translateError(err)
	}

	avg := &models.EventAverageRating{EventID: eventID, TotalRatings: row.Total}
	if row.Average.Valid {
		avg.AverageRating = row.Average.Float64
	}
	return avg, nil
}
