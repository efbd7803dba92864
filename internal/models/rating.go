package models

import "time"

// UserEventRating joins a user to an event. A row with Rating/Review unset
// means the user joined the event but has not rated it yet. One row per
// (user, event) pair, enforced by a unique index.
type UserEventRating struct {
	ID        int       `db:"id" json:"id"`
	UserID    int       `db:"user_id" json:"userId"`
	EventID   int       `db:"event_id" json:"eventId"`
	Rating    *int      `db:"rating" json:"rating,omitempty"`
	Review    *string   `db:"review" json:"review,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}

// RatingWithRelations embeds the rater and event for list/detail responses.
type RatingWithRelations struct {
	UserEventRating
	Username  string `db:"username" json:"username"`
	UserEmail string `db:"user_email" json:"userEmail"`
	NamaEvent string `db:"nama_event" json:"namaEvent"`
}

// EventAverageRating is the aggregate returned for an event.
type EventAverageRating struct {
	EventID       int     `json:"eventId"`
	AverageRating float64 `json:"averageRating"`
	TotalRatings  int     `json:"totalRatings"`
}
