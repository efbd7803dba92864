package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/middleware"
	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// RatingHandler handles event participation and rating HTTP endpoints.
type RatingHandler struct {
	service *service.RatingService
}

// NewRatingHandler constructs a RatingHandler.
func NewRatingHandler(service *service.RatingService) *RatingHandler {
	return &RatingHandler{service: service}
}

// List handles GET /event-ratings
func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ratings retrieved successfully", "ratings", ratings)
}

// Get handles GET /event-ratings/:id
func (h *RatingHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	rating, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Rating retrieved successfully", "rating", rating)
}

// ListByEvent handles GET /event-ratings/event/:eventId
func (h *RatingHandler) ListByEvent(c *gin.Context) {
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	ratings, err := h.service.ListByEvent(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ratings retrieved successfully", "ratings", ratings)
}

// ListByUser handles GET /event-ratings/user/:userId
func (h *RatingHandler) ListByUser(c *gin.Context) {
	userID, ok := paramID(c, "userId")
	if !ok {
		return
	}

	ratings, err := h.service.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Ratings retrieved successfully", "ratings", ratings)
}

// Average handles GET /event-ratings/event/:eventId/average
func (h *RatingHandler) Average(c *gin.Context) {
	eventID, ok := paramID(c, "eventId")
	if !ok {
		return
	}

	avg, err := h.service.Average(c.Request.Context(), eventID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Average rating retrieved successfully", "average", avg)
}

type joinEventRequest struct {
	EventID int `json:"eventId" binding:"required,gt=0"`
}

// Join handles POST /event-ratings/join. The participant is the
// authenticated user.
func (h *RatingHandler) Join(c *gin.Context) {
	var req joinEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorDetail(c, 400, "Invalid request body", err.Error())
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		utils.Error(c, 401, "Unauthorized")
		return
	}

	rating, err := h.service.Join(c.Request.Context(), user.ID, req.EventID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Joined event successfully", "rating", rating)
}

type rateEventRequest struct {
	Rating int     `json:"rating" binding:"required"`
	Review *string `json:"review"`
}

// Rate handles PUT /event-ratings/:id/rate
func (h *RatingHandler) Rate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req rateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorDetail(c, 400, "Invalid request body", err.Error())
		return
	}

	rating, err := h.service.Rate(c.Request.Context(), id, req.Rating, req.Review)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Rating submitted successfully", "rating", rating)
}

// Cancel handles DELETE /event-ratings/:id
func (h *RatingHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Participation cancelled successfully", "", nil)
}
