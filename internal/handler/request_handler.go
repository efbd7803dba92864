package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// RequestHandler handles admin-daerah request moderation endpoints.
type RequestHandler struct {
	service *service.RequestService
}

// NewRequestHandler constructs a RequestHandler.
func NewRequestHandler(service *service.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// List handles GET /requests
func (h *RequestHandler) List(c *gin.Context) {
	requests, total, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SuccessFields(c, 200, "Requests retrieved successfully", gin.H{
		"requests": requests,
		"total":    total,
	})
}

// Counts handles GET /requests/counts
func (h *RequestHandler) Counts(c *gin.Context) {
	counts, err := h.service.CountsByStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Request counts retrieved successfully", "counts", counts)
}

// Get handles GET /requests/:id
func (h *RequestHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	request, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Request retrieved successfully", "request", request)
}

type moderateRequest struct {
	Status string `json:"status" binding:"required"`
}

// Moderate handles PUT /requests/:id
func (h *RequestHandler) Moderate(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req moderateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorDetail(c, 400, "Invalid request body", err.Error())
		return
	}

	request, err := h.service.Moderate(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Request updated successfully", "request", request)
}

// Delete handles DELETE /requests/:id
func (h *RequestHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Request deleted successfully", "", nil)
}
