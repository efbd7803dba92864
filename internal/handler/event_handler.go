package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// EventHandler handles event HTTP endpoints.
type EventHandler struct {
	service *service.EventService
}

// NewEventHandler constructs an EventHandler.
func NewEventHandler(service *service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

// List handles GET /events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Events retrieved successfully", "events", events)
}

// Get handles GET /events/:id
func (h *EventHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	event, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Event retrieved successfully", "event", event)
}

// Create handles POST /events. Multipart: nama, deskripsi, tanggal
// (RFC 3339 or YYYY-MM-DD), lokasi, daerahId, gambar image.
func (h *EventHandler) Create(c *gin.Context) {
	nama := c.PostForm("nama")
	if nama == "" {
		utils.Error(c, 400, "nama is required")
		return
	}
	tanggal, err := parseTanggal(c.PostForm("tanggal"))
	if err != nil {
		utils.Error(c, 400, "Invalid tanggal, use RFC 3339 or YYYY-MM-DD")
		return
	}
	daerahID, err := strconv.Atoi(c.PostForm("daerahId"))
	if err != nil || daerahID <= 0 {
		utils.Error(c, 400, "Invalid daerahId")
		return
	}

	gambar, err := formFile(c, "gambar")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid gambar file", err.Error())
		return
	}

	event, err := h.service.Create(c.Request.Context(), &service.CreateEventInput{
		Nama:      nama,
		Deskripsi: c.PostForm("deskripsi"),
		Tanggal:   tanggal,
		Lokasi:    c.PostForm("lokasi"),
		DaerahID:  daerahID,
		Gambar:    gambar,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Event created successfully", "event", event)
}

// Update handles PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	input := &service.UpdateEventInput{
		Nama:      c.PostForm("nama"),
		Deskripsi: c.PostForm("deskripsi"),
		Lokasi:    c.PostForm("lokasi"),
	}
	if raw := c.PostForm("tanggal"); raw != "" {
		tanggal, err := parseTanggal(raw)
		if err != nil {
			utils.Error(c, 400, "Invalid tanggal, use RFC 3339 or YYYY-MM-DD")
			return
		}
		input.Tanggal = &tanggal
	}
	if raw := c.PostForm("daerahId"); raw != "" {
		daerahID, err := strconv.Atoi(raw)
		if err != nil || daerahID <= 0 {
			utils.Error(c, 400, "Invalid daerahId")
			return
		}
		input.DaerahID = &daerahID
	}

	gambar, err := formFile(c, "gambar")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid gambar file", err.Error())
		return
	}
	input.Gambar = gambar

	event, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Event updated successfully", "event", event)
}

// Delete handles DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Event deleted successfully", "", nil)
}

func parseTanggal(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
