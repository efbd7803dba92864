package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// BudayaHandler handles cultural-item HTTP endpoints.
type BudayaHandler struct {
	service *service.BudayaService
}

// NewBudayaHandler constructs a BudayaHandler.
func NewBudayaHandler(service *service.BudayaService) *BudayaHandler {
	return &BudayaHandler{service: service}
}

// List handles GET /budaya. Supports ?kategori= and ?daerahId= filtering.
func (h *BudayaHandler) List(c *gin.Context) {
	daerahID := 0
	if raw := c.Query("daerahId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.Error(c, 400, "Invalid daerahId parameter")
			return
		}
		daerahID = id
	}

	budaya, err := h.service.List(c.Request.Context(), c.Query("kategori"), daerahID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Budaya retrieved successfully", "budaya", budaya)
}

// Get handles GET /budaya/:id
func (h *BudayaHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	budaya, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Budaya retrieved successfully", "budaya", budaya)
}

// Create handles POST /budaya. Multipart: nama, deskripsi, kategori,
// daerahId, gambar image.
func (h *BudayaHandler) Create(c *gin.Context) {
	nama := c.PostForm("nama")
	if nama == "" {
		utils.Error(c, 400, "nama is required")
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

	budaya, err := h.service.Create(c.Request.Context(), &service.CreateBudayaInput{
		Nama:      nama,
		Deskripsi: c.PostForm("deskripsi"),
		Kategori:  c.PostForm("kategori"),
		DaerahID:  daerahID,
		Gambar:    gambar,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Budaya created successfully", "budaya", budaya)
}

// Update handles PUT /budaya/:id
func (h *BudayaHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	input := &service.UpdateBudayaInput{
		Nama:      c.PostForm("nama"),
		Deskripsi: c.PostForm("deskripsi"),
		Kategori:  c.PostForm("kategori"),
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

	budaya, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Budaya updated successfully", "budaya", budaya)
}

// Delete handles DELETE /budaya/:id
func (h *BudayaHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Budaya deleted successfully", "", nil)
}
