package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// ProvinsiHandler handles province HTTP endpoints.
type ProvinsiHandler struct {
	service *service.ProvinsiService
}

// NewProvinsiHandler constructs a ProvinsiHandler.
func NewProvinsiHandler(service *service.ProvinsiService) *ProvinsiHandler {
	return &ProvinsiHandler{service: service}
}

// List handles GET /provinsi
func (h *ProvinsiHandler) List(c *gin.Context) {
	provinsi, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Provinsi retrieved successfully", "provinsi", provinsi)
}

// Get handles GET /provinsi/:id
func (h *ProvinsiHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	provinsi, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Provinsi retrieved successfully", "provinsi", provinsi)
}

// Create handles POST /provinsi. Multipart: nama + gambar image.
func (h *ProvinsiHandler) Create(c *gin.Context) {
	nama := c.PostForm("nama")
	if nama == "" {
		utils.Error(c, 400, "nama is required")
		return
	}

	gambar, err := formFile(c, "gambar")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid gambar file", err.Error())
		return
	}

	provinsi, err := h.service.Create(c.Request.Context(), &service.CreateProvinsiInput{
		Nama:   nama,
		Gambar: gambar,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Provinsi created successfully", "provinsi", provinsi)
}

// Update handles PUT /provinsi/:id
func (h *ProvinsiHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	gambar, err := formFile(c, "gambar")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid gambar file", err.Error())
		return
	}

	provinsi, err := h.service.Update(c.Request.Context(), id, &service.UpdateProvinsiInput{
		Nama:   c.PostForm("nama"),
		Gambar: gambar,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Provinsi updated successfully", "provinsi", provinsi)
}

// Delete handles DELETE /provinsi/:id
func (h *ProvinsiHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Provinsi deleted successfully", "", nil)
}
