package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/service"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// DaerahHandler handles region HTTP endpoints.
type DaerahHandler struct {
	service *service.DaerahService
}

// NewDaerahHandler constructs a DaerahHandler.
func NewDaerahHandler(service *service.DaerahService) *DaerahHandler {
	return &DaerahHandler{service: service}
}

// List handles GET /daerah. Supports ?provinsiId= filtering.
func (h *DaerahHandler) List(c *gin.Context) {
	provinsiID := 0
	if raw := c.Query("provinsiId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			utils.Error(c, 400, "Invalid provinsiId parameter")
			return
		}
		provinsiID = id
	}

	daerah, err := h.service.List(c.Request.Context(), provinsiID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Daerah retrieved successfully", "daerah", daerah)
}

// Get handles GET /daerah/:id
func (h *DaerahHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	daerah, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Daerah retrieved successfully", "daerah", daerah)
}

// Create handles POST /daerah. Multipart: nama, provinsiId, gambar image.
func (h *DaerahHandler) Create(c *gin.Context) {
	nama := c.PostForm("nama")
	if nama == "" {
		utils.Error(c, 400, "nama is required")
		return
	}
	provinsiID, err := strconv.Atoi(c.PostForm("provinsiId"))
	if err != nil || provinsiID <= 0 {
		utils.Error(c, 400, "Invalid provinsiId")
		return
	}

	gambar, err := formFile(c, "gambar")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid gambar file", err.Error())
		return
	}

	daerah, err := h.service.Create(c.Request.Context(), &service.CreateDaerahInput{
		Nama:       nama,
		ProvinsiID: provinsiID,
		Gambar:     gambar,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Daerah created successfully", "daerah", daerah)
}

// Update handles PUT /daerah/:id
func (h *DaerahHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	input := &service.UpdateDaerahInput{Nama: c.PostForm("nama")}
	if raw := c.PostForm("provinsiId"); raw != "" {
		provinsiID, err := strconv.Atoi(raw)
		if err != nil || provinsiID <= 0 {
			utils.Error(c, 400, "Invalid provinsiId")
			return
		}
		input.ProvinsiID = &provinsiID
	}

	gambar, err := formFile(c, "gambar")
	if err != nil {
		utils.ErrorDetail(c, 400, "Invalid gambar file", err.Error())
		return
	}
	input.Gambar = gambar

	daerah, err := h.service.Update(c.Request.Context(), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Daerah updated successfully", "daerah", daerah)
}

// Delete handles DELETE /daerah/:id
func (h *DaerahHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Daerah deleted successfully", "", nil)
}
