package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/jelajahbudaya/budaya_api/internal/storage"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// respondError maps service errors onto HTTP status codes. Anything not
// carrying a known sentinel is a 500 and gets logged with its request id.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.Error(c, 404, "Data not found")
	case errors.Is(err, utils.ErrConflict):
		utils.Error(c, 409, "Data already exists")
	case errors.Is(err, utils.ErrInvalidReference):
		utils.Error(c, 400, "Referenced data does not exist")
	case errors.Is(err, utils.ErrInvalidStatus),
		errors.Is(err, utils.ErrInvalidRating),
		errors.Is(err, utils.ErrInvalidRole),
		errors.Is(err, utils.ErrMissingImage),
		errors.Is(err, utils.ErrMissingDaerah):
		utils.Error(c, 400, err.Error())
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "Invalid email or password")
	case errors.Is(err, utils.ErrForbidden):
		utils.Error(c, 403, "Forbidden")
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("internal error")
		utils.Error(c, 500, "Internal server error")
	}
}

// paramID parses the named path parameter as a positive integer.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		utils.Error(c, 400, "Invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}

// formFile reads an optional multipart file field into memory. A missing
// field returns (nil, nil); handlers that require the file check for nil.
func formFile(c *gin.Context, field string) (*storage.File, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return &storage.File{
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
