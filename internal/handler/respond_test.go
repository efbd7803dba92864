package handler

import (
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"not found", utils.ErrNotFound, 404},
		{"wrapped not found", fmt.Errorf("load user: %w", utils.ErrNotFound), 404},
		{"conflict", utils.ErrConflict, 409},
		{"invalid reference", utils.ErrInvalidReference, 400},
		{"invalid status", utils.ErrInvalidStatus, 400},
		{"invalid rating", utils.ErrInvalidRating, 400},
		{"invalid role", utils.ErrInvalidRole, 400},
		{"missing image", utils.ErrMissingImage, 400},
		{"missing daerah", utils.ErrMissingDaerah, 400},
		{"invalid credentials", utils.ErrInvalidCredentials, 401},
		{"forbidden", utils.ErrForbidden, 403},
		{"unknown", errors.New("boom"), 500},
	}

	a := assert.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			respondError(c, tt.err)
			a.Equal(tt.wantCode, w.Code)
			a.Contains(w.Body.String(), "message")
		})
	}
}
