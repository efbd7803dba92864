package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

type fakeUserLoader struct {
	users map[int]*models.User
}

func (l *fakeUserLoader) GetByID(_ context.Context, id int) (*models.User, error) {
	u, ok := l.users[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return u, nil
}

const testSecret = "test-secret"

func testRouter(t *testing.T, loader *fakeUserLoader, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authMw := NewAuthMiddleware(loader, testSecret)
	router := gin.New()

	handlers := []gin.HandlerFunc{authMw.Handle()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(200, gin.H{"id": user.ID, "role": user.Role})
	})
	router.GET("/protected", handlers...)
	return router
}

func doRequest(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	loader := &fakeUserLoader{users: map[int]*models.User{
		7: {ID: 7, Username: "budi", Email: "budi@example.com", Role: models.RoleUser},
	}}
	router := testRouter(t, loader)

	a := assert.New(t)

	// No token
	a.Equal(401, doRequest(router, "").Code)

	// Garbage token
	a.Equal(401, doRequest(router, "not-a-token").Code)

	// Token for a deleted user
	ghost, err := utils.GenerateJWT(testSecret, 99, models.RoleUser, time.Hour)
	a.NoError(err)
	a.Equal(401, doRequest(router, ghost).Code)

	// Valid token
	token, err := utils.GenerateJWT(testSecret, 7, models.RoleUser, time.Hour)
	a.NoError(err)
	resp := doRequest(router, token)
	a.Equal(200, resp.Code)
	a.Contains(resp.Body.String(), `"id":7`)
}

func TestRequireRoles(t *testing.T) {
	loader := &fakeUserLoader{users: map[int]*models.User{
		1: {ID: 1, Username: "admin", Role: models.RoleSuperAdmin},
		2: {ID: 2, Username: "budi", Role: models.RoleUser},
	}}
	router := testRouter(t, loader, models.RoleSuperAdmin, models.RoleAdminDaerah)

	a := assert.New(t)

	adminToken, err := utils.GenerateJWT(testSecret, 1, models.RoleSuperAdmin, time.Hour)
	a.NoError(err)
	a.Equal(200, doRequest(router, adminToken).Code)

	userToken, err := utils.GenerateJWT(testSecret, 2, models.RoleUser, time.Hour)
	a.NoError(err)
	a.Equal(403, doRequest(router, userToken).Code)
}

// The role in the token is advisory; authorization uses the stored role, so
// a stale token cannot keep a revoked privilege.
func TestRequireRolesUsesStoredRole(t *testing.T) {
	loader := &fakeUserLoader{users: map[int]*models.User{
		3: {ID: 3, Username: "demoted", Role: models.RoleUser},
	}}
	router := testRouter(t, loader, models.RoleSuperAdmin)

	staleToken, err := utils.GenerateJWT(testSecret, 3, models.RoleSuperAdmin, time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, 403, doRequest(router, staleToken).Code)
}
