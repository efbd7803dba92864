package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

const authUserKey = "auth_user"

// AuthUser is the identity attached to the request context after token
// verification.
type AuthUser struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// UserLoader loads the acting user so a token for a deleted account is
// rejected.
type UserLoader interface {
	GetByID(ctx context.Context, id int) (*models.User, error)
}

// AuthMiddleware verifies bearer tokens and attaches the acting user's
// identity to the request context.
type AuthMiddleware struct {
	users       UserLoader
	jwtSecret   string
	rateLimiter *InvalidAuthRateLimiter
}

// NewAuthMiddleware constructs a new AuthMiddleware.
func NewAuthMiddleware(users UserLoader, jwtSecret string) *AuthMiddleware {
	return &AuthMiddleware{
		users:       users,
		jwtSecret:   jwtSecret,
		rateLimiter: NewInvalidAuthRateLimiter(),
	}
}

// Handle returns a Gin middleware function that enforces authentication.
func (m *AuthMiddleware) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			m.handleAuthError(c, "Unauthorized - No token provided")
			return
		}
		token := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := utils.ValidateJWT(m.jwtSecret, token)
		if err != nil {
			m.handleAuthError(c, "Unauthorized - Invalid token")
			return
		}

		// Re-load the user: a token issued before deletion must not pass.
		user, err := m.users.GetByID(c.Request.Context(), claims.UserID)
		if err != nil {
			m.handleAuthError(c, "Unauthorized - User not found")
			return
		}

		c.Set(authUserKey, &AuthUser{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role,
		})
		c.Next()
	}
}

func (m *AuthMiddleware) handleAuthError(c *gin.Context, message string) {
	// Apply rate limit for invalid auth attempts
	ip := c.ClientIP()
	if !m.rateLimiter.Allow(ip) {
		utils.Error(c, 429, "Too many invalid authentication attempts")
		c.Abort()
		return
	}

	utils.Error(c, 401, message)
	c.Abort()
}

// RequireRoles returns a middleware that permits only the listed roles.
// It must run after Handle.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			utils.Error(c, 401, "Unauthorized")
			c.Abort()
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}

		utils.Error(c, 403, "Forbidden - Insufficient permissions")
		c.Abort()
	}
}

// CurrentUser returns the authenticated user from context, or nil.
func CurrentUser(c *gin.Context) *AuthUser {
	v, ok := c.Get(authUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*AuthUser)
	return user
}
