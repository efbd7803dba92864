package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

// CredentialStore is the persistence dependency of AuthService.
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, u *models.User) error
}

// AuthService handles login and plain-user registration.
type AuthService struct {
	users     CredentialStore
	jwtSecret string
	jwtExpiry time.Duration
}

// NewAuthService constructs an AuthService.
func NewAuthService(users CredentialStore, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret, jwtExpiry: jwtExpiry}
}

// RegisterInput is the payload for plain-user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginInput is the payload for login.
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password surface as the same ErrInvalidCredentials so responses do
// not leak which case occurred.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return "", nil, utils.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		log.Debug().Str("email", input.Email).Msg("password verification failed")
		return "", nil, utils.ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.jwtSecret, user.ID, user.Role, s.jwtExpiry)
	if err != nil {
		return "", nil, err
	}

	log.Info().Str("email", input.Email).Msg("login successful")
	return token, user, nil
}

// RegisterUser creates an account with the default USER role.
func (s *AuthService) RegisterUser(ctx context.Context, input *RegisterInput) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     models.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
