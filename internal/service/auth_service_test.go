package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/jelajahbudaya/budaya_api/internal/models"
	"github.com/jelajahbudaya/budaya_api/internal/utils"
)

type fakeCredentialStore struct {
	users   map[string]*models.User
	created []*models.User
}

func (s *fakeCredentialStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return u, nil
}

func (s *fakeCredentialStore) Create(_ context.Context, u *models.User) error {
	u.ID = len(s.created) + 1
	s.created = append(s.created, u)
	return nil
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return string(hashed)
}

func TestLogin(t *testing.T) {
	store := &fakeCredentialStore{users: map[string]*models.User{
		"budi@example.com": {
			ID:       7,
			Email:    "budi@example.com",
			Password: hashOf(t, "rahasia123"),
			Role:     models.RoleUser,
		},
	}}
	svc := NewAuthService(store, "test-secret", time.Hour)

	a := assert.New(t)

	token, user, err := svc.Login(context.Background(), &LoginInput{
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	a.NoError(err)
	a.NotEmpty(token)
	a.Equal(7, user.ID)

	claims, err := utils.ValidateJWT("test-secret", token)
	a.NoError(err)
	a.Equal(7, claims.UserID)
	a.Equal(models.RoleUser, claims.Role)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginInvalidCredentials(t *testing.T) {
	store := &fakeCredentialStore{users: map[string]*models.User{
		"budi@example.com": {
			ID:       7,
			Email:    "budi@example.com",
			Password: hashOf(t, "rahasia123"),
		},
	}}
	svc := NewAuthService(store, "test-secret", time.Hour)

	a := assert.New(t)

	_, _, errUnknown := svc.Login(context.Background(), &LoginInput{
		Email:    "nobody@example.com",
		Password: "rahasia123",
	})
	_, _, errWrongPass := svc.Login(context.Background(), &LoginInput{
		Email:    "budi@example.com",
		Password: "salah",
	})

	a.True(errors.Is(errUnknown, utils.ErrInvalidCredentials))
	a.True(errors.Is(errWrongPass, utils.ErrInvalidCredentials))
	a.Equal(errUnknown, errWrongPass)
}

func TestRegisterUser(t *testing.T) {
	store := &fakeCredentialStore{users: map[string]*models.User{}}
	svc := NewAuthService(store, "test-secret", time.Hour)

	a := assert.New(t)

	user, err := svc.RegisterUser(context.Background(), &RegisterInput{
		Username: "budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
	})
	a.NoError(err)
	a.Equal(models.RoleUser, user.Role)
	a.NotEqual("rahasia123", user.Password)
	a.NoError(bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("rahasia123")))
	a.Len(store.created, 1)
}
