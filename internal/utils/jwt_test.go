package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	a := assert.New(t)

	token, err := GenerateJWT("secret", 42, "SUPER_ADMIN", time.Hour)
	a.NoError(err)
	a.NotEmpty(token)

	claims, err := ValidateJWT("secret", token)
	a.NoError(err)
	a.Equal(42, claims.UserID)
	a.Equal("SUPER_ADMIN", claims.Role)
}

func TestValidateJWTWrongSecret(t *testing.T) {
	a := assert.New(t)

	token, err := GenerateJWT("secret", 1, "USER", time.Hour)
	a.NoError(err)

	_, err = ValidateJWT("other-secret", token)
	a.Error(err)
}

func TestValidateJWTExpired(t *testing.T) {
	a := assert.New(t)

	token, err := GenerateJWT("secret", 1, "USER", -time.Minute)
	a.NoError(err)

	_, err = ValidateJWT("secret", token)
	a.Error(err)
}

func TestValidateJWTGarbage(t *testing.T) {
	_, err := ValidateJWT("secret", "not.a.token")
	assert.Error(t, err)
}
