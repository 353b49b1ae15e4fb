package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidate(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.GenerateToken("a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestValidate_WrongSecret(t *testing.T) {
	token, _ := New("secret-a", time.Hour).GenerateToken("a@x.com")

	_, err := New("secret-b", time.Hour).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	token, _ := New("secret", -time.Minute).GenerateToken("a@x.com")

	_, err := New("secret", -time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	_, err := New("secret", time.Hour).ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
