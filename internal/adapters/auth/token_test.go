package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokens_Issue(t *testing.T) {
	secret := "test-secret"
	tokens := NewJWTTokens(secret)

	token, err := tokens.Issue("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Parse and verify claims
	parsed, err := jwt.ParseWithClaims(token, &jwtClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	claims, ok := parsed.Claims.(*jwtClaims)
	require.True(t, ok)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestJWTTokens_Verify(t *testing.T) {
	tokens := NewJWTTokens("test-secret")

	token, err := tokens.Issue("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)

	subject, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestJWTTokens_Verify_WrongSecret(t *testing.T) {
	issuer := NewJWTTokens("secret-a")
	verifier := NewJWTTokens("secret-b")

	token, err := issuer.Issue("admin", "admin@example.com", time.Hour)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
}

func TestJWTTokens_Verify_Expired(t *testing.T) {
	tokens := NewJWTTokens("test-secret")

	token, err := tokens.Issue("admin", "admin@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.Error(t, err)
}
