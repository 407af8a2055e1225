package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenPairRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	pair, err := GenerateTokenPair(secret, 42, "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)
	assert.NotEqual(t, pair.AccessToken, pair.RefreshToken)

	claims, err := ParseToken(secret, pair.AccessToken, TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "42", claims["sub"])
	assert.Equal(t, "user@example.com", claims["email"])

	claims, err = ParseToken(secret, pair.RefreshToken, TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, "42", claims["sub"])
}

func TestParseTokenRejectsWrongType(t *testing.T) {
	secret := []byte("test-secret")
	pair, err := GenerateTokenPair(secret, 1, "a@b.c")
	require.NoError(t, err)

	_, err = ParseToken(secret, pair.RefreshToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	pair, err := GenerateTokenPair([]byte("one"), 1, "a@b.c")
	require.NoError(t, err)

	_, err = ParseToken([]byte("two"), pair.AccessToken, TokenTypeAccess)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)
	assert.True(t, CheckPasswordHash("hunter22", hash))
	assert.False(t, CheckPasswordHash("hunter23", hash))
}
