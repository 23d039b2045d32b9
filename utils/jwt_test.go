package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	const secret = "test-secret"

	token, err := GenerateJWT(secret, 42, "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, email, err := ParseJWT(secret, token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
	assert.Equal(t, "a@b.com", email)
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT("secret-one", 1, "a@b.com")
	require.NoError(t, err)

	_, _, err = ParseJWT("secret-two", token)
	assert.Error(t, err)
}

func TestParseJWTGarbage(t *testing.T) {
	_, _, err := ParseJWT("secret", "not-a-token")
	assert.Error(t, err)
}
