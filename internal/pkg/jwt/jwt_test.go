package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessToken_RoundTrip(t *testing.T) {
	token, err := GenerateAccessToken(7, "sari", "MANAGER", "secret", 15)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "sari", claims.Username)
	assert.Equal(t, "MANAGER", claims.Role)
	assert.Equal(t, "7", claims.Subject)
}

func TestAccessToken_Rejects(t *testing.T) {
	token, err := GenerateAccessToken(7, "sari", "STAFF", "secret", 15)
	require.NoError(t, err)

	_, err = ValidateAccessToken(token, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	expired, err := GenerateAccessToken(7, "sari", "STAFF", "secret", -1)
	require.NoError(t, err)
	_, err = ValidateAccessToken(expired, "secret")
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = ValidateAccessToken("not-a-token", "secret")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestRefreshToken_RoundTrip(t *testing.T) {
	token, err := GenerateRefreshToken(3, "token-id", "refresh", 7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token, "refresh")
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, "token-id", claims.TokenID)
}

func TestGetExpiryTime(t *testing.T) {
	issued := time.Date(2024, 12, 11, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 12, 18, 9, 0, 0, 0, time.UTC), GetExpiryTime(issued, 7))
}
