package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setSecrets(t *testing.T) {
	t.Setenv("JWT_ACCESS_SECRET", "access-secret-for-tests")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret-for-tests")
}

func TestAccessTokenRoundTrip(t *testing.T) {
	setSecrets(t)

	token, err := SignAccessToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	setSecrets(t)

	token, err := SignRefreshToken("user-456")
	require.NoError(t, err)

	userID, err := ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-456", userID)
}

func TestTokenKindsAreNotInterchangeable(t *testing.T) {
	setSecrets(t)

	access, err := SignAccessToken("user-123")
	require.NoError(t, err)
	refresh, err := SignRefreshToken("user-123")
	require.NoError(t, err)

	_, err = ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	setSecrets(t)

	token, err := SignAccessToken("user-123")
	require.NoError(t, err)

	_, err = ParseAccessToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = ParseAccessToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
