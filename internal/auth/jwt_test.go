package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTManager(t *testing.T) JWTManagerInterface {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	return NewJWTManager()
}

func TestJWTManager_AccessTokenRoundTrip(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.GenerateAccessJWT("user-1", time.Minute)
	require.NoError(t, err)

	userID, err := manager.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}

func TestJWTManager_ExpiredAccessToken(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.GenerateAccessJWT("user-1", -time.Minute)
	require.NoError(t, err)

	_, err = manager.ValidateAccessToken(token)
	assert.ErrorIs(t, err, ErrExpiredJWTToken)
}

func TestJWTManager_GarbageAccessToken(t *testing.T) {
	manager := newTestJWTManager(t)

	_, err := manager.ValidateAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestJWTManager_RefreshTokenBoundToHashToken(t *testing.T) {
	manager := newTestJWTManager(t)

	token, err := manager.GenerateRefreshJWT("user-1", "hash-token-a", time.Hour)
	require.NoError(t, err)

	assert.NoError(t, manager.ValidateRefreshToken(token, "hash-token-a"))

	// Rotating the stored hash token must invalidate the old refresh token.
	assert.ErrorIs(t, manager.ValidateRefreshToken(token, "hash-token-b"), ErrInvalidJWTToken)

	userID, err := manager.ExtractUserIDFromRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
}
