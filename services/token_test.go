package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken(UserInfo{UserId: 7}, 60)
	require.NoError(t, err)

	userID, err := GetUserIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), userID)
}

func TestGetUserIDFromToken_WrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken(UserInfo{UserId: 7}, 60)
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "secret-khac")
	_, err = GetUserIDFromToken(token)

	assert.Error(t, err)
}

func TestGetUserIDFromToken_Garbage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := GetUserIDFromToken("khong.phai.token")

	assert.Error(t, err)
}
