package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, CheckPasswordHash("admin123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long-enough"))
}

func TestSessionsIssueAndParse(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	token, err := sessions.Issue(42)
	require.NoError(t, err)

	userID, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), userID)
}

func TestSessionsRejectsWrongSecret(t *testing.T) {
	token, err := NewSessions("secret-a", time.Hour).Issue(1)
	require.NoError(t, err)

	_, err = NewSessions("secret-b", time.Hour).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionsRejectsExpired(t *testing.T) {
	sessions := NewSessions("test-secret", -time.Minute)

	token, err := sessions.Issue(1)
	require.NoError(t, err)

	_, err = sessions.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestSessionsRejectsGarbage(t *testing.T) {
	sessions := NewSessions("test-secret", time.Hour)

	_, err := sessions.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidSession)
}
