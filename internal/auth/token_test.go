package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func TestNewTokenManager_EmptySecret(t *testing.T) {
	_, err := NewTokenManager("", 2*time.Hour)
	require.Error(t, err)
}

func TestNewTokenManager_NonPositiveTTL(t *testing.T) {
	_, err := NewTokenManager(testSecret, 0)
	require.Error(t, err)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m, err := NewTokenManager(testSecret, 2*time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("user-1", "a@x.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(2*time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	expired := &TokenManager{secret: []byte(testSecret), ttl: -time.Minute}
	token, err := expired.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	m, err := NewTokenManager(testSecret, 2*time.Hour)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m1, err := NewTokenManager(testSecret, 2*time.Hour)
	require.NoError(t, err)
	m2, err := NewTokenManager("another-secret", 2*time.Hour)
	require.NoError(t, err)

	token, err := m1.Issue("user-1", "a@x.com")
	require.NoError(t, err)

	claims, err := m2.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestTokenManager_Malformed(t *testing.T) {
	m, err := NewTokenManager(testSecret, 2*time.Hour)
	require.NoError(t, err)

	for _, tokenString := range []string{"", "garbage", "a.b.c"} {
		claims, err := m.Verify(tokenString)
		require.ErrorIs(t, err, ErrInvalidToken)
		assert.Nil(t, claims)
	}
}
