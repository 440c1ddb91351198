package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, "pw123", hash)
	assert.True(t, CheckPassword("pw123", hash))
}

func TestHashPassword_DistinctHashes(t *testing.T) {
	// bcrypt salts each hash, so the same password never hashes twice to the
	// same string.
	h1, err := HashPassword("pw123")
	require.NoError(t, err)
	h2, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CheckPassword("pw123", h1))
	assert.True(t, CheckPassword("pw123", h2))
}

func TestCheckPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	assert.False(t, CheckPassword("wrong", hash))
	assert.False(t, CheckPassword("", hash))
	assert.False(t, CheckPassword("pw123", "not-a-bcrypt-hash"))
}
