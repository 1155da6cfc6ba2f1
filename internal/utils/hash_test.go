package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Str0ng!pass", hash)

	matches, err := VerifyPassword("Str0ng!pass", hash)
	require.NoError(t, err)
	assert.True(t, matches)
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	first, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)
	second, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "each hash must carry its own salt")
}

func TestVerifyPassword_Mismatch(t *testing.T) {
	hash, err := HashPassword("Str0ng!pass")
	require.NoError(t, err)

	// A wrong password is a clean false, not an error.
	matches, err := VerifyPassword("Wrong1!pass", hash)
	require.NoError(t, err)
	assert.False(t, matches)
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	matches, err := VerifyPassword("whatever", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, matches)
}
