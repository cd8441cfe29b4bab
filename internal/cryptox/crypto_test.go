package cryptox

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSalt(t *testing.T) {
	s1, err := NewSalt()
	require.NoError(t, err)
	assert.Len(t, s1, 2*SaltSize)

	s2, err := NewSalt()
	require.NoError(t, err)
	assert.NotEqual(t, s1, s2)
}

func TestHashPassword(t *testing.T) {
	h1 := HashPassword("secret", "aabb")
	h2 := HashPassword("secret", "aabb")
	assert.Equal(t, h1, h2, "same input must hash identically")
	assert.Len(t, h1, 64)

	assert.NotEqual(t, h1, HashPassword("secret", "bbaa"))
	assert.NotEqual(t, h1, HashPassword("Secret", "aabb"))

	// Concatenation order matters: password first, then salt.
	assert.NotEqual(t, HashPassword("ab", "c"), HashPassword("a", "bc"))
}

func TestDigestsEqual(t *testing.T) {
	h := HashPassword("secret", "aabb")
	assert.True(t, DigestsEqual(h, HashPassword("secret", "aabb")))
	assert.False(t, DigestsEqual(h, HashPassword("secret", "aabc")))
	assert.False(t, DigestsEqual(h, h[:32]))
}
