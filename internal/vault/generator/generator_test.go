package generator

import (
	"strings"
	"testing"
	"unicode"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/vault/charset"
	"github.com/dmitrijs2005/passvault/internal/vault/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_LengthWithinRange(t *testing.T) {
	g := New()
	for range 50 {
		pw, err := g.Generate(profile.Balanced, 12, 24)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(pw), 12)
		assert.LessOrEqual(t, len(pw), 24)
	}
}

func TestGenerate_FixedLength(t *testing.T) {
	g := New()
	pw, err := g.Generate(profile.High, 16, 16)
	require.NoError(t, err)
	assert.Len(t, pw, 16)
}

func TestGenerate_ClassCountsSumToLength(t *testing.T) {
	g := New()
	for _, id := range profile.IDs() {
		pw, err := g.Generate(id, 8, 20)
		require.NoError(t, err)

		var upper, lower, digits, special int
		for _, r := range pw {
			switch {
			case unicode.IsUpper(r):
				upper++
			case unicode.IsLower(r):
				lower++
			case unicode.IsDigit(r):
				digits++
			case charset.IsSpecial(r):
				special++
			default:
				t.Fatalf("character %q outside all alphabets", r)
			}
		}
		assert.Equal(t, len(pw), upper+lower+digits+special, "profile %s", id)
	}
}

func TestGenerate_QuotaFollowsRatios(t *testing.T) {
	// With a fixed length the truncated-ratio quota is deterministic.
	g := New()
	pw, err := g.Generate(profile.Low, 20, 20)
	require.NoError(t, err)

	var upper, lower, digits int
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper++
		case unicode.IsLower(r):
			lower++
		case unicode.IsDigit(r):
			digits++
		}
	}
	// low profile on length 20: 0.1*20=2 upper, 0.6*20=12 lower, 0.2*20=4 digits,
	// remainder 2 special.
	assert.Equal(t, 2, upper)
	assert.Equal(t, 12, lower)
	assert.Equal(t, 4, digits)
}

func TestGenerate_InvalidRange(t *testing.T) {
	g := New()

	tests := []struct {
		name     string
		min, max int
	}{
		{"min greater than max", 10, 5},
		{"zero min", 0, 5},
		{"negative min", -1, 5},
		{"zero max", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.Generate(profile.Balanced, tt.min, tt.max)
			require.Error(t, err)
			assert.ErrorIs(t, err, common.ErrInvalidRange)
		})
	}
}

func TestGenerate_UnknownProfile(t *testing.T) {
	g := New()
	_, err := g.Generate("extreme", 8, 16)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnknownProfile)
}

func TestGenerate_UsesOnlyKnownAlphabets(t *testing.T) {
	g := New()
	all := charset.Uppercase + charset.Lowercase + charset.Digits + charset.Special
	pw, err := g.Generate(profile.Balanced, 30, 30)
	require.NoError(t, err)
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(all, r), "unexpected character %q", r)
	}
}
