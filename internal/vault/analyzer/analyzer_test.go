package analyzer

import (
	"testing"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/randx"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Empty(t *testing.T) {
	_, err := New().Analyze("")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyPassword)
}

func TestAnalyze_AllIdentical(t *testing.T) {
	// 12 identical lowercase letters: one distinct character.
	m, err := New().Analyze("aaaaaaaaaaaa")
	require.NoError(t, err)

	assert.Equal(t, 12, m.TotalLength)
	assert.Equal(t, 0, m.UppercaseCount)
	assert.Equal(t, 12, m.LowercaseCount)
	assert.Equal(t, 0, m.DigitCount)
	assert.Equal(t, 0, m.SpecialCharCount)
	// 12 × (1/12)² = 1/12
	assert.InDelta(t, 1.0/12.0, m.Entropy, 1e-9)
	// Only length≥12 and lowercase>0 hold.
	assert.Equal(t, 2, m.ComplexityScore)
	assert.Equal(t, models.RatingWeak, m.StrengthRating)
}

func TestAnalyze_RepeatingPattern(t *testing.T) {
	// 12 characters, 4 distinct, all four classes present.
	m, err := New().Analyze("Ab3!Ab3!Ab3!")
	require.NoError(t, err)

	assert.Equal(t, 12, m.TotalLength)
	assert.Equal(t, 3, m.UppercaseCount)
	assert.Equal(t, 3, m.LowercaseCount)
	assert.Equal(t, 3, m.DigitCount)
	assert.Equal(t, 3, m.SpecialCharCount)
	// 12 × (4/12)² = 4/3
	assert.InDelta(t, 4.0/3.0, m.Entropy, 1e-9)
	// length≥12 plus the four class flags; entropy>3.0 does not hold.
	assert.Equal(t, 5, m.ComplexityScore)
	assert.Equal(t, models.RatingStrong, m.StrengthRating)
}

func TestAnalyze_AllDistinct(t *testing.T) {
	m, err := New().Analyze("abcdef")
	require.NoError(t, err)
	// All characters distinct: entropy equals length.
	assert.InDelta(t, 6.0, m.Entropy, 1e-9)
	// lowercase>0 and entropy>3.0.
	assert.Equal(t, 2, m.ComplexityScore)
	assert.Equal(t, models.RatingWeak, m.StrengthRating)
}

func TestAnalyze_MediumRating(t *testing.T) {
	// Three predicates hold: lowercase, digits, entropy.
	m, err := New().Analyze("abc123")
	require.NoError(t, err)
	assert.Equal(t, 3, m.ComplexityScore)
	assert.Equal(t, models.RatingMedium, m.StrengthRating)
}

func TestAnalyze_UncategorizedCharacters(t *testing.T) {
	// A space matches none of the four class predicates but still counts
	// toward length and distinct characters.
	m, err := New().Analyze("ab cd")
	require.NoError(t, err)
	assert.Equal(t, 5, m.TotalLength)
	assert.Equal(t, 4, m.LowercaseCount)
	assert.Equal(t, 0, m.SpecialCharCount)
	assert.InDelta(t, 5.0, m.Entropy, 1e-9)
}

func TestAnalyze_EntropyInvariantUnderPermutation(t *testing.T) {
	a := New()
	original := "Xy7$Xy7$abcd"

	m1, err := a.Analyze(original)
	require.NoError(t, err)

	b := []byte(original)
	for range 10 {
		require.NoError(t, randx.Shuffle(b))
		m2, err := a.Analyze(string(b))
		require.NoError(t, err)
		assert.Equal(t, m1.Entropy, m2.Entropy)
		assert.Equal(t, m1.ComplexityScore, m2.ComplexityScore)
		assert.Equal(t, m1.StrengthRating, m2.StrengthRating)
	}
}
