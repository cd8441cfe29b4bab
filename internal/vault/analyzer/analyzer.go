// Package analyzer computes deterministic metrics for a password string:
// character-class counts, a heuristic entropy, a 0–6 complexity score, and a
// strength rating. Analyze is a pure function of its input.
package analyzer

import (
	"unicode"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/vault/charset"
	"github.com/dmitrijs2005/passvault/internal/vault/models"
)

const (
	// lengthThreshold is the minimum length counted toward the score.
	lengthThreshold = 12

	// entropyThreshold is the heuristic-entropy bar counted toward the score.
	entropyThreshold = 3.0
)

type Analyzer struct{}

func New() *Analyzer {
	return &Analyzer{}
}

// Analyze returns metrics for password. It fails only on empty input.
//
// Entropy is length × (distinct/length)² — a diversity-weighted length
// score, not Shannon entropy. The formula is fixed: stored scores across the
// vault's history are only comparable if it never changes.
func (a *Analyzer) Analyze(password string) (models.PasswordMetrics, error) {
	if password == "" {
		return models.PasswordMetrics{}, common.ErrEmptyPassword
	}

	runes := []rune(password)
	m := models.PasswordMetrics{TotalLength: len(runes)}

	distinct := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		distinct[r] = struct{}{}
		switch {
		case unicode.IsUpper(r):
			m.UppercaseCount++
		case unicode.IsLower(r):
			m.LowercaseCount++
		case unicode.IsDigit(r):
			m.DigitCount++
		case charset.IsSpecial(r):
			m.SpecialCharCount++
		}
	}

	ratio := float64(len(distinct)) / float64(m.TotalLength)
	m.Entropy = float64(m.TotalLength) * ratio * ratio

	for _, ok := range []bool{
		m.TotalLength >= lengthThreshold,
		m.UppercaseCount > 0,
		m.LowercaseCount > 0,
		m.DigitCount > 0,
		m.SpecialCharCount > 0,
		m.Entropy > entropyThreshold,
	} {
		if ok {
			m.ComplexityScore++
		}
	}

	m.StrengthRating = rating(m.ComplexityScore)

	return m, nil
}

// rating maps a complexity score to its strength class. Thresholds are fixed
// constants so ratings stay comparable across the vault's history.
func rating(score int) models.StrengthRating {
	switch {
	case score <= 2:
		return models.RatingWeak
	case score <= 4:
		return models.RatingMedium
	default:
		return models.RatingStrong
	}
}
