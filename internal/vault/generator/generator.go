// Package generator produces randomized passwords under a complexity
// profile, drawing all randomness from the crypto-secure source.
package generator

import (
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/randx"
	"github.com/dmitrijs2005/passvault/internal/vault/charset"
	"github.com/dmitrijs2005/passvault/internal/vault/profile"
)

type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// Generate returns one password whose length is drawn uniformly from
// [minLength, maxLength] and whose character-class quota follows the
// profile's ratios.
//
// The uppercase/lowercase/digit counts are the truncated products of length
// and ratio; the remainder goes entirely to the special class, so the four
// counts always sum to the length. For very short lengths this skews the
// output toward special characters.
//
// Adjacent or repeated characters are permitted: each draw is independent
// and with replacement.
func (g *Generator) Generate(id profile.ID, minLength, maxLength int) (string, error) {
	if minLength <= 0 || maxLength <= 0 || minLength > maxLength {
		return "", fmt.Errorf("%w: [%d, %d]", common.ErrInvalidRange, minLength, maxLength)
	}

	p, err := profile.Lookup(id)
	if err != nil {
		return "", err
	}

	length, err := randx.IntInRange(minLength, maxLength)
	if err != nil {
		return "", fmt.Errorf("drawing length: %w", err)
	}

	upper := int(float64(length) * p.Uppercase)
	lower := int(float64(length) * p.Lowercase)
	digits := int(float64(length) * p.Digit)
	special := length - (upper + lower + digits)

	buf := make([]byte, 0, length)
	for _, class := range []struct {
		alphabet string
		count    int
	}{
		{charset.Uppercase, upper},
		{charset.Lowercase, lower},
		{charset.Digits, digits},
		{charset.Special, special},
	} {
		buf, err = appendRandom(buf, class.alphabet, class.count)
		if err != nil {
			return "", err
		}
	}

	// Remove positional clustering of the classes.
	if err := randx.Shuffle(buf); err != nil {
		return "", err
	}

	return string(buf), nil
}

func appendRandom(buf []byte, alphabet string, count int) ([]byte, error) {
	for range count {
		i, err := randx.IntN(len(alphabet))
		if err != nil {
			return nil, fmt.Errorf("drawing character: %w", err)
		}
		buf = append(buf, alphabet[i])
	}
	return buf, nil
}
