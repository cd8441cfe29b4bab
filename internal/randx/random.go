// Package randx provides helpers over crypto/rand. Every draw in the engine
// goes through this package; math/rand is never used.
package randx

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
)

// IntN returns a uniform random integer in [0, n). It fails if n <= 0.
// big.Int-based draws are uniform over the range, there is no modulo bias.
func IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("randx: invalid upper bound %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("randx: %w", err)
	}
	return int(v.Int64()), nil
}

// IntInRange returns a uniform random integer in [min, max] inclusive.
func IntInRange(min, max int) (int, error) {
	if min > max {
		return 0, fmt.Errorf("randx: invalid range [%d, %d]", min, max)
	}
	n, err := IntN(max - min + 1)
	if err != nil {
		return 0, err
	}
	return min + n, nil
}

// Shuffle applies a Fisher–Yates permutation to b in place, drawing each
// index from the secure source.
func Shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := IntN(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// Hex generates size random bytes and encodes them as a hexadecimal string.
// The resulting string is twice as long as size (each byte expands to two
// hex characters).
func Hex(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("randx: %w", err)
	}
	return hex.EncodeToString(b), nil
}
