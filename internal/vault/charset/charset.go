// Package charset fixes the four character-class alphabets shared by the
// generator and the analyzer.
package charset

import "strings"

const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"

	// Special is the 32-character ASCII punctuation set.
	Special = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// IsSpecial reports whether r belongs to the fixed special set.
func IsSpecial(r rune) bool {
	return strings.ContainsRune(Special, r)
}
