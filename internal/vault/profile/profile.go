// Package profile defines the fixed set of complexity profiles. A profile
// maps to relative shares of the four character classes; the shares sum to
// 1.0 by construction and are immutable.
package profile

import (
	"fmt"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// ID names a complexity profile.
type ID string

const (
	Low      ID = "low"
	Balanced ID = "balanced"
	High     ID = "high"
)

// Profile holds the relative share of each character class.
type Profile struct {
	Uppercase float64
	Lowercase float64
	Digit     float64
	Special   float64
}

var profiles = map[ID]Profile{
	Low:      {Uppercase: 0.1, Lowercase: 0.6, Digit: 0.2, Special: 0.1},
	Balanced: {Uppercase: 0.25, Lowercase: 0.25, Digit: 0.25, Special: 0.25},
	High:     {Uppercase: 0.3, Lowercase: 0.2, Digit: 0.3, Special: 0.2},
}

// Lookup resolves an identifier to its profile. Unknown identifiers fail,
// there is no fallback.
func Lookup(id ID) (Profile, error) {
	p, ok := profiles[id]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", common.ErrUnknownProfile, id)
	}
	return p, nil
}

// IDs returns the known profile identifiers in a stable order.
func IDs() []ID {
	return []ID{Low, Balanced, High}
}
