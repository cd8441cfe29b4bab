// Package models defines the persisted and transient data types of the
// password vault. Plaintext passwords never appear here: records carry only
// the salted digest, the salt, and derived metrics.
package models

import "time"

// StrengthRating classifies a password by its complexity score.
type StrengthRating string

const (
	RatingWeak   StrengthRating = "Weak"
	RatingMedium StrengthRating = "Medium"
	RatingStrong StrengthRating = "Strong"
)

// Action labels a history ledger entry.
type Action string

const (
	ActionGenerated Action = "generated"
	ActionUsed      Action = "used"
)

// PasswordMetrics is the analyzer output: a pure function of the password
// characters, with no external state. The four class counts sum to
// TotalLength for passwords drawn from the generator alphabets.
type PasswordMetrics struct {
	TotalLength      int            `json:"total_length"`
	UppercaseCount   int            `json:"uppercase_count"`
	LowercaseCount   int            `json:"lowercase_count"`
	DigitCount       int            `json:"digit_count"`
	SpecialCharCount int            `json:"special_char_count"`
	Entropy          float64        `json:"entropy"`
	ComplexityScore  int            `json:"complexity_score"`
	StrengthRating   StrengthRating `json:"strength_rating"`
}

// PasswordRecord is a persisted vault row. Hash, Salt and the metrics fields
// are immutable after creation; only usage bookkeeping changes afterwards.
type PasswordRecord struct {
	// ID is the store-assigned surrogate identifier, monotonically increasing.
	ID int64 `json:"id"`

	// Name is the display name, e.g. "Generated-3". Not unique store-wide.
	Name string `json:"name"`

	// PasswordHash is the hex SHA-256 digest of password‖salt.
	PasswordHash string `json:"password_hash"`

	// Salt is the per-record random salt, hex encoded. Stored in the clear:
	// its role is to defeat precomputed dictionaries, not to be hidden.
	Salt string `json:"salt"`

	PasswordMetrics

	GeneratedAt time.Time  `json:"generated_at"`
	LastUsedAt  *time.Time `json:"last_used_at,omitempty"`
	UsageCount  int64      `json:"usage_count"`

	Notes    *string `json:"notes,omitempty"`
	Category *string `json:"category,omitempty"`
}

// HistoryEntry is one row of the append-only action ledger. Entries are
// never updated or deleted.
type HistoryEntry struct {
	ID         int64     `json:"id"`
	PasswordID int64     `json:"password_id"`
	Action     Action    `json:"action"`
	CreatedAt  time.Time `json:"created_at"`
}
