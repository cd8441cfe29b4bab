// Package common defines shared sentinel errors used across the PassVault
// engine and its callers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Input validation errors. Surfaced immediately, never retried.
	ErrInvalidRange   = errors.New("invalid length range")
	ErrUnknownProfile = errors.New("unknown complexity profile")
	ErrEmptyPassword  = errors.New("empty password")

	// Storage-layer errors. In batch context these are reported per item,
	// they are not fatal to the whole batch.
	ErrStoreWrite     = errors.New("store write failed")
	ErrRecordNotFound = errors.New("record not found")
)
