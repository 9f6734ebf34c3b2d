// Package common provides shared utilities and types used across the engine.
package common

import "errors"

// Common application errors.
var (
	// Configuration errors.
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrMissingConfig = errors.New("missing configuration")
)
