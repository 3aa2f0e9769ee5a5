// Package common defines shared sentinel errors used across the accounts
// service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("account not found")
	ErrorDuplicateEmail = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Startup errors (missing TLS key or certificate).
	ErrorCredentialsNotFound = errors.New("credentials not found")
)
