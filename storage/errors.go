package storage

import "errors"

// Common storage errors.
var (
	// ErrNotFound is returned when a schema is not found.
	ErrNotFound = errors.New("schema not found")

	// ErrInvalidKey is returned for keys the KV bucket cannot hold.
	ErrInvalidKey = errors.New("invalid schema key")
)
