package storage

import "errors"

var (
	// ErrNotFound is returned when a slot key has never been written.
	ErrNotFound = errors.New("slot not found")
)
