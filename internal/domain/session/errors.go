package session

import "errors"

var (
	// ErrMissingDate indicates the date field is empty.
	ErrMissingDate = errors.New("missing date")
	// ErrInvalidTimes indicates a time field is empty or the start is not
	// before the end.
	ErrInvalidTimes = errors.New("invalid times")
	// ErrOverlap indicates the session intersects an existing one on the
	// same date.
	ErrOverlap = errors.New("session overlaps with an existing one on the same date")
	// ErrSessionNotFound indicates the session doesn't exist.
	ErrSessionNotFound = errors.New("session not found")
)
