package core

import "errors"

var (
	// ErrMalformedTime is returned for input that cannot be read as a clock
	// value. Malformed input is rejected at the boundary, never persisted.
	ErrMalformedTime = errors.New("malformed time value")

	// ErrInvalidSessionTransition is returned when a time write targets a
	// session whose asserted status is terminal (absent, leave, sick).
	ErrInvalidSessionTransition = errors.New("invalid session transition")

	// ErrRecordNotFound is returned by verification and annotation against a
	// record id that does not exist.
	ErrRecordNotFound = errors.New("attendance record not found")
)
