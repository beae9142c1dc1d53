package app

import "errors"

// Input errors. They are raised before any network call is made.
var (
	// ErrInvalidArgument marks a missing or non-numeric postal code, or an
	// invalid option value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMissingCredential marks an absent API key.
	ErrMissingCredential = errors.New("missing credential")
)
