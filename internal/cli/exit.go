package cli

import (
	"errors"

	"github.com/specialistvlad/zipweather/internal/app"
	"github.com/specialistvlad/zipweather/internal/weather"
)

// Process exit codes.
const (
	ExitOK                = 0
	ExitFailure           = 1
	ExitInvalidArgument   = 2
	ExitMissingCredential = 3
	ExitFetchFailed       = 4
)

// ExitError is an error that carries the process exit code to use.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFor maps any error returned by the program to an exit code.
func ExitCodeFor(err error) int {
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitCodeOf(err)
}

func exitCodeOf(err error) int {
	var fetchErr *weather.FetchError
	switch {
	case errors.Is(err, app.ErrInvalidArgument):
		return ExitInvalidArgument
	case errors.Is(err, app.ErrMissingCredential):
		return ExitMissingCredential
	case errors.As(err, &fetchErr):
		return ExitFetchFailed
	default:
		return ExitFailure
	}
}
