package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// FetchError is the only failure the loader surfaces. Message is shown to
// the user verbatim.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

var ErrFailedToFetch = &FetchError{Message: "Failed to fetch books"}

type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("Request failed with status code %d", e.Code)
}

// AsFetchError keeps an existing FetchError and otherwise reports the root
// cause message, so wrapping on the way up never leaks into the screen.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return &FetchError{Message: errors.Cause(err).Error(), Err: err}
}
