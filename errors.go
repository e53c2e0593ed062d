package pixelgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when the provided options are missing or
	// contradictory, like a resize request without any target dimension.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnsupportedFormat is returned when the requested output format
	// cannot be encoded.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

// DecodeError reports an input image which could not be decoded.
// For batch operations Index holds the 0-based position of the offending
// image; for single-image operations it is -1.
type DecodeError struct {
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("could not decode the source image: %v", e.Err)
	}
	return fmt.Sprintf("could not decode image at index %d: %v", e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
