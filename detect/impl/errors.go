package impl

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned when no image path was given.
var ErrEmptyPath = errors.New("image path is empty")

// RemoteError is returned when the OCR service processed the request but reported a failure
// for the image, e.g. a malformed image or an exhausted quota.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote service error: %s", e.Message)
}

// InputError is returned when the image could not be loaded.
type InputError struct {
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read image %q: %v", e.Path, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// UsageError is returned for commands or arguments the client does not accept.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}
