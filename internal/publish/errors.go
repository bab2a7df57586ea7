package publish

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest = errors.New("invalid publish request")
	ErrNoFiles        = fmt.Errorf("%w: no files selected", ErrInvalidRequest)
	ErrNotFound       = errors.New("publish not found")
)

// Error reports a failed publish together with the remote state it left
// behind.
type Error struct {
	Stage    Stage
	Err      error
	Partial  Partial
	Guidance string
}

func (e *Error) Error() string {
	return fmt.Sprintf("publish failed at %s: %s", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
