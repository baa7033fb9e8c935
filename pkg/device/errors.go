package device

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates a device was not found
	ErrNotFound = errors.New("device not found")

	// ErrAppNotFound indicates no installed app matched the requested identifier
	ErrAppNotFound = errors.New("app not found")

	// ErrInvalidButton indicates the device has no mapping for a button
	ErrInvalidButton = errors.New("invalid button")

	// ErrInvalidInput indicates the device has no mapping for an input
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicate indicates a device with the same name is already registered
	ErrDuplicate = errors.New("device already exists")

	// ErrTimeout indicates an operation timed out
	ErrTimeout = errors.New("operation timed out")

	// ErrTransport indicates a device request failed on the network or the
	// device answered with an error status
	ErrTransport = errors.New("device request failed")

	// ErrNotConnected indicates the device cannot be reached
	ErrNotConnected = errors.New("device not connected")

	// ErrUnsupported indicates an operation is not supported by the device
	ErrUnsupported = errors.New("operation not supported")

	// ErrValidation indicates a configuration payload failed schema validation
	ErrValidation = errors.New("validation error")
)

// AmbiguousMatchError is returned when an app identifier matches more than
// one installed app.
type AmbiguousMatchError struct {
	Token string
	Count int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("too many matches for %q: expected 0 or 1, found %d", e.Token, e.Count)
}
