package calckit

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the sentinel matched by every precondition failure
// returned from this module. Callers test failures with
// errors.Is(err, calckit.ErrInvalidArgument) without depending on the
// concrete error type.
var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError reports a call rejected before any computation
// started. The error is a deterministic function of the input, so retrying
// with the same input cannot succeed, and the receiver (if the operation
// had one) is left exactly as it was.
type InvalidArgumentError struct {
	// Op names the operation that rejected its input, e.g. "stats.New".
	Op string
	// Reason explains which precondition failed.
	Reason string
}

// Error returns a formatted message describing the rejected call.
//
// Returns:
//   - string: The error message string.
func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

// Is reports whether target is ErrInvalidArgument, hooking the type into
// errors.Is chains.
func (e InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewInvalidArgument creates an InvalidArgumentError for op with the given
// reason.
//
// Parameters:
//   - op: The operation rejecting its input.
//   - reason: The precondition that failed.
//
// Returns:
//   - error: A new InvalidArgumentError instance.
func NewInvalidArgument(op, reason string) error {
	return InvalidArgumentError{Op: op, Reason: reason}
}

// InvalidArgumentf creates an InvalidArgumentError with a formatted reason.
//
// Parameters:
//   - op: The operation rejecting its input.
//   - format: A format string (see fmt.Sprintf).
//   - args: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new InvalidArgumentError instance containing the formatted reason.
func InvalidArgumentf(op, format string, args ...any) error {
	return InvalidArgumentError{Op: op, Reason: fmt.Sprintf(format, args...)}
}
