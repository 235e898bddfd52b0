package streams

import (
	"errors"
	"fmt"
)

// Failure carries an error raised by a user function together with the
// element that produced it, so the failure can travel through the stream as
// data instead of aborting it immediately. Failures are produced by the Keep
// error policy on evaluation stages and consumed by the Exc stages; any
// other stage that encounters one re-raises the original error.
type Failure struct {
	Err error
	Val any
}

// Error implements the error interface
func (f *Failure) Error() string {
	return fmt.Sprintf("deferred failure on element %v: %v", f.Val, f.Err)
}

// Unwrap exposes the captured error to errors.Is and errors.As.
func (f *Failure) Unwrap() error {
	return f.Err
}

// MatchErr returns a matcher for Exc stages that selects failures whose
// captured error matches target per errors.Is.
func MatchErr(target error) func(error) bool {
	return func(err error) bool {
		return errors.Is(err, target)
	}
}

// MatchAny returns a matcher that selects every failure.
func MatchAny() func(error) bool {
	return func(error) bool { return true }
}
