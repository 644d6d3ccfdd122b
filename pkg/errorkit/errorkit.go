// Package errorkit holds the error helpers shared by the rangekit packages.
//
// Sentinel errors are declared as constants:
//
//	const ErrBucketNotFound errorkit.Error = "bucket not found"
//
// and detail is attached with Wrap or F, without losing errors.Is matching on either side.
package errorkit

import (
	"errors"
	"fmt"
)

// Error is a string based error, so it can be declared as a constant.
type Error string

func (err Error) Error() string { return string(err) }

// Wrap bundles the cause with the constant error.
// Both stay reachable through errors.Is and errors.As.
func (err Error) Wrap(cause error) error {
	if cause == nil {
		return err
	}
	return wrapped{Kind: err, Cause: cause}
}

// F wraps a formatted cause.
func (err Error) F(format string, a ...any) error {
	return err.Wrap(fmt.Errorf(format, a...))
}

type wrapped struct {
	Kind  Error
	Cause error
}

func (w wrapped) Error() string {
	return fmt.Sprintf("[%s] %s", w.Kind, w.Cause.Error())
}

func (w wrapped) Is(target error) bool {
	return errors.Is(w.Kind, target) || errors.Is(w.Cause, target)
}

func (w wrapped) As(target any) bool {
	return errors.As(w.Kind, target) || errors.As(w.Cause, target)
}

func (w wrapped) Unwrap() error { return w.Cause }
