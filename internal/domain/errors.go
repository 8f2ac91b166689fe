package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientAvailability is returned by the hold-commit path when the
// requested quantity no longer fits the window at commit time.
var ErrInsufficientAvailability = errors.New("insufficient availability for requested window")

// NotFoundError reports a referenced entity that does not exist. Callers
// translate it to a 4xx-class response; it is never retried internally.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// InvalidRangeError reports an invalid request interval or quantity.
// The caller must fix the input before retrying.
type InvalidRangeError struct {
	Reason string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: %s", e.Reason)
}

func NewInvalidRangeError(reason string) *InvalidRangeError {
	return &InvalidRangeError{Reason: reason}
}

// IsInvalidRange reports whether err is (or wraps) an InvalidRangeError.
func IsInvalidRange(err error) bool {
	var ir *InvalidRangeError
	return errors.As(err, &ir)
}
