// Package apperr defines the error kinds surfaced by the settlement and vote
// services. Every error carries a message naming the entity or constraint that
// was violated; callers classify it with errors.Is against the sentinel kinds.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
)

// Error is a classified error. Error() returns only the message; the kind is
// reachable through errors.Is.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func newf(kind error, format string, args ...any) error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) error {
	return newf(ErrNotFound, format, args...)
}

func AccessDenied(format string, args ...any) error {
	return newf(ErrAccessDenied, format, args...)
}

func Conflict(format string, args ...any) error {
	return newf(ErrConflict, format, args...)
}

func Validation(format string, args ...any) error {
	return newf(ErrValidation, format, args...)
}

// KindOf returns the sentinel kind of err, or nil if err is unclassified.
func KindOf(err error) error {
	for _, kind := range []error{ErrNotFound, ErrAccessDenied, ErrConflict, ErrValidation} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
