// Package apperr defines the error type shared by tally packages
package apperr

import (
	"errors"
	"fmt"
)

// Error is an application error with a user-facing message and an optional
// underlying cause.
type Error struct {
	Cause   error
	Message string
	// template is the unformatted message of the sentinel this error was
	// derived from.
	template string
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}

	return e.Message + ": " + e.Cause.Error()
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.tmpl(),
	}
}

// Wrap returns a copy of the error with err as its cause.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    err,
		template: e.tmpl(),
	}
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) tmpl() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

// Is reports whether target is an *Error derived from the same sentinel. This
// lets errors.Is match copies produced by Fmt and Wrap.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}

	return t.tmpl() == e.tmpl()
}
