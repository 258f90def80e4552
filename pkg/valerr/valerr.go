// Package valerr marks user-input failures crossing the usecase boundary so
// the HTTP adapter can render them as form errors instead of faults.
package valerr

import "errors"

type Error struct{ msg string }

func New(msg string) *Error { return &Error{msg: msg} }

func (e *Error) Error() string { return e.msg }

// Is reports whether err is (or wraps) a validation error.
func Is(err error) bool {
	var v *Error
	return errors.As(err, &v)
}
