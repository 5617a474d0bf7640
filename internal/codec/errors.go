// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package codec

import (
	"errors"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// ErrWrongPassword is returned when a document cannot be opened with the
// password given (or without one, for an encrypted document).
var ErrWrongPassword = errors.New("wrong password")

// Error is a codec failure. Op names the operation ("open", "merge", ...)
// and Msg is a message fit for the user; Err is the underlying cause.
type Error struct {
	Op  string
	Msg string
	Err error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed: %s", e.Op, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// wrap converts an error from the underlying library into an *Error.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pdfcpu.ErrWrongPassword) || errors.Is(err, ErrWrongPassword) {
		return &Error{Op: op, Msg: "the password is not correct", Err: ErrWrongPassword}
	}
	return &Error{Op: op, Err: err}
}
