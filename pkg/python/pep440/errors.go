// Copyright (C) 2022  Ambassador Labs
//
// SPDX-License-Identifier: Apache-2.0

package pep440

import (
	"errors"
	"fmt"
)

// ErrMalformed is matched (via errors.Is) by every error returned from ParseVersion.
var ErrMalformed = errors.New("malformed version")

// ParseError is the error type returned (wrapped) by ParseVersion.  Use errors.As to get at it.
type ParseError struct {
	// Input is the text exactly as it was passed to ParseVersion.
	Input string
	// Reason is a short human-readable description of what is wrong; it may be empty if Err
	// says everything there is to say.
	Reason string
	// Err is the underlying error (for example from strconv), if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid version %q", e.Input)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements the interface used by errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed //nolint:errorlint
}
