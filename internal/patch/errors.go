package patch

import (
	"errors"
	"fmt"
)

// ErrEmptyDelta is returned for an empty patch payload.
var ErrEmptyDelta = errors.New("empty delta")

// ErrMalformed is the root of all delta format errors. Every parse and
// apply failure wraps it, so callers can match the whole family with a
// single errors.Is.
var ErrMalformed = errors.New("malformed delta")

var (
	ErrUnknownTag     = fmt.Errorf("%w: unknown line tag", ErrMalformed)
	ErrMissingHeader  = fmt.Errorf("%w: missing ---/+++ file headers", ErrMalformed)
	ErrNoHunks        = fmt.Errorf("%w: no @@ hunks", ErrMalformed)
	ErrMultiFile      = fmt.Errorf("%w: patch spans multiple files", ErrMalformed)
	ErrTargetMismatch = fmt.Errorf("%w: diff targets a different file", ErrMalformed)
	ErrHunkMismatch   = fmt.Errorf("%w: hunk does not match file content", ErrMalformed)
)
