// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package uibridge

import (
	"errors"
	"fmt"
)

// Error kinds. Concrete failures wrap one of these and can be matched with
// errors.Is.
var (
	// ErrSurfaceCreation means the window cannot produce a drawable target
	// right now: zero-sized, destroyed, or refused by the platform.
	// Recoverable: retry on the next cycle.
	ErrSurfaceCreation = errors.New("uibridge: surface creation failed")

	// ErrSurfaceLost means a previously valid surface was invalidated.
	// The surface must be ensured again before the next acquire.
	ErrSurfaceLost = errors.New("uibridge: surface lost")

	// ErrNoDevice means no GPU adapter or device could be obtained at setup.
	// This is the only fatal error.
	ErrNoDevice = errors.New("uibridge: no GPU device available")

	// ErrDisposed is returned by operations on a disposed adapter or binder.
	ErrDisposed = errors.New("uibridge: disposed")
)

// SurfaceError describes a surface operation that failed.
//
// It matches its Kind (one of the Err* sentinels) and its underlying cause
// with errors.Is and errors.As.
type SurfaceError struct {
	Op      string // "ensure", "acquire", "present", "create"
	Backend string // backend name, may be empty
	Kind    error  // ErrSurfaceCreation, ErrSurfaceLost, ErrNoDevice
	Err     error  // underlying cause, may be nil
}

// NewSurfaceError returns a *SurfaceError.
func NewSurfaceError(op, backend string, kind, err error) *SurfaceError {
	return &SurfaceError{Op: op, Backend: backend, Kind: kind, Err: err}
}

func (e *SurfaceError) Error() string {
	msg := e.Kind.Error()
	if e.Backend != "" {
		msg = fmt.Sprintf("%s (%s %s)", msg, e.Backend, e.Op)
	} else if e.Op != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Op)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the kind and the cause.
func (e *SurfaceError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// IsRecoverable reports whether err is a surface failure that should skip
// the current frame rather than abort. ErrNoDevice and unrelated errors are
// not recoverable.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrSurfaceCreation) || errors.Is(err, ErrSurfaceLost)
}
