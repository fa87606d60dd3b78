// Package svc holds the cross-cutting services shared by every other
// package in this module: the error taxonomy, critical-section helpers,
// reference counting, and the startup configuration struct. Nothing here
// is specific to ROIs, LODs, or the action pipeline — it is the plumbing
// those packages are built on.
package svc

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why an operation failed, matching the taxonomy used
// throughout the renderer, stream, and view layers.
type Kind int

const (
	// InvalidParameters is raised by frustum construction, matrix
	// inversion, or LOD selection given malformed inputs.
	InvalidParameters Kind = iota
	// ResourceAllocation is raised when a renderer or stream resource
	// cannot be acquired.
	ResourceAllocation
	// NotFound is raised by cache or ROI lookups that fail by name.
	NotFound
	// StreamExhausted is raised when a stream provider has no more
	// chunks to deliver.
	StreamExhausted
	// Cancelled marks a disk action that was cancelled before delivery.
	Cancelled
	// DeviceLost is raised by the renderer when its device becomes
	// unusable and must be recreated.
	DeviceLost
)

// String names a Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case InvalidParameters:
		return "InvalidParameters"
	case ResourceAllocation:
		return "ResourceAllocation"
	case NotFound:
		return "NotFound"
	case StreamExhausted:
		return "StreamExhausted"
	case Cancelled:
		return "Cancelled"
	case DeviceLost:
		return "DeviceLost"
	default:
		return "Unknown"
	}
}

// Error is the single error type every component returns. It carries a
// Kind so callers can branch on failure policy (§7's table) without
// parsing strings, and wraps an underlying cause via pkg/errors so the
// chain survives crossing component boundaries.
type Error struct {
	Kind  Kind
	cause error
}

// NewError builds an Error of the given kind from a format string.
func NewError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, cause: fmt.Errorf(format, args...)}
}

// Wrap attaches kind to an existing error, preserving its cause chain.
// Returns nil if err is nil.
func Wrap(err error, kind Kind, msg string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, cause: errors.Wrap(err, msg)}
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Kind, e.cause) }

// Unwrap exposes the wrapped cause to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.cause }

// Cause returns the innermost error in the chain, as pkg/errors defines it.
func (e *Error) Cause() error { return errors.Cause(e.cause) }

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	se, ok := err.(*Error)
	return ok && se.Kind == kind
}

// Result is the uniform return shape called for in design note §9:
// "uniformly use a Result<T, Error> return everywhere". Ok is valid only
// when Err is nil.
type Result[T any] struct {
	Ok  T
	Err *Error
}

// Success wraps a value as a successful Result.
func Success[T any](v T) Result[T] { return Result[T]{Ok: v} }

// Failure wraps an Error as a failed Result.
func Failure[T any](err *Error) Result[T] { return Result[T]{Err: err} }

// Failed reports whether the result carries an error.
func (r Result[T]) Failed() bool { return r.Err != nil }
