// Package serrors provides semantic errors: sentinel kinds describing the
// category of a failure, plus a wrapper type that carries a kind, an optional
// cause and an optional message while staying compatible with errors.Is/As.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by the sentinel error categories
// created with NewKind.
type Kind interface {
	error
	isKind()
}

// kind is the unexported sentinel implementation behind Kind.
type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind with the given name. Kinds are
// comparable sentinels usable with errors.Is/As through the Error wrapper.
func NewKind(name string) Kind { return kind{s: name} }

// Kinds covering the failure taxonomy of this service.
var (
	// ErrNotFound indicates a required entity is missing from the store.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrBadRequest indicates malformed input, such as an email without '@'.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a state conflict with a concurrent operation.
	ErrConflict = NewKind("CONFLICT")
	// ErrInvariant indicates an aggregate invariant would be violated, e.g.
	// the employee counter going negative.
	ErrInvariant = NewKind("INVARIANT_VIOLATION")
	// ErrPrecondition indicates a caller skipped a mandatory check before a
	// mutation. This is a programmer error, not a business outcome.
	ErrPrecondition = NewKind("PRECONDITION_FAILED")
	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = NewKind("INTERNAL")
)

// Error is a semantic error: a kind sentinel, an optional wrapped cause and an
// optional message.
//
// Matching semantics: errors.Is/As match against both the kind sentinel and
// the wrapped cause chain.
//
// Error string: "<msg>: <cause>" when both are set, otherwise whichever is
// present, falling back to the kind's name.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a semantic error with the given kind and a formatted
// message. Use Wrap to also record a concrete cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a semantic error with the given kind, wrapping err as the
// cause and attaching a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying just the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap exposes the wrapped cause to errors.Unwrap/Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is matches target against the kind sentinel or the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches target against the kind sentinel or the wrapped cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the semantic kind of this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause, which may be nil.
func (e *Error) Cause() error { return e.err }
