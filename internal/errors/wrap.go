package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// The helpers below re-export github.com/cockroachdb/errors so the rest of
// the module imports a single errors package.

// New returns an error with the given message and a stack trace.
func New(msg string) error { return crdb.New(msg) }

// Newf returns a formatted error with a stack trace.
func Newf(format string, args ...any) error { return crdb.Newf(format, args...) }

// Wrap annotates err with msg. Wrap returns nil when err is nil.
func Wrap(err error, msg string) error { return crdb.Wrap(err, msg) }

// Wrapf annotates err with a formatted message. Wrapf returns nil when err is nil.
func Wrapf(err error, format string, args ...any) error { return crdb.Wrapf(err, format, args...) }

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return crdb.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return crdb.As(err, target) }

// WithHint decorates err with a user-facing hint.
func WithHint(err error, hint string) error { return crdb.WithHint(err, hint) }

// FlattenHints returns the hints attached anywhere in err's chain.
func FlattenHints(err error) string { return crdb.FlattenHints(err) }

// Mark makes err match reference with Is without changing its message.
func Mark(err, reference error) error { return crdb.Mark(err, reference) }
