package domainerr

import (
	"errors"
	"fmt"
	"strings"
)

// Detail is a single key/value pair attached to an Error.
type Detail struct {
	Key   string
	Value any
}

// Error is a domain failure with a message and ordered details.
type Error struct {
	message string
	details []Detail
	cause   error
}

// New creates a domain error with the given message.
func New(message string) *Error {
	return &Error{message: message}
}

// Wrap creates a domain error that wraps cause.
// Returns nil if cause is nil.
func Wrap(cause error, message string) *Error {
	if cause == nil {
		return nil
	}
	return &Error{message: message, cause: cause}
}

// With returns a copy of the error with an extra detail appended.
// Setting an existing key replaces its value in place.
func (e *Error) With(key string, value any) *Error {
	details := make([]Detail, 0, len(e.details)+1)
	replaced := false
	for _, d := range e.details {
		if d.Key == key {
			d.Value = value
			replaced = true
		}
		details = append(details, d)
	}
	if !replaced {
		details = append(details, Detail{Key: key, Value: value})
	}
	return &Error{message: e.message, details: details, cause: e.cause}
}

// Message returns the error message without the cause.
func (e *Error) Message() string {
	return e.message
}

// Details returns a copy of the attached details.
func (e *Error) Details() []Detail {
	out := make([]Detail, len(e.details))
	copy(out, e.details)
	return out
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	return e.message
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

// Format renders err for diagnostic output.
// If err wraps an *Error, the result is "<message> [k1:v1,k2:v2]", or just the
// message when there are no details. Otherwise fallback is returned.
func Format(fallback string, err error) string {
	var de *Error
	if !errors.As(err, &de) {
		return fallback
	}
	if len(de.details) == 0 {
		return de.message
	}

	var b strings.Builder
	b.WriteString(de.message)
	b.WriteString(" [")
	for i, d := range de.details {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, "%s:%v", d.Key, d.Value)
	}
	b.WriteByte(']')
	return b.String()
}
