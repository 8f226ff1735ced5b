package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRuntime Category = "runtime"
	CategoryConfig  Category = "config"
	CategoryRouting Category = "routing"
	CategoryPublish Category = "publish"
	CategoryCLI     Category = "cli"
)

// Location represents a source location, usually inside a config file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Line == 0 {
		return l.File
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Error is a structured error with a code, suggestion and documentation link.
type Error struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (runtime, config, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is where the error occurred, if known.
	Location *Location

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is matches another *Error with the same code, so callers can test
// errors.Is(err, errors.New("E001")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code != "" && t.Code == e.Code
}

// WithLocation adds a source location to the error.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *Error) WithSuggestion(s string) *Error {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation of the error.
func (e *Error) WithDetail(d string) *Error {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new Error with a formatted message (no code).
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error. An error that already is
// (or wraps) an *Error is returned as that *Error.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	var be *Error
	if stderrors.As(err, &be) {
		return be
	}
	return New(code).Wrap(err)
}

// HasCode reports whether err is or wraps an *Error with the given code.
func HasCode(err error, code string) bool {
	var be *Error
	for err != nil {
		if !stderrors.As(err, &be) {
			return false
		}
		if be.Code == code {
			return true
		}
		err = be.Wrapped
	}
	return false
}
