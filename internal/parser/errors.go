package parser

import (
	"errors"
	"fmt"
)

// UnsupportedFormatError is returned when no registered parser has the
// requested filter.
type UnsupportedFormatError struct {
	Filter string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q\nHint: the filter must equal one of the registry's supported formats exactly", e.Filter)
}

// Is checks if this error matches another UnsupportedFormatError.
func (e *UnsupportedFormatError) Is(target error) bool {
	_, ok := target.(*UnsupportedFormatError)
	return ok
}

// UnreadableError represents a file that could not be opened or read:
// missing, a directory, permission denied, too large, or an I/O failure.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	if e.Err == nil {
		return "cannot read " + e.Path
	}
	return "cannot read " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying I/O error.
func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Is checks if this error matches another UnreadableError.
func (e *UnreadableError) Is(target error) bool {
	_, ok := target.(*UnreadableError)
	return ok
}

// MalformedError represents a readable file whose content violates the
// expected structure of its format.
type MalformedError struct {
	Path string
	Err  error
}

// NewMalformedError creates a new MalformedError.
func NewMalformedError(path string, err error) *MalformedError {
	return &MalformedError{Path: path, Err: err}
}

func (e *MalformedError) Error() string {
	if e.Err == nil {
		return "malformed content in " + e.Path
	}
	return "malformed content in " + e.Path + ": " + e.Err.Error()
}

// Unwrap returns the underlying syntax or validation error.
func (e *MalformedError) Unwrap() error {
	return e.Err
}

// Is checks if this error matches another MalformedError.
func (e *MalformedError) Is(target error) bool {
	_, ok := target.(*MalformedError)
	return ok
}

// DuplicateFilterError is returned by NewRegistry under DuplicateStrict when
// two parsers share a filter.
type DuplicateFilterError struct {
	Filter string
	// First and Second are registration indexes.
	First  int
	Second int
}

func (e *DuplicateFilterError) Error() string {
	return fmt.Sprintf(
		"filter %q registered twice (positions %d and %d)\nHint: give each parser a distinct label or extension",
		e.Filter, e.First, e.Second,
	)
}

// LoadError wraps any failure crossing the registry boundary with the
// filter and path of the request.
type LoadError struct {
	Filter string
	Path   string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("could not load %s as %q: %v", e.Path, e.Filter, e.Err)
}

// Unwrap returns the parser's or registry's error.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// ErrorKind is the cause of a failed load, collapsed to the three outcomes
// callers can act on.
type ErrorKind int

const (
	// KindNone means the load succeeded.
	KindNone ErrorKind = iota
	// KindUnsupported means no parser matched the filter.
	KindUnsupported
	// KindUnreadable means the file could not be opened or read.
	KindUnreadable
	// KindMalformed means the file content was rejected.
	KindMalformed
	// KindUnknown covers errors outside the taxonomy.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUnsupported:
		return "unsupported"
	case KindUnreadable:
		return "unreadable"
	case KindMalformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Kind classifies err. Any non-nil error is a failure, whatever its kind.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, &UnsupportedFormatError{}):
		return KindUnsupported
	case errors.Is(err, &UnreadableError{}):
		return KindUnreadable
	case errors.Is(err, &MalformedError{}):
		return KindMalformed
	default:
		return KindUnknown
	}
}
