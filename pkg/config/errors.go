package config

import (
	"errors"
	"fmt"
	"strings"
)

// The error types below form a closed taxonomy. Each carries the origin of
// the failure so every message names the source it came from, and each
// wraps its cause where one exists so errors.Is/errors.As see through to
// the underlying failure (for example fs.ErrNotExist behind an IOError).

// ParseError reports malformed content: tokenizer or grammar failures.
// Unlike stream-acquisition failures it is never downgraded by the
// missing-source fallback.
type ParseError struct {
	Origin  *Origin
	Message string
}

// NewParseError builds a ParseError at origin with a formatted message.
func NewParseError(origin *Origin, format string, args ...any) *ParseError {
	return &ParseError{Origin: origin, Message: fmt.Sprintf(format, args...)}
}

func (e *ParseError) Error() string {
	return e.Origin.Description() + ": " + e.Message
}

// NotFoundError reports that a source's stream could not be acquired: a
// file that cannot be opened, a resource with no resolver, or a not-found
// sentinel source.
type NotFoundError struct {
	// What identifies the missing thing, e.g. "file 'app.conf'".
	What string
	// Message overrides the rendered text when non-empty.
	Message string
	// Err is the underlying cause, if any.
	Err error
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.What + " was not found"
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IOError reports a stream-acquisition failure on the value-parsing path
// when the options do not allow missing sources.
type IOError struct {
	Origin *Origin
	Err    error
}

func (e *IOError) Error() string {
	return e.Origin.Description() + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// LoadError reports a stream-acquisition failure on the document-parsing
// path when the options do not allow missing sources.
type LoadError struct {
	Origin *Origin
	Err    error
}

func (e *LoadError) Error() string {
	return "error loading " + e.Origin.Description() + ": " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// CycleError reports include recursion deeper than the nesting bound. Chain
// holds the description of every source in flight, in push order, so the
// message shows the full include chain.
type CycleError struct {
	Origin *Origin
	Depth  int
	Chain  []string
}

func (e *CycleError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: include statements nested more than %d times, you probably have a cycle in your includes. trace:",
		e.Origin.Description(), e.Depth)
	for _, entry := range e.Chain {
		sb.WriteString("\n\t")
		sb.WriteString(entry)
	}
	return sb.String()
}

// WrongTypeError reports a value of an unexpected shape, such as a list
// where the file root must be an object.
type WrongTypeError struct {
	Origin   *Origin
	Path     string
	Expected string
	Actual   string
}

func (e *WrongTypeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s has type %s rather than %s", e.Origin.Description(), e.Path, e.Actual, e.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %s", e.Origin.Description(), e.Expected, e.Actual)
}

// UnresolvedError reports use of a value that still contains an unresolved
// ${} substitution, or a substitution that cannot be resolved.
type UnresolvedError struct {
	Origin *Origin
	// Path is the referenced substitution path, when one is known.
	Path string
	// Message overrides the rendered text when non-empty.
	Message string
}

func (e *UnresolvedError) Error() string {
	if e.Message != "" {
		return e.Origin.Description() + ": " + e.Message
	}
	return fmt.Sprintf("%s: substitution ${%s} was not resolved", e.Origin.Description(), e.Path)
}

// IsNotFound reports whether err or anything it wraps is a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsCycle reports whether err or anything it wraps is a CycleError.
func IsCycle(err error) bool {
	var target *CycleError
	return errors.As(err, &target)
}

// IsWrongType reports whether err or anything it wraps is a WrongTypeError.
func IsWrongType(err error) bool {
	var target *WrongTypeError
	return errors.As(err, &target)
}
