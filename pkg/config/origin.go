package config

import "strconv"

// Origin records where a value came from: a human-readable description of
// the source plus an optional one-based line number. Origins are immutable
// and shared by reference between the values of one parse.
type Origin struct {
	description string
	line        int
}

// NewOrigin returns an origin with the given description and no line number.
func NewOrigin(description string) *Origin {
	return &Origin{description: description}
}

// WithLineNumber returns a copy of o pointing at the given line.
func (o *Origin) WithLineNumber(line int) *Origin {
	return &Origin{description: o.description, line: line}
}

// LineNumber returns the one-based line the origin points at, or 0 when the
// origin describes a whole source.
func (o *Origin) LineNumber() int {
	return o.line
}

// Description renders the origin for error messages and origin comments.
// The line number is appended when one is known, e.g. "file: app.conf: 12".
func (o *Origin) Description() string {
	if o.line > 0 {
		return o.description + ": " + strconv.Itoa(o.line)
	}
	return o.description
}
