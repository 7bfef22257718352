package tokenizer

import "github.com/hoconlabs/hocon/pkg/config"

// Kind classifies a token.
type Kind int

const (
	KindEOF Kind = iota
	KindNewline
	KindWhitespace
	KindComment
	KindOpenCurly
	KindCloseCurly
	KindOpenSquare
	KindCloseSquare
	KindComma
	KindColon
	KindEquals
	KindString
	KindUnquoted
	KindInt
	KindDouble
	KindBool
	KindNull
	KindSubstitution
)

// String renders the kind for error messages.
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "end of file"
	case KindNewline:
		return "newline"
	case KindWhitespace:
		return "whitespace"
	case KindComment:
		return "comment"
	case KindOpenCurly:
		return "'{'"
	case KindCloseCurly:
		return "'}'"
	case KindOpenSquare:
		return "'['"
	case KindCloseSquare:
		return "']'"
	case KindComma:
		return "','"
	case KindColon:
		return "':'"
	case KindEquals:
		return "'='"
	case KindString:
		return "quoted string"
	case KindUnquoted:
		return "unquoted text"
	case KindInt:
		return "integer"
	case KindDouble:
		return "floating-point number"
	case KindBool:
		return "boolean"
	case KindNull:
		return "null"
	case KindSubstitution:
		return "substitution"
	default:
		return "unknown token"
	}
}

// Token is one lexical unit of a source. Text always holds the exact input
// slice the token was read from, quotes and escapes included, so a token
// sequence can reproduce its input byte for byte.
type Token struct {
	Kind   Kind
	Text   string
	Origin *config.Origin

	// Str is the decoded value for KindString and the raw run for
	// KindUnquoted and KindComment (comment text without its marker).
	Str string
	// Int is set for KindInt.
	Int int64
	// Float is set for KindDouble.
	Float float64
	// Bool is set for KindBool.
	Bool bool
	// Path and Optional are set for KindSubstitution.
	Path     string
	Optional bool
}

// IsValue reports whether the token can stand as (part of) a value.
func (t Token) IsValue() bool {
	switch t.Kind {
	case KindString, KindUnquoted, KindInt, KindDouble, KindBool, KindNull, KindSubstitution:
		return true
	default:
		return false
	}
}

// Describe renders the token for error messages, preferring its text.
func (t Token) Describe() string {
	if t.Kind == KindEOF || t.Kind == KindNewline {
		return t.Kind.String()
	}
	if t.Text != "" {
		return "'" + t.Text + "'"
	}
	return t.Kind.String()
}
