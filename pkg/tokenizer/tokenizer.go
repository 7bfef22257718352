package tokenizer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/hoconlabs/hocon/pkg/config"
)

// forbiddenInUnquoted are the characters that end an unquoted text run.
// They either carry structure or are reserved by the HOCON grammar.
const forbiddenInUnquoted = "$\"{}[]:=,+#`^?!@*&\\"

// Tokenizer turns a character stream into a lazy, one-shot token sequence.
// Call Next until it returns a KindEOF token; after an error every
// subsequent call returns the same error.
type Tokenizer struct {
	origin *config.Origin
	r      *bufio.Reader
	syntax config.Syntax

	line    int
	cur     rune
	eof     bool
	readErr error
	failure error

	raw strings.Builder
}

// New builds a tokenizer reading from r. The origin stamps every token and
// error with its source; syntax enables the CONF extensions (comments,
// substitutions, unquoted text, '=') or rejects them for SyntaxJSON.
func New(origin *config.Origin, r io.Reader, syntax config.Syntax) *Tokenizer {
	t := &Tokenizer{origin: origin, r: bufio.NewReader(r), syntax: syntax, line: 1}
	t.advance()
	return t
}

// advance loads the next rune into cur.
func (t *Tokenizer) advance() {
	ch, _, err := t.r.ReadRune()
	if err != nil {
		t.eof = true
		t.cur = 0
		if err != io.EOF {
			t.readErr = err
		}
		return
	}
	t.cur = ch
}

// take consumes the current rune into the token text.
func (t *Tokenizer) take() {
	t.raw.WriteRune(t.cur)
	if t.cur == '\n' {
		t.line++
	}
	t.advance()
}

// peek looks one rune past cur without consuming anything.
func (t *Tokenizer) peek() rune {
	b, _ := t.r.Peek(utf8.UTFMax)
	if len(b) == 0 {
		return 0
	}
	ch, _ := utf8.DecodeRune(b)
	return ch
}

func (t *Tokenizer) originAt(line int) *config.Origin {
	return t.origin.WithLineNumber(line)
}

// fail records and returns a ParseError at the given line. The error is
// sticky: the tokenizer refuses to continue past malformed input.
func (t *Tokenizer) fail(line int, format string, args ...any) error {
	t.failure = config.NewParseError(t.originAt(line), format, args...)
	return t.failure
}

// Next returns the next token. The final token has KindEOF; calling Next
// again after that keeps returning KindEOF.
func (t *Tokenizer) Next() (Token, error) {
	if t.failure != nil {
		return Token{}, t.failure
	}
	if t.readErr != nil {
		// A failing stream is an I/O problem, not malformed input, so it
		// keeps its own error kind and stays eligible for the
		// missing-source fallback.
		t.failure = &config.IOError{Origin: t.originAt(t.line), Err: t.readErr}
		return Token{}, t.failure
	}
	if t.eof {
		return Token{Kind: KindEOF, Origin: t.originAt(t.line)}, nil
	}

	line := t.line
	t.raw.Reset()

	switch {
	case t.cur == '\n':
		t.take()
		return t.token(KindNewline, line), nil
	case isInlineSpace(t.cur):
		for !t.eof && isInlineSpace(t.cur) {
			t.take()
		}
		return t.token(KindWhitespace, line), nil
	case t.cur == '{':
		t.take()
		return t.token(KindOpenCurly, line), nil
	case t.cur == '}':
		t.take()
		return t.token(KindCloseCurly, line), nil
	case t.cur == '[':
		t.take()
		return t.token(KindOpenSquare, line), nil
	case t.cur == ']':
		t.take()
		return t.token(KindCloseSquare, line), nil
	case t.cur == ',':
		t.take()
		return t.token(KindComma, line), nil
	case t.cur == ':':
		t.take()
		return t.token(KindColon, line), nil
	case t.cur == '=':
		if t.syntax == config.SyntaxJSON {
			return Token{}, t.fail(line, "'=' is not allowed in JSON, use ':'")
		}
		t.take()
		return t.token(KindEquals, line), nil
	case t.cur == '#':
		return t.scanComment(line)
	case t.cur == '/' && t.peek() == '/':
		return t.scanComment(line)
	case t.cur == '"':
		return t.scanString(line)
	case t.cur == '$':
		return t.scanSubstitution(line)
	case t.cur == '-' || isDigit(t.cur):
		return t.scanNumber(line)
	case isUnquotedChar(t.cur, t.peek()):
		return t.scanUnquoted(line)
	default:
		return Token{}, t.fail(line, "reserved character %q is not allowed outside quoted strings", t.cur)
	}
}

// All drains the tokenizer into a slice ending with the KindEOF token.
func (t *Tokenizer) All() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := t.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens, nil
		}
	}
}

func (t *Tokenizer) token(kind Kind, line int) Token {
	return Token{Kind: kind, Text: t.raw.String(), Origin: t.originAt(line)}
}

// scanComment consumes "# ..." or "// ..." up to but not including the
// terminating newline.
func (t *Tokenizer) scanComment(line int) (Token, error) {
	if t.syntax == config.SyntaxJSON {
		return Token{}, t.fail(line, "comments are not allowed in JSON")
	}
	markerLen := 1
	t.take()
	if t.cur == '/' && t.raw.String() == "/" {
		markerLen = 2
		t.take()
	}
	for !t.eof && t.cur != '\n' {
		t.take()
	}
	tok := t.token(KindComment, line)
	tok.Str = tok.Text[markerLen:]
	return tok, nil
}

// scanString consumes a quoted string: the standard JSON form with escapes,
// or the CONF triple-quoted form in which everything up to the next """ is
// taken verbatim.
func (t *Tokenizer) scanString(line int) (Token, error) {
	t.take()
	if t.syntax != config.SyntaxJSON && t.cur == '"' && t.peek() == '"' {
		t.take()
		t.take()
		return t.scanTripleQuoted(line)
	}

	var decoded strings.Builder
	for {
		if t.eof {
			return Token{}, t.fail(line, "quoted string was never closed")
		}
		switch t.cur {
		case '"':
			t.take()
			tok := t.token(KindString, line)
			tok.Str = decoded.String()
			return tok, nil
		case '\n':
			return Token{}, t.fail(line, "quoted string cannot span lines, use triple-quoted strings")
		case '\\':
			t.take()
			if err := t.scanEscape(&decoded, line); err != nil {
				return Token{}, err
			}
		default:
			decoded.WriteRune(t.cur)
			t.take()
		}
	}
}

// scanEscape decodes one backslash escape, cur being the character after
// the backslash.
func (t *Tokenizer) scanEscape(decoded *strings.Builder, line int) error {
	if t.eof {
		return t.fail(line, "quoted string was never closed")
	}
	ch := t.cur
	t.take()
	switch ch {
	case '"':
		decoded.WriteByte('"')
	case '\\':
		decoded.WriteByte('\\')
	case '/':
		decoded.WriteByte('/')
	case 'b':
		decoded.WriteByte('\b')
	case 'f':
		decoded.WriteByte('\f')
	case 'n':
		decoded.WriteByte('\n')
	case 'r':
		decoded.WriteByte('\r')
	case 't':
		decoded.WriteByte('\t')
	case 'u':
		first, err := t.scanHex4(line)
		if err != nil {
			return err
		}
		if utf16.IsSurrogate(first) && !t.eof && t.cur == '\\' && t.peek() == 'u' {
			t.take()
			t.take()
			second, err := t.scanHex4(line)
			if err != nil {
				return err
			}
			decoded.WriteRune(utf16.DecodeRune(first, second))
			return nil
		}
		decoded.WriteRune(first)
	default:
		return t.fail(line, "invalid escape character %q in quoted string", ch)
	}
	return nil
}

func (t *Tokenizer) scanHex4(line int) (rune, error) {
	var value rune
	for i := 0; i < 4; i++ {
		if t.eof {
			return 0, t.fail(line, "\\u escape needs four hex digits")
		}
		d := hexDigit(t.cur)
		if d < 0 {
			return 0, t.fail(line, "invalid hex digit %q in \\u escape", t.cur)
		}
		value = value<<4 | rune(d)
		t.take()
	}
	return value, nil
}

// scanTripleQuoted consumes everything up to the next """ verbatim,
// newlines included. The opening quotes have already been consumed.
func (t *Tokenizer) scanTripleQuoted(line int) (Token, error) {
	var decoded strings.Builder
	quotes := 0
	for {
		if t.eof {
			return Token{}, t.fail(line, "triple-quoted string was never closed")
		}
		if t.cur == '"' {
			quotes++
			t.take()
			if quotes == 3 {
				tok := t.token(KindString, line)
				tok.Str = decoded.String()
				return tok, nil
			}
			continue
		}
		for i := 0; i < quotes; i++ {
			decoded.WriteByte('"')
		}
		quotes = 0
		decoded.WriteRune(t.cur)
		t.take()
	}
}

// scanSubstitution consumes ${path} or ${?path}.
func (t *Tokenizer) scanSubstitution(line int) (Token, error) {
	if t.syntax == config.SyntaxJSON {
		return Token{}, t.fail(line, "substitutions are not allowed in JSON")
	}
	t.take()
	if t.eof || t.cur != '{' {
		return Token{}, t.fail(line, "'$' not followed by '{'")
	}
	t.take()
	optional := false
	if t.cur == '?' {
		optional = true
		t.take()
	}
	var path strings.Builder
	for {
		if t.eof || t.cur == '\n' {
			return Token{}, t.fail(line, "substitution '${' was never closed with '}'")
		}
		if t.cur == '}' {
			t.take()
			break
		}
		path.WriteRune(t.cur)
		t.take()
	}
	ref := strings.TrimSpace(path.String())
	if ref == "" {
		return Token{}, t.fail(line, "substitution has an empty path")
	}
	tok := t.token(KindSubstitution, line)
	tok.Path = ref
	tok.Optional = optional
	return tok, nil
}

// scanNumber greedily consumes number-shaped characters and then decides:
// an integer, a double, or (in CONF) the start of an unquoted text run when
// the result does not actually parse as a number.
func (t *Tokenizer) scanNumber(line int) (Token, error) {
	sawDotOrExp := false
	for !t.eof && strings.ContainsRune("0123456789eE+-.", t.cur) {
		if t.cur == '.' || t.cur == 'e' || t.cur == 'E' {
			sawDotOrExp = true
		}
		t.take()
	}
	text := t.raw.String()

	if !sawDotOrExp {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			tok := t.token(KindInt, line)
			tok.Int = v
			return tok, nil
		}
	}
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		tok := t.token(KindDouble, line)
		tok.Float = v
		return tok, nil
	}

	if t.syntax == config.SyntaxJSON {
		return Token{}, t.fail(line, "invalid number %q", text)
	}
	if i := strings.IndexAny(text, "+"); i >= 0 {
		return Token{}, t.fail(line, "reserved character '+' is not allowed outside quoted strings")
	}
	return t.scanUnquoted(line)
}

// scanUnquoted consumes an unquoted text run, continuing whatever is
// already in the token buffer. Runs spelling true, false, or null become
// typed literal tokens.
func (t *Tokenizer) scanUnquoted(line int) (Token, error) {
	for !t.eof && isUnquotedChar(t.cur, t.peek()) {
		t.take()
	}
	text := t.raw.String()
	switch text {
	case "true", "false":
		tok := t.token(KindBool, line)
		tok.Bool = text == "true"
		return tok, nil
	case "null":
		return t.token(KindNull, line), nil
	}
	if t.syntax == config.SyntaxJSON {
		return Token{}, t.fail(line, "unquoted text %q is not allowed in JSON", text)
	}
	tok := t.token(KindUnquoted, line)
	tok.Str = text
	return tok, nil
}

// isUnquotedChar reports whether ch can appear in an unquoted text run.
// next is needed for '/', which is fine alone but starts a comment when
// doubled.
func isUnquotedChar(ch, next rune) bool {
	if ch == '/' {
		return next != '/'
	}
	if isInlineSpace(ch) || ch == '\n' {
		return false
	}
	return !strings.ContainsRune(forbiddenInUnquoted, ch)
}

// isInlineSpace matches whitespace other than newline, which is a token of
// its own because it separates fields in CONF.
func isInlineSpace(ch rune) bool {
	return ch != '\n' && (ch == ' ' || ch == '\t' || ch == '\r' || unicode.IsSpace(ch))
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func hexDigit(ch rune) int {
	switch {
	case ch >= '0' && ch <= '9':
		return int(ch - '0')
	case ch >= 'a' && ch <= 'f':
		return int(ch-'a') + 10
	case ch >= 'A' && ch <= 'F':
		return int(ch-'A') + 10
	default:
		return -1
	}
}
