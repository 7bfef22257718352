// Package tokenizer performs lexical analysis of HOCON and JSON text.
//
// A Tokenizer wraps an io.Reader and yields tokens one at a time through
// Next. The stream is finite and one-shot: it ends with a KindEOF token and
// cannot be rewound. Beyond the JSON token set the CONF dialect adds
// comments (# and //), unquoted text, triple-quoted multiline strings,
// '=' as a key separator, and ${path} / ${?path} substitution references;
// with SyntaxJSON those extensions are rejected.
//
// Two properties matter to the packages downstream:
//
//   - Fidelity: every token records the exact input text it was read from,
//     so the document package can reproduce a source byte for byte.
//   - Provenance: every token carries a line-numbered origin, so parse
//     errors and origin comments point at the right line.
//
// Malformed input surfaces as a config.ParseError and the tokenizer stops;
// the error names the origin and line of the offending text.
package tokenizer
