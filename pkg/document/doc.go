// Package document builds a concrete syntax tree for configuration text.
//
// The tree keeps every token it was parsed from, including whitespace,
// newlines, and comments, so a Document renders back to the exact bytes it
// came from. That fidelity is what lets callers hold a file in memory,
// inspect its structure, and write it back untouched.
//
// # Structure
//
// A Document wraps a root node plus the trivia around it. Nodes form a
// closed set: TokenNode for a single leaf token, FieldNode for a key,
// separator, and value, IncludeNode for an include directive, ObjectNode
// and ArrayNode for containers, and ConcatenationNode for a run of values
// on one line. Every node renders by concatenating its children, so the
// root's Render is the original input.
//
// # Grammars
//
// Parse understands both syntaxes. CONF allows implied braces at root,
// '=' as well as ':' separators, an object directly following its key,
// newline-separated fields, trailing commas, dotted and multi-token keys,
// include directives, and runs of values that concatenate. JSON is strict:
// the root must be an object or array, keys must be quoted strings
// followed by ':', members are comma separated with no trailing comma, and
// every value is a single token.
//
// The parser reports the first problem it finds as a *config.ParseError
// carrying the failing token's origin.
package document
