package config

import "path/filepath"

// Syntax identifies the dialect a source is written in.
type Syntax string

const (
	// SyntaxUnspecified means no dialect was chosen. Parsing resolves it
	// per source: file-extension guess first, then SyntaxConf.
	SyntaxUnspecified Syntax = ""

	// SyntaxConf is the HOCON dialect: a superset of JSON with unquoted
	// keys, comments, include directives, and ${} substitutions.
	SyntaxConf Syntax = "conf"

	// SyntaxJSON restricts parsing to plain JSON.
	SyntaxJSON Syntax = "json"
)

// SyntaxFromExtension guesses a dialect from a file name: ".conf" and
// ".json" map to their dialects, anything else to SyntaxUnspecified.
func SyntaxFromExtension(name string) Syntax {
	switch filepath.Ext(name) {
	case ".json":
		return SyntaxJSON
	case ".conf":
		return SyntaxConf
	default:
		return SyntaxUnspecified
	}
}
