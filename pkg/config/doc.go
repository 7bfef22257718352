// Package config defines the value model, options, and error taxonomy
// shared by every layer of the HOCON library.
//
// # Overview
//
// The config package is the vocabulary of the library: parsed values and
// their origins, the options that steer parsing and rendering, the includer
// contracts that connect include directives back to sources, and the typed
// errors every layer reports. It has no parsing logic of its own; the
// tokenizer, document, parser, and source packages build on it.
//
// # Values
//
// A parse produces a tree of Value nodes. The variant set is closed:
//
//   - Object: key/value map preserving source key order
//   - List: ordered sequence
//   - String, Number, Boolean, Null: scalars
//   - Substitution: an unresolved ${path} or ${?path} reference
//   - Concatenation: a value run still containing substitutions
//
// Values are immutable. Object.WithFallback implements the HOCON merge rule
// (self wins, objects merge recursively) and returns a new object. Every
// value carries an Origin describing the source it came from, e.g.
// "file: app.conf: 12"; origins make error messages and origin comments
// self-explanatory.
//
// # Options
//
// ParseOptions and RenderOptions are copy-on-write value types: With*
// methods return modified copies, so options can be shared freely across
// goroutines. DefaultParseOptions tolerates missing sources (they parse as
// the empty object); WithAllowMissing(false) turns absence into an error.
//
// # Includers
//
// An include directive is resolved by the options' includer chain. Each
// Includer may decline a name by returning (nil, nil); the built-in
// filesystem includer is appended to every chain during option fix-up, so
// some includer always answers.
//
// # Error Handling
//
// Errors form a closed taxonomy, one type per failure kind: ParseError,
// NotFoundError, IOError, LoadError, CycleError, WrongTypeError, and
// UnresolvedError. All carry an Origin and wrap their cause, so callers can
// match with errors.As or the IsNotFound/IsCycle/IsWrongType helpers:
//
//	obj, err := source.ParseFile("app.conf", opts)
//	if config.IsNotFound(err) {
//	    // fall back to defaults
//	}
//
// # Thread Safety
//
// All types in this package are immutable after construction and safe for
// concurrent use.
package config
