package config

// ParseOptions bundles the knobs honored while reading a single source.
// ParseOptions is a value type: every With* method returns a modified copy
// and leaves the receiver untouched, so one options value can be shared
// between sources and goroutines without coordination.
//
// The zero value disallows missing sources; callers normally start from
// DefaultParseOptions.
type ParseOptions struct {
	syntax       Syntax
	originDesc   string
	allowMissing bool
	includers    []Includer
}

// DefaultParseOptions returns the options used when the caller expresses no
// preference: syntax resolved per source, missing sources tolerated, and no
// includers beyond the built-in filesystem one appended during fix-up.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{allowMissing: true}
}

// WithSyntax returns a copy that forces the given dialect instead of
// guessing it from the source.
func (o ParseOptions) WithSyntax(s Syntax) ParseOptions {
	o.syntax = s
	return o
}

// Syntax returns the requested dialect, SyntaxUnspecified when the source
// should guess.
func (o ParseOptions) Syntax() Syntax {
	return o.syntax
}

// WithOriginDescription returns a copy whose parsed values report the given
// description instead of the source's own. The empty string restores the
// source's default description.
func (o ParseOptions) WithOriginDescription(desc string) ParseOptions {
	o.originDesc = desc
	return o
}

// OriginDescription returns the description override, or "" when the
// source's own description applies.
func (o ParseOptions) OriginDescription() string {
	return o.originDesc
}

// WithAllowMissing returns a copy that tolerates (allow=true) or rejects
// (allow=false) sources whose stream cannot be acquired. Tolerated sources
// parse as an empty object.
func (o ParseOptions) WithAllowMissing(allow bool) ParseOptions {
	o.allowMissing = allow
	return o
}

// AllowMissing reports whether a source that cannot be opened parses as an
// empty object instead of failing.
func (o ParseOptions) AllowMissing() bool {
	return o.allowMissing
}

// WithIncluders returns a copy whose includer chain is exactly the given
// includers, consulted in order.
func (o ParseOptions) WithIncluders(includers ...Includer) ParseOptions {
	o.includers = append([]Includer(nil), includers...)
	return o
}

// AppendIncluder returns a copy whose chain falls back to inc after every
// existing includer has declined.
func (o ParseOptions) AppendIncluder(inc Includer) ParseOptions {
	chain := make([]Includer, 0, len(o.includers)+1)
	chain = append(chain, o.includers...)
	chain = append(chain, inc)
	o.includers = chain
	return o
}

// Includers returns a copy of the registered chain, in consultation order.
func (o ParseOptions) Includers() []Includer {
	return append([]Includer(nil), o.includers...)
}

// Includer returns the whole chain as a single includer: each registered
// includer is consulted in order and the first non-nil result wins.
func (o ParseOptions) Includer() Includer {
	return includerChain(append([]Includer(nil), o.includers...))
}
