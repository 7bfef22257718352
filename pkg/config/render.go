package config

// RenderOptions controls how parsed values are written back out as text.
// Like ParseOptions it is a copy-on-write value type. The zero value
// renders compact HOCON with no comments.
//
// Parsed values do not retain the comments of their source text (the
// document tree does), so Comments only controls whether synthesized
// comments such as origin comments may appear at all.
type RenderOptions struct {
	originComments bool
	comments       bool
	formatted      bool
	json           bool
}

// DefaultRenderOptions enables everything: formatted JSON output with a
// provenance comment above each field.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{originComments: true, comments: true, formatted: true, json: true}
}

// ConciseRenderOptions renders single-line valid JSON with no comments.
func ConciseRenderOptions() RenderOptions {
	return RenderOptions{json: true}
}

// WithOriginComments returns a copy that emits (or suppresses) a comment
// above each field naming the origin of its value. Origin comments only
// appear in formatted output.
func (o RenderOptions) WithOriginComments(on bool) RenderOptions {
	o.originComments = on
	return o
}

// OriginComments reports whether origin comments are emitted.
func (o RenderOptions) OriginComments() bool {
	return o.originComments
}

// WithComments returns a copy that allows (or suppresses) comments of any
// kind in the output.
func (o RenderOptions) WithComments(on bool) RenderOptions {
	o.comments = on
	return o
}

// Comments reports whether comments may appear in the output.
func (o RenderOptions) Comments() bool {
	return o.comments
}

// WithFormatted returns a copy that pretty-prints with newlines and
// two-space indentation instead of a single line.
func (o RenderOptions) WithFormatted(on bool) RenderOptions {
	o.formatted = on
	return o
}

// Formatted reports whether output is pretty-printed.
func (o RenderOptions) Formatted() bool {
	return o.formatted
}

// WithJSON returns a copy that emits strict JSON (quoted keys, colon
// separators, comma-separated members) instead of HOCON.
func (o RenderOptions) WithJSON(on bool) RenderOptions {
	o.json = on
	return o
}

// JSON reports whether output is strict JSON.
func (o RenderOptions) JSON() bool {
	return o.json
}
