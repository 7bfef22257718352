package config

import (
	"strconv"
	"strings"
)

// ValueType discriminates the closed set of shapes a parsed value can take.
type ValueType string

const (
	ObjectType        ValueType = "object"
	ListType          ValueType = "list"
	StringType        ValueType = "string"
	NumberType        ValueType = "number"
	BooleanType       ValueType = "boolean"
	NullType          ValueType = "null"
	SubstitutionType  ValueType = "substitution"
	ConcatenationType ValueType = "concatenation"
)

// Value is one node of a parsed configuration tree.
//
// The set of implementations is closed: Object, List, String, Number,
// Boolean, Null, Substitution, and Concatenation. Values are immutable once
// built; deriving operations such as Object.WithFallback return new values.
type Value interface {
	// ValueType reports which variant this value is.
	ValueType() ValueType

	// Origin reports where the value came from.
	Origin() *Origin

	// Unwrapped converts the value to plain Go data: map[string]any,
	// []any, string, int64, float64, bool, or nil. Values still
	// containing substitutions return an UnresolvedError.
	Unwrapped() (any, error)

	// Render writes the value back out as configuration text per opts.
	Render(opts RenderOptions) string

	sealed()
}

// Object is a map value that preserves the key order of its source text.
type Object struct {
	origin  *Origin
	keys    []string
	entries map[string]Value
}

// NewObject builds an object from keys in presentation order and their
// values. Keys missing from entries are dropped, duplicates keep their
// first position; nil keys yields the empty object.
func NewObject(origin *Origin, keys []string, entries map[string]Value) *Object {
	obj := &Object{origin: origin, entries: make(map[string]Value, len(keys))}
	for _, k := range keys {
		v, ok := entries[k]
		if !ok {
			continue
		}
		if _, dup := obj.entries[k]; !dup {
			obj.keys = append(obj.keys, k)
		}
		obj.entries[k] = v
	}
	return obj
}

func (o *Object) ValueType() ValueType { return ObjectType }
func (o *Object) Origin() *Origin      { return o.origin }
func (o *Object) sealed()              {}

// Get returns the value stored under key, or nil when absent.
func (o *Object) Get(key string) Value {
	return o.entries[key]
}

// GetPath walks a dot-separated chain of keys and returns the value at its
// end, or nil when any step is absent or not an object. Keys that
// themselves contain dots must be fetched step by step with Get.
func (o *Object) GetPath(path string) Value {
	var current Value = o
	for _, seg := range strings.Split(path, ".") {
		obj, ok := current.(*Object)
		if !ok {
			return nil
		}
		current = obj.Get(seg)
		if current == nil {
			return nil
		}
	}
	return current
}

// Keys returns the object's keys in presentation order.
func (o *Object) Keys() []string {
	return append([]string(nil), o.keys...)
}

// Len returns the number of entries.
func (o *Object) Len() int {
	return len(o.keys)
}

// IsEmpty reports whether the object has no entries.
func (o *Object) IsEmpty() bool {
	return len(o.keys) == 0
}

// WithFallback merges other underneath o: keys present in o win, and keys
// holding objects on both sides merge recursively. The result keeps other's
// key positions first, then o's remaining keys, which preserves
// first-occurrence order when later duplicate fields are merged over
// earlier ones.
func (o *Object) WithFallback(other *Object) *Object {
	if other == nil || other.IsEmpty() {
		return o
	}
	keys := make([]string, 0, len(other.keys)+len(o.keys))
	entries := make(map[string]Value, len(other.keys)+len(o.keys))
	for _, k := range other.keys {
		keys = append(keys, k)
		entries[k] = other.entries[k]
	}
	for _, k := range o.keys {
		mine := o.entries[k]
		theirs, present := entries[k]
		if !present {
			keys = append(keys, k)
			entries[k] = mine
			continue
		}
		mineObj, mineIsObj := mine.(*Object)
		theirsObj, theirsIsObj := theirs.(*Object)
		if mineIsObj && theirsIsObj {
			entries[k] = mineObj.WithFallback(theirsObj)
		} else {
			entries[k] = mine
		}
	}
	return &Object{origin: o.origin, keys: keys, entries: entries}
}

func (o *Object) Unwrapped() (any, error) {
	m := make(map[string]any, len(o.keys))
	for _, k := range o.keys {
		u, err := o.entries[k].Unwrapped()
		if err != nil {
			return nil, err
		}
		m[k] = u
	}
	return m, nil
}

func (o *Object) Render(opts RenderOptions) string {
	return render(o, opts)
}

// List is an ordered sequence value.
type List struct {
	origin *Origin
	items  []Value
}

// NewList builds a list from items in order.
func NewList(origin *Origin, items []Value) *List {
	return &List{origin: origin, items: append([]Value(nil), items...)}
}

func (l *List) ValueType() ValueType { return ListType }
func (l *List) Origin() *Origin      { return l.origin }
func (l *List) sealed()              {}

// Items returns the elements in order.
func (l *List) Items() []Value {
	return append([]Value(nil), l.items...)
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

func (l *List) Unwrapped() (any, error) {
	out := make([]any, len(l.items))
	for i, item := range l.items {
		u, err := item.Unwrapped()
		if err != nil {
			return nil, err
		}
		out[i] = u
	}
	return out, nil
}

func (l *List) Render(opts RenderOptions) string {
	return render(l, opts)
}

// String is a text value.
type String struct {
	origin *Origin
	value  string
}

// NewString builds a string value.
func NewString(origin *Origin, value string) *String {
	return &String{origin: origin, value: value}
}

func (s *String) ValueType() ValueType    { return StringType }
func (s *String) Origin() *Origin         { return s.origin }
func (s *String) sealed()                 {}
func (s *String) Value() string           { return s.value }
func (s *String) Unwrapped() (any, error) { return s.value, nil }

func (s *String) Render(opts RenderOptions) string {
	return render(s, opts)
}

// Number is a numeric value that remembers whether its source text was an
// integer or a floating-point literal.
type Number struct {
	origin  *Origin
	isWhole bool
	intVal  int64
	fltVal  float64
}

// NewIntNumber builds a whole number.
func NewIntNumber(origin *Origin, v int64) *Number {
	return &Number{origin: origin, isWhole: true, intVal: v, fltVal: float64(v)}
}

// NewFloatNumber builds a floating-point number.
func NewFloatNumber(origin *Origin, v float64) *Number {
	return &Number{origin: origin, fltVal: v, intVal: int64(v)}
}

func (n *Number) ValueType() ValueType { return NumberType }
func (n *Number) Origin() *Origin      { return n.origin }
func (n *Number) sealed()              {}

// IsWhole reports whether the source wrote an integer literal.
func (n *Number) IsWhole() bool { return n.isWhole }

// Int64 returns the value truncated to an integer.
func (n *Number) Int64() int64 { return n.intVal }

// Float64 returns the value as a float.
func (n *Number) Float64() float64 { return n.fltVal }

func (n *Number) Unwrapped() (any, error) {
	if n.isWhole {
		return n.intVal, nil
	}
	return n.fltVal, nil
}

func (n *Number) Render(opts RenderOptions) string {
	return render(n, opts)
}

// Boolean is a true/false value.
type Boolean struct {
	origin *Origin
	value  bool
}

// NewBoolean builds a boolean value.
func NewBoolean(origin *Origin, value bool) *Boolean {
	return &Boolean{origin: origin, value: value}
}

func (b *Boolean) ValueType() ValueType    { return BooleanType }
func (b *Boolean) Origin() *Origin         { return b.origin }
func (b *Boolean) sealed()                 {}
func (b *Boolean) Value() bool             { return b.value }
func (b *Boolean) Unwrapped() (any, error) { return b.value, nil }

func (b *Boolean) Render(opts RenderOptions) string {
	return render(b, opts)
}

// Null is an explicit null value.
type Null struct {
	origin *Origin
}

// NewNull builds a null value.
func NewNull(origin *Origin) *Null {
	return &Null{origin: origin}
}

func (n *Null) ValueType() ValueType    { return NullType }
func (n *Null) Origin() *Origin         { return n.origin }
func (n *Null) sealed()                 {}
func (n *Null) Unwrapped() (any, error) { return nil, nil }

func (n *Null) Render(opts RenderOptions) string {
	return render(n, opts)
}

// Substitution is an unresolved ${path} reference.
type Substitution struct {
	origin   *Origin
	path     string
	optional bool
}

// NewSubstitution builds a substitution referencing path; optional marks
// the ${?path} form, which resolves to nothing instead of failing when the
// path is missing.
func NewSubstitution(origin *Origin, path string, optional bool) *Substitution {
	return &Substitution{origin: origin, path: path, optional: optional}
}

func (s *Substitution) ValueType() ValueType { return SubstitutionType }
func (s *Substitution) Origin() *Origin      { return s.origin }
func (s *Substitution) sealed()              {}

// Path returns the referenced dot-separated path.
func (s *Substitution) Path() string { return s.path }

// Optional reports whether the reference was written ${?path}.
func (s *Substitution) Optional() bool { return s.optional }

func (s *Substitution) Unwrapped() (any, error) {
	return nil, &UnresolvedError{Origin: s.origin, Path: s.path}
}

func (s *Substitution) Render(opts RenderOptions) string {
	return render(s, opts)
}

// Concatenation is a run of values joined into one, such as
// "prefix "${x}" suffix". It appears only while at least one piece is an
// unresolved substitution; fully resolved runs collapse to a single value.
type Concatenation struct {
	origin *Origin
	pieces []Value
}

// NewConcatenation builds a concatenation from pieces in order.
func NewConcatenation(origin *Origin, pieces []Value) *Concatenation {
	return &Concatenation{origin: origin, pieces: append([]Value(nil), pieces...)}
}

func (c *Concatenation) ValueType() ValueType { return ConcatenationType }
func (c *Concatenation) Origin() *Origin      { return c.origin }
func (c *Concatenation) sealed()              {}

// Pieces returns the concatenated values in order.
func (c *Concatenation) Pieces() []Value {
	return append([]Value(nil), c.pieces...)
}

func (c *Concatenation) Unwrapped() (any, error) {
	for _, p := range c.pieces {
		if sub, ok := p.(*Substitution); ok {
			return nil, &UnresolvedError{Origin: sub.Origin(), Path: sub.Path()}
		}
	}
	return nil, &UnresolvedError{Origin: c.origin, Message: "concatenation was not resolved"}
}

func (c *Concatenation) Render(opts RenderOptions) string {
	return render(c, opts)
}

// render is the shared entry point behind every variant's Render method.
func render(v Value, opts RenderOptions) string {
	var sb strings.Builder
	renderValue(&sb, v, opts, 0)
	return sb.String()
}

func renderValue(sb *strings.Builder, v Value, opts RenderOptions, indent int) {
	switch val := v.(type) {
	case *Object:
		renderObject(sb, val, opts, indent)
	case *List:
		renderList(sb, val, opts, indent)
	case *String:
		sb.WriteString(strconv.Quote(val.value))
	case *Number:
		if val.isWhole {
			sb.WriteString(strconv.FormatInt(val.intVal, 10))
		} else {
			sb.WriteString(strconv.FormatFloat(val.fltVal, 'g', -1, 64))
		}
	case *Boolean:
		sb.WriteString(strconv.FormatBool(val.value))
	case *Null:
		sb.WriteString("null")
	case *Substitution:
		sb.WriteString("${")
		if val.optional {
			sb.WriteByte('?')
		}
		sb.WriteString(val.path)
		sb.WriteByte('}')
	case *Concatenation:
		for i, p := range val.pieces {
			if i > 0 {
				sb.WriteByte(' ')
			}
			renderValue(sb, p, opts, indent)
		}
	}
}

func renderObject(sb *strings.Builder, o *Object, opts RenderOptions, indent int) {
	if o.IsEmpty() {
		sb.WriteString("{}")
		return
	}
	sb.WriteByte('{')
	for i, k := range o.keys {
		v := o.entries[k]
		if opts.Formatted() {
			sb.WriteByte('\n')
			if opts.OriginComments() && opts.Comments() && v.Origin() != nil {
				writeIndent(sb, indent+1)
				sb.WriteString("# ")
				sb.WriteString(v.Origin().Description())
				sb.WriteByte('\n')
			}
			writeIndent(sb, indent+1)
		}
		renderKey(sb, k, opts)
		switch {
		case opts.JSON() && opts.Formatted():
			sb.WriteString(": ")
		case opts.JSON():
			sb.WriteByte(':')
		case opts.Formatted():
			sb.WriteString(" = ")
		default:
			sb.WriteByte('=')
		}
		renderValue(sb, v, opts, indent+1)
		if i < len(o.keys)-1 && (opts.JSON() || !opts.Formatted()) {
			sb.WriteByte(',')
		}
	}
	if opts.Formatted() {
		sb.WriteByte('\n')
		writeIndent(sb, indent)
	}
	sb.WriteByte('}')
}

func renderList(sb *strings.Builder, l *List, opts RenderOptions, indent int) {
	if len(l.items) == 0 {
		sb.WriteString("[]")
		return
	}
	sb.WriteByte('[')
	for i, item := range l.items {
		if opts.Formatted() {
			sb.WriteByte('\n')
			writeIndent(sb, indent+1)
		}
		renderValue(sb, item, opts, indent+1)
		if i < len(l.items)-1 && (opts.JSON() || !opts.Formatted()) {
			sb.WriteByte(',')
		}
	}
	if opts.Formatted() {
		sb.WriteByte('\n')
		writeIndent(sb, indent)
	}
	sb.WriteByte(']')
}

func renderKey(sb *strings.Builder, key string, opts RenderOptions) {
	if !opts.JSON() && isUnquotedSafe(key) {
		sb.WriteString(key)
		return
	}
	sb.WriteString(strconv.Quote(key))
}

// isUnquotedSafe reports whether key can be written without quotes in the
// CONF dialect.
func isUnquotedSafe(key string) bool {
	if key == "" {
		return false
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString("  ")
	}
}
