package parser

import (
	"strings"

	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/document"
	"github.com/hoconlabs/hocon/pkg/tokenizer"
)

// Parse builds the value tree for a parsed document. Include directives are
// handed to the document options' includer with ictx as their context;
// passing a nil context is fine for includer implementations that do not
// resolve relative names.
//
// Duplicate keys merge later-over-earlier: objects on both sides merge
// recursively, anything else replaces. Dotted keys expand into nested
// objects before merging, so "a.b = 1" and "a { c = 2 }" land in the same
// object.
func Parse(doc *document.Document, ictx config.IncludeContext) (config.Value, error) {
	b := &builder{origin: doc.Origin(), opts: doc.Options(), ictx: ictx}
	switch root := doc.Root().(type) {
	case *document.ObjectNode:
		return b.buildObject(root)
	case *document.ArrayNode:
		return b.buildArray(root)
	default:
		return nil, config.NewParseError(doc.Origin(), "document root is neither an object nor an array")
	}
}

type builder struct {
	origin *config.Origin
	opts   config.ParseOptions
	ictx   config.IncludeContext
}

func (b *builder) tokenOrigin(tok tokenizer.Token) *config.Origin {
	if tok.Origin != nil {
		return tok.Origin
	}
	return b.origin
}

// objectAccum accumulates an object's fields in first-occurrence key order,
// merging duplicates as they arrive.
type objectAccum struct {
	keys    []string
	entries map[string]config.Value
}

func (a *objectAccum) merge(key string, v config.Value) {
	old, ok := a.entries[key]
	if !ok {
		a.keys = append(a.keys, key)
		a.entries[key] = v
		return
	}
	newObj, newIsObj := v.(*config.Object)
	oldObj, oldIsObj := old.(*config.Object)
	if newIsObj && oldIsObj {
		a.entries[key] = newObj.WithFallback(oldObj)
		return
	}
	a.entries[key] = v
}

func (b *builder) buildObject(obj *document.ObjectNode) (*config.Object, error) {
	acc := objectAccum{entries: make(map[string]config.Value)}
	for _, item := range obj.Items() {
		switch node := item.(type) {
		case *document.FieldNode:
			v, err := b.buildValue(node.Value())
			if err != nil {
				return nil, err
			}
			path := node.Path()
			acc.merge(path[0], b.expand(path, v))
		case *document.IncludeNode:
			included, err := b.include(node)
			if err != nil {
				return nil, err
			}
			if included == nil {
				continue
			}
			for _, k := range included.Keys() {
				acc.merge(k, included.Get(k))
			}
		}
	}
	return config.NewObject(b.origin, acc.keys, acc.entries), nil
}

// expand nests v under every path segment after the first, so the caller
// can merge the result under path[0].
func (b *builder) expand(path []string, v config.Value) config.Value {
	for i := len(path) - 1; i >= 1; i-- {
		v = config.NewObject(v.Origin(), []string{path[i]}, map[string]config.Value{path[i]: v})
	}
	return v
}

func (b *builder) include(node *document.IncludeNode) (*config.Object, error) {
	return b.opts.Includer().Include(b.ictx, node.Name())
}

func (b *builder) buildArray(arr *document.ArrayNode) (*config.List, error) {
	elements := arr.Elements()
	items := make([]config.Value, 0, len(elements))
	for _, elem := range elements {
		v, err := b.buildValue(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return config.NewList(b.origin, items), nil
}

func (b *builder) buildValue(node document.Node) (config.Value, error) {
	switch n := node.(type) {
	case *document.TokenNode:
		return b.tokenValue(n.Token())
	case *document.ObjectNode:
		return b.buildObject(n)
	case *document.ArrayNode:
		return b.buildArray(n)
	case *document.ConcatenationNode:
		return b.buildConcatenation(n)
	default:
		return nil, config.NewParseError(b.origin, "unexpected document node in value position")
	}
}

func (b *builder) tokenValue(tok tokenizer.Token) (config.Value, error) {
	origin := b.tokenOrigin(tok)
	switch tok.Kind {
	case tokenizer.KindString, tokenizer.KindUnquoted:
		return config.NewString(origin, tok.Str), nil
	case tokenizer.KindInt:
		return config.NewIntNumber(origin, tok.Int), nil
	case tokenizer.KindDouble:
		return config.NewFloatNumber(origin, tok.Float), nil
	case tokenizer.KindBool:
		return config.NewBoolean(origin, tok.Bool), nil
	case tokenizer.KindNull:
		return config.NewNull(origin), nil
	case tokenizer.KindSubstitution:
		return config.NewSubstitution(origin, tok.Path, tok.Optional), nil
	default:
		return nil, config.NewParseError(origin, "token %s cannot be a value", tok.Describe())
	}
}

// buildConcatenation turns a run of value tokens into one value. Whitespace
// at the edges of the run is dropped, whitespace between tokens survives
// verbatim. A run without substitutions joins into a single string right
// away; otherwise the pieces wait as a Concatenation until resolution, with
// every non-substitution piece already reduced to its string form.
func (b *builder) buildConcatenation(cat *document.ConcatenationNode) (config.Value, error) {
	var toks []tokenizer.Token
	for _, part := range cat.Parts() {
		tn, ok := part.(*document.TokenNode)
		if !ok {
			return nil, config.NewParseError(b.origin, "unexpected document node in a value run")
		}
		toks = append(toks, tn.Token())
	}
	for len(toks) > 0 && toks[0].Kind == tokenizer.KindWhitespace {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].Kind == tokenizer.KindWhitespace {
		toks = toks[:len(toks)-1]
	}
	if len(toks) == 0 {
		return nil, config.NewParseError(b.origin, "empty value run")
	}
	if len(toks) == 1 {
		return b.tokenValue(toks[0])
	}

	hasSubstitution := false
	for _, tok := range toks {
		if tok.Kind == tokenizer.KindSubstitution {
			hasSubstitution = true
			break
		}
	}

	if !hasSubstitution {
		var sb strings.Builder
		for _, tok := range toks {
			sb.WriteString(concatText(tok))
		}
		return config.NewString(b.tokenOrigin(toks[0]), sb.String()), nil
	}

	pieces := make([]config.Value, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == tokenizer.KindSubstitution {
			pieces = append(pieces, config.NewSubstitution(b.tokenOrigin(tok), tok.Path, tok.Optional))
			continue
		}
		pieces = append(pieces, config.NewString(b.tokenOrigin(tok), concatText(tok)))
	}
	return config.NewConcatenation(b.tokenOrigin(toks[0]), pieces), nil
}

// concatText is the contribution of one token to a string concatenation:
// the decoded value for quoted and unquoted strings, the original spelling
// for everything else.
func concatText(tok tokenizer.Token) string {
	switch tok.Kind {
	case tokenizer.KindString, tokenizer.KindUnquoted:
		return tok.Str
	default:
		return tok.Text
	}
}
