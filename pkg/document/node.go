package document

import (
	"strings"

	"github.com/hoconlabs/hocon/pkg/tokenizer"
)

// Node is one piece of a parsed document. The variant set is closed:
// TokenNode, FieldNode, IncludeNode, ObjectNode, ArrayNode, and
// ConcatenationNode. Every node renders the exact source text it was
// parsed from, so a tree of nodes reproduces its input byte for byte.
type Node interface {
	// Render writes the node back out exactly as it appeared in the
	// source.
	Render() string

	sealed()
}

func renderAll(sb *strings.Builder, nodes []Node) {
	for _, n := range nodes {
		sb.WriteString(n.Render())
	}
}

// TokenNode wraps a single token: punctuation, whitespace, newlines,
// comments, and standalone scalar values.
type TokenNode struct {
	tok tokenizer.Token
}

func (n *TokenNode) sealed() {}

// Token returns the wrapped token.
func (n *TokenNode) Token() tokenizer.Token { return n.tok }

func (n *TokenNode) Render() string { return n.tok.Text }

// FieldNode is one key/value entry of an object: the key tokens, the
// separator (absent when an object value directly follows its key), and the
// value node.
type FieldNode struct {
	children []Node
	path     []string
	value    Node
}

func (n *FieldNode) sealed() {}

// Path returns the key's path segments. Dotted unquoted keys contribute one
// segment per dot-separated piece; quoted key pieces are single opaque
// segments.
func (n *FieldNode) Path() []string { return append([]string(nil), n.path...) }

// Value returns the field's value node.
func (n *FieldNode) Value() Node { return n.value }

func (n *FieldNode) Render() string {
	var sb strings.Builder
	renderAll(&sb, n.children)
	return sb.String()
}

// IncludeNode is an include directive: the include keyword and the quoted
// include target.
type IncludeNode struct {
	children []Node
	name     string
}

func (n *IncludeNode) sealed() {}

// Name returns the decoded include target.
func (n *IncludeNode) Name() string { return n.name }

func (n *IncludeNode) Render() string {
	var sb strings.Builder
	renderAll(&sb, n.children)
	return sb.String()
}

// ObjectNode is a braced { ... } object or the implied-braces object body
// at the root of a CONF document. Its children preserve every token in
// order: braces, whitespace, comments, fields, and include directives.
type ObjectNode struct {
	children []Node
	braced   bool
}

func (n *ObjectNode) sealed() {}

// Braced reports whether the object was written with braces.
func (n *ObjectNode) Braced() bool { return n.braced }

// Items returns the object's children in source order. Callers interested
// in structure filter for *FieldNode and *IncludeNode.
func (n *ObjectNode) Items() []Node { return append([]Node(nil), n.children...) }

func (n *ObjectNode) Render() string {
	var sb strings.Builder
	renderAll(&sb, n.children)
	return sb.String()
}

// ArrayNode is a bracketed [ ... ] array.
type ArrayNode struct {
	children []Node
	elements []Node
}

func (n *ArrayNode) sealed() {}

// Elements returns the array's value nodes in order, without the
// surrounding punctuation and trivia.
func (n *ArrayNode) Elements() []Node { return append([]Node(nil), n.elements...) }

func (n *ArrayNode) Render() string {
	var sb strings.Builder
	renderAll(&sb, n.children)
	return sb.String()
}

// ConcatenationNode is a run of value tokens forming one value, such as an
// unquoted sentence or a string broken around a ${} reference. Whitespace
// between the pieces is part of the run.
type ConcatenationNode struct {
	children []Node
}

func (n *ConcatenationNode) sealed() {}

// Parts returns the run's children in order, whitespace tokens included.
func (n *ConcatenationNode) Parts() []Node { return append([]Node(nil), n.children...) }

func (n *ConcatenationNode) Render() string {
	var sb strings.Builder
	renderAll(&sb, n.children)
	return sb.String()
}
