package document

import (
	"strings"

	"github.com/hoconlabs/hocon/pkg/config"
)

// Document is the edit-preserving parse of one source: a tree of nodes
// retaining every byte of the input. Unlike the resolved value tree it
// keeps comments, whitespace, and unresolved include directives, so
// Render reproduces the source text exactly.
type Document struct {
	children []Node
	root     Node
	origin   *config.Origin
	opts     config.ParseOptions
}

// Root returns the document's root value node: an *ObjectNode, or an
// *ArrayNode for JSON documents with an array at top level.
func (d *Document) Root() Node { return d.root }

// Origin reports where the document came from.
func (d *Document) Origin() *config.Origin { return d.origin }

// Options returns the options the document was parsed with.
func (d *Document) Options() config.ParseOptions { return d.opts }

// Render writes the document back out byte for byte.
func (d *Document) Render() string {
	var sb strings.Builder
	renderAll(&sb, d.children)
	return sb.String()
}

// NewEmpty returns the document used when a missing source is tolerated: a
// root holding a single object node with no content. It renders to the
// empty string and parses to the empty object.
func NewEmpty(origin *config.Origin, opts config.ParseOptions) *Document {
	root := &ObjectNode{}
	return &Document{children: []Node{root}, root: root, origin: origin, opts: opts}
}
