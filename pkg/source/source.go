package source

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/document"
	"github.com/hoconlabs/hocon/pkg/parser"
	"github.com/hoconlabs/hocon/pkg/tokenizer"
	"github.com/hoconlabs/hocon/pkg/trace"
)

// Source is one origin of configuration text together with everything a
// parse of it needs: normalized options, a computed origin, an include
// context for resolving relative include targets, and the recursion guard
// shared down its include chain. A Source is immutable after construction
// apart from the include context's current directory.
type Source struct {
	v       variant
	options config.ParseOptions
	origin  *config.Origin
	ctx     *includeContext
	stack   *parseStack
	log     zerolog.Logger
}

var _ config.Parseable = (*Source)(nil)

// NewFileSource returns a source reading the file at path. Its origin is
// "file: <path>" and its syntax is guessed from the extension unless the
// options say otherwise.
func NewFileSource(path string, opts config.ParseOptions) *Source {
	return newSource(fileVariant{path: path}, opts)
}

// NewStringSource returns a source over in-memory configuration text, with
// origin "string".
func NewStringSource(content string, opts config.ParseOptions) *Source {
	return newSource(stringVariant{content: content}, opts)
}

// NewResourceSource returns a source naming a resource that an
// application-supplied includer must resolve. Parsing it directly follows
// the missing-source rules.
func NewResourceSource(name string, opts config.ParseOptions) *Source {
	return newSource(resourceVariant{name: name}, opts)
}

// NewNotFoundSource returns the sentinel for an include target known to be
// absent. It gives includers one uniform way to report "does not exist"
// that flows through the standard fallback instead of being special-cased
// at every call site.
func NewNotFoundSource(what, message string, opts config.ParseOptions) *Source {
	return newSource(notFoundVariant{what: what, message: message}, opts)
}

// newSource runs the post-construction steps every variant shares: option
// fix-up, origin computation, include context, fresh recursion guard.
func newSource(v variant, opts config.ParseOptions) *Source {
	s := &Source{v: v}
	s.options = s.fixupOptions(opts)
	if desc := s.options.OriginDescription(); desc != "" {
		s.origin = config.NewOrigin(desc)
	} else {
		s.origin = config.NewOrigin(v.defaultDescription())
	}
	s.ctx = &includeContext{owner: s, curDir: v.initialCurrentDir()}
	s.stack = &parseStack{}
	s.log = trace.Logger(trace.TopicLoads)
	return s
}

// fixupOptions resolves the syntax the parse will use (explicit choice,
// then the source's own guess, then CONF) and guarantees the includer
// chain terminates in the built-in filesystem includer, so a partial
// application-supplied chain can never lose an include silently.
func (s *Source) fixupOptions(opts config.ParseOptions) config.ParseOptions {
	syntax := opts.Syntax()
	if syntax == config.SyntaxUnspecified {
		syntax = s.v.guessSyntax()
	}
	if syntax == config.SyntaxUnspecified {
		syntax = config.SyntaxConf
	}
	opts = opts.WithSyntax(syntax)

	chain := opts.Includers()
	if len(chain) == 0 || chain[len(chain)-1] != config.Includer(fsIncluder{}) {
		opts = opts.AppendIncluder(fsIncluder{})
	}
	return opts
}

// Options returns the normalized options fixed at construction.
func (s *Source) Options() config.ParseOptions { return s.options }

// Origin returns the origin computed at construction.
func (s *Source) Origin() *config.Origin { return s.origin }

// Parse parses the source into its root object using the construction-time
// options. It does not touch the recursion guard: it is the outermost entry
// point for a fresh parse, with no ancestor chain to count against.
func (s *Source) Parse() (*config.Object, error) {
	v, err := s.ParseValueWith(s.options)
	if err != nil {
		return nil, err
	}
	return forceObject(v)
}

// ParseWith parses the source into its root object under the include
// recursion guard: this parse joins the in-flight chain and fails with a
// CycleError once the chain is MaxIncludeDepth deep. The includer chain
// enters through here for every include it resolves, so cycles across
// files are caught regardless of nesting depth. The guard entry is removed
// on every exit path.
func (s *Source) ParseWith(opts config.ParseOptions) (*config.Object, error) {
	if err := s.stack.push(s); err != nil {
		return nil, err
	}
	defer s.stack.pop()

	v, err := s.ParseValueWith(opts)
	if err != nil {
		return nil, err
	}
	return forceObject(v)
}

// ParseValue parses into a value tree using the construction-time options.
func (s *Source) ParseValue() (config.Value, error) {
	return s.ParseValueWith(s.options)
}

// ParseValueWith parses the source into a value tree, outside the recursion
// guard. An origin-description override in opts replaces the source's own
// origin for everything the parse produces. A source whose stream cannot be
// acquired parses as an empty object tagged "<origin> (not found)" when the
// options allow missing sources, and fails with an origin-qualified IOError
// otherwise. Malformed content always fails, allow-missing or not.
func (s *Source) ParseValueWith(opts config.ParseOptions) (config.Value, error) {
	opts = s.fixupOptions(opts)
	origin := s.parseOrigin(opts)

	v, err := s.rawParseValue(origin, opts)
	if err == nil {
		return v, nil
	}
	if !isMissing(err) {
		return nil, err
	}
	if opts.AllowMissing() {
		s.log.Debug().Str("source", s.v.traceDescription()).Err(err).Msg("source missing, substituting empty object")
		return config.NewObject(notFoundOrigin(origin), nil, nil), nil
	}
	var ioErr *config.IOError
	if errors.As(err, &ioErr) {
		return nil, err
	}
	return nil, &config.IOError{Origin: origin, Err: err}
}

// ParseDocument parses into an edit-preserving document tree using the
// construction-time options.
func (s *Source) ParseDocument() (*document.Document, error) {
	return s.ParseDocumentWith(s.options)
}

// ParseDocumentWith parses the source into a document tree: the same option
// and origin normalization as ParseValueWith, but parsing stops at the
// grammar, with no include resolution, merging, or substitution. A missing
// source falls back to the single-empty-object document when allowed and
// fails with a LoadError otherwise.
func (s *Source) ParseDocumentWith(opts config.ParseOptions) (*document.Document, error) {
	opts = s.fixupOptions(opts)
	origin := s.parseOrigin(opts)

	doc, err := s.rawParseDocument(origin, opts)
	if err == nil {
		return doc, nil
	}
	if !isMissing(err) {
		return nil, err
	}
	if opts.AllowMissing() {
		s.log.Debug().Str("source", s.v.traceDescription()).Err(err).Msg("source missing, substituting empty document")
		return document.NewEmpty(notFoundOrigin(origin), opts), nil
	}
	return nil, &config.LoadError{Origin: origin, Err: err}
}

// rawParseValue acquires the stream and drives the tokenizer, the document
// grammar, and the value builder.
func (s *Source) rawParseValue(origin *config.Origin, opts config.ParseOptions) (config.Value, error) {
	r, err := s.v.reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if ct := s.v.contentType(); ct != config.SyntaxUnspecified {
		opts = opts.WithSyntax(ct)
	}
	s.log.Debug().
		Str("source", s.v.traceDescription()).
		Str("syntax", string(opts.Syntax())).
		Int("depth", s.stack.depth()).
		Msg("parsing source")

	doc, err := document.Parse(tokenizer.New(origin, r, opts.Syntax()), origin, opts)
	if err != nil {
		return nil, err
	}
	return parser.Parse(doc, s.ctx)
}

func (s *Source) rawParseDocument(origin *config.Origin, opts config.ParseOptions) (*document.Document, error) {
	r, err := s.v.reader()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	if ct := s.v.contentType(); ct != config.SyntaxUnspecified {
		opts = opts.WithSyntax(ct)
	}
	return document.Parse(tokenizer.New(origin, r, opts.Syntax()), origin, opts)
}

// RelativeTo builds the source for an include target discovered while
// parsing this source. Names starting with a separator are absolute and
// used verbatim; anything else joins the include context's current
// directory. The child inherits this source's effective options (includer
// chain, allow-missing, resolved syntax) with the origin-description
// override cleared so the child reports its own file origin, and shares
// this source's recursion guard so the whole include chain counts against
// one bound.
func (s *Source) RelativeTo(name string) *Source {
	path := name
	if !strings.HasPrefix(name, "/") {
		path = s.ctx.curDir + name
	}
	child := newSource(fileVariant{path: path}, s.options.WithOriginDescription(""))
	child.stack = s.stack
	return child
}

// GuessSyntax reports the syntax implied by the source itself: file sources
// map their extension, every other variant reports SyntaxUnspecified.
func (s *Source) GuessSyntax() config.Syntax {
	return s.v.guessSyntax()
}

// CurrentDir returns the directory relative include targets resolve
// against: the file's own directory (trailing separator kept) for file
// sources, empty for the rest.
func (s *Source) CurrentDir() string { return s.ctx.curDir }

// SetCurrentDir overrides the directory relative include targets resolve
// against. Pass a trailing separator; the empty string makes relative
// targets resolve against the process working directory.
func (s *Source) SetCurrentDir(dir string) { s.ctx.curDir = dir }

func (s *Source) traceDescription() string { return s.v.traceDescription() }

// parseOrigin picks the origin for one parse: a description override in the
// passed options wins over the construction-time origin.
func (s *Source) parseOrigin(opts config.ParseOptions) *config.Origin {
	if desc := opts.OriginDescription(); desc != "" {
		return config.NewOrigin(desc)
	}
	return s.origin
}

// forceObject asserts that a parsed root is an object.
func forceObject(v config.Value) (*config.Object, error) {
	obj, ok := v.(*config.Object)
	if !ok {
		return nil, &config.WrongTypeError{
			Origin:   v.Origin(),
			Expected: "object at file root",
			Actual:   string(v.ValueType()),
		}
	}
	return obj, nil
}

// isMissing reports whether err is a stream-level failure eligible for the
// missing-source fallback: acquisition failures and mid-stream I/O errors,
// never malformed content.
func isMissing(err error) bool {
	var notFound *config.NotFoundError
	var ioErr *config.IOError
	return errors.As(err, &notFound) || errors.As(err, &ioErr)
}

// notFoundOrigin tags the origin carried by a fallback's empty result.
func notFoundOrigin(origin *config.Origin) *config.Origin {
	return config.NewOrigin(origin.Description() + " (not found)")
}
