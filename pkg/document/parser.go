package document

import (
	"strings"

	"github.com/hoconlabs/hocon/pkg/config"
	"github.com/hoconlabs/hocon/pkg/tokenizer"
)

// Parse drives the token stream into a Document, validating the grammar of
// the options' syntax. CONF accepts implied root braces, '=' and
// object-follow separators, newline field separation, include directives,
// and value concatenation; JSON is held to quoted keys, ':' separators,
// comma separation without trailing commas, and an object or array root.
func Parse(tokens *tokenizer.Tokenizer, origin *config.Origin, opts config.ParseOptions) (*Document, error) {
	p := &docParser{tokens: tokens, origin: origin, json: opts.Syntax() == config.SyntaxJSON}
	return p.parseDocument(opts)
}

type docParser struct {
	tokens *tokenizer.Tokenizer
	origin *config.Origin
	json   bool

	la    tokenizer.Token
	laSet bool
}

func (p *docParser) peek() (tokenizer.Token, error) {
	if !p.laSet {
		tok, err := p.tokens.Next()
		if err != nil {
			return tokenizer.Token{}, err
		}
		p.la = tok
		p.laSet = true
	}
	return p.la, nil
}

func (p *docParser) next() (tokenizer.Token, error) {
	tok, err := p.peek()
	if err != nil {
		return tok, err
	}
	p.laSet = false
	return tok, nil
}

func (p *docParser) errAt(tok tokenizer.Token, format string, args ...any) error {
	origin := tok.Origin
	if origin == nil {
		origin = p.origin
	}
	return config.NewParseError(origin, format, args...)
}

func (p *docParser) parseDocument(opts config.ParseOptions) (*Document, error) {
	doc := &Document{origin: p.origin, opts: opts}
	if err := p.consumeTrivia(&doc.children); err != nil {
		return nil, err
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	var root Node
	switch tok.Kind {
	case tokenizer.KindOpenCurly:
		root, err = p.parseObject(true)
	case tokenizer.KindOpenSquare:
		root, err = p.parseArray()
	case tokenizer.KindEOF:
		if p.json {
			return nil, p.errAt(tok, "empty JSON document, expecting an object or array")
		}
		root = &ObjectNode{}
	default:
		if p.json {
			return nil, p.errAt(tok, "JSON document must have an object or array at root, got %s", tok.Describe())
		}
		obj := &ObjectNode{}
		err = p.parseObjectContent(obj, false)
		root = obj
	}
	if err != nil {
		return nil, err
	}
	doc.children = append(doc.children, root)
	doc.root = root

	if err := p.consumeTrivia(&doc.children); err != nil {
		return nil, err
	}
	end, err := p.next()
	if err != nil {
		return nil, err
	}
	if end.Kind != tokenizer.KindEOF {
		return nil, p.errAt(end, "unexpected %s after the root value", end.Describe())
	}
	return doc, nil
}

// consumeTrivia collects whitespace, newlines, and comments.
func (p *docParser) consumeTrivia(children *[]Node) error {
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case tokenizer.KindWhitespace, tokenizer.KindNewline, tokenizer.KindComment:
			p.next()
			*children = append(*children, &TokenNode{tok: tok})
		default:
			return nil
		}
	}
}

func (p *docParser) parseObject(braced bool) (*ObjectNode, error) {
	obj := &ObjectNode{braced: braced}
	if braced {
		open, err := p.next()
		if err != nil {
			return nil, err
		}
		obj.children = append(obj.children, &TokenNode{tok: open})
	}
	if err := p.parseObjectContent(obj, braced); err != nil {
		return nil, err
	}
	return obj, nil
}

func (p *docParser) parseObjectContent(obj *ObjectNode, braced bool) error {
	expectingSep := false
	afterComma := false
	for {
		tok, err := p.peek()
		if err != nil {
			return err
		}
		switch tok.Kind {
		case tokenizer.KindWhitespace, tokenizer.KindComment:
			p.next()
			obj.children = append(obj.children, &TokenNode{tok: tok})
		case tokenizer.KindNewline:
			p.next()
			obj.children = append(obj.children, &TokenNode{tok: tok})
			if !p.json {
				expectingSep = false
			}
		case tokenizer.KindComma:
			if !expectingSep {
				return p.errAt(tok, "',' with no field preceding it")
			}
			p.next()
			obj.children = append(obj.children, &TokenNode{tok: tok})
			expectingSep = false
			afterComma = true
		case tokenizer.KindCloseCurly:
			if !braced {
				return p.errAt(tok, "'}' with no matching '{'")
			}
			if p.json && afterComma {
				return p.errAt(tok, "trailing ',' before '}' is not allowed in JSON")
			}
			closing, _ := p.next()
			obj.children = append(obj.children, &TokenNode{tok: closing})
			return nil
		case tokenizer.KindEOF:
			if braced {
				return p.errAt(tok, "expecting '}' before end of file")
			}
			return nil
		case tokenizer.KindString, tokenizer.KindUnquoted, tokenizer.KindInt,
			tokenizer.KindDouble, tokenizer.KindBool, tokenizer.KindNull:
			if expectingSep {
				if p.json {
					return p.errAt(tok, "expecting ',' separating object members, got %s", tok.Describe())
				}
				return p.errAt(tok, "expecting a comma or newline separating fields, got %s", tok.Describe())
			}
			if p.json && tok.Kind != tokenizer.KindString {
				return p.errAt(tok, "JSON object keys must be quoted strings, got %s", tok.Describe())
			}
			var item Node
			if !p.json && tok.Kind == tokenizer.KindUnquoted && tok.Str == "include" {
				item, err = p.parseIncludeOrField()
			} else {
				item, err = p.parseField(nil)
			}
			if err != nil {
				return err
			}
			obj.children = append(obj.children, item)
			expectingSep = true
			afterComma = false
		default:
			return p.errAt(tok, "expecting a field key, got %s", tok.Describe())
		}
	}
}

// parseIncludeOrField disambiguates the include keyword: followed by a
// quoted string it is a directive, otherwise it is an ordinary key named
// include.
func (p *docParser) parseIncludeOrField() (Node, error) {
	keyword, err := p.next()
	if err != nil {
		return nil, err
	}
	prefix := []Node{&TokenNode{tok: keyword}}
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != tokenizer.KindWhitespace {
			break
		}
		p.next()
		prefix = append(prefix, &TokenNode{tok: tok})
	}
	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	if tok.Kind == tokenizer.KindString {
		target, _ := p.next()
		prefix = append(prefix, &TokenNode{tok: target})
		return &IncludeNode{children: prefix, name: target.Str}, nil
	}
	return p.parseField(prefix)
}

func (p *docParser) parseField(prefix []Node) (*FieldNode, error) {
	field := &FieldNode{children: prefix}
	var keyToks []tokenizer.Token
	for _, n := range prefix {
		if tn, ok := n.(*TokenNode); ok {
			keyToks = append(keyToks, tn.Token())
		}
	}

keyLoop:
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case tokenizer.KindColon, tokenizer.KindEquals:
			p.next()
			field.children = append(field.children, &TokenNode{tok: tok})
			break keyLoop
		case tokenizer.KindOpenCurly:
			if p.json {
				return nil, p.errAt(tok, "expecting ':' after object key")
			}
			break keyLoop
		case tokenizer.KindWhitespace:
			p.next()
			field.children = append(field.children, &TokenNode{tok: tok})
			keyToks = append(keyToks, tok)
		case tokenizer.KindString, tokenizer.KindUnquoted, tokenizer.KindInt,
			tokenizer.KindDouble, tokenizer.KindBool, tokenizer.KindNull:
			if p.json && len(keyToks) > 0 {
				return nil, p.errAt(tok, "expecting ':' after object key")
			}
			p.next()
			field.children = append(field.children, &TokenNode{tok: tok})
			keyToks = append(keyToks, tok)
		case tokenizer.KindSubstitution:
			return nil, p.errAt(tok, "substitutions are not allowed in keys")
		default:
			return nil, p.errAt(tok, "key '%s' may not be followed by %s, expecting ':', '=', or an object",
				keyText(keyToks), tok.Describe())
		}
	}

	path, err := p.pathFromTokens(keyToks)
	if err != nil {
		return nil, err
	}
	field.path = path

	value, err := p.parseValue(&field.children)
	if err != nil {
		return nil, err
	}
	field.children = append(field.children, value)
	field.value = value
	return field, nil
}

// parseValue parses an object, array, or scalar run. Leading inline
// whitespace is appended to trivia so the caller keeps render order.
func (p *docParser) parseValue(trivia *[]Node) (Node, error) {
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.Kind != tokenizer.KindWhitespace {
			break
		}
		p.next()
		*trivia = append(*trivia, &TokenNode{tok: tok})
	}

	tok, err := p.peek()
	if err != nil {
		return nil, err
	}
	switch {
	case tok.Kind == tokenizer.KindOpenCurly:
		return p.parseObject(true)
	case tok.Kind == tokenizer.KindOpenSquare:
		return p.parseArray()
	case tok.IsValue():
		return p.parseScalarRun()
	default:
		return nil, p.errAt(tok, "expecting a value, got %s", tok.Describe())
	}
}

// parseScalarRun consumes value tokens and the whitespace between them
// until the line, member, or container ends. In JSON a value is always a
// single token.
func (p *docParser) parseScalarRun() (Node, error) {
	if p.json {
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		return &TokenNode{tok: tok}, nil
	}

	run := &ConcatenationNode{}
	values := 0
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		if tok.IsValue() {
			p.next()
			run.children = append(run.children, &TokenNode{tok: tok})
			values++
			continue
		}
		switch tok.Kind {
		case tokenizer.KindWhitespace:
			p.next()
			run.children = append(run.children, &TokenNode{tok: tok})
		case tokenizer.KindNewline, tokenizer.KindComment, tokenizer.KindComma,
			tokenizer.KindCloseCurly, tokenizer.KindCloseSquare, tokenizer.KindEOF:
			if values == 1 && len(run.children) == 1 {
				return run.children[0], nil
			}
			return run, nil
		default:
			return nil, p.errAt(tok, "%s is not allowed after a value, expecting a comma or newline", tok.Describe())
		}
	}
}

func (p *docParser) parseArray() (*ArrayNode, error) {
	arr := &ArrayNode{}
	open, err := p.next()
	if err != nil {
		return nil, err
	}
	arr.children = append(arr.children, &TokenNode{tok: open})

	expectingSep := false
	afterComma := false
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch tok.Kind {
		case tokenizer.KindWhitespace, tokenizer.KindComment:
			p.next()
			arr.children = append(arr.children, &TokenNode{tok: tok})
		case tokenizer.KindNewline:
			p.next()
			arr.children = append(arr.children, &TokenNode{tok: tok})
			if !p.json {
				expectingSep = false
			}
		case tokenizer.KindComma:
			if !expectingSep {
				return nil, p.errAt(tok, "',' with no array element preceding it")
			}
			p.next()
			arr.children = append(arr.children, &TokenNode{tok: tok})
			expectingSep = false
			afterComma = true
		case tokenizer.KindCloseSquare:
			if p.json && afterComma {
				return nil, p.errAt(tok, "trailing ',' before ']' is not allowed in JSON")
			}
			closing, _ := p.next()
			arr.children = append(arr.children, &TokenNode{tok: closing})
			return arr, nil
		case tokenizer.KindEOF:
			return nil, p.errAt(tok, "expecting ']' before end of file")
		case tokenizer.KindOpenCurly, tokenizer.KindOpenSquare,
			tokenizer.KindString, tokenizer.KindUnquoted, tokenizer.KindInt,
			tokenizer.KindDouble, tokenizer.KindBool, tokenizer.KindNull,
			tokenizer.KindSubstitution:
			if expectingSep {
				if p.json {
					return nil, p.errAt(tok, "expecting ',' separating array elements, got %s", tok.Describe())
				}
				return nil, p.errAt(tok, "expecting a comma or newline separating array elements, got %s", tok.Describe())
			}
			elem, err := p.parseValue(&arr.children)
			if err != nil {
				return nil, err
			}
			arr.children = append(arr.children, elem)
			arr.elements = append(arr.elements, elem)
			expectingSep = true
			afterComma = false
		default:
			return nil, p.errAt(tok, "expecting an array element, got %s", tok.Describe())
		}
	}
}

// keyPiece kinds used while turning key tokens into path segments.
type pieceKind int

const (
	pieceText pieceKind = iota
	pieceQuoted
	pieceDot
	pieceSpace
)

type keyPiece struct {
	kind pieceKind
	text string
}

// pathFromTokens computes the path expression spelled by a field's key
// tokens. Unquoted pieces split into segments at dots, quoted pieces are
// opaque, whitespace between pieces of one segment is preserved, and
// whitespace around dots is ignored.
func (p *docParser) pathFromTokens(toks []tokenizer.Token) ([]string, error) {
	var pieces []keyPiece
	for _, tok := range toks {
		switch tok.Kind {
		case tokenizer.KindString:
			pieces = append(pieces, keyPiece{pieceQuoted, tok.Str})
		case tokenizer.KindWhitespace:
			pieces = append(pieces, keyPiece{pieceSpace, tok.Text})
		default:
			parts := strings.Split(tok.Text, ".")
			for i, part := range parts {
				if i > 0 {
					pieces = append(pieces, keyPiece{pieceDot, "."})
				}
				if part != "" {
					pieces = append(pieces, keyPiece{pieceText, part})
				}
			}
		}
	}

	for len(pieces) > 0 && pieces[0].kind == pieceSpace {
		pieces = pieces[1:]
	}
	for len(pieces) > 0 && pieces[len(pieces)-1].kind == pieceSpace {
		pieces = pieces[:len(pieces)-1]
	}
	var cleaned []keyPiece
	for i, pc := range pieces {
		if pc.kind == pieceSpace {
			prevDot := i > 0 && pieces[i-1].kind == pieceDot
			nextDot := i+1 < len(pieces) && pieces[i+1].kind == pieceDot
			if prevDot || nextDot {
				continue
			}
		}
		cleaned = append(cleaned, pc)
	}

	badKey := func() error {
		origin := p.origin
		if len(toks) > 0 && toks[0].Origin != nil {
			origin = toks[0].Origin
		}
		return config.NewParseError(origin, "key '%s' has an empty path segment, check for leading, trailing, or doubled '.'", keyText(toks))
	}

	var segments []string
	var cur strings.Builder
	hasContent := false
	flush := func() error {
		if !hasContent {
			return badKey()
		}
		segments = append(segments, cur.String())
		cur.Reset()
		hasContent = false
		return nil
	}
	for _, pc := range cleaned {
		switch pc.kind {
		case pieceDot:
			if err := flush(); err != nil {
				return nil, err
			}
		case pieceQuoted:
			cur.WriteString(pc.text)
			hasContent = true
		case pieceText:
			cur.WriteString(pc.text)
			hasContent = true
		case pieceSpace:
			cur.WriteString(pc.text)
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return segments, nil
}

// keyText renders key tokens for error messages.
func keyText(toks []tokenizer.Token) string {
	var sb strings.Builder
	for _, tok := range toks {
		sb.WriteString(tok.Text)
	}
	return strings.TrimSpace(sb.String())
}
