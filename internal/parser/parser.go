// Package parser implements Herb's recursive-descent HTML+ERB parser (spec
// §4.2). It recognizes ERB tokens as first-class structural elements,
// recovers from malformed input, and enforces HTML rules: void elements,
// optional-end-tag auto-closing, implicit-close siblings, parent-close
// propagation, and foreign-content raw text for <script>/<style>.
//
// The single-lookahead-token recursive descent shape is grounded on the
// teacher's js_parser.parser. Unlike js_parser, which pulls tokens lazily
// from js_lexer and uses a LexerPanic/recover idiom to backtrack, Herb's
// parser tokenizes the whole input up front (the css_lexer.go style) and
// walks an index into that slice — simpler lookahead with no backtracking
// machinery needed, since an HTML/ERB grammar never needs to un-parse a
// token the way JS's ASI and arrow-function lookahead do.
package parser

import (
	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/cssparser"
	"github.com/marcoroth/herb/internal/diagnostic"
	"github.com/marcoroth/herb/internal/htmlrules"
	"github.com/marcoroth/herb/internal/lexer"
	"github.com/marcoroth/herb/internal/position"
	"github.com/marcoroth/herb/internal/token"
)

// Options controls parse behavior (spec §6.1).
type Options struct {
	// TrackWhitespace, when true, emits Whitespace nodes rather than
	// folding whitespace runs into surrounding Text nodes.
	TrackWhitespace bool
	// Strict is not read by this package: Parse always returns the
	// Document alone. Strict-mode rejection is applied by the root
	// herb.Parse, using ast.Diagnostics.
	Strict bool
}

// Parser walks a pre-lexed token slice, building the raw (pre-analysis)
// tree described in spec §4.2. Use New + ParseDocument, or the Parse
// convenience function.
type Parser struct {
	source   []byte
	tokens   []token.Token
	pos      int
	options  Options
	openTags []string // names of currently open elements, innermost last
}

// New constructs a Parser over already-lexed tokens.
func New(source []byte, tokens []token.Token, options Options) *Parser {
	return &Parser{source: source, tokens: tokens, options: options}
}

// Parse lexes source and parses it into a Document (spec §6.1 `parse`).
func Parse(source []byte, options Options) *ast.Document {
	tokens := lexer.Lex(source)
	p := New(source, tokens, options)
	return p.ParseDocument()
}

func (p *Parser) current() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek(offset int) token.Token {
	i := p.pos + offset
	if i < 0 || i >= len(p.tokens) {
		return token.Token{Kind: token.EOF}
	}
	return p.tokens[i]
}

func (p *Parser) advance() token.Token {
	t := p.current()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

func (p *Parser) atEOF() bool {
	return p.current().Kind == token.EOF
}

// nameConstituent reports whether a token kind may be part of a merged tag
// or attribute name (spec DESIGN.md open-question #4).
func nameConstituent(k token.Kind) bool {
	switch k {
	case token.IDENTIFIER, token.DASH, token.UNDERSCORE, token.COLON:
		return true
	default:
		return false
	}
}

// parseNameRun merges a run of name-constituent tokens starting at the
// current position into one synthetic Token, without requiring at least
// one token to match. When nothing matches, the returned token has an
// empty Value and carries the current token's Range and Location, so
// callers check len(Value) when they need to know.
func (p *Parser) parseNameRun() token.Token {
	start := p.pos
	if start >= len(p.tokens) || !nameConstituent(p.current().Kind) {
		return token.Token{Kind: token.IDENTIFIER, Range: p.current().Range, Location: p.current().Location}
	}
	first := p.current()
	var value []byte
	loc := first.Location
	rng := first.Range
	for nameConstituent(p.current().Kind) {
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
		rng = rng.Join(t.Range)
	}
	return token.Token{Kind: token.IDENTIFIER, Value: value, Range: rng, Location: loc}
}

// peekNameRun is parseNameRun's non-consuming counterpart, used for
// sibling/ancestor lookahead (auto-close decisions) without committing to a
// parse.
func (p *Parser) peekNameRun(start int) (string, int) {
	i := start
	var value []byte
	for i < len(p.tokens) && nameConstituent(p.tokens[i].Kind) {
		value = append(value, p.tokens[i].Value...)
		i++
	}
	return string(value), i
}

func isWhitespaceKind(k token.Kind) bool {
	return k == token.WHITESPACE || k == token.NEWLINE || k == token.NBSP
}

func (p *Parser) skipInlineWhitespace() {
	for isWhitespaceKind(p.current().Kind) {
		p.advance()
	}
}

// ParseDocument parses the whole token stream into a Document (spec §4.2
// Entry point).
func (p *Parser) ParseDocument() *ast.Document {
	doc := &ast.Document{Base: ast.Base{Kind: ast.KindDocument}}
	for !p.atEOF() {
		node := p.parseStructural()
		if node != nil {
			doc.Children = append(doc.Children, node)
		}
	}
	if len(doc.Children) > 0 {
		doc.Location = doc.Children[0].NodeBase().Location
		for _, c := range doc.Children {
			doc.Location = doc.Location.Join(c.NodeBase().Location)
		}
	}
	return doc
}

// parseStructural dispatches on the current token per spec §4.2's entry
// loop, and is reused by element bodies.
func (p *Parser) parseStructural() ast.Node {
	cur := p.current()
	switch cur.Kind {
	case token.HTML_DOCTYPE:
		return p.parseDoctype()
	case token.XML_DECLARATION:
		return p.parseXMLDeclaration()
	case token.HTML_COMMENT_START:
		return p.parseComment()
	case token.CDATA_START:
		return p.parseCData()
	case token.HTML_TAG_START:
		return p.parseElement()
	case token.HTML_TAG_START_CLOSE:
		return p.parseStrayCloseTag()
	case token.ERB_START:
		return p.parseERBNode()
	case token.WHITESPACE, token.NEWLINE, token.NBSP:
		if p.options.TrackWhitespace {
			return p.parseWhitespace()
		}
		return p.parseText()
	case token.EOF:
		return nil
	default:
		return p.parseText()
	}
}

func (p *Parser) parseDoctype() ast.Node {
	tok := p.advance()
	return &ast.Doctype{Base: ast.Base{Kind: ast.KindDoctype, Location: tok.Location}, Token: tok}
}

func (p *Parser) parseXMLDeclaration() ast.Node {
	tok := p.advance()
	return &ast.XMLDeclaration{Base: ast.Base{Kind: ast.KindXMLDeclaration, Location: tok.Location}, Token: tok}
}

// parseComment consumes "<!--", raw bytes (of any token kind) up to "-->",
// and the closing delimiter.
func (p *Parser) parseComment() ast.Node {
	opening := p.advance()
	content, _ := p.consumeRawUntil(token.HTML_COMMENT_END)
	var closing token.Token
	if p.current().Kind == token.HTML_COMMENT_END {
		closing = p.advance()
	}
	loc := opening.Location.Join(content.Location).Join(closing.Location)
	return &ast.Comment{
		Base:         ast.Base{Kind: ast.KindComment, Location: loc},
		OpeningToken: opening,
		Content:      content,
		ClosingToken: closing,
	}
}

func (p *Parser) parseCData() ast.Node {
	opening := p.advance()
	content, _ := p.consumeRawUntil(token.CDATA_END)
	if p.current().Kind == token.CDATA_END {
		p.advance()
	}
	loc := opening.Location.Join(content.Location)
	return &ast.CData{Base: ast.Base{Kind: ast.KindCData, Location: loc}, Content: content}
}

// consumeRawUntil merges every token up to (not including) the first token
// of kind stop into one synthetic token, leaving the stop token (or EOF) as
// the current token. Used for comment/CDATA bodies, which the lexer does
// not scan specially.
func (p *Parser) consumeRawUntil(stop token.Kind) (token.Token, bool) {
	var value []byte
	var loc position.Location
	var rng position.Range
	found := false
	for !p.atEOF() && p.current().Kind != stop {
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
		rng = rng.Join(t.Range)
	}
	if p.current().Kind == stop {
		found = true
	}
	return token.Token{Kind: token.CHARACTER, Value: value, Range: rng, Location: loc}, found
}

func (p *Parser) parseStrayCloseTag() ast.Node {
	opening := p.advance()
	name, endIdx := p.peekNameRun(p.pos)
	p.pos = endIdx
	p.skipInlineWhitespace()
	var closing token.Token
	if p.current().Kind == token.HTML_TAG_END {
		closing = p.advance()
	}
	loc := opening.Location.Join(closing.Location)
	ct := &ast.CloseTag{Base: ast.Base{Kind: ast.KindCloseTag, Location: loc}, OpeningToken: opening, ClosingToken: closing}
	ct.AddError(diagnostic.Newf(diagnostic.MissingOpeningTag, loc,
		"closing tag %q has no matching opening tag", name))
	return ct
}

// parseERBNode parses one atomic ERB tag into an ERBContent node (spec §3).
func (p *Parser) parseERBNode() *ast.ERBContent {
	opening := p.advance()
	var content token.Token
	if p.current().Kind == token.ERB_CONTENT {
		content = p.advance()
	}
	var closing token.Token
	if p.current().Kind == token.ERB_END {
		closing = p.advance()
	}
	loc := opening.Location.Join(content.Location).Join(closing.Location)
	node := &ast.ERBContent{
		Base:    ast.Base{Kind: ast.KindERBContent, Location: loc},
		Opening: opening,
		Content: content,
		Closing: closing,
	}
	return node
}

func isTagConstituentText(k token.Kind) bool {
	return k.TextProducing()
}

// parseText aggregates a run of consecutive text-producing tokens into one
// Text node (spec §4.2 parse_text).
func (p *Parser) parseText() ast.Node {
	start := p.pos
	var value []byte
	var loc position.Location
	for {
		cur := p.current()
		if !isTagConstituentText(cur.Kind) {
			break
		}
		if p.options.TrackWhitespace && isWhitespaceKind(cur.Kind) {
			break
		}
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
	}
	if p.pos == start {
		// Defensive: always make progress even on an unexpected token kind.
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
	}
	return &ast.Text{Base: ast.Base{Kind: ast.KindText, Location: loc}, Content: string(value)}
}

// parseWhitespace aggregates a run of whitespace/newline/nbsp tokens into
// one Whitespace node (only reachable when Options.TrackWhitespace is set).
func (p *Parser) parseWhitespace() ast.Node {
	var value []byte
	var loc position.Location
	for isWhitespaceKind(p.current().Kind) {
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
	}
	return &ast.Whitespace{Base: ast.Base{Kind: ast.KindWhitespace, Location: loc}, Content: string(value)}
}

// parseElement parses "<name ...>" through its body and close tag, per
// spec §4.2 parse_element / §4.2.1 auto-closing / §4.2.2 foreign content.
func (p *Parser) parseElement() *ast.Element {
	openTag, tagName, void := p.parseOpenTag()

	el := &ast.Element{
		Base:    ast.Base{Kind: ast.KindElement, Location: openTag.Location},
		OpenTag: openTag,
		TagName: openTag.TagName,
		Void:    void || htmlrules.IsVoidElement(tagName),
		Source:  "html",
	}
	if el.Void {
		el.Location = openTag.Location
		return el
	}

	p.openTags = append(p.openTags, tagName)
	defer p.popOpenTag()

	if htmlrules.IsForeignContentElement(tagName) {
		el.Body = p.parseForeignBody(tagName, htmlrules.EqualFold(tagName, "style"))
	} else {
		el.Body = p.parseElementBody(tagName)
	}

	closeTag, endLoc := p.consumeMatchingCloseTag(tagName, el)
	el.CloseTag = closeTag
	if closeTag != nil {
		el.Location = el.Location.Join(endLoc)
	} else if len(el.Body) > 0 {
		el.Location = el.Location.Join(el.Body[len(el.Body)-1].NodeBase().Location)
	}
	return el
}

func (p *Parser) popOpenTag() {
	if len(p.openTags) > 0 {
		p.openTags = p.openTags[:len(p.openTags)-1]
	}
}

func (p *Parser) isAncestorOpen(name string) bool {
	for _, t := range p.openTags[:len(p.openTags)-1] {
		if htmlrules.EqualFold(t, name) {
			return true
		}
	}
	return false
}

// parseElementBody parses ordinary (non-foreign) children until a close
// tag resolves (matching, implicit via sibling, or implicit via
// parent-close), or EOF.
func (p *Parser) parseElementBody(tagName string) []ast.Node {
	var body []ast.Node
	for {
		cur := p.current()
		switch {
		case cur.Kind == token.EOF:
			return body

		case cur.Kind == token.HTML_TAG_START_CLOSE:
			name, endIdx := p.peekNameRun(p.pos + 1)
			if htmlrules.EqualFold(name, tagName) {
				return body // let the caller consume the matching close tag
			}
			if p.isAncestorOpen(name) {
				// Parent-close propagation (spec §4.2.1 rule 3): this
				// element ends here, without consuming the close tag, so
				// the ancestor's own parseElementBody sees it next.
				return body
			}
			// Unrelated/mismatched close tag: record it and skip past it.
			p.pos = endIdx
			p.skipInlineWhitespace()
			var closing token.Token
			if p.current().Kind == token.HTML_TAG_END {
				closing = p.advance()
			}
			loc := cur.Location.Join(closing.Location)
			stray := &ast.CloseTag{Base: ast.Base{Kind: ast.KindCloseTag, Location: loc}}
			stray.AddError(diagnostic.Newf(diagnostic.TagNamesMismatch, loc,
				"closing tag %q does not match any open element named %q", name, tagName))
			body = append(body, stray)

		case cur.Kind == token.HTML_TAG_START:
			name, _ := p.peekNameRun(p.pos + 1)
			if htmlrules.IsOptionalEndElement(tagName) && htmlrules.ImplicitlyCloses(tagName, name) {
				// Sibling-triggered implicit close (spec §4.2.1 rule 2):
				// return without consuming so the parent loop re-parses
				// this "<...>" as the next sibling.
				return body
			}
			body = append(body, p.parseElement())

		case cur.Kind == token.ERB_START:
			body = append(body, p.parseERBNode())

		case cur.Kind == token.HTML_DOCTYPE:
			body = append(body, p.parseDoctype())
		case cur.Kind == token.XML_DECLARATION:
			body = append(body, p.parseXMLDeclaration())
		case cur.Kind == token.HTML_COMMENT_START:
			body = append(body, p.parseComment())
		case cur.Kind == token.CDATA_START:
			body = append(body, p.parseCData())

		case cur.Kind == token.WHITESPACE, cur.Kind == token.NEWLINE, cur.Kind == token.NBSP:
			if p.options.TrackWhitespace {
				body = append(body, p.parseWhitespace())
			} else {
				body = append(body, p.parseText())
			}

		default:
			body = append(body, p.parseText())
		}
	}
}

// parseForeignBody accumulates raw content for <script>/<style>, still
// recognizing ERB tokens, per spec §4.2.2.
func (p *Parser) parseForeignBody(tagName string, isStyle bool) []ast.Node {
	var body []ast.Node
	var rawValue []byte
	var rawLoc position.Location
	var rawRange position.Range

	flush := func() {
		if len(rawValue) == 0 {
			return
		}
		contentTok := token.Token{Kind: token.CHARACTER, Value: rawValue, Range: rawRange, Location: rawLoc}
		if isStyle {
			body = append(body, parseEmbeddedCSS(contentTok))
		} else {
			body = append(body, &ast.Text{Base: ast.Base{Kind: ast.KindText, Location: rawLoc}, Content: string(rawValue)})
		}
		rawValue = nil
		rawLoc = position.Location{}
		rawRange = position.Range{}
	}

	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			flush()
			return body
		}
		if cur.Kind == token.ERB_START {
			flush()
			body = append(body, p.parseERBNode())
			continue
		}
		if cur.Kind == token.HTML_TAG_START_CLOSE {
			name, _ := p.peekNameRun(p.pos + 1)
			if htmlrules.EqualFold(name, tagName) {
				flush()
				return body
			}
		}
		t := p.advance()
		rawValue = append(rawValue, t.Value...)
		rawLoc = rawLoc.Join(t.Location)
		rawRange = rawRange.Join(t.Range)
	}
}

// consumeMatchingCloseTag consumes "</tagName>" at the current position if
// it is there. parseElementBody only returns without leaving a matching
// close tag for one of three reasons, and each gets different treatment:
// a sibling's opening tag triggered an implicit close (rule 2) or an
// ancestor's close tag propagated past this element (rule 3) are both
// valid per spec §4.2.1 and draw no diagnostic; running out of input with
// no close tag in sight at all is a genuine MissingClosingTag.
func (p *Parser) consumeMatchingCloseTag(tagName string, el *ast.Element) (*ast.CloseTag, position.Location) {
	switch {
	case p.current().Kind == token.HTML_TAG_START_CLOSE:
		if name, _ := p.peekNameRun(p.pos + 1); !htmlrules.EqualFold(name, tagName) {
			// Belongs to an ancestor; leave it for that element's own
			// consumeMatchingCloseTag call to consume.
			return nil, position.Location{}
		}
	case p.current().Kind != token.EOF:
		return nil, position.Location{}
	default:
		el.AddError(diagnostic.Newf(diagnostic.MissingClosingTag, el.OpenTag.TagName.Location,
			"element %q is missing its closing tag", tagName))
		return nil, position.Location{}
	}
	opening := p.advance()
	nameTok := p.parseNameRun()
	p.skipInlineWhitespace()
	var closing token.Token
	if p.current().Kind == token.HTML_TAG_END {
		closing = p.advance()
	} else {
		el.AddError(diagnostic.Newf(diagnostic.MissingClosingTag, el.OpenTag.TagName.Location,
			"element %q is missing its closing tag", tagName))
	}
	loc := opening.Location.Join(nameTok.Location).Join(closing.Location)
	ct := &ast.CloseTag{
		Base:         ast.Base{Kind: ast.KindCloseTag, Location: loc},
		OpeningToken: opening,
		TagName:      nameTok,
		ClosingToken: closing,
	}
	if !htmlrules.EqualFold(nameTok.Text(), tagName) {
		ct.AddError(diagnostic.Newf(diagnostic.TagNamesMismatch, loc,
			"closing tag %q does not match opening tag %q", nameTok.Text(), tagName))
	}
	return ct, loc
}

// parseOpenTag parses "<name attr...>" or "<name attr.../>" (spec §4.2
// parse_element step 1).
func (p *Parser) parseOpenTag() (*ast.OpenTag, string, bool) {
	opening := p.advance() // "<"
	nameTok := p.parseNameRun()
	tagName := nameTok.Text()

	ot := &ast.OpenTag{
		Base:         ast.Base{Kind: ast.KindOpenTag},
		OpeningToken: opening,
		TagName:      nameTok,
	}

	for {
		p.skipInlineWhitespace()
		cur := p.current()
		switch {
		case cur.Kind == token.HTML_TAG_END:
			ot.ClosingToken = p.advance()
			ot.SelfClosing = false
			ot.Location = opening.Location.Join(ot.ClosingToken.Location)
			return ot, tagName, false

		case cur.Kind == token.HTML_TAG_SELF_CLOSE:
			ot.ClosingToken = p.advance()
			ot.SelfClosing = true
			ot.Location = opening.Location.Join(ot.ClosingToken.Location)
			return ot, tagName, true

		case cur.Kind == token.EOF:
			ot.Location = opening.Location.Join(nameTok.Location)
			ot.AddError(diagnostic.Newf(diagnostic.UnexpectedInput, ot.Location,
				"unterminated opening tag for %q", tagName))
			return ot, tagName, false

		case cur.Kind == token.ERB_START:
			erb := p.parseERBNode()
			ot.Attributes = append(ot.Attributes, wrapAttributeERB(erb))

		default:
			if !nameConstituent(cur.Kind) && cur.Kind != token.EQUALS {
				// A token that cannot start an attribute name: record it and
				// step past it so the loop always makes progress.
				bad := p.advance()
				ot.AddError(diagnostic.Newf(diagnostic.UnexpectedToken, bad.Location,
					"unexpected %q in opening tag for %q", bad.Text(), tagName))
				continue
			}
			ot.Attributes = append(ot.Attributes, p.parseAttribute())
		}
	}
}

// wrapAttributeERB classifies an ERB tag found in attribute position as a
// splat (AttributeSpread) when its content starts with "**", otherwise as
// an AttributeConditional (spec §3's AttributeList item union). The choice
// is purely syntactic and no later pass revisits it; internal/rubyanalyzer
// only sets the wrapped ERBContent's classification flags.
func wrapAttributeERB(erb *ast.ERBContent) ast.Node {
	trimmed := trimLeadingSpace(erb.Content.Text())
	if hasPrefix(trimmed, "**") {
		return &ast.AttributeSpread{
			Base:    ast.Base{Kind: ast.KindAttributeSpread, Location: erb.Location},
			Content: erb.Content,
		}
	}
	return &ast.AttributeConditional{
		Base:      ast.Base{Kind: ast.KindAttributeConditional, Location: erb.Location},
		Condition: erb,
	}
}

func trimLeadingSpace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return s[i:]
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

// parseAttribute parses "name", "name=value" (spec §4.2 parse_element
// step 1, AttributeList item = Attribute).
func (p *Parser) parseAttribute() ast.Node {
	nameTok := p.parseNameRun()
	attrName := &ast.AttributeName{Base: ast.Base{Kind: ast.KindAttributeName, Location: nameTok.Location}, Name: nameTok}
	attr := &ast.Attribute{Base: ast.Base{Kind: ast.KindAttribute, Location: nameTok.Location}, Name: attrName}

	save := p.pos
	p.skipInlineWhitespace()
	if p.current().Kind == token.EQUALS {
		eq := p.advance()
		attr.Equals = &eq
		p.skipInlineWhitespace()
		value := p.parseAttributeValue()
		attr.Value = value
		attr.Location = attr.Location.Join(eq.Location).Join(value.Location)
	} else {
		p.pos = save
	}
	return attr
}

// parseAttributeValue parses a quoted or bare attribute value, whose
// children may interleave Literal text and ERBContent (spec §3
// AttributeValue).
func (p *Parser) parseAttributeValue() *ast.AttributeValue {
	cur := p.current()
	if cur.Kind == token.QUOTE {
		quoteByte := cur.Value[0]
		openQuote := p.advance()
		children := p.parseAttributeValueChildren(quoteByte)
		var closeQuote token.Token
		if p.current().Kind == token.QUOTE && p.current().Value[0] == quoteByte {
			closeQuote = p.advance()
		}
		loc := openQuote.Location.Join(closeQuote.Location)
		if len(children) > 0 {
			loc = loc.Join(children[len(children)-1].NodeBase().Location)
		}
		return &ast.AttributeValue{
			Base: ast.Base{Kind: ast.KindAttributeValue, Location: loc},
			OpenQuote: &openQuote, Children: children, CloseQuote: &closeQuote, Quoted: true,
		}
	}

	// Bare (unquoted) value: a single run of text-producing tokens.
	start := p.pos
	var value []byte
	var loc position.Location
	for isTagConstituentText(p.current().Kind) && !isWhitespaceKind(p.current().Kind) {
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
	}
	if p.pos == start {
		t := p.advance()
		value = append(value, t.Value...)
		loc = loc.Join(t.Location)
	}
	lit := &ast.Literal{Base: ast.Base{Kind: ast.KindLiteral, Location: loc}, Content: string(value)}
	return &ast.AttributeValue{Base: ast.Base{Kind: ast.KindAttributeValue, Location: loc}, Children: []ast.Node{lit}, Quoted: false}
}

// parseEmbeddedCSS dispatches the raw content of a <style> body into
// internal/cssparser (spec §4.2.2's "external CSS parser" for style
// contents) and wraps the result as a CSSStyle node.
func parseEmbeddedCSS(contentTok token.Token) ast.Node {
	sheet := cssparser.Parse(contentTok.Text())
	style := &ast.CSSStyle{
		Base:    ast.Base{Kind: ast.KindCSSStyle, Location: contentTok.Location},
		Content: contentTok,
	}
	for _, r := range sheet.Rules {
		rule := &ast.CSSRule{
			Base:     ast.Base{Kind: ast.KindCSSRule, Location: contentTok.Location},
			Selector: r.Selector,
		}
		for _, d := range r.Declarations {
			rule.Declarations = append(rule.Declarations, &ast.CSSDeclaration{
				Base:     ast.Base{Kind: ast.KindCSSDeclaration, Location: contentTok.Location},
				Property: d.Property,
				Value:    d.Value,
			})
		}
		style.Rules = append(style.Rules, rule)
	}
	return style
}

func (p *Parser) parseAttributeValueChildren(quoteByte byte) []ast.Node {
	var children []ast.Node
	var literal []byte
	var litLoc position.Location

	flush := func() {
		if len(literal) == 0 {
			return
		}
		children = append(children, &ast.Literal{Base: ast.Base{Kind: ast.KindLiteral, Location: litLoc}, Content: string(literal)})
		literal = nil
		litLoc = position.Location{}
	}

	for {
		cur := p.current()
		if cur.Kind == token.EOF {
			break
		}
		if cur.Kind == token.QUOTE && len(cur.Value) > 0 && cur.Value[0] == quoteByte {
			break
		}
		if cur.Kind == token.ERB_START {
			flush()
			children = append(children, p.parseERBNode())
			continue
		}
		t := p.advance()
		literal = append(literal, t.Value...)
		litLoc = litLoc.Join(t.Location)
	}
	flush()
	return children
}
