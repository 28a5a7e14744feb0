// Package ast defines Herb's closed AST node taxonomy (spec §3). The shape
// is grounded on the teacher's js_ast.E/js_ast.S marker-interface-plus-Data
// pattern (Expr{Data E, Loc Loc}; func (*EBinary) isExpr(){}) — here there
// is only one sum type, Node, since HTML/ERB/Ruby/CSS nodes all share one
// tree rather than esbuild's separate expression/statement trees.
package ast

import (
	"github.com/marcoroth/herb/internal/diagnostic"
	"github.com/marcoroth/herb/internal/position"
	"github.com/marcoroth/herb/internal/token"
)

// Kind identifies which concrete node type a Node wraps, letting callers
// switch on Node.NodeKind() without a type assertion when they only need
// to know the shape, not the fields.
type Kind uint8

const (
	KindDocument Kind = iota
	KindElement
	KindOpenTag
	KindCloseTag
	KindSelfCloseTag
	KindDoctype
	KindXMLDeclaration
	KindCData
	KindComment
	KindText
	KindWhitespace
	KindAttribute
	KindAttributeConditional
	KindAttributeSpread
	KindAttributeName
	KindAttributeValue
	KindERBContent
	KindERBIf
	KindERBUnless
	KindERBElse
	KindERBCase
	KindERBWhen
	KindERBIn
	KindERBBegin
	KindERBRescue
	KindERBEnsure
	KindERBFor
	KindERBWhile
	KindERBUntil
	KindERBBlock
	KindERBEnd
	KindLiteral
	KindRubyLiteral
	KindCSSStyle
	KindCSSRule
	KindCSSDeclaration
)

// Node is the marker interface implemented by every AST node kind. It is
// never called directly — like js_ast.E/js_ast.S, its only purpose is to
// encode a closed sum type in Go's type system.
type Node interface {
	isNode()
	NodeKind() Kind
	NodeBase() *Base
}

// Base is the shared base every node variant embeds (spec §3 "AST Node
// (base)"): its Kind, source Location, and an ordered Diagnostic list.
type Base struct {
	Kind     Kind
	Location position.Location
	Errors   []diagnostic.Diagnostic
}

func (b *Base) NodeBase() *Base { return b }
func (b *Base) NodeKind() Kind  { return b.Kind }

// DiagnosticLabel implements diagnostic.RelatedNode minimally: the node
// kind name, since Herb's diagnostics only need "what kind of node was this
// attached to" for debugging/formatting, not a full node dump.
func (b *Base) DiagnosticLabel() string { return b.Kind.String() }

// AddError appends a diagnostic to the node, keeping insertion order (spec
// §3: "ordered sequence of Diagnostic").
func (b *Base) AddError(d diagnostic.Diagnostic) {
	b.Errors = append(b.Errors, d)
}

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindElement:
		return "Element"
	case KindOpenTag:
		return "OpenTag"
	case KindCloseTag:
		return "CloseTag"
	case KindSelfCloseTag:
		return "SelfCloseTag"
	case KindDoctype:
		return "Doctype"
	case KindXMLDeclaration:
		return "XmlDeclaration"
	case KindCData:
		return "CData"
	case KindComment:
		return "Comment"
	case KindText:
		return "Text"
	case KindWhitespace:
		return "Whitespace"
	case KindAttribute:
		return "Attribute"
	case KindAttributeConditional:
		return "AttributeConditional"
	case KindAttributeSpread:
		return "AttributeSpread"
	case KindAttributeName:
		return "AttributeName"
	case KindAttributeValue:
		return "AttributeValue"
	case KindERBContent:
		return "ERBContent"
	case KindERBIf:
		return "ERBIf"
	case KindERBUnless:
		return "ERBUnless"
	case KindERBElse:
		return "ERBElse"
	case KindERBCase:
		return "ERBCase"
	case KindERBWhen:
		return "ERBWhen"
	case KindERBIn:
		return "ERBIn"
	case KindERBBegin:
		return "ERBBegin"
	case KindERBRescue:
		return "ERBRescue"
	case KindERBEnsure:
		return "ERBEnsure"
	case KindERBFor:
		return "ERBFor"
	case KindERBWhile:
		return "ERBWhile"
	case KindERBUntil:
		return "ERBUntil"
	case KindERBBlock:
		return "ERBBlock"
	case KindERBEnd:
		return "ERBEnd"
	case KindLiteral:
		return "Literal"
	case KindRubyLiteral:
		return "RubyLiteral"
	case KindCSSStyle:
		return "CSSStyle"
	case KindCSSRule:
		return "CSSRule"
	case KindCSSDeclaration:
		return "CSSDeclaration"
	default:
		return "Unknown"
	}
}

// Document is the top-level node: a sequence of structural children.
type Document struct {
	Base
	Children []Node
}

func (*Document) isNode() {}

// Element is an HTML (or ERB/ActionView-synthesized) element.
type Element struct {
	Base
	OpenTag  *OpenTag
	TagName  token.Token
	Body     []Node
	CloseTag *CloseTag
	Void     bool
	// Source identifies where this element came from: "html" for an
	// ordinary parsed element, or an ActionView helper origin string such as
	// "ActionView::Helpers::TagHelper#tag" (spec §4.4).
	Source string
}

func (*Element) isNode() {}

// OpenTag is the "<name attr...>" or "<name attr.../>" prefix of an Element.
type OpenTag struct {
	Base
	OpeningToken token.Token // "<"
	TagName      token.Token
	Attributes   []Node // Attribute | AttributeConditional | AttributeSpread
	ClosingToken token.Token // ">" or "/>"
	SelfClosing  bool
}

func (*OpenTag) isNode() {}

// CloseTag is the "</name>" suffix of an Element.
type CloseTag struct {
	Base
	OpeningToken token.Token // "</"
	TagName      token.Token
	ClosingToken token.Token // ">"
}

func (*CloseTag) isNode() {}

// SelfCloseTag represents the "/>" form standing in for a close tag on a
// void or explicitly self-closed element.
type SelfCloseTag struct {
	Base
	Token token.Token
}

func (*SelfCloseTag) isNode() {}

// Doctype is a "<!doctype ...>" declaration.
type Doctype struct {
	Base
	Token token.Token
}

func (*Doctype) isNode() {}

// XMLDeclaration is a "<?xml ... ?>" declaration.
type XMLDeclaration struct {
	Base
	Token token.Token
}

func (*XMLDeclaration) isNode() {}

// CData is a "<![CDATA[ ... ]]>" section.
type CData struct {
	Base
	Content token.Token
}

func (*CData) isNode() {}

// Comment is a "<!-- ... -->" HTML comment.
type Comment struct {
	Base
	OpeningToken token.Token
	Content      token.Token
	ClosingToken token.Token
}

func (*Comment) isNode() {}

// Text is a run of plain text (spec §4.2 "aggregates consecutive
// text-producing tokens").
type Text struct {
	Base
	Content string
}

func (*Text) isNode() {}

// Whitespace is an aggregated run of whitespace/newline/nbsp tokens,
// produced only when parse Options.TrackWhitespace is true.
type Whitespace struct {
	Base
	Content string
}

func (*Whitespace) isNode() {}

// Attribute is a plain "name" or "name=value" attribute.
type Attribute struct {
	Base
	Name   *AttributeName
	Equals *token.Token // nil when the attribute has no value
	Value  *AttributeValue
}

func (*Attribute) isNode() {}

// AttributeConditional is an ERB branch producing zero or more attributes
// (spec §3 AttributeList item union).
type AttributeConditional struct {
	Base
	Condition Node // an ERBIf/ERBUnless/ERBContent node
}

func (*AttributeConditional) isNode() {}

// AttributeSpread is a Ruby "**splat" spread inside an open tag's
// attribute list, or inside a tag-helper's keyword-hash argument (spec
// §4.4).
type AttributeSpread struct {
	Base
	Content token.Token
	// Prefix is "data", "aria", or "" for a top-level splat (spec §4.4).
	Prefix string
}

func (*AttributeSpread) isNode() {}

// AttributeName is the bare name token of an Attribute.
type AttributeName struct {
	Base
	Name token.Token
}

func (*AttributeName) isNode() {}

// AttributeValue is the (optionally quoted) value of an Attribute, whose
// children may interleave Literal and RubyLiteral/ERBContent pieces when
// the value contains ERB or Ruby string interpolation.
type AttributeValue struct {
	Base
	OpenQuote  *token.Token
	Children   []Node
	CloseQuote *token.Token
	Quoted     bool
}

func (*AttributeValue) isNode() {}

// ERBContent is an atomic ERB tag: <% %>, <%= %>, <%# %>, or <%- -%>
// (spec §3 "ERB atomic").
type ERBContent struct {
	Base
	Opening token.Token // "<%" | "<%=" | "<%-" | "<%#"
	Content token.Token
	Closing token.Token // "%>" | "-%>"

	// Parsed/valid/analyzed state, populated by internal/rubyanalyzer.
	Parsed   bool
	Valid    bool
	Analyzed *AnalyzedRuby

	Flags ClassificationFlags
}

func (*ERBContent) isNode() {}

// ClassificationFlags records which Ruby control-flow constructs the
// embedded Ruby classifies as (spec §3 ERBContent / §4.3), taken as the
// documented superset per DESIGN.md's open-question resolution.
type ClassificationFlags struct {
	HasIf      bool
	HasElsif   bool
	HasElse    bool
	HasEnd     bool
	HasCase    bool
	HasWhen    bool
	HasIn      bool
	HasFor     bool
	HasWhile   bool
	HasUntil   bool
	HasBegin   bool
	HasRescue  bool
	HasEnsure  bool
	HasBlock   bool
	HasYield   bool
	HasUnless  bool
}

// IsControlOpener reports whether these flags mark the start of a block
// the control-flow analyzer must find a matching `end` for.
func (f ClassificationFlags) IsControlOpener() bool {
	return f.HasIf || f.HasUnless || f.HasCase || f.HasBegin || f.HasFor ||
		f.HasWhile || f.HasUntil || f.HasBlock
}

// AnalyzedRuby is the lazily-cached result of re-parsing an ERBContent's
// Ruby source with the embedded Ruby parser (internal/rubyanalyzer). Kept
// as an opaque handle here so internal/ast never imports the tree-sitter
// binding directly — only internal/rubyanalyzer does (spec §9's "treat as
// an external collaborator" note).
type AnalyzedRuby struct {
	// RootKind is a short description of the parsed root node's shape
	// (e.g. "call", "if", "method_call"). internal/actionview does not read
	// it; it recognizes tag-helper calls from the ERB content text.
	RootKind string
	// Diagnostics are Ruby-parser errors, already remapped to source
	// positions (spec §7).
	Diagnostics []diagnostic.Diagnostic
	// Raw holds the adapter-specific parse tree handle (an *sitter.Tree in
	// the tree-sitter-backed implementation), stored as `any` so this
	// package has zero dependency on the Ruby parser library.
	Raw any
}

// ERBIf is a rewritten if/elsif/else/end chain (spec §4.3).
type ERBIf struct {
	Base
	TagOpening      token.Token // "<%"
	ConditionToken  token.Token
	TagClosing      token.Token // "%>"
	ThenKeyword     *token.Token
	Children        []Node
	Subsequent      Node // *ERBIf (elsif) | *ERBElse | nil
	EndNode         *ERBEnd
}

func (*ERBIf) isNode() {}

// ERBUnless mirrors ERBIf for "unless".
type ERBUnless struct {
	Base
	TagOpening     token.Token
	ConditionToken token.Token
	TagClosing     token.Token
	Children       []Node
	Subsequent     Node // *ERBElse | nil
	EndNode        *ERBEnd
}

func (*ERBUnless) isNode() {}

// ERBElse is the "else" clause of an if/unless/case/begin chain.
type ERBElse struct {
	Base
	TagOpening token.Token
	TagClosing token.Token
	Children   []Node
}

func (*ERBElse) isNode() {}

// ERBCase is a rewritten case/when/in/else/end chain.
type ERBCase struct {
	Base
	TagOpening    token.Token
	SubjectToken  token.Token
	TagClosing    token.Token
	Children      []Node // *ERBWhen | *ERBIn
	Else          *ERBElse
	EndNode       *ERBEnd
}

func (*ERBCase) isNode() {}

// ERBWhen is a "when" clause inside an ERBCase.
type ERBWhen struct {
	Base
	TagOpening    token.Token
	PatternToken  token.Token
	TagClosing    token.Token
	Children      []Node
}

func (*ERBWhen) isNode() {}

// ERBIn is an "in" (pattern-matching) clause inside an ERBCase.
type ERBIn struct {
	Base
	TagOpening   token.Token
	PatternToken token.Token
	TagClosing   token.Token
	Children     []Node
}

func (*ERBIn) isNode() {}

// ERBBegin is a rewritten begin/rescue/else/ensure/end chain.
type ERBBegin struct {
	Base
	TagOpening token.Token
	TagClosing token.Token
	Children   []Node
	Rescues    []*ERBRescue
	Else       *ERBElse
	Ensure     *ERBEnsure
	EndNode    *ERBEnd
}

func (*ERBBegin) isNode() {}

// ERBRescue is a "rescue" clause inside an ERBBegin.
type ERBRescue struct {
	Base
	TagOpening    token.Token
	ConditionToken token.Token
	TagClosing    token.Token
	Children      []Node
}

func (*ERBRescue) isNode() {}

// ERBEnsure is the "ensure" clause inside an ERBBegin.
type ERBEnsure struct {
	Base
	TagOpening token.Token
	TagClosing token.Token
	Children   []Node
}

func (*ERBEnsure) isNode() {}

// ERBFor is a rewritten for/end loop.
type ERBFor struct {
	Base
	TagOpening     token.Token
	ConditionToken token.Token
	TagClosing     token.Token
	Children       []Node
	EndNode        *ERBEnd
}

func (*ERBFor) isNode() {}

// ERBWhile is a rewritten while/end loop.
type ERBWhile struct {
	Base
	TagOpening     token.Token
	ConditionToken token.Token
	TagClosing     token.Token
	Children       []Node
	EndNode        *ERBEnd
}

func (*ERBWhile) isNode() {}

// ERBUntil is a rewritten until/end loop.
type ERBUntil struct {
	Base
	TagOpening     token.Token
	ConditionToken token.Token
	TagClosing     token.Token
	Children       []Node
	EndNode        *ERBEnd
}

func (*ERBUntil) isNode() {}

// ERBBlock is a rewritten generic Ruby block (e.g. "<% items.each do |i| %>
// ... <% end %>"), also the basis for block-form tag helpers (spec §4.4).
type ERBBlock struct {
	Base
	Opening token.Token
	Content token.Token
	Closing token.Token
	Body    []Node
	EndNode *ERBEnd
}

func (*ERBBlock) isNode() {}

// ERBEnd is the terminating "<% end %>" of any ERB structural node.
type ERBEnd struct {
	Base
	TagOpening token.Token
	Content    token.Token
	TagClosing token.Token
}

func (*ERBEnd) isNode() {}

// Literal is a plain-text fragment of an attribute value.
type Literal struct {
	Base
	Content string
}

func (*Literal) isNode() {}

// RubyLiteral is a verbatim Ruby source slice used as an attribute value or
// value placeholder (spec §3 Literals, §4.4 attribute extraction).
type RubyLiteral struct {
	Base
	Content string
}

func (*RubyLiteral) isNode() {}

// CSSStyle is the root of a parsed <style> body (spec §3 CSS).
type CSSStyle struct {
	Base
	Content token.Token
	Rules   []*CSSRule
}

func (*CSSStyle) isNode() {}

// CSSRule is a single selector + declaration block.
type CSSRule struct {
	Base
	Selector     string
	Declarations []*CSSDeclaration
}

func (*CSSRule) isNode() {}

// CSSDeclaration is a single "property: value" pair.
type CSSDeclaration struct {
	Base
	Property string
	Value    string
}

func (*CSSDeclaration) isNode() {}
