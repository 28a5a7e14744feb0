// Package rubyanalyzer implements spec §4.3: it re-parses the Ruby source
// of every ERBContent node that holds a complete expression with an
// embedded Ruby parser (control-flow keyword fragments are classified from
// their text alone), classifies each fragment, and rewrites flat ERB+HTML sibling sequences into nested
// control-flow subtrees.
//
// The "embedded Ruby parser" is treated as an external collaborator per
// spec §9 — this file is the only one that imports it. It is wired to the
// real tree-sitter Ruby grammar binding, grounded on
// other_examples/...l3aro-go-context-query__pkg-extractor-ruby.go and
// other_examples/...panbanda-omen__internal-semantic-ruby_test.go, both of
// which drive sitter.NewParser()+ruby.GetLanguage() over Ruby source and
// walk the resulting *sitter.Node tree by Type()/Child()/Content().
package rubyanalyzer

import (
	"context"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/ruby"

	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/diagnostic"
	"github.com/marcoroth/herb/internal/position"
)

// Adapter is the interface internal/rubyanalyzer depends on; swapping the
// embedded Ruby parser means implementing this, not touching the rewrite
// logic in controlflow.go.
type Adapter interface {
	// Parse parses a Ruby source fragment and returns a RootKind summary
	// plus any parse diagnostics, positions already local to the fragment
	// (callers remap them to the source document).
	Parse(src []byte) (rootKind string, raw any, diags []FragmentDiagnostic)
}

// FragmentDiagnostic is a Ruby-parser error local to one ERB fragment's
// byte range, before remapping to the surrounding document (spec §7).
type FragmentDiagnostic struct {
	Message    string
	StartByte  uint32
	EndByte    uint32
}

// treeSitterPool mirrors the teacher example's sync.Pool of reusable
// parsers (other_examples' rubyParserPool) — tree-sitter parsers are not
// safe for concurrent use but are expensive enough to construct that
// pooling them across fragments within one analysis pass is worthwhile.
var treeSitterPool = sync.Pool{
	New: func() any {
		p := sitter.NewParser()
		p.SetLanguage(ruby.GetLanguage())
		return p
	},
}

// TreeSitterAdapter is the default Adapter, backed by
// github.com/smacker/go-tree-sitter's Ruby grammar.
type TreeSitterAdapter struct{}

func (TreeSitterAdapter) Parse(src []byte) (string, any, []FragmentDiagnostic) {
	p := treeSitterPool.Get().(*sitter.Parser)
	defer treeSitterPool.Put(p)

	tree, err := p.ParseCtx(context.Background(), nil, src)
	if err != nil || tree == nil {
		return "", nil, []FragmentDiagnostic{{Message: "ruby fragment failed to parse", StartByte: 0, EndByte: uint32(len(src))}}
	}

	root := tree.RootNode()
	rootKind := rootExpressionKind(root)
	diags := collectErrorDiagnostics(root)
	return rootKind, tree, diags
}

// rootExpressionKind walks past the synthetic "program"/"statements"
// wrapper tree-sitter-ruby adds around a single top-level expression and
// returns the type name of the expression itself (e.g. "call", "if",
// "method_call", "binary"); it is stored as AnalyzedRuby.RootKind.
func rootExpressionKind(root *sitter.Node) string {
	n := root
	for n != nil && (n.Type() == "program" || n.Type() == "statements") && n.NamedChildCount() == 1 {
		n = n.NamedChild(0)
	}
	if n == nil {
		return ""
	}
	return n.Type()
}

// collectErrorDiagnostics walks the tree for ERROR/MISSING nodes, which is
// how tree-sitter reports a syntax error inside an otherwise-valid parse
// (its whole design point is resilience: a single bad fragment never
// crashes the parse, it just yields error nodes — exactly the "errors are
// data" posture spec §7 asks Herb's own parser to have).
func collectErrorDiagnostics(root *sitter.Node) []FragmentDiagnostic {
	var diags []FragmentDiagnostic
	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		if n == nil {
			return
		}
		if n.IsError() || n.IsMissing() {
			diags = append(diags, FragmentDiagnostic{
				Message:   "Ruby syntax error: unexpected " + n.Type(),
				StartByte: n.StartByte(),
				EndByte:   n.EndByte(),
			})
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			walk(n.Child(i))
		}
	}
	walk(root)
	return diags
}

// remapDiagnostics translates fragment-local byte offsets (relative to the
// ERBContent's Content token) back into document-wide positions by walking
// the intervening bytes, per spec §7's "remapped from offsets in the ERB
// content's local byte range back to positions in the original source by
// walking the intervening bytes".
func remapDiagnostics(contentStart position.Position, contentBytes []byte, diags []FragmentDiagnostic) []diagnostic.Diagnostic {
	out := make([]diagnostic.Diagnostic, 0, len(diags))
	for _, d := range diags {
		start := advancePosition(contentStart, contentBytes[:clampByte(d.StartByte, contentBytes)])
		end := advancePosition(contentStart, contentBytes[:clampByte(d.EndByte, contentBytes)])
		out = append(out, diagnostic.New(diagnostic.RubyParseError, d.Message, position.Location{Start: start, End: end}))
	}
	return out
}

func clampByte(b uint32, buf []byte) int {
	if int(b) > len(buf) {
		return len(buf)
	}
	return int(b)
}

func advancePosition(start position.Position, consumed []byte) position.Position {
	pos := start
	for _, b := range consumed {
		if b == '\n' {
			pos.Line++
			pos.Column = 0
		} else {
			pos.Column++
		}
	}
	return pos
}

// RootKind returns the root-node type string recorded for an
// already-analyzed ERBContent, or "" when it has not been analyzed.
func RootKind(node *ast.ERBContent) string {
	if node == nil || node.Analyzed == nil {
		return ""
	}
	return node.Analyzed.RootKind
}

// trimmedContent trims surrounding whitespace from an ERB content
// token's text, used both for keyword classification and for feeding a
// syntactically-complete fragment to the Ruby parser.
func trimmedContent(s string) string {
	return strings.TrimSpace(s)
}
