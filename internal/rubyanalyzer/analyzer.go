package rubyanalyzer

import (
	"github.com/marcoroth/herb/internal/ast"
)

// Analyze is the package's single entry point (spec §4.3): it classifies
// every ERBContent in doc, re-parses the plain-expression ones with
// adapter (nil selects TreeSitterAdapter{}), and rewrites each sibling
// list, including every Element's body, into nested control-flow nodes.
func Analyze(doc *ast.Document, adapter Adapter) *ast.Document {
	if adapter == nil {
		adapter = TreeSitterAdapter{}
	}
	classifyTree(doc.Children, adapter)
	doc.Children = Rewrite(doc.Children)
	return doc
}

// classifyTree walks the still-flat parse tree (before control-flow
// rewriting) and classifies every ERBContent it finds, including ones
// nested in attribute values and attribute conditionals.
func classifyTree(nodes []ast.Node, adapter Adapter) {
	for _, n := range nodes {
		switch v := n.(type) {
		case *ast.ERBContent:
			classifyNode(v, adapter)
		case *ast.Element:
			if v.OpenTag != nil {
				classifyTree(v.OpenTag.Attributes, adapter)
			}
			classifyTree(v.Body, adapter)
		case *ast.Attribute:
			if v.Value != nil {
				classifyTree(v.Value.Children, adapter)
			}
		case *ast.AttributeValue:
			classifyTree(v.Children, adapter)
		case *ast.AttributeConditional:
			if erb, ok := v.Condition.(*ast.ERBContent); ok {
				classifyNode(erb, adapter)
			}
		}
	}
}

// classifyNode populates one ERBContent's Flags/Parsed/Valid/Analyzed.
// Control-flow keyword fragments ("if foo", "end", "rescue => e", ...) are
// never handed to the embedded Ruby parser: they are not complete
// programs by construction, so asking tree-sitter to parse them would
// only produce spurious error diagnostics for perfectly valid templates.
// Everything else — plain expressions, tag-helper calls, block openers
// like "items.each do |i|" — is a syntactically complete fragment and is
// re-parsed for real.
func classifyNode(erb *ast.ERBContent, adapter Adapter) {
	text := trimmedContent(erb.Content.Text())
	erb.Flags = Classify(text)
	erb.Parsed = true

	if isControlFragment(erb.Flags) {
		erb.Valid = true
		return
	}

	rootKind, raw, fragDiags := adapter.Parse([]byte(text))
	diags := remapDiagnostics(erb.Content.Location.Start, erb.Content.Value, fragDiags)
	erb.Analyzed = &ast.AnalyzedRuby{RootKind: rootKind, Diagnostics: diags, Raw: raw}
	erb.Valid = len(diags) == 0
	for _, d := range diags {
		erb.AddError(d)
	}
}

func isControlFragment(f ast.ClassificationFlags) bool {
	return f.IsControlOpener() || f.HasEnd || f.HasElsif || f.HasElse ||
		f.HasWhen || f.HasIn || f.HasRescue || f.HasEnsure
}
