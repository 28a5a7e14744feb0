package actionview

import (
	"strings"

	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/htmlrules"
	"github.com/marcoroth/herb/internal/position"
	"github.com/marcoroth/herb/internal/token"
)

// Rewrite walks doc (already processed by internal/rubyanalyzer, so
// control-flow nodes are already nested) and replaces every recognized
// tag-helper ERBContent/ERBBlock with a synthetic ast.Element.
func Rewrite(doc *ast.Document) *ast.Document {
	doc.Children = rewriteList(doc.Children)
	return doc
}

func rewriteList(nodes []ast.Node) []ast.Node {
	out := make([]ast.Node, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, rewriteNode(n))
	}
	return out
}

func rewriteNode(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.Element:
		v.Body = rewriteList(v.Body)
		return v
	case *ast.ERBIf:
		v.Children = rewriteList(v.Children)
		if v.Subsequent != nil {
			v.Subsequent = rewriteNode(v.Subsequent)
		}
		return v
	case *ast.ERBUnless:
		v.Children = rewriteList(v.Children)
		if v.Subsequent != nil {
			v.Subsequent = rewriteNode(v.Subsequent)
		}
		return v
	case *ast.ERBElse:
		v.Children = rewriteList(v.Children)
		return v
	case *ast.ERBCase:
		v.Children = rewriteList(v.Children)
		if v.Else != nil {
			v.Else.Children = rewriteList(v.Else.Children)
		}
		return v
	case *ast.ERBWhen:
		v.Children = rewriteList(v.Children)
		return v
	case *ast.ERBIn:
		v.Children = rewriteList(v.Children)
		return v
	case *ast.ERBBegin:
		v.Children = rewriteList(v.Children)
		for _, r := range v.Rescues {
			r.Children = rewriteList(r.Children)
		}
		if v.Else != nil {
			v.Else.Children = rewriteList(v.Else.Children)
		}
		if v.Ensure != nil {
			v.Ensure.Children = rewriteList(v.Ensure.Children)
		}
		return v
	case *ast.ERBFor:
		v.Children = rewriteList(v.Children)
		return v
	case *ast.ERBWhile:
		v.Children = rewriteList(v.Children)
		return v
	case *ast.ERBUntil:
		v.Children = rewriteList(v.Children)
		return v
	case *ast.ERBBlock:
		v.Body = rewriteList(v.Body)
		if el, ok := rewriteBlock(v); ok {
			return el
		}
		return v
	case *ast.ERBContent:
		if el, ok := rewriteEmit(v); ok {
			return el
		}
		return v
	default:
		return n
	}
}

func rewriteEmit(erb *ast.ERBContent) (*ast.Element, bool) {
	if erb.Flags.IsControlOpener() {
		return nil, false
	}
	call, ok := RecognizeCall(strings.TrimSpace(erb.Content.Text()))
	if !ok {
		return nil, false
	}
	return buildElement(call, nil, erb.Location), true
}

func rewriteBlock(block *ast.ERBBlock) (*ast.Element, bool) {
	head := stripBlockOpener(block.Content.Text())
	call, ok := RecognizeCall(head)
	if !ok {
		return nil, false
	}
	return buildElement(call, block.Body, block.Location), true
}

func helperSource(helper string) string {
	switch helper {
	case "tag":
		return "ActionView::Helpers::TagHelper#tag"
	case "content_tag":
		return "ActionView::Helpers::TagHelper#content_tag"
	case "link_to":
		return "ActionView::Helpers::UrlHelper#link_to"
	default:
		return ""
	}
}

func valueNode(raw string) ast.Node {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) >= 2 {
		if (trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"') ||
			(trimmed[0] == '\'' && trimmed[len(trimmed)-1] == '\'') {
			return &ast.Literal{Base: ast.Base{Kind: ast.KindLiteral}, Content: trimmed[1 : len(trimmed)-1]}
		}
	}
	return &ast.RubyLiteral{Base: ast.Base{Kind: ast.KindRubyLiteral}, Content: trimmed}
}

func buildAttribute(name string, value ast.Node) *ast.Attribute {
	_, quoted := value.(*ast.Literal)
	equals := token.Token{Kind: token.EQUALS, Value: []byte("=")}
	return &ast.Attribute{
		Base: ast.Base{Kind: ast.KindAttribute},
		Name: &ast.AttributeName{
			Base: ast.Base{Kind: ast.KindAttributeName},
			Name: token.Token{Kind: token.IDENTIFIER, Value: []byte(name)},
		},
		Equals: &equals,
		Value: &ast.AttributeValue{
			Base:     ast.Base{Kind: ast.KindAttributeValue},
			Quoted:   quoted,
			Children: []ast.Node{value},
		},
	}
}

// buildAttributes expands a call's keyword arguments into attribute
// nodes, including the data:/aria: nested-hash expansion from spec §4.4
// (each sub-key becomes "data-<dashed-key>"/"aria-<dashed-key>") and
// **splat arguments as AttributeSpread nodes.
func buildAttributes(kwargs []KwArg, splats []string) []ast.Node {
	var attrs []ast.Node
	for _, kw := range kwargs {
		if (kw.Key == "data" || kw.Key == "aria") && isHashLiteral(kw.Value) {
			attrs = append(attrs, expandHash(kw.Key, kw.Value)...)
			continue
		}
		attrs = append(attrs, buildAttribute(kw.Key, valueNode(kw.Value)))
	}
	for _, splat := range splats {
		attrs = append(attrs, &ast.AttributeSpread{
			Base:    ast.Base{Kind: ast.KindAttributeSpread},
			Content: token.Token{Kind: token.IDENTIFIER, Value: []byte(splat)},
		})
	}
	return attrs
}

func isHashLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")
}

// isStringLiteral reports whether s is a quoted Ruby string literal, used
// to gate link_to's implicit-content rule (spec §4.4) on the first
// positional argument actually being text rather than an arbitrary
// expression like a model or another helper call.
func isStringLiteral(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) >= 2 && ((s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\''))
}

func expandHash(prefix, raw string) []ast.Node {
	raw = strings.TrimSpace(raw)
	inner := strings.TrimSpace(raw[1 : len(raw)-1])
	var attrs []ast.Node
	for _, chunk := range splitTopLevel(inner, ',') {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		if strings.HasPrefix(chunk, "**") {
			attrs = append(attrs, &ast.AttributeSpread{
				Base:    ast.Base{Kind: ast.KindAttributeSpread},
				Content: token.Token{Kind: token.IDENTIFIER, Value: []byte(strings.TrimSpace(chunk[2:]))},
				Prefix:  prefix,
			})
			continue
		}
		key, val, ok := splitKwarg(chunk)
		if !ok {
			continue
		}
		attrs = append(attrs, buildAttribute(prefix+"-"+dasherize(key), valueNode(val)))
	}
	return attrs
}

// buildElement assembles the synthetic Element for a recognized helper
// call. blockBody, when non-nil, is the already-rewritten body of a
// block-form call ("<%= content_tag :div do %> ... <% end %>").
func buildElement(call *HelperCall, blockBody []ast.Node, loc position.Location) *ast.Element {
	el := &ast.Element{
		Base:    ast.Base{Kind: ast.KindElement, Location: loc},
		TagName: token.Token{Kind: token.IDENTIFIER, Value: []byte(call.TagName)},
		Source:  helperSource(call.Helper),
		Void:    htmlrules.IsVoidElement(call.TagName),
	}

	// link_to's content/href split (spec §4.4): the block form's sole
	// positional argument is always the href. The non-block form's
	// content is its first positional argument, but only when that
	// argument is a string literal and a second (the href) follows it;
	// otherwise there is no literal content and a lone positional
	// argument is itself the href.
	var hrefRaw string
	hasHref := false
	linkToContentIsLiteral := false
	if call.Helper == "link_to" {
		switch {
		case blockBody != nil:
			if len(call.Positional) > 0 {
				hrefRaw, hasHref = call.Positional[0], true
			}
		case len(call.Positional) >= 2 && isStringLiteral(call.Positional[0]):
			hrefRaw, hasHref = call.Positional[1], true
			linkToContentIsLiteral = true
		case len(call.Positional) == 1:
			hrefRaw, hasHref = call.Positional[0], true
		}
	}

	attrs := buildAttributes(call.Kwargs, call.DoubleSplats)
	if hasHref {
		attrs = append([]ast.Node{buildAttribute("href", valueNode(hrefRaw))}, attrs...)
	}

	el.OpenTag = &ast.OpenTag{
		Base:       ast.Base{Kind: ast.KindOpenTag},
		TagName:    el.TagName,
		Attributes: attrs,
	}

	switch {
	case blockBody != nil:
		el.Body = blockBody
	case call.Helper == "content_tag" || call.Helper == "tag":
		if len(call.Positional) > 0 {
			el.Body = []ast.Node{valueNode(call.Positional[0])}
		}
	case call.Helper == "link_to":
		if linkToContentIsLiteral {
			el.Body = []ast.Node{valueNode(call.Positional[0])}
		}
	}

	return el
}
