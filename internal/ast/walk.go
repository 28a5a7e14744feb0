package ast

import "github.com/marcoroth/herb/internal/diagnostic"

// Walk calls visit for n and then, depth-first and in source order, for
// every descendant. It is the single place that knows every composite
// node kind's children, so callers needing a full-tree pass (collecting
// diagnostics, building an index, rendering a dump) don't each reimplement
// the same traversal.
func Walk(n Node, visit func(Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range Children(n) {
		Walk(child, visit)
	}
}

// Children returns n's direct structural children in source order.
func Children(n Node) []Node {
	switch v := n.(type) {
	case *Document:
		return v.Children

	case *Element:
		var out []Node
		if v.OpenTag != nil {
			out = append(out, v.OpenTag)
		}
		out = append(out, v.Body...)
		if v.CloseTag != nil {
			out = append(out, v.CloseTag)
		}
		return out

	case *OpenTag:
		return v.Attributes

	case *Attribute:
		var out []Node
		if v.Name != nil {
			out = append(out, v.Name)
		}
		if v.Value != nil {
			out = append(out, v.Value)
		}
		return out

	case *AttributeConditional:
		if v.Condition != nil {
			return []Node{v.Condition}
		}
		return nil

	case *AttributeValue:
		return v.Children

	case *ERBIf:
		out := append([]Node{}, v.Children...)
		if v.Subsequent != nil {
			out = append(out, v.Subsequent)
		}
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBUnless:
		out := append([]Node{}, v.Children...)
		if v.Subsequent != nil {
			out = append(out, v.Subsequent)
		}
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBElse:
		return v.Children

	case *ERBCase:
		out := append([]Node{}, v.Children...)
		if v.Else != nil {
			out = append(out, v.Else)
		}
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBWhen:
		return v.Children

	case *ERBIn:
		return v.Children

	case *ERBBegin:
		out := append([]Node{}, v.Children...)
		for _, r := range v.Rescues {
			out = append(out, r)
		}
		if v.Else != nil {
			out = append(out, v.Else)
		}
		if v.Ensure != nil {
			out = append(out, v.Ensure)
		}
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBRescue:
		return v.Children

	case *ERBEnsure:
		return v.Children

	case *ERBFor:
		out := append([]Node{}, v.Children...)
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBWhile:
		out := append([]Node{}, v.Children...)
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBUntil:
		out := append([]Node{}, v.Children...)
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *ERBBlock:
		out := append([]Node{}, v.Body...)
		if v.EndNode != nil {
			out = append(out, v.EndNode)
		}
		return out

	case *CSSStyle:
		out := make([]Node, 0, len(v.Rules))
		for _, r := range v.Rules {
			out = append(out, r)
		}
		return out

	case *CSSRule:
		out := make([]Node, 0, len(v.Declarations))
		for _, d := range v.Declarations {
			out = append(out, d)
		}
		return out

	default:
		return nil
	}
}

// Diagnostics collects every diagnostic attached anywhere in the tree
// rooted at n, in source order.
func Diagnostics(n Node) []diagnostic.Diagnostic {
	var out []diagnostic.Diagnostic
	Walk(n, func(node Node) {
		out = append(out, node.NodeBase().Errors...)
	})
	return out
}
