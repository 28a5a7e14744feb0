package rubyanalyzer

import (
	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/diagnostic"
)

// Rewrite turns a flat sibling list containing classified ERBContent
// openers (if/unless/case/begin/for/while/until/a block call) into the
// nested ERBIf/ERBCase/.../ERBBlock trees spec §4.3 describes, recursing
// into every Element's body and attribute value along the way. It is the
// single left-to-right pass mentioned there: each opener consumes
// forward from the cursor until it finds its own matching clauses and
// terminating `end`, so nesting falls out of the recursion rather than
// needing a separate balancing step.
func Rewrite(nodes []ast.Node) []ast.Node {
	c := &cursor{nodes: nodes}
	return rewriteUntil(c, nil)
}

type cursor struct {
	nodes []ast.Node
	pos   int
}

func (c *cursor) done() bool { return c.pos >= len(c.nodes) }

func (c *cursor) peek() ast.Node {
	if c.done() {
		return nil
	}
	return c.nodes[c.pos]
}

func (c *cursor) next() ast.Node {
	n := c.peek()
	c.pos++
	return n
}

func peekERB(c *cursor) (*ast.ERBContent, bool) {
	if c.done() {
		return nil, false
	}
	erb, ok := c.peek().(*ast.ERBContent)
	return erb, ok
}

// stopPredicate reports whether an ERBContent's flags mark the end of the
// sibling run currently being consumed (a sibling `end`/`else`/`elsif`/
// etc. that belongs to an enclosing opener, not a fresh one here).
type stopPredicate func(ast.ClassificationFlags) bool

func stopIfLike(f ast.ClassificationFlags) bool    { return f.HasElsif || f.HasElse || f.HasEnd }
func stopAtEnd(f ast.ClassificationFlags) bool     { return f.HasEnd }
func stopCaseClause(f ast.ClassificationFlags) bool {
	return f.HasWhen || f.HasIn || f.HasElse || f.HasEnd
}
func stopBeginClause(f ast.ClassificationFlags) bool {
	return f.HasRescue || f.HasElse || f.HasEnsure || f.HasEnd
}

// rewriteUntil consumes nodes from c, collapsing control openers into
// their nested forms, until either c is exhausted or stop reports true for
// the next ERBContent's flags (in which case that node is left unconsumed
// for the caller to inspect).
func rewriteUntil(c *cursor, stop stopPredicate) []ast.Node {
	var out []ast.Node
	for !c.done() {
		erb, isERB := peekERB(c)
		if isERB {
			if stop != nil && stop(erb.Flags) {
				return out
			}
			if erb.Flags.IsControlOpener() {
				c.next()
				out = append(out, buildControlNode(c, erb))
				continue
			}
			if erb.Flags.HasEnd || erb.Flags.HasElsif || erb.Flags.HasElse ||
				erb.Flags.HasWhen || erb.Flags.HasIn || erb.Flags.HasRescue || erb.Flags.HasEnsure {
				// A clause keyword with no enclosing opener (malformed
				// template); keep it as a plain ERBContent rather than
				// dropping it, and flag it.
				erb.AddError(diagnostic.New(diagnostic.UnexpectedToken, "`"+erb.Content.Text()+"` has no matching opening tag", erb.Location))
				c.next()
				out = append(out, erb)
				continue
			}
		}
		n := c.next()
		out = append(out, rewriteChildren(n))
	}
	return out
}

// rewriteChildren recurses control-flow rewriting into the sibling lists
// owned by composite non-ERB nodes (an Element's body, an attribute
// value's interpolated children).
func rewriteChildren(n ast.Node) ast.Node {
	switch v := n.(type) {
	case *ast.Element:
		if v.OpenTag != nil {
			for _, a := range v.OpenTag.Attributes {
				if attr, ok := a.(*ast.Attribute); ok && attr.Value != nil {
					rewriteChildren(attr.Value)
				}
			}
		}
		v.Body = Rewrite(v.Body)
		return v
	case *ast.AttributeValue:
		v.Children = Rewrite(v.Children)
		return v
	default:
		return n
	}
}

func buildControlNode(c *cursor, opener *ast.ERBContent) ast.Node {
	var node ast.Node
	switch {
	case opener.Flags.HasIf:
		node = buildIf(c, opener)
	case opener.Flags.HasUnless:
		node = buildUnless(c, opener)
	case opener.Flags.HasCase:
		node = buildCase(c, opener)
	case opener.Flags.HasBegin:
		node = buildBegin(c, opener)
	case opener.Flags.HasFor:
		node = buildFor(c, opener)
	case opener.Flags.HasWhile:
		node = buildWhile(c, opener)
	case opener.Flags.HasUntil:
		node = buildUntil(c, opener)
	default:
		node = buildBlock(c, opener)
	}
	// The opener ERBContent is not kept in the tree, so diagnostics recorded
	// on it (such as a missing `end`) move to the node built from it.
	base := node.NodeBase()
	base.Errors = append(base.Errors, opener.Errors...)
	return node
}

func missingEnd(opener *ast.ERBContent, construct string) {
	opener.AddError(diagnostic.New(diagnostic.MissingClosingTag, "missing `end` for `"+construct+"`", opener.Location))
}

func consumeEnd(c *cursor) *ast.ERBEnd {
	erb, ok := peekERB(c)
	if !ok || !erb.Flags.HasEnd {
		return nil
	}
	c.next()
	return &ast.ERBEnd{
		Base:       ast.Base{Kind: ast.KindERBEnd, Location: erb.Location},
		TagOpening: erb.Opening,
		Content:    erb.Content,
		TagClosing: erb.Closing,
	}
}

func buildElse(erb *ast.ERBContent, children []ast.Node) *ast.ERBElse {
	return &ast.ERBElse{
		Base:       ast.Base{Kind: ast.KindERBElse, Location: erb.Location},
		TagOpening: erb.Opening,
		TagClosing: erb.Closing,
		Children:   children,
	}
}

func buildIf(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBIf{
		Base:           ast.Base{Kind: ast.KindERBIf, Location: opener.Location},
		TagOpening:     opener.Opening,
		ConditionToken: opener.Content,
		TagClosing:     opener.Closing,
	}
	node.Children = rewriteUntil(c, stopIfLike)
	node.Subsequent, node.EndNode = consumeIfTail(c, opener, "if")
	return node
}

// consumeIfTail handles the elsif/else/end tail shared by `if` and the
// `elsif` clauses nested inside it.
func consumeIfTail(c *cursor, opener *ast.ERBContent, construct string) (ast.Node, *ast.ERBEnd) {
	erb, ok := peekERB(c)
	if !ok {
		missingEnd(opener, construct)
		return nil, nil
	}
	switch {
	case erb.Flags.HasElsif:
		c.next()
		elsif := &ast.ERBIf{
			Base:           ast.Base{Kind: ast.KindERBIf, Location: erb.Location},
			TagOpening:     erb.Opening,
			ConditionToken: erb.Content,
			TagClosing:     erb.Closing,
		}
		elsif.Children = rewriteUntil(c, stopIfLike)
		elsif.Subsequent, elsif.EndNode = consumeIfTail(c, opener, construct)
		return elsif, elsif.EndNode
	case erb.Flags.HasElse:
		c.next()
		els := buildElse(erb, rewriteUntil(c, stopAtEnd))
		end := consumeEnd(c)
		if end == nil {
			missingEnd(opener, construct)
		}
		return els, end
	case erb.Flags.HasEnd:
		return nil, consumeEnd(c)
	}
	missingEnd(opener, construct)
	return nil, nil
}

func buildUnless(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBUnless{
		Base:           ast.Base{Kind: ast.KindERBUnless, Location: opener.Location},
		TagOpening:     opener.Opening,
		ConditionToken: opener.Content,
		TagClosing:     opener.Closing,
	}
	node.Children = rewriteUntil(c, stopIfLike)
	if erb, ok := peekERB(c); ok && erb.Flags.HasElse {
		c.next()
		node.Subsequent = buildElse(erb, rewriteUntil(c, stopAtEnd))
	}
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "unless")
	}
	return node
}

func buildCase(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBCase{
		Base:         ast.Base{Kind: ast.KindERBCase, Location: opener.Location},
		TagOpening:   opener.Opening,
		SubjectToken: opener.Content,
		TagClosing:   opener.Closing,
	}
	for {
		erb, ok := peekERB(c)
		if !ok || erb.Flags.HasEnd {
			break
		}
		switch {
		case erb.Flags.HasWhen:
			c.next()
			node.Children = append(node.Children, &ast.ERBWhen{
				Base:         ast.Base{Kind: ast.KindERBWhen, Location: erb.Location},
				TagOpening:   erb.Opening,
				PatternToken: erb.Content,
				TagClosing:   erb.Closing,
				Children:     rewriteUntil(c, stopCaseClause),
			})
		case erb.Flags.HasIn:
			c.next()
			node.Children = append(node.Children, &ast.ERBIn{
				Base:         ast.Base{Kind: ast.KindERBIn, Location: erb.Location},
				TagOpening:   erb.Opening,
				PatternToken: erb.Content,
				TagClosing:   erb.Closing,
				Children:     rewriteUntil(c, stopCaseClause),
			})
		case erb.Flags.HasElse:
			c.next()
			node.Else = buildElse(erb, rewriteUntil(c, stopAtEnd))
		default:
			goto doneClauses
		}
	}
doneClauses:
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "case")
	}
	return node
}

func buildBegin(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBBegin{
		Base:       ast.Base{Kind: ast.KindERBBegin, Location: opener.Location},
		TagOpening: opener.Opening,
		TagClosing: opener.Closing,
	}
	node.Children = rewriteUntil(c, stopBeginClause)
	for {
		erb, ok := peekERB(c)
		if !ok {
			break
		}
		switch {
		case erb.Flags.HasRescue:
			c.next()
			node.Rescues = append(node.Rescues, &ast.ERBRescue{
				Base:           ast.Base{Kind: ast.KindERBRescue, Location: erb.Location},
				TagOpening:     erb.Opening,
				ConditionToken: erb.Content,
				TagClosing:     erb.Closing,
				Children:       rewriteUntil(c, stopBeginClause),
			})
		case erb.Flags.HasElse:
			c.next()
			node.Else = buildElse(erb, rewriteUntil(c, stopBeginClause))
		case erb.Flags.HasEnsure:
			c.next()
			node.Ensure = &ast.ERBEnsure{
				Base:       ast.Base{Kind: ast.KindERBEnsure, Location: erb.Location},
				TagOpening: erb.Opening,
				TagClosing: erb.Closing,
				Children:   rewriteUntil(c, stopAtEnd),
			}
		default:
			goto doneBegin
		}
	}
doneBegin:
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "begin")
	}
	return node
}

func buildFor(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBFor{
		Base:           ast.Base{Kind: ast.KindERBFor, Location: opener.Location},
		TagOpening:     opener.Opening,
		ConditionToken: opener.Content,
		TagClosing:     opener.Closing,
		Children:       rewriteUntil(c, stopAtEnd),
	}
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "for")
	}
	return node
}

func buildWhile(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBWhile{
		Base:           ast.Base{Kind: ast.KindERBWhile, Location: opener.Location},
		TagOpening:     opener.Opening,
		ConditionToken: opener.Content,
		TagClosing:     opener.Closing,
		Children:       rewriteUntil(c, stopAtEnd),
	}
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "while")
	}
	return node
}

func buildUntil(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBUntil{
		Base:           ast.Base{Kind: ast.KindERBUntil, Location: opener.Location},
		TagOpening:     opener.Opening,
		ConditionToken: opener.Content,
		TagClosing:     opener.Closing,
		Children:       rewriteUntil(c, stopAtEnd),
	}
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "until")
	}
	return node
}

func buildBlock(c *cursor, opener *ast.ERBContent) ast.Node {
	node := &ast.ERBBlock{
		Base:    ast.Base{Kind: ast.KindERBBlock, Location: opener.Location},
		Opening: opener.Opening,
		Content: opener.Content,
		Closing: opener.Closing,
		Body:    rewriteUntil(c, stopAtEnd),
	}
	node.EndNode = consumeEnd(c)
	if node.EndNode == nil {
		missingEnd(opener, "do")
	}
	return node
}
