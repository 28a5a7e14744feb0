package ast

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcoroth/herb/internal/diagnostic"
	"github.com/marcoroth/herb/internal/position"
)

func TestChildrenElement(t *testing.T) {
	text := &Text{Base: Base{Kind: KindText}, Content: "hi"}
	open := &OpenTag{Base: Base{Kind: KindOpenTag}}
	close := &CloseTag{Base: Base{Kind: KindCloseTag}}
	el := &Element{Base: Base{Kind: KindElement}, OpenTag: open, Body: []Node{text}, CloseTag: close}

	require.Equal(t, []Node{open, text, close}, Children(el))
}

func TestChildrenLeafIsEmpty(t *testing.T) {
	text := &Text{Base: Base{Kind: KindText}, Content: "hi"}
	require.Nil(t, Children(text))
}

func TestChildrenERBIfIncludesSubsequentAndEnd(t *testing.T) {
	body := &Text{Base: Base{Kind: KindText}, Content: "yes"}
	elseNode := &ERBElse{Base: Base{Kind: KindERBElse}}
	end := &ERBEnd{Base: Base{Kind: KindERBEnd}}
	ifNode := &ERBIf{
		Base:       Base{Kind: KindERBIf},
		Children:   []Node{body},
		Subsequent: elseNode,
		EndNode:    end,
	}

	require.Equal(t, []Node{body, elseNode, end}, Children(ifNode))
}

func TestChildrenCSSStyleAndRule(t *testing.T) {
	decl := &CSSDeclaration{Base: Base{Kind: KindCSSDeclaration}, Property: "color", Value: "red"}
	rule := &CSSRule{Base: Base{Kind: KindCSSRule}, Declarations: []*CSSDeclaration{decl}}
	style := &CSSStyle{Base: Base{Kind: KindCSSStyle}, Rules: []*CSSRule{rule}}

	require.Equal(t, []Node{rule}, Children(style))
	require.Equal(t, []Node{decl}, Children(rule))
}

func TestWalkVisitsEveryDescendant(t *testing.T) {
	text := &Text{Base: Base{Kind: KindText}, Content: "hi"}
	el := &Element{Base: Base{Kind: KindElement}, Body: []Node{text}}
	doc := &Document{Children: []Node{el}}

	var visited []Node
	Walk(doc, func(n Node) { visited = append(visited, n) })

	require.Equal(t, []Node{doc, el, text}, visited)
}

func TestWalkNilIsNoOp(t *testing.T) {
	calls := 0
	Walk(nil, func(Node) { calls++ })
	require.Equal(t, 0, calls)
}

func TestDiagnosticsCollectsAcrossTree(t *testing.T) {
	el := &Element{Base: Base{Kind: KindElement}}
	el.AddError(diagnostic.New(diagnostic.TagNamesMismatch, "mismatch", position.Location{}))

	text := &Text{Base: Base{Kind: KindText}, Content: "hi"}
	text.AddError(diagnostic.New(diagnostic.UnexpectedToken, "oops", position.Location{}))
	el.Body = []Node{text}

	doc := &Document{Children: []Node{el}}

	diags := Diagnostics(doc)
	require.Len(t, diags, 2)
	require.Equal(t, diagnostic.TagNamesMismatch, diags[0].Kind)
	require.Equal(t, diagnostic.UnexpectedToken, diags[1].Kind)
}
