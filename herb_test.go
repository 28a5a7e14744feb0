package herb

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/token"
)

// TestVersion covers spec §6.1's `version` operation.
func TestVersion(t *testing.T) {
	require.NotEmpty(t, Version())
}

// TestLexRoundTrip is invariant 1 of spec §8: concatenating every token's
// value reproduces the source exactly.
func TestLexRoundTrip(t *testing.T) {
	sources := []string{
		"hello",
		"<% 'hello world' %>",
		"<div>hi</div>",
		"<ul><li>a<li>b</ul>",
		"<%= current_user.name %><p>x</p><%# skip %>",
	}
	for _, src := range sources {
		tokens := Lex([]byte(src))
		var rebuilt []byte
		for _, tok := range tokens {
			rebuilt = append(rebuilt, tok.Value...)
		}
		require.Equal(t, src, string(rebuilt))
		require.Equal(t, token.EOF, tokens[len(tokens)-1].Kind)
	}
}

// TestScenarioHello is spec §8 scenario (a).
func TestScenarioHello(t *testing.T) {
	src := "hello"
	tokens := Lex([]byte(src))
	require.Len(t, tokens, 2)
	require.Equal(t, token.IDENTIFIER, tokens[0].Kind)
	require.Equal(t, "hello", tokens[0].Text())
	require.Equal(t, uint32(0), tokens[0].Range.From)
	require.Equal(t, uint32(5), tokens[0].Range.To)
	require.Equal(t, token.EOF, tokens[1].Kind)

	doc, err := Parse([]byte(src), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Children, 1)
	text, ok := doc.Children[0].(*ast.Text)
	require.True(t, ok)
	require.Equal(t, "hello", text.Content)
}

// TestScenarioERBContent is spec §8 scenario (b), including the
// extract_ruby byte-parallel projection.
func TestScenarioERBContent(t *testing.T) {
	src := "<% 'hello world' %>"
	tokens := Lex([]byte(src))
	require.Equal(t, token.ERB_START, tokens[0].Kind)
	require.Equal(t, "<%", tokens[0].Text())

	doc, err := Parse([]byte(src), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Children, 1)
	_, ok := doc.Children[0].(*ast.ERBContent)
	require.True(t, ok)

	ruby := ExtractRuby([]byte(src), DefaultRubyOptions())
	require.Len(t, ruby, len(src))
	require.Contains(t, string(ruby), "'hello world'")
	require.Contains(t, string(ruby), ";")
}

// TestScenarioSimpleElement is spec §8 scenario (c).
func TestScenarioSimpleElement(t *testing.T) {
	doc, err := Parse([]byte("<div>hi</div>"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Children, 1)
	el, ok := doc.Children[0].(*ast.Element)
	require.True(t, ok)
	require.Equal(t, "div", el.TagName.Text())
	require.NotNil(t, el.OpenTag)
	require.NotNil(t, el.CloseTag)
	require.Empty(t, ast.Diagnostics(doc))
}

// TestScenarioImplicitLiClose is spec §8 scenario (d).
func TestScenarioImplicitLiClose(t *testing.T) {
	doc, err := Parse([]byte("<ul><li>a<li>b</ul>"), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, doc.Children, 1)

	ul, ok := doc.Children[0].(*ast.Element)
	require.True(t, ok)
	require.Equal(t, "ul", ul.TagName.Text())
	require.Len(t, ul.Body, 2)

	firstLi, ok := ul.Body[0].(*ast.Element)
	require.True(t, ok)
	require.Equal(t, "li", firstLi.TagName.Text())

	secondLi, ok := ul.Body[1].(*ast.Element)
	require.True(t, ok)
	require.Equal(t, "li", secondLi.TagName.Text())

	require.Empty(t, ast.Diagnostics(doc))
}

// TestExtractionLengthInvariant is invariant 3 of spec §8.
func TestExtractionLengthInvariant(t *testing.T) {
	sources := []string{
		"hello",
		"<% 'hello world' %>",
		"<div>hi</div>",
		"<%= name %><p>x</p><%# c %>",
	}
	for _, src := range sources {
		require.Len(t, ExtractRuby([]byte(src), DefaultRubyOptions()), len(src))
		require.Len(t, ExtractHTML([]byte(src)), len(src))
	}
}

// TestStrictModeRejectsDiagnosticBearingInput exercises §6.1's strict
// option and §7's "upgrades any non-empty diagnostic set to a fatal
// return" rule, using a stray close tag to force a diagnostic.
func TestStrictModeRejectsDiagnosticBearingInput(t *testing.T) {
	src := "<div></span>"

	lenient, err := Parse([]byte(src), DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, ast.Diagnostics(lenient))

	opts := DefaultOptions()
	opts.Strict = true
	_, err = Parse([]byte(src), opts)
	require.Error(t, err)
	var strictErr *StrictModeError
	require.ErrorAs(t, err, &strictErr)
	require.NotEmpty(t, strictErr.Diagnostics)
}

// TestParseWithoutAnalyzeSkipsControlFlowRewrite covers the analyze:false
// path of spec §6.1: ERBContent siblings stay flat instead of being
// rewritten into an ERBIf.
func TestParseWithoutAnalyzeSkipsControlFlowRewrite(t *testing.T) {
	src := "<% if admin? %>secret<% end %>"

	opts := DefaultOptions()
	opts.Analyze = false
	doc, err := Parse([]byte(src), opts)
	require.NoError(t, err)

	sawIf := false
	for _, n := range doc.Children {
		if _, ok := n.(*ast.ERBIf); ok {
			sawIf = true
		}
	}
	require.False(t, sawIf, "analyze:false must not run the control-flow rewrite")
}

// TestParseWithAnalyzeRunsControlFlowRewrite is the analyze:true
// counterpart, and together with the previous test grounds invariant 5
// (analyzer idempotence) by showing the two pipelines produce visibly
// different trees rather than one silently no-op-ing.
func TestParseWithAnalyzeRunsControlFlowRewrite(t *testing.T) {
	src := "<% if admin? %>secret<% end %>"

	doc, err := Parse([]byte(src), DefaultOptions())
	require.NoError(t, err)

	require.Len(t, doc.Children, 1)
	ifNode, ok := doc.Children[0].(*ast.ERBIf)
	require.True(t, ok)
	require.NotNil(t, ifNode.EndNode)
}
