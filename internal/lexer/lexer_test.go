package lexer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcoroth/herb/internal/position"
	"github.com/marcoroth/herb/internal/token"
)

func kinds(tokens []token.Token) []token.Kind {
	out := make([]token.Kind, len(tokens))
	for i, t := range tokens {
		out[i] = t.Kind
	}
	return out
}

func TestLexPlainText(t *testing.T) {
	tokens := Lex([]byte("hello"))
	require.Equal(t, []token.Kind{token.IDENTIFIER, token.EOF}, kinds(tokens))
	require.Equal(t, "hello", tokens[0].Text())
	require.Equal(t, position.Range{From: 0, To: 5}, tokens[0].Range)
}

func TestLexERBOutputTag(t *testing.T) {
	tokens := Lex([]byte("<%= name %>"))
	require.Equal(t, []token.Kind{token.ERB_START, token.ERB_CONTENT, token.ERB_END, token.EOF}, kinds(tokens))
	require.Equal(t, "<%=", tokens[0].Text())
	require.Equal(t, " name ", tokens[1].Text())
	require.Equal(t, "%>", tokens[2].Text())
}

func TestLexERBCommentTag(t *testing.T) {
	tokens := Lex([]byte("<%# comment %>"))
	require.Equal(t, "<%#", tokens[0].Text())
	require.Equal(t, token.ERB_CONTENT, tokens[1].Kind)
}

func TestLexERBDashTrimForms(t *testing.T) {
	tokens := Lex([]byte("<%- x -%>"))
	require.Equal(t, "<%-", tokens[0].Text())
	require.Equal(t, "-%>", tokens[2].Text())
}

func TestLexLiteralEscapesStayAsCharacter(t *testing.T) {
	tokens := Lex([]byte("<%% not erb %%>"))
	for _, tok := range tokens {
		require.NotEqual(t, token.ERB_START, tok.Kind)
		require.NotEqual(t, token.ERB_CONTENT, tok.Kind)
	}
	require.Equal(t, token.CHARACTER, tokens[0].Kind)
	require.Equal(t, "<%%", tokens[0].Text())
}

func TestLexElementTags(t *testing.T) {
	tokens := Lex([]byte("<div></div>"))
	require.Equal(t, []token.Kind{
		token.HTML_TAG_START, token.IDENTIFIER, token.HTML_TAG_END,
		token.HTML_TAG_START_CLOSE, token.IDENTIFIER, token.HTML_TAG_END,
		token.EOF,
	}, kinds(tokens))
}

func TestLexSelfClosingTag(t *testing.T) {
	tokens := Lex([]byte("<br/>"))
	require.Contains(t, kinds(tokens), token.HTML_TAG_SELF_CLOSE)
}

func TestLexDoctype(t *testing.T) {
	tokens := Lex([]byte("<!DOCTYPE html>"))
	require.Equal(t, token.HTML_DOCTYPE, tokens[0].Kind)
	require.Equal(t, "<!DOCTYPE html>", tokens[0].Text())
}

func TestLexComment(t *testing.T) {
	tokens := Lex([]byte("<!--hi-->"))
	require.Equal(t, []token.Kind{token.HTML_COMMENT_START, token.IDENTIFIER, token.HTML_COMMENT_END, token.EOF}, kinds(tokens))
}

func TestLexCData(t *testing.T) {
	tokens := Lex([]byte("<![CDATA[raw]]>"))
	require.Equal(t, token.CDATA_START, tokens[0].Kind)
	require.Equal(t, token.CDATA_END, tokens[len(tokens)-2].Kind)
}

func TestLexXMLDeclaration(t *testing.T) {
	tokens := Lex([]byte(`<?xml version="1.0"?>`))
	require.Equal(t, token.XML_DECLARATION, tokens[0].Kind)
}

func TestLexNewlineTracksLineColumn(t *testing.T) {
	tokens := Lex([]byte("a\nb"))
	require.Equal(t, uint32(1), tokens[0].Location.Start.Line)
	// 'b' is on line 2, column 0.
	require.Equal(t, uint32(2), tokens[2].Location.Start.Line)
	require.Equal(t, uint32(0), tokens[2].Location.Start.Column)
}

func TestLexRoundTripConcatenatesToSource(t *testing.T) {
	sources := []string{
		"hello world",
		"<div class=\"x\">hi</div>",
		"<% if admin? %><p>secret</p><% end %>",
		"<%% literal %%>",
		"line one\r\nline two",
	}
	for _, src := range sources {
		tokens := Lex([]byte(src))
		var sb strings.Builder
		for _, tok := range tokens {
			sb.Write(tok.Value)
		}
		require.Equal(t, src, sb.String())
	}
}

func TestLexRangeCoverageIsContiguous(t *testing.T) {
	src := "<div>hi <%= x %></div>"
	tokens := Lex([]byte(src))
	require.Equal(t, uint32(0), tokens[0].Range.From)
	for i := 0; i+1 < len(tokens); i++ {
		require.Equal(t, tokens[i].Range.To, tokens[i+1].Range.From)
	}
	require.Equal(t, uint32(len(src)), tokens[len(tokens)-1].Range.To)
}

func TestLexEndsInEOF(t *testing.T) {
	tokens := Lex([]byte(""))
	require.Len(t, tokens, 1)
	require.Equal(t, token.EOF, tokens[0].Kind)
}

func TestLexPunctuationSingleBytes(t *testing.T) {
	tokens := Lex([]byte(`;:@%&-_!`))
	require.Equal(t, []token.Kind{
		token.SEMICOLON, token.COLON, token.AT, token.PERCENT, token.AMPERSAND,
		token.DASH, token.UNDERSCORE, token.EXCLAMATION, token.EOF,
	}, kinds(tokens))
}

func TestLexNBSP(t *testing.T) {
	tokens := Lex([]byte(" "))
	require.Equal(t, token.NBSP, tokens[0].Kind)
}

func TestLexNeverStallsOnEmptyInput(t *testing.T) {
	l := New(nil)
	tok := l.Next()
	require.Equal(t, token.EOF, tok.Kind)
	require.Equal(t, 0, l.StallCount())
}
