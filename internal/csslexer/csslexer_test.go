package csslexer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func kindsOf(tokens []Token) []T {
	out := make([]T, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Kind
	}
	return out
}

func TestTokenizeSimpleRule(t *testing.T) {
	tokens := Tokenize("p{color:red;}")
	require.Equal(t, []T{TIdent, TOpenBrace, TIdent, TColon, TIdent, TSemicolon, TCloseBrace, TEOF}, kindsOf(tokens))
	require.Equal(t, "p", tokens[0].Text)
	require.Equal(t, "color", tokens[2].Text)
	require.Equal(t, "red", tokens[4].Text)
}

func TestTokenizeSkipsComments(t *testing.T) {
	tokens := Tokenize("p/* comment */{color:red}")
	var texts []string
	for _, tok := range tokens {
		if tok.Kind == TIdent {
			texts = append(texts, tok.Text)
		}
	}
	require.Equal(t, []string{"p", "color", "red"}, texts)
}

func TestTokenizeAlwaysEndsInEOF(t *testing.T) {
	tokens := Tokenize("")
	require.Len(t, tokens, 1)
	require.Equal(t, TEOF, tokens[0].Kind)
}

func TestTokenizeUnterminatedCommentConsumesRest(t *testing.T) {
	tokens := Tokenize("a/* never closes")
	kinds := kindsOf(tokens)
	require.Equal(t, []T{TIdent, TEOF}, kinds)
}
