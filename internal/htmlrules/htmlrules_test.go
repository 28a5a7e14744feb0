package htmlrules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFoldASCIIAndEqualFold(t *testing.T) {
	require.Equal(t, "div", FoldASCII("DIV"))
	require.True(t, EqualFold("Li", "li"))
	require.False(t, EqualFold("li", "dd"))
}

func TestIsVoidElement(t *testing.T) {
	require.True(t, IsVoidElement("br"))
	require.True(t, IsVoidElement("IMG"))
	require.False(t, IsVoidElement("div"))
}

func TestIsOptionalEndElement(t *testing.T) {
	require.True(t, IsOptionalEndElement("li"))
	require.True(t, IsOptionalEndElement("TD"))
	require.False(t, IsOptionalEndElement("div"))
}

func TestImplicitlyClosesLiSiblings(t *testing.T) {
	require.True(t, ImplicitlyCloses("li", "li"))
	require.False(t, ImplicitlyCloses("li", "div"))
}

func TestImplicitlyClosesPByBlockLevelSibling(t *testing.T) {
	require.True(t, ImplicitlyCloses("p", "div"))
	require.True(t, ImplicitlyCloses("p", "ul"))
	require.False(t, ImplicitlyCloses("p", "span"))
}

func TestImplicitlyClosesTableRowsAndCells(t *testing.T) {
	require.True(t, ImplicitlyCloses("tr", "tr"))
	require.True(t, ImplicitlyCloses("td", "th"))
	require.True(t, ImplicitlyCloses("thead", "tbody"))
	require.False(t, ImplicitlyCloses("tr", "td"))
}

func TestImplicitlyClosesColgroupOnAnythingButCol(t *testing.T) {
	require.True(t, ImplicitlyCloses("colgroup", "div"))
	require.False(t, ImplicitlyCloses("colgroup", "col"))
}

func TestImplicitlyClosesUnknownTagIsFalse(t *testing.T) {
	require.False(t, ImplicitlyCloses("div", "div"))
}

func TestIsASCIIWhitespace(t *testing.T) {
	require.True(t, IsASCIIWhitespace(' '))
	require.True(t, IsASCIIWhitespace('\t'))
	require.False(t, IsASCIIWhitespace('\n'))
}

func TestIsForeignContentElement(t *testing.T) {
	require.True(t, IsForeignContentElement("script"))
	require.True(t, IsForeignContentElement("STYLE"))
	require.False(t, IsForeignContentElement("div"))
}
