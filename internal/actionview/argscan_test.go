package actionview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitTopLevelIgnoresNestedCommas(t *testing.T) {
	parts := splitTopLevel(`:div, class: "a, b", data: { x: 1, y: 2 }`, ',')
	require.Equal(t, []string{`:div`, ` class: "a, b"`, ` data: { x: 1, y: 2 }`}, parts)
}

func TestSplitTopLevelSingleChunkNoSeparator(t *testing.T) {
	require.Equal(t, []string{"solo"}, splitTopLevel("solo", ','))
}

func TestFindTopLevelSkipsNestedAndQuoted(t *testing.T) {
	require.Equal(t, -1, findTopLevel(`{ "a => b" }`, "=>"))
	require.Equal(t, 6, findTopLevel(`:href => path`, "=>"))
}

func TestStripMatchingParens(t *testing.T) {
	inner, ok := stripMatchingParens(`(:div, class: "a")`)
	require.True(t, ok)
	require.Equal(t, `:div, class: "a"`, inner)
}

func TestStripMatchingParensNestedParens(t *testing.T) {
	inner, ok := stripMatchingParens(`(foo(1, 2), bar)`)
	require.True(t, ok)
	require.Equal(t, `foo(1, 2), bar`, inner)
}

func TestStripMatchingParensRequiresLeadingParen(t *testing.T) {
	_, ok := stripMatchingParens(`:div, class: "a"`)
	require.False(t, ok)
}

func TestParseArgsSeparatesPositionalKwargsAndSplats(t *testing.T) {
	positional, kwargs, splats := parseArgs(`:div, "hello", class: "box", **extra`)
	require.Equal(t, []string{`:div`, `"hello"`}, positional)
	require.Equal(t, []KwArg{{Key: "class", Value: `"box"`}}, kwargs)
	require.Equal(t, []string{"extra"}, splats)
}

func TestParseArgsRocketKwarg(t *testing.T) {
	_, kwargs, _ := parseArgs(`:href => path, :class => "x"`)
	require.Equal(t, []KwArg{{Key: "href", Value: "path"}, {Key: "class", Value: `"x"`}}, kwargs)
}

func TestParseArgsBareSymbolIsPositionalNotKwarg(t *testing.T) {
	positional, kwargs, _ := parseArgs(`:admin`)
	require.Equal(t, []string{":admin"}, positional)
	require.Empty(t, kwargs)
}

func TestSplitKwargRejectsNamespaceSeparator(t *testing.T) {
	_, _, ok := splitKwarg("Foo::Bar")
	require.False(t, ok)
}

func TestLiteralOrBareSymbolStripsQuotesAndColon(t *testing.T) {
	require.Equal(t, "admin", literalOrBareSymbol(":admin"))
	require.Equal(t, "hi", literalOrBareSymbol(`"hi"`))
	require.Equal(t, "hi", literalOrBareSymbol(`'hi'`))
	require.Equal(t, "plain", literalOrBareSymbol("plain"))
}

func TestDasherizeReplacesUnderscores(t *testing.T) {
	require.Equal(t, "turbo-permanent", dasherize("turbo_permanent"))
}
