package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/marcoroth/herb/internal/position"
)

func TestNewBuildsSyntaxSeverity(t *testing.T) {
	loc := position.Location{Start: position.Position{Line: 1, Column: 0}, End: position.Position{Line: 1, Column: 5}}
	d := New(UnexpectedToken, "boom", loc)

	require.Equal(t, UnexpectedToken, d.Kind)
	require.Equal(t, "boom", d.Message)
	require.Equal(t, SeveritySyntax, d.Severity)
	require.Equal(t, loc, d.Location())
}

func TestNewfFormatsMessage(t *testing.T) {
	d := Newf(TagNamesMismatch, position.Location{}, "expected %q, got %q", "div", "span")
	require.Equal(t, `expected "div", got "span"`, d.Message)
}

func TestWarningUpgradesSeverity(t *testing.T) {
	d := Warning(MissingClosingTag, "dangling tag", position.Location{})
	require.Equal(t, SeverityWarning, d.Severity)
}

func TestKindStringNames(t *testing.T) {
	cases := map[Kind]string{
		UnexpectedToken:   "unexpected_token",
		UnexpectedInput:   "unexpected_input",
		MissingOpeningTag: "missing_opening_tag",
		MissingClosingTag: "missing_closing_tag",
		TagNamesMismatch:  "tag_names_mismatch",
		RubyParseError:    "ruby_parse_error",
	}
	for kind, name := range cases {
		require.Equal(t, name, kind.String())
	}
	require.Equal(t, "unknown", Kind(255).String())
}

func TestSeverityStringNames(t *testing.T) {
	require.Equal(t, "syntax", SeveritySyntax.String())
	require.Equal(t, "warning", SeverityWarning.String())
	require.Equal(t, "info", SeverityInfo.String())
	require.Equal(t, "unknown", Severity(255).String())
}
