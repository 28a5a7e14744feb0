// Package diagnostic defines Herb's error taxonomy. Errors are data, not
// control flow (spec §7): every AST node owns an ordered slice of
// Diagnostic, and nothing in the parser or lexer ever aborts because of
// one. The shape is deliberately close to the teacher's logger.Msg —
// Kind/Message/Severity/Location — stripped of esbuild's per-language
// message-ID catalog, which has no analog here: Herb's diagnostic Kinds are
// the small closed set enumerated in spec §6.3, not a few hundred
// lint-rule IDs, so there is no separate msg_ids.go to carry over.
package diagnostic

import (
	"fmt"

	"github.com/marcoroth/herb/internal/position"
)

// Severity classifies how serious a Diagnostic is.
type Severity uint8

const (
	SeveritySyntax Severity = iota
	SeverityWarning
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeveritySyntax:
		return "syntax"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// Kind is the closed set of diagnostic kinds from spec §6.3.
type Kind uint8

const (
	UnexpectedToken Kind = iota
	UnexpectedInput
	MissingOpeningTag
	MissingClosingTag
	TagNamesMismatch
	RubyParseError
)

var kindNames = [...]string{
	UnexpectedToken:   "unexpected_token",
	UnexpectedInput:   "unexpected_input",
	MissingOpeningTag: "missing_opening_tag",
	MissingClosingTag: "missing_closing_tag",
	TagNamesMismatch:  "tag_names_mismatch",
	RubyParseError:    "ruby_parse_error",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// RelatedNode is implemented by ast.Node; kept as an interface here so this
// package has no dependency on internal/ast (diagnostics are attached to
// nodes, not the other way around).
type RelatedNode interface {
	DiagnosticLabel() string
}

// Diagnostic is the public payload shape from spec §6.3.
type Diagnostic struct {
	Kind        Kind
	Message     string
	Severity    Severity
	Start       position.Position
	End         position.Position
	RelatedNode RelatedNode
}

// Location reconstructs the Location a Diagnostic covers.
func (d Diagnostic) Location() position.Location {
	return position.Location{Start: d.Start, End: d.End}
}

// New builds a Diagnostic of SeveritySyntax at the given location.
func New(kind Kind, message string, loc position.Location) Diagnostic {
	return Diagnostic{Kind: kind, Message: message, Severity: SeveritySyntax, Start: loc.Start, End: loc.End}
}

// Newf is New with fmt.Sprintf-style formatting, mirroring the teacher's
// addError/addRangeError helper convenience.
func Newf(kind Kind, loc position.Location, format string, args ...any) Diagnostic {
	return New(kind, fmt.Sprintf(format, args...), loc)
}

// Warning builds a SeverityWarning Diagnostic.
func Warning(kind Kind, message string, loc position.Location) Diagnostic {
	d := New(kind, message, loc)
	d.Severity = SeverityWarning
	return d
}
