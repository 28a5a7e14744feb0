// Package token defines Herb's wire-stable token kind enumeration (spec
// §6.2) and the Token value itself. The enum-plus-string-table shape is
// grounded on js_lexer.T / tokenToString in the teacher.
package token

import "github.com/marcoroth/herb/internal/position"

// Kind enumerates every token kind the lexer can emit. Order matches spec
// §6.2 exactly — this enumeration is part of Herb's public wire contract,
// so kinds are never reordered or renumbered once shipped.
type Kind uint8

const (
	WHITESPACE Kind = iota
	NBSP
	NEWLINE
	IDENTIFIER
	HTML_DOCTYPE
	XML_DECLARATION
	XML_DECLARATION_END
	CDATA_START
	CDATA_END
	HTML_TAG_START
	HTML_TAG_START_CLOSE
	HTML_TAG_END
	HTML_TAG_SELF_CLOSE
	HTML_COMMENT_START
	HTML_COMMENT_END
	ERB_START
	ERB_CONTENT
	ERB_END
	LT
	SLASH
	EQUALS
	QUOTE
	BACKTICK
	BACKSLASH
	DASH
	UNDERSCORE
	EXCLAMATION
	SEMICOLON
	COLON
	AT
	PERCENT
	AMPERSAND
	CHARACTER
	ERROR
	EOF
)

var kindNames = [...]string{
	WHITESPACE:           "WHITESPACE",
	NBSP:                 "NBSP",
	NEWLINE:              "NEWLINE",
	IDENTIFIER:           "IDENTIFIER",
	HTML_DOCTYPE:         "HTML_DOCTYPE",
	XML_DECLARATION:      "XML_DECLARATION",
	XML_DECLARATION_END:  "XML_DECLARATION_END",
	CDATA_START:          "CDATA_START",
	CDATA_END:            "CDATA_END",
	HTML_TAG_START:       "HTML_TAG_START",
	HTML_TAG_START_CLOSE: "HTML_TAG_START_CLOSE",
	HTML_TAG_END:         "HTML_TAG_END",
	HTML_TAG_SELF_CLOSE:  "HTML_TAG_SELF_CLOSE",
	HTML_COMMENT_START:   "HTML_COMMENT_START",
	HTML_COMMENT_END:     "HTML_COMMENT_END",
	ERB_START:            "ERB_START",
	ERB_CONTENT:          "ERB_CONTENT",
	ERB_END:              "ERB_END",
	LT:                   "LT",
	SLASH:                "SLASH",
	EQUALS:               "EQUALS",
	QUOTE:                "QUOTE",
	BACKTICK:             "BACKTICK",
	BACKSLASH:            "BACKSLASH",
	DASH:                 "DASH",
	UNDERSCORE:           "UNDERSCORE",
	EXCLAMATION:          "EXCLAMATION",
	SEMICOLON:            "SEMICOLON",
	COLON:                "COLON",
	AT:                   "AT",
	PERCENT:              "PERCENT",
	AMPERSAND:            "AMPERSAND",
	CHARACTER:            "CHARACTER",
	ERROR:                "ERROR",
	EOF:                  "EOF",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "UNKNOWN"
}

// TextProducing reports whether a token of this kind contributes literal
// text to a parent Text/Literal node when the parser aggregates runs of
// consecutive tokens (spec §4.2's parse_text / parse_whitespace).
func (k Kind) TextProducing() bool {
	switch k {
	case WHITESPACE, NBSP, NEWLINE, IDENTIFIER, CHARACTER, DASH, UNDERSCORE,
		EXCLAMATION, SEMICOLON, COLON, AT, PERCENT, AMPERSAND, QUOTE, BACKTICK,
		BACKSLASH, SLASH, EQUALS:
		return true
	default:
		return false
	}
}

// Token is a single lexeme: its kind, the exact source bytes it covers, its
// byte Range, and its line/column Location (spec §3 Token).
type Token struct {
	Kind     Kind
	Value    []byte
	Range    position.Range
	Location position.Location
}

// Text is a convenience accessor returning Value as a string. Conversion
// happens lazily at read time rather than being cached on the token so that
// a Token stays a plain, deep-copyable value (spec §3 lifecycle: tokens are
// deep-copied into every owning node, never shared).
func (t Token) Text() string {
	return string(t.Value)
}

// Clone returns a deep copy of t with its own backing byte slice, matching
// the "tokens are deep-copied into each owning node" invariant of spec §3.
func (t Token) Clone() Token {
	v := make([]byte, len(t.Value))
	copy(v, t.Value)
	return Token{Kind: t.Kind, Value: v, Range: t.Range, Location: t.Location}
}
