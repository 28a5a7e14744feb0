// Package extractor implements spec §4.5's extract_ruby/extract_html
// byte-parallel projections: re-lex the source and emit either the
// embedded Ruby or the surrounding HTML with the other side blanked out,
// so the result can be handed to a downstream Ruby or HTML validator
// whose diagnostics line up with the original source.
package extractor

import (
	"strings"

	"github.com/marcoroth/herb/internal/lexer"
	"github.com/marcoroth/herb/internal/token"
)

// RubyOptions controls extract_ruby's output shape (spec §4.5).
type RubyOptions struct {
	// Semicolons, when true, replaces each ERB_END with " ;" padded with
	// spaces to the marker's original byte length, so ERB regions parse
	// as independent Ruby statements. Default true.
	Semicolons bool
	// Comments, when true and PreservePositions is false, includes ERB
	// comment bodies in the compact output as "# ...". Default false.
	Comments bool
	// PreservePositions, when true (the default), keeps the projection
	// byte-length-identical to source so line/column positions in a
	// downstream parse map back directly. When false, only the Ruby
	// bytes are emitted, one ERB region per line.
	PreservePositions bool
}

// DefaultRubyOptions returns spec §4.5's documented defaults:
// {semicolons: true, comments: false, preserve_positions: true}.
func DefaultRubyOptions() RubyOptions {
	return RubyOptions{Semicolons: true, PreservePositions: true}
}

// ExtractRuby re-lexes source and returns the Ruby-only byte-parallel
// projection described in spec §4.5.
func ExtractRuby(source []byte, options RubyOptions) []byte {
	tokens := lexer.Lex(source)
	if options.PreservePositions {
		return extractRubyPreservingPositions(tokens, options)
	}
	return extractRubyCompact(tokens, options)
}

// ExtractHTML re-lexes source and returns the HTML-only byte-parallel
// projection described in spec §4.5: every ERB token span becomes
// spaces, everything else (including the <%%/<%%= literal escapes, which
// the lexer tokenizes as plain CHARACTER runs) is emitted verbatim.
func ExtractHTML(source []byte) []byte {
	tokens := lexer.Lex(source)
	out := make([]byte, 0, len(source))
	for _, tok := range tokens {
		switch tok.Kind {
		case token.EOF:
		case token.ERB_START, token.ERB_CONTENT, token.ERB_END:
			out = append(out, spaces(len(tok.Value))...)
		default:
			out = append(out, tok.Value...)
		}
	}
	return out
}

func extractRubyPreservingPositions(tokens []token.Token, options RubyOptions) []byte {
	out := make([]byte, 0)
	commentRegion := false

	for _, tok := range tokens {
		switch tok.Kind {
		case token.EOF:

		case token.NEWLINE:
			out = append(out, tok.Value...)

		case token.ERB_START:
			commentRegion = strings.HasPrefix(tok.Text(), "<%#")
			out = append(out, spaces(len(tok.Value))...)

		case token.ERB_CONTENT:
			if commentRegion {
				out = append(out, spaces(len(tok.Value))...)
			} else {
				out = append(out, tok.Value...)
			}

		case token.ERB_END:
			switch {
			case commentRegion:
				out = append(out, spaces(len(tok.Value))...)
			case options.Semicolons:
				out = append(out, semicolonFill(len(tok.Value))...)
			default:
				out = append(out, spaces(len(tok.Value))...)
			}
			commentRegion = false

		default:
			out = append(out, spaces(len(tok.Value))...)
		}
	}
	return out
}

func extractRubyCompact(tokens []token.Token, options RubyOptions) []byte {
	var parts []string
	commentRegion := false

	for _, tok := range tokens {
		switch tok.Kind {
		case token.ERB_START:
			commentRegion = strings.HasPrefix(tok.Text(), "<%#")
		case token.ERB_CONTENT:
			if commentRegion {
				if options.Comments {
					parts = append(parts, "# "+strings.TrimSpace(tok.Text()))
				}
			} else {
				parts = append(parts, tok.Text())
			}
		case token.ERB_END:
			commentRegion = false
		}
	}
	return []byte(strings.Join(parts, "\n"))
}

// semicolonFill produces " ;" padded with trailing spaces to exactly n
// bytes, or truncated to n bytes if the closing marker is shorter than
// that (spec §4.5's " ;" + "enough trailing spaces" rule).
func semicolonFill(n int) []byte {
	const prefix = " ;"
	if n <= len(prefix) {
		return []byte(prefix)[:n]
	}
	out := make([]byte, n)
	copy(out, prefix)
	for i := len(prefix); i < n; i++ {
		out[i] = ' '
	}
	return out
}

func spaces(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return out
}
