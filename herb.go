// Package herb is the public entry point for the five operations in
// spec §6.1: lex, parse, extract_ruby, extract_html, version. It wires
// internal/lexer, internal/parser, internal/rubyanalyzer, and
// internal/actionview into the single parse pipeline, and owns strict
// mode (rejecting input that produced any diagnostic) since that check
// spans passes no individual internal package knows about on its own.
package herb

import (
	"fmt"

	"github.com/marcoroth/herb/internal/actionview"
	"github.com/marcoroth/herb/internal/ast"
	"github.com/marcoroth/herb/internal/diagnostic"
	"github.com/marcoroth/herb/internal/extractor"
	"github.com/marcoroth/herb/internal/lexer"
	"github.com/marcoroth/herb/internal/parser"
	"github.com/marcoroth/herb/internal/rubyanalyzer"
	"github.com/marcoroth/herb/internal/token"
)

// version is bumped by hand alongside tagged releases; there is no build
// tooling in this module that stamps it automatically.
const version = "0.1.0"

// Options controls parse behavior (spec §6.1).
type Options struct {
	// TrackWhitespace emits Whitespace nodes rather than folding
	// whitespace runs into surrounding Text. Default false.
	TrackWhitespace bool
	// Analyze runs the control-flow rewrite (spec §4.3) and the
	// ActionView tag-helper rewrite (spec §4.4). Default true.
	Analyze bool
	// Strict rejects any input that produced a diagnostic anywhere in
	// the tree, returning a non-nil error instead of a Document.
	Strict bool
}

// DefaultOptions returns spec §6.1's documented defaults:
// {track_whitespace: false, analyze: true, strict: false}.
func DefaultOptions() Options {
	return Options{Analyze: true}
}

// StrictModeError is returned by Parse when options.Strict is set and the
// parsed tree carries at least one diagnostic.
type StrictModeError struct {
	Diagnostics []diagnostic.Diagnostic
}

func (e *StrictModeError) Error() string {
	return fmt.Sprintf("herb: strict mode rejected input with %d diagnostic(s): %s",
		len(e.Diagnostics), e.Diagnostics[0].Message)
}

// Lex tokenizes source into a flat token stream, the last of which is
// always EOF (spec §6.1 `lex`).
func Lex(source []byte) []token.Token {
	return lexer.Lex(source)
}

// Parse lexes and parses source into a Document, optionally running the
// control-flow and ActionView analysis passes and/or rejecting
// diagnostic-bearing input (spec §6.1 `parse`).
func Parse(source []byte, options Options) (*ast.Document, error) {
	doc := parser.Parse(source, parser.Options{TrackWhitespace: options.TrackWhitespace})

	if options.Analyze {
		doc = rubyanalyzer.Analyze(doc, nil)
		doc = actionview.Rewrite(doc)
	}

	if options.Strict {
		if diags := ast.Diagnostics(doc); len(diags) > 0 {
			return nil, &StrictModeError{Diagnostics: diags}
		}
	}

	return doc, nil
}

// ExtractRuby re-lexes source and returns the Ruby-only byte-parallel
// projection (spec §6.1 `extract_ruby`, §4.5).
func ExtractRuby(source []byte, options extractor.RubyOptions) []byte {
	return extractor.ExtractRuby(source, options)
}

// DefaultRubyOptions returns extract_ruby's documented defaults:
// {semicolons: true, comments: false, preserve_positions: true}.
func DefaultRubyOptions() extractor.RubyOptions {
	return extractor.DefaultRubyOptions()
}

// ExtractHTML re-lexes source and returns the HTML-only byte-parallel
// projection, ERB spans blanked to spaces (spec §6.1 `extract_html`, §4.5).
func ExtractHTML(source []byte) []byte {
	return extractor.ExtractHTML(source)
}

// Version returns the implementation version string (spec §6.1 `version`).
func Version() string {
	return version
}
