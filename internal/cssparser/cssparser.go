// Package cssparser parses the body of a <style> tag into a cssast.Stylesheet
// (spec §4.2.2's "external CSS parser" dispatch, §3 CSSStyle/CSSRule/
// CSSDeclaration). Trimmed from the teacher's internal/css_parser, which
// parses full CSS3 (at-rules, nesting, nested-selector lowering, nth-child
// selectors, nested calc() reduction) to power a bundler; Herb only reports
// structure for tooling, so this keeps the teacher's "flat token slice,
// single index cursor" parser shape but only the selector/declaration-block
// grammar (see DESIGN.md for what was dropped and why).
package cssparser

import (
	"strings"

	"github.com/marcoroth/herb/internal/cssast"
	"github.com/marcoroth/herb/internal/csslexer"
)

type parser struct {
	tokens []csslexer.Token
	pos    int
}

func (p *parser) cur() csslexer.Token {
	if p.pos >= len(p.tokens) {
		return csslexer.Token{Kind: csslexer.TEOF}
	}
	return p.tokens[p.pos]
}

func (p *parser) advance() csslexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return t
}

// Parse parses a full <style> body into a Stylesheet. It never errors:
// malformed CSS degrades to fewer/partial rules, matching Herb's overall
// "diagnostics are data, parsing never aborts" design (spec §7).
func Parse(src string) cssast.Stylesheet {
	p := &parser{tokens: csslexer.Tokenize(src)}
	var sheet cssast.Stylesheet

	for p.cur().Kind != csslexer.TEOF {
		rule, ok := p.parseRule()
		if !ok {
			break
		}
		sheet.Rules = append(sheet.Rules, rule)
	}
	return sheet
}

// parseRule parses "selector { decl; decl; ... }".
func (p *parser) parseRule() (cssast.Rule, bool) {
	var selectorParts []string
	for {
		t := p.cur()
		switch t.Kind {
		case csslexer.TEOF:
			return cssast.Rule{}, false
		case csslexer.TOpenBrace:
			p.advance()
			selector := strings.TrimSpace(strings.Join(selectorParts, ""))
			decls := p.parseDeclarations()
			return cssast.Rule{Selector: selector, Declarations: decls}, true
		case csslexer.TCloseBrace:
			// Stray close brace with no matching open: skip it.
			p.advance()
			return cssast.Rule{}, len(selectorParts) == 0 && p.cur().Kind != csslexer.TEOF
		default:
			selectorParts = append(selectorParts, t.Text)
			p.advance()
		}
	}
}

// parseDeclarations parses "prop: value; prop: value" up to and including
// the closing brace.
func (p *parser) parseDeclarations() []cssast.Declaration {
	var decls []cssast.Declaration
	var propertyParts []string
	var valueParts []string
	inValue := false

	flush := func() {
		property := strings.TrimSpace(strings.Join(propertyParts, ""))
		value := strings.TrimSpace(strings.Join(valueParts, ""))
		if property != "" {
			decls = append(decls, cssast.Declaration{Property: property, Value: value})
		}
		propertyParts = nil
		valueParts = nil
		inValue = false
	}

	for {
		t := p.cur()
		switch t.Kind {
		case csslexer.TEOF:
			flush()
			return decls
		case csslexer.TCloseBrace:
			p.advance()
			flush()
			return decls
		case csslexer.TColon:
			inValue = true
			p.advance()
		case csslexer.TSemicolon:
			flush()
			p.advance()
		default:
			if inValue {
				valueParts = append(valueParts, t.Text)
			} else {
				propertyParts = append(propertyParts, t.Text)
			}
			p.advance()
		}
	}
}
