package rubyanalyzer

import (
	"strings"

	"github.com/marcoroth/herb/internal/ast"
)

// Classify derives an ERBContent fragment's ClassificationFlags from its
// leading keyword and trailing block-opener shape. Ruby's control-flow
// keywords (if/unless/case/begin/for/while/until/end, plus the mid-chain
// elsif/else/when/in/rescue/ensure) are exactly the set of standalone
// fragments a full Ruby parser cannot parse on their own — "if foo" alone
// is not a complete program — so Herb classifies them the same way the
// original C lexer's token.c/fast-path keyword table does: a leading-word
// scan over the trimmed fragment, never a full parse. Plain expression
// fragments (everything else) are left to the embedded Ruby parser in
// treesitter.go.
func Classify(content string) ast.ClassificationFlags {
	trimmed := strings.TrimSpace(content)
	word := leadingWord(trimmed)

	var f ast.ClassificationFlags
	switch word {
	case "if":
		f.HasIf = true
	case "unless":
		f.HasUnless = true
	case "elsif":
		f.HasElsif = true
	case "else":
		f.HasElse = true
	case "case":
		f.HasCase = true
	case "when":
		f.HasWhen = true
	case "in":
		f.HasIn = true
	case "begin":
		f.HasBegin = true
	case "rescue":
		f.HasRescue = true
	case "ensure":
		f.HasEnsure = true
	case "for":
		f.HasFor = true
	case "while":
		f.HasWhile = true
	case "until":
		f.HasUntil = true
	case "end":
		f.HasEnd = true
	}

	if !f.IsControlOpener() && !f.HasEnd && hasTrailingBlockOpener(trimmed) {
		f.HasBlock = true
	}

	if containsWord(trimmed, "yield") {
		f.HasYield = true
	}

	return f
}

// leadingWord returns the first run of identifier bytes in s, which for a
// Ruby control-flow fragment is always its keyword ("if", "elsif", "end",
// ...); for anything else it is just some identifier that does not match
// any case in Classify's switch.
func leadingWord(s string) string {
	i := 0
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return s[:i]
}

func isIdentByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// hasTrailingBlockOpener reports whether the fragment ends in a Ruby block
// opener: a bare "do" or "do |params|", which is how "<% items.each do |i| %>"
// and "<% respond_to do |format| %>" are told apart from a plain call.
func hasTrailingBlockOpener(s string) bool {
	s = strings.TrimRight(s, " \t")
	if strings.HasSuffix(s, "do") {
		before := s[:len(s)-2]
		return before == "" || strings.HasSuffix(before, " ") || strings.HasSuffix(before, "\t") || strings.HasSuffix(before, ")")
	}
	if !strings.HasSuffix(s, "|") {
		return false
	}
	doIdx := strings.LastIndex(s, "do")
	if doIdx < 0 {
		return false
	}
	rest := s[doIdx+2:]
	return strings.Count(rest, "|") == 2 && strings.TrimSpace(rest) == rest[strings.Index(rest, "|"):]
}

// containsWord reports whether word appears in s as a whole identifier,
// not as a substring of a longer one (so "yielder" doesn't count as "yield").
func containsWord(s, word string) bool {
	idx := 0
	for {
		i := strings.Index(s[idx:], word)
		if i < 0 {
			return false
		}
		start := idx + i
		end := start + len(word)
		leftOK := start == 0 || !isIdentByte(s[start-1])
		rightOK := end == len(s) || !isIdentByte(s[end])
		if leftOK && rightOK {
			return true
		}
		idx = start + 1
		if idx >= len(s) {
			return false
		}
	}
}
