// Package htmlrules holds the compile-time constant tables that drive the
// parser's HTML auto-closing behavior (spec §4.2.1): void elements,
// optional-end-tag elements, and the sibling/parent pairs that implicitly
// close them. Grounded on original_source/src/html_util.c, which keeps this
// kind of small table-lookup logic in its own file rather than inlining it
// into the parser or lexer — the same separation the teacher uses for its
// internal/compat constant tables.
package htmlrules

// FoldASCII lowercases the ASCII letters in s, leaving any non-ASCII bytes
// untouched. HTML tag names are ASCII, so this is the comparison the spec
// calls for rather than a full Unicode case fold.
func FoldASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// EqualFold reports whether a and b are equal under ASCII case-folding.
func EqualFold(a, b string) bool {
	return FoldASCII(a) == FoldASCII(b)
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tagName (any case) never has a close tag.
func IsVoidElement(tagName string) bool {
	return voidElements[FoldASCII(tagName)]
}

var optionalEndElements = map[string]bool{
	"li": true, "dt": true, "dd": true, "p": true, "rt": true, "rp": true,
	"optgroup": true, "option": true, "thead": true, "tbody": true,
	"tfoot": true, "tr": true, "td": true, "th": true, "colgroup": true,
}

// IsOptionalEndElement reports whether tagName may have its close tag
// omitted, per the spec §4.2.1 table.
func IsOptionalEndElement(tagName string) bool {
	return optionalEndElements[FoldASCII(tagName)]
}

// pBlockers is the 30-element block-level set that implicitly closes an
// open <p>.
var pBlockers = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"details": true, "div": true, "dl": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hgroup": true, "hr": true, "main": true, "menu": true,
	"nav": true, "ol": true, "p": true, "pre": true, "section": true,
	"table": true, "ul": true,
}

// ImplicitlyCloses reports whether an open element named openTag is closed
// implicitly by the opening of a sibling (or foreign ancestor-close) named
// nextTag, per the pairs enumerated in spec §4.2.1.
func ImplicitlyCloses(openTag, nextTag string) bool {
	open := FoldASCII(openTag)
	next := FoldASCII(nextTag)

	switch open {
	case "li":
		return next == "li"
	case "dt":
		return next == "dt" || next == "dd"
	case "dd":
		return next == "dt" || next == "dd"
	case "p":
		return pBlockers[next]
	case "rt":
		return next == "rt" || next == "rp"
	case "rp":
		return next == "rt" || next == "rp"
	case "optgroup":
		return next == "optgroup"
	case "option":
		return next == "option" || next == "optgroup"
	case "thead":
		return next == "tbody" || next == "tfoot"
	case "tbody":
		return next == "tbody" || next == "tfoot"
	case "tr":
		return next == "tr"
	case "td":
		return next == "td" || next == "th"
	case "th":
		return next == "td" || next == "th"
	case "colgroup":
		return next != "col"
	default:
		return false
	}
}

// IsASCIIWhitespace reports whether b is an HTML-insignificant whitespace
// byte: space or tab (newlines are handled as their own token kind).
func IsASCIIWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

// foreignContentTags are the elements whose body is treated as raw text
// rather than re-entering HTML tokenization (spec §4.2.2).
var foreignContentTags = map[string]bool{"script": true, "style": true}

// IsForeignContentElement reports whether tagName switches the parser into
// FOREIGN_CONTENT mode.
func IsForeignContentElement(tagName string) bool {
	return foreignContentTags[FoldASCII(tagName)]
}
