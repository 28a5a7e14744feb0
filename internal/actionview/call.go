package actionview

import "strings"

// HelperCall is a recognized tag-helper call: which helper, what tag it
// produces, and its arguments split into positional/keyword/splat form.
type HelperCall struct {
	Helper       string // "tag" | "content_tag" | "link_to"
	TagName      string
	Positional   []string
	Kwargs       []KwArg
	DoubleSplats []string
}

// stripBlockOpener removes a trailing Ruby block opener ("do" or
// "do |params|") from a fragment so the call head underneath can be
// recognized the same way as a non-block call.
func stripBlockOpener(s string) string {
	s = strings.TrimRight(strings.TrimSpace(s), " \t")
	if strings.HasSuffix(s, "do") {
		return strings.TrimSpace(s[:len(s)-2])
	}
	if idx := strings.LastIndex(s, "|"); idx >= 0 {
		rest := s[:idx]
		if secondIdx := strings.LastIndex(rest, "|"); secondIdx >= 0 {
			doIdx := strings.LastIndex(rest[:secondIdx], "do")
			if doIdx >= 0 {
				return strings.TrimSpace(s[:doIdx])
			}
		}
	}
	return s
}

// RecognizeCall matches text (a trimmed Ruby expression, with any block
// opener already stripped) against the three registered tag-helper call
// shapes (spec §4.4, supplemented by original_source's registry.c, which
// confirms these three are the complete registered set).
func RecognizeCall(text string) (*HelperCall, bool) {
	text = strings.TrimSpace(text)

	switch {
	case strings.HasPrefix(text, "tag."):
		name, argsText, ok := splitMethodCall(text[len("tag."):])
		if !ok {
			return nil, false
		}
		pos, kwargs, splats := parseArgs(argsText)
		return &HelperCall{Helper: "tag", TagName: name, Positional: pos, Kwargs: kwargs, DoubleSplats: splats}, true

	case strings.HasPrefix(text, "content_tag"):
		argsText, ok := extractArgsText(text[len("content_tag"):])
		if !ok {
			return nil, false
		}
		pos, kwargs, splats := parseArgs(argsText)
		if len(pos) == 0 {
			return nil, false
		}
		return &HelperCall{
			Helper:       "content_tag",
			TagName:      literalOrBareSymbol(pos[0]),
			Positional:   pos[1:],
			Kwargs:       kwargs,
			DoubleSplats: splats,
		}, true

	case strings.HasPrefix(text, "link_to"):
		argsText, ok := extractArgsText(text[len("link_to"):])
		if !ok {
			return nil, false
		}
		pos, kwargs, splats := parseArgs(argsText)
		return &HelperCall{Helper: "link_to", TagName: "a", Positional: pos, Kwargs: kwargs, DoubleSplats: splats}, true
	}

	return nil, false
}

// splitMethodCall splits "div(\"x\", class: \"y\")" or the paren-less
// "div \"x\", class: \"y\"" or the bare "br" into a method name and its
// raw argument-list text.
func splitMethodCall(rest string) (name string, argsText string, ok bool) {
	i := 0
	for i < len(rest) && isIdentByte(rest[i]) {
		i++
	}
	if i == 0 {
		return "", "", false
	}
	name = rest[:i]
	remainder := strings.TrimSpace(rest[i:])
	if remainder == "" {
		return name, "", true
	}
	if strings.HasPrefix(remainder, "(") {
		args, ok := stripMatchingParens(remainder)
		return name, args, ok
	}
	return name, remainder, true
}

// extractArgsText returns the argument-list text following a bare helper
// name, for the "(...)" form or the paren-less "arg, arg" form.
func extractArgsText(rest string) (string, bool) {
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	if strings.HasPrefix(rest, "(") {
		return stripMatchingParens(rest)
	}
	return rest, true
}
