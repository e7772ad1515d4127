package splitter

import "strings"

// docCommentPrefixes are the recognized doc-comment openers: a comment
// block is accepted as documentation if at least one of its lines starts
// with one of these after trimming leading whitespace.
var docCommentPrefixes = []string{"/**", "/*!", "///", "//!", "##"}

// isDocCommentBlock decides whether a run of contiguous leading comment
// lines qualifies as documentation: either one line carries a recognized
// doc-comment prefix, or at least two consecutive plain "//"/"#" line
// comments precede the node.
func isDocCommentBlock(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for _, l := range lines {
		t := strings.TrimSpace(l)
		for _, p := range docCommentPrefixes {
			if strings.HasPrefix(t, p) {
				return true
			}
		}
	}
	plainRun := 0
	best := 0
	for _, l := range lines {
		t := strings.TrimSpace(l)
		if strings.HasPrefix(t, "//") || strings.HasPrefix(t, "#") {
			plainRun++
			if plainRun > best {
				best = plainRun
			}
		} else {
			plainRun = 0
		}
	}
	return best >= 2
}

// normalizeDocComment strips block-comment delimiters and line-comment
// markers from each line, preserving internal newlines, and trims the
// surrounding whitespace of the result.
func normalizeDocComment(lines []string) string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		t := l
		t = strings.TrimSpace(t)
		switch {
		case strings.HasPrefix(t, "/**"):
			t = strings.TrimPrefix(t, "/**")
		case strings.HasPrefix(t, "/*!"):
			t = strings.TrimPrefix(t, "/*!")
		case strings.HasPrefix(t, "/*"):
			t = strings.TrimPrefix(t, "/*")
		}
		t = strings.TrimSuffix(t, "*/")
		t = strings.TrimPrefix(t, "///")
		t = strings.TrimPrefix(t, "//!")
		t = strings.TrimPrefix(t, "//")
		t = strings.TrimPrefix(t, "##")
		t = strings.TrimPrefix(t, "#")
		t = strings.TrimPrefix(t, "*")
		out = append(out, strings.TrimSpace(t))
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// stringPrefixes are Python string-literal prefixes stripped before the
// quote delimiters when extracting an inline docstring.
var stringPrefixes = []string{"rb", "rB", "Rb", "RB", "br", "bR", "Br", "BR",
	"fr", "fR", "Fr", "FR", "rf", "rF", "Rf", "RF",
	"r", "R", "b", "B", "u", "U", "f", "F"}

// stripPythonStringLiteral removes a Python string literal's prefix and
// quote delimiters (triple or single, single or double quote char),
// returning the inner text unescaped-as-is.
func stripPythonStringLiteral(raw string) string {
	s := raw
	for _, p := range stringPrefixes {
		if strings.HasPrefix(s, p) {
			rest := s[len(p):]
			if strings.HasPrefix(rest, `"`) || strings.HasPrefix(rest, "'") {
				s = rest
				break
			}
		}
	}
	for _, q := range []string{`"""`, "'''"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return strings.TrimSpace(s[len(q) : len(s)-len(q)])
		}
	}
	for _, q := range []string{`"`, "'"} {
		if strings.HasPrefix(s, q) && strings.HasSuffix(s, q) && len(s) >= 2*len(q) {
			return strings.TrimSpace(s[len(q) : len(s)-len(q)])
		}
	}
	return strings.TrimSpace(s)
}
