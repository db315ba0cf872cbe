package sanitize

import (
	"regexp"
	"strings"
)

// URI scheme prefix per RFC 3986 (scheme followed by a colon).
var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)

// SanitizeLinks collapses unsafe Markdown links and images to their bare
// label text, outside fenced regions. A character scanner is used rather
// than a regex so that nested parentheses inside URLs balance correctly.
// Malformed or unterminated link syntax is left as literal text.
func SanitizeLinks(text string) string {
	lines := strings.Split(text, "\n")
	inside := false
	for i, line := range lines {
		if isFenceLine(line) {
			inside = !inside
			continue
		}
		if !inside && strings.Contains(line, "](") {
			lines[i] = sanitizeLinkLine(line)
		}
	}
	return strings.Join(lines, "\n")
}

func sanitizeLinkLine(line string) string {
	var out strings.Builder
	i := 0
	for i < len(line) {
		start := i
		bracket := -1
		switch {
		case line[i] == '[':
			bracket = i
		case line[i] == '!' && i+1 < len(line) && line[i+1] == '[':
			bracket = i + 1
		}
		if bracket < 0 {
			out.WriteByte(line[i])
			i++
			continue
		}

		label, target, end, ok := parseLink(line, bracket)
		if !ok {
			out.WriteByte(line[start])
			i = start + 1
			continue
		}
		if safeTarget(target) {
			out.WriteString(line[start : end+1])
		} else {
			out.WriteString(label)
		}
		i = end + 1
	}
	return out.String()
}

// parseLink parses a [label](target) form starting at the opening bracket.
// The label runs to the first unescaped ']' (escapes are dropped from the
// returned label); the target is delimited by counting nested parentheses.
// end is the index of the closing parenthesis.
func parseLink(line string, bracket int) (label, target string, end int, ok bool) {
	var lb strings.Builder
	j := bracket + 1
	for j < len(line) && line[j] != ']' {
		if line[j] == '\\' && j+1 < len(line) {
			lb.WriteByte(line[j+1])
			j += 2
			continue
		}
		lb.WriteByte(line[j])
		j++
	}
	if j >= len(line) || j+1 >= len(line) || line[j+1] != '(' {
		return "", "", 0, false
	}

	k := j + 2
	depth := 1
	for k < len(line) {
		switch line[k] {
		case '(':
			depth++
		case ')':
			depth--
		}
		if depth == 0 {
			break
		}
		k++
	}
	if k >= len(line) {
		return "", "", 0, false
	}
	return lb.String(), line[j+2 : k], k, true
}

// safeTarget accepts in-page anchors, scheme-qualified URIs, and relative
// paths free of parent-directory traversal. Scheme-qualified URLs are never
// traversal-checked; only bare relative paths are.
func safeTarget(target string) bool {
	if strings.HasPrefix(target, "#") {
		return true
	}
	if schemePrefix.MatchString(target) {
		return true
	}
	return !hasTraversal(target)
}

func hasTraversal(target string) bool {
	return strings.Contains(target, "../") || strings.Contains(target, `..\`)
}
