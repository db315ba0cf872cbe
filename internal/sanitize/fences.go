package sanitize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Function-call shape, used to reject code-looking lines.
var callPattern = regexp.MustCompile(`\w+\(`)

// RepairFences balances code fences by inserting one closing fence for the
// last unmatched opener. The insertion point is chosen to keep prose out of
// the code block: preferably the first blank line immediately followed by a
// prose-looking line after the opener, otherwise directly before the first
// prose-looking line, otherwise the document end. The inserted fence takes
// the opener's indentation. Balanced input is returned unchanged.
func RepairFences(text string) string {
	lines := strings.Split(text, "\n")

	inside := false
	openIdx := -1
	for i, line := range lines {
		if isFenceLine(line) {
			if inside {
				inside = false
			} else {
				inside = true
				openIdx = i
			}
		}
	}
	if !inside {
		return text
	}

	closing := leadingWhitespace(lines[openIdx]) + "```"

	for i := openIdx + 1; i+1 < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" && looksLikeProse(lines[i+1]) {
			return joinWithInsert(lines, i, closing)
		}
	}
	for i := openIdx + 1; i < len(lines); i++ {
		if looksLikeProse(lines[i]) {
			return joinWithInsert(lines, i, closing)
		}
	}
	return strings.Join(append(lines, closing), "\n")
}

// joinWithInsert rejoins lines with extra inserted before lines[at].
func joinWithInsert(lines []string, at int, extra string) string {
	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:at]...)
	out = append(out, extra)
	out = append(out, lines[at:]...)
	return strings.Join(out, "\n")
}

// looksLikeProse reports whether a line reads as sentence text rather than
// code: it must contain a space, start with a capital or end with terminal
// punctuation, and show no code shapes (calls, assignment, comparison,
// arrows).
func looksLikeProse(line string) bool {
	t := strings.TrimSpace(line)
	if t == "" || !strings.Contains(t, " ") {
		return false
	}
	if callPattern.MatchString(t) ||
		strings.Contains(t, " = ") ||
		strings.Contains(t, "==") ||
		strings.Contains(t, "->") {
		return false
	}
	first, _ := utf8.DecodeRuneInString(t)
	if unicode.IsUpper(first) {
		return true
	}
	switch t[len(t)-1] {
	case '.', '!', '?', ':':
		return true
	}
	return false
}
