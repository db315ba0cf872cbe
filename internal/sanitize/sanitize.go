// Package sanitize is the final safety pass over assembled Markdown.
//
// It repairs unbalanced code fences, rewrites manpage-style quoting, and
// neutralizes unsafe links, so that callers always receive well-formed
// Markdown no matter how pathological the source docstring was. Every
// function is pure, total, and idempotent.
package sanitize

import "strings"

// Sanitize runs all repair passes in order: fence balancing first (the
// other passes depend on fence parity), then quote repair, then link
// sanitization.
func Sanitize(text string) string {
	text = RepairFences(text)
	text = RepairQuotes(text)
	text = SanitizeLinks(text)
	return text
}

// isFenceLine reports whether a line toggles fenced-code state. Only
// parity is tracked; fence nesting depth is not.
func isFenceLine(line string) bool {
	return strings.HasPrefix(strings.TrimLeft(line, " \t"), "```")
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
