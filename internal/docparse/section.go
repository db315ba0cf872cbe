package docparse

import (
	"regexp"
	"strings"
)

// Trailing "Defaults to X." / "Default is X." phrase in a description.
var defaultsClause = regexp.MustCompile(`\s*[Dd]efaults?\s+(?:to|is)\s+(.+?)\.?$`)

// extractDefault splits a parameter description into the prose part and the
// declared default value, if a trailing defaults phrase is present.
func extractDefault(desc string) (rest, def string) {
	m := defaultsClause.FindStringSubmatchIndex(desc)
	if m == nil {
		return desc, ""
	}
	def = strings.TrimSpace(desc[m[2]:m[3]])
	rest = strings.TrimSpace(desc[:m[0]])
	return rest, def
}

// dedentBlock strips the common leading whitespace from a section body and
// trims surrounding blank space. Returns "" for all-blank input.
func dedentBlock(lines []string) string {
	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		n := len(line) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent < 0 {
		return ""
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

// dedentLines strips the common leading whitespace of non-blank lines,
// preserving relative indentation. Blank lines are left blank.
func dedentLines(lines []string) []string {
	indent := -1
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		n := len(line) - len(trimmed)
		if indent < 0 || n < indent {
			indent = n
		}
	}
	if indent <= 0 {
		return lines
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		if len(line) >= indent {
			out[i] = line[indent:]
		} else {
			out[i] = strings.TrimLeft(line, " \t")
		}
	}
	return out
}

// appendNotes merges a notes block into the document, separating multiple
// note sections with a blank line.
func appendNotes(doc *Doc, text string) {
	if text == "" {
		return
	}
	if doc.Notes == "" {
		doc.Notes = text
		return
	}
	doc.Notes += "\n\n" + text
}
