package docparse

import (
	"regexp"
	"strings"
)

// One complete Epytext field on a single physical line, e.g.
// "@param width: the width" or "@raise ValueError: on bad input".
var epytextField = regexp.MustCompile(`^@(\w+)(?:[ \t]+([^:]+))?:[ \t]*(.*)$`)

// extractEpytext fills doc from Epytext-style field lines, using the same
// single-line-item rule as Sphinx with the @ sigil.
func extractEpytext(lines []string, doc *Doc) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "@") {
			continue
		}
		m := epytextField.FindStringSubmatch(trimmed)
		if m == nil {
			degradeFieldLine(doc, strings.TrimPrefix(trimmed, "@"))
			continue
		}
		applyFieldItem(doc, m[1], strings.TrimSpace(m[2]), strings.TrimSpace(m[3]))
	}
}
