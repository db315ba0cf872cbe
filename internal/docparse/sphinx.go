package docparse

import (
	"regexp"
	"strings"
)

// One complete Sphinx field on a single physical line, e.g.
// ":param width: the width" or ":raises ValueError: on bad input".
var sphinxField = regexp.MustCompile(`^:(\w+)(?:[ \t]+([^:]+))?:[ \t]*(.*)$`)

// extractSphinx fills doc from Sphinx-style field lines. Each field is one
// physical line; there is no multi-line continuation. A field line missing
// its closing colon degrades to an entry with empty name and description.
func extractSphinx(lines []string, doc *Doc) {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, ":") {
			continue
		}
		m := sphinxField.FindStringSubmatch(trimmed)
		if m == nil {
			degradeFieldLine(doc, strings.TrimPrefix(trimmed, ":"))
			continue
		}
		applyFieldItem(doc, m[1], strings.TrimSpace(m[2]), strings.TrimSpace(m[3]))
	}
}

// degradeFieldLine absorbs a malformed field line (missing delimiter) into
// an empty entry of the right kind instead of dropping it.
func degradeFieldLine(doc *Doc, rest string) {
	switch {
	case strings.HasPrefix(rest, "param"), strings.HasPrefix(rest, "arg"):
		doc.Params = append(doc.Params, Param{})
	case strings.HasPrefix(rest, "raise"), strings.HasPrefix(rest, "except"):
		doc.Raises = append(doc.Raises, RaiseEntry{})
	}
}
