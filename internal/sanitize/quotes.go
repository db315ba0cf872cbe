package sanitize

import (
	"regexp"
	"strings"
)

// Manpage-style quoting: `word' with a backtick opener and quote closer.
var manpageQuote = regexp.MustCompile("`([^`'\n]+)'")

// RepairQuotes rewrites manpage-style quoting to standard backtick pairs,
// leaving fenced code regions untouched.
func RepairQuotes(text string) string {
	lines := strings.Split(text, "\n")
	inside := false
	for i, line := range lines {
		if isFenceLine(line) {
			inside = !inside
			continue
		}
		if !inside {
			lines[i] = manpageQuote.ReplaceAllString(line, "`$1`")
		}
	}
	return strings.Join(lines, "\n")
}
