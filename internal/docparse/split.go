package docparse

import "strings"

// splitDoc separates a normalized docstring into the leading summary line,
// the free-form description, and the raw lines of the structured sections.
//
// The first non-blank line becomes the short description, unless it is
// itself a section header, in which case the summary is empty and sections
// begin immediately. Remaining lines up to the first section header across
// all dialects form the long description; everything after belongs to the
// section extractor. When no header is ever found the whole remainder is
// prose and section extraction yields nothing.
func splitDoc(text string) (short, long string, sectionLines []string) {
	lines := strings.Split(text, "\n")

	// Drop leading blank lines.
	start := 0
	for start < len(lines) && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	if start == len(lines) {
		return "", "", nil
	}

	if !isSectionStart(lines, start) {
		short = strings.TrimSpace(lines[start])
		start++
	}

	// Prose continues until the first section header.
	sectionAt := -1
	var longLines []string
	for i := start; i < len(lines); i++ {
		if isSectionStart(lines, i) {
			sectionAt = i
			break
		}
		longLines = append(longLines, lines[i])
	}

	long = strings.TrimSpace(strings.Join(longLines, "\n"))
	if sectionAt >= 0 {
		sectionLines = lines[sectionAt:]
	}
	return short, long, sectionLines
}
