package docparse

import (
	"regexp"
	"strings"
)

// Precompiled dialect markers. Detection order is fixed: epytext, then
// sphinx, then numpy, then google. First match wins; dialects are never mixed.
var (
	// Epytext field markers (@param x: ..., @type x: ...).
	epytextMarker = regexp.MustCompile(`(?m)^[ \t]*@(param|type|return|rtype|raise|except)\b`)

	// Sphinx field lines (:param x: ..., :returns: ...).
	sphinxMarker = regexp.MustCompile(`(?m)^[ \t]*:(param|type|returns?|rtype|raises?)\b[^:\n]*:`)

	// NumPy headers: a known section word underlined with dashes or equals.
	numpyHeaderWord = regexp.MustCompile(`^[ \t]*(Parameters|Returns|Yields|Raises|Warns|Examples|Notes|See Also|Attributes|References|Other Parameters)[ \t]*$`)
	numpyUnderline  = regexp.MustCompile(`^[ \t]*[-=]+[ \t]*$`)

	// Google headers: a section word followed by a colon, alone on its line.
	googleHeaderLine = regexp.MustCompile(`^[ \t]*(Args|Arguments|Returns|Yields|Raises|Examples?|Notes?|Attributes):[ \t]*$`)
)

// DetectStyle classifies the docstring dialect of text. It is pure and
// total: any string, including the empty string, yields a deterministic
// answer. Markers are tested in fixed priority order with the first match
// winning, so a docstring carrying both @param and Args: is epytext.
func DetectStyle(text string) Style {
	if strings.TrimSpace(text) == "" {
		return StyleUnknown
	}
	switch {
	case epytextMarker.MatchString(text):
		return StyleEpytext
	case sphinxMarker.MatchString(text):
		return StyleSphinx
	case hasNumpyHeader(text):
		return StyleNumpy
	case hasGoogleHeader(text):
		return StyleGoogle
	}
	return StyleUnknown
}

// hasNumpyHeader reports whether any line is a known NumPy section word
// immediately followed by an underline of - or = characters.
func hasNumpyHeader(text string) bool {
	lines := strings.Split(text, "\n")
	for i := 0; i+1 < len(lines); i++ {
		if numpyHeaderWord.MatchString(lines[i]) && numpyUnderline.MatchString(lines[i+1]) {
			return true
		}
	}
	return false
}

// hasGoogleHeader reports whether any line is a Google section header.
func hasGoogleHeader(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		if googleHeaderLine.MatchString(line) {
			return true
		}
	}
	return false
}

// isSectionStart reports whether lines[i] begins a structured section in
// any dialect. The splitter uses it to find where prose ends.
func isSectionStart(lines []string, i int) bool {
	line := lines[i]
	if epytextMarker.MatchString(line) || sphinxMarker.MatchString(line) {
		return true
	}
	if googleHeaderLine.MatchString(line) {
		return true
	}
	if numpyHeaderWord.MatchString(line) && i+1 < len(lines) && numpyUnderline.MatchString(lines[i+1]) {
		return true
	}
	return false
}
