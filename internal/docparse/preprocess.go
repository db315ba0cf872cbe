package docparse

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Line ending normalization.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// Normalize canonicalizes a raw docstring before detection and splitting:
// CRLF/CR line endings become LF and the text is Unicode NFC-normalized so
// that header and marker matching operates on canonical code points.
func Normalize(text string) string {
	text = crlfOrCR.ReplaceAllString(text, "\n")
	if !norm.NFC.IsNormalString(text) {
		text = norm.NFC.String(text)
	}
	return text
}
