package render

import (
	"regexp"
	"strings"
)

// RST math markup, rewritten after table fencing.
var (
	// Inline role: :math:`a^2` -> $a^2$
	inlineMath = regexp.MustCompile(":math:`([^`]*)`")

	// Directive with the expression on the same line.
	displayMathArg = regexp.MustCompile(`(?m)^[ \t]*\.\. math::[ \t]*(\S.*)$`)

	// Directive followed by a blank line and an indented body.
	displayMathBlock = regexp.MustCompile(`(?m)^[ \t]*\.\. math::[ \t]*\n[ \t]*\n((?:[ \t]+\S.*\n?)+)`)
)

// rewriteMath converts RST math markup to dollar-delimited form: inline
// roles become $...$ and display directives become $$ blocks on their own
// lines with the body de-indented.
func rewriteMath(text string) string {
	text = displayMathBlock.ReplaceAllStringFunc(text, func(m string) string {
		sub := displayMathBlock.FindStringSubmatch(m)
		return "$$\n" + stripIndent(sub[1]) + "\n$$\n"
	})
	text = displayMathArg.ReplaceAllString(text, "$$$$\n${1}\n$$$$")
	text = inlineMath.ReplaceAllString(text, "$$${1}$$")
	return text
}

// stripIndent removes each line's leading whitespace and trailing blank
// space from a directive body.
func stripIndent(body string) string {
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
