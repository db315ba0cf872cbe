package render

import "strings"

// fenceGridTables wraps ASCII grid tables in code fences so Markdown
// renderers do not mangle them.
//
// The scanner buffers contiguous runs of border lines (trimmed form starts
// and ends with '+' and contains '-' or '=') and row lines (trimmed form
// starts and ends with '|'). On leaving a run, the buffer is fenced only if
// it contains at least one border and one row; a run of pipe-rows alone is
// an ordinary Markdown table and passes through untouched. The fence takes
// the indentation of the run's first line.
func fenceGridTables(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))

	var buf []string
	hasBorder, hasRow := false, false

	flush := func() {
		if len(buf) == 0 {
			return
		}
		if hasBorder && hasRow {
			indent := leadingWhitespace(buf[0])
			out = append(out, indent+"```")
			out = append(out, buf...)
			out = append(out, indent+"```")
		} else {
			out = append(out, buf...)
		}
		buf = nil
		hasBorder, hasRow = false, false
	}

	for _, line := range lines {
		switch {
		case isBorderLine(line):
			buf = append(buf, line)
			hasBorder = true
		case isRowLine(line):
			buf = append(buf, line)
			hasRow = true
		default:
			flush()
			out = append(out, line)
		}
	}
	flush()

	return strings.Join(out, "\n")
}

func isBorderLine(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && t[0] == '+' && t[len(t)-1] == '+' && strings.ContainsAny(t, "-=")
}

func isRowLine(line string) bool {
	t := strings.TrimSpace(line)
	return len(t) >= 2 && t[0] == '|' && t[len(t)-1] == '|'
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}
