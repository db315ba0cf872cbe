package render

import "strings"

// examplesBlock renders each raw example block as an indented code
// transcript in IEx form.
func examplesBlock(examples []string) string {
	if len(examples) == 0 {
		return ""
	}
	formatted := make([]string, 0, len(examples))
	for _, ex := range examples {
		if t := formatExample(ex); t != "" {
			formatted = append(formatted, t)
		}
	}
	if len(formatted) == 0 {
		return ""
	}
	return "## Examples\n\n" + strings.Join(formatted, "\n\n")
}

// formatExample converts a doctest-style transcript into indented code:
// ">>>" prompts become "iex>", "..." continuations become "...>", blank
// lines pass through, and anything else is indented as plain code with its
// own leading whitespace kept, so relative indentation inside output blocks
// survives.
func formatExample(block string) string {
	lines := strings.Split(block, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		switch {
		case trimmed == "":
			out = append(out, "")
		case strings.HasPrefix(trimmed, ">>>"):
			out = append(out, "    iex>"+strings.TrimPrefix(trimmed, ">>>"))
		case strings.HasPrefix(trimmed, "..."):
			out = append(out, "    ...>"+strings.TrimPrefix(trimmed, "..."))
		default:
			out = append(out, "    "+line)
		}
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n ")
}
