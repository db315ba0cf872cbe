// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and creating a config under ~/.config/snakedoc/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "snakedoc") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForUnknownStyle returns a hint listing the recognized dialect names.
func ForUnknownStyle(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("recognized styles: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
