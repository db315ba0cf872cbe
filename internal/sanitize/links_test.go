package sanitize

import "testing"

func TestSanitizeLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "https link kept",
			input: "See [docs](https://example.com/docs) here.",
			want:  "See [docs](https://example.com/docs) here.",
		},
		{
			name:  "anchor kept",
			input: "Jump to [section](#setup).",
			want:  "Jump to [section](#setup).",
		},
		{
			name:  "relative path kept",
			input: "See [guide](docs/guide.md).",
			want:  "See [guide](docs/guide.md).",
		},
		{
			name:  "parent traversal collapsed to label",
			input: "See [secrets](../../etc/passwd) here.",
			want:  "See secrets here.",
		},
		{
			name:  "backslash traversal collapsed",
			input: `[evil](..\..\config)`,
			want:  "evil",
		},
		{
			name:  "traversal image collapsed",
			input: "![diagram](../private/img.png)",
			want:  "diagram",
		},
		{
			name:  "safe image kept",
			input: "![diagram](https://example.com/img.png)",
			want:  "![diagram](https://example.com/img.png)",
		},
		{
			name:  "scheme url with dotdot kept",
			input: "[x](https://example.com/../y)",
			want:  "[x](https://example.com/../y)",
		},
		{
			name:  "nested parens in url kept",
			input: "[wiki](https://example.com/Foo_(bar))",
			want:  "[wiki](https://example.com/Foo_(bar))",
		},
		{
			name:  "unterminated target left literal",
			input: "Broken [label](https://example",
			want:  "Broken [label](https://example",
		},
		{
			name:  "bare brackets left literal",
			input: "Array[int] indexing a](b",
			want:  "Array[int] indexing a](b",
		},
		{
			name:  "fenced region untouched",
			input: "```\n[x](../up)\n```\n[x](../up)",
			want:  "```\n[x](../up)\n```\nx",
		},
		{
			name:  "two links on one line",
			input: "[a](#x) and [b](../y)",
			want:  "[a](#x) and b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeLinks(tt.input); got != tt.want {
				t.Errorf("SanitizeLinks mismatch\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestSafeTarget(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"#anchor", true},
		{"https://example.com", true},
		{"mailto:a@b.c", true},
		{"docs/guide.md", true},
		{"../secret", false},
		{`..\secret`, false},
		{"a/../b", false},
	}
	for _, tt := range tests {
		if got := safeTarget(tt.target); got != tt.want {
			t.Errorf("safeTarget(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}
