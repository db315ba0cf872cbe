package render

import "testing"

func TestRewriteMath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "no math untouched",
			input: "Plain prose with `code`.",
			want:  "Plain prose with `code`.",
		},
		{
			name:  "inline role",
			input: "The area is :math:`\\pi r^2` exactly.",
			want:  "The area is $\\pi r^2$ exactly.",
		},
		{
			name:  "two inline roles on one line",
			input: ":math:`a` and :math:`b`",
			want:  "$a$ and $b$",
		},
		{
			name:  "directive with inline argument",
			input: "Prose.\n.. math:: E = mc^2\nMore prose.",
			want:  "Prose.\n$$\nE = mc^2\n$$\nMore prose.",
		},
		{
			name:  "directive with indented body",
			input: ".. math::\n\n    a^2 + b^2 = c^2\n\nAfter.",
			want:  "$$\na^2 + b^2 = c^2\n$$\n\nAfter.",
		},
		{
			name:  "multi-line body",
			input: ".. math::\n\n    x = 1\n    y = 2\n",
			want:  "$$\nx = 1\ny = 2\n$$\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rewriteMath(tt.input); got != tt.want {
				t.Errorf("rewriteMath mismatch\n got: %q\nwant: %q", got, tt.want)
			}
		})
	}
}
