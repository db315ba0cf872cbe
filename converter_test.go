package snakedoc

import (
	"strings"
	"testing"
)

func TestConvert_GoogleEndToEnd(t *testing.T) {
	input := "Summary.\n\nArgs:\n    x (int, optional): count. Defaults to 0.\n\nReturns:\n    bool: done flag."

	want := strings.Join([]string{
		"Summary.",
		"",
		"## Parameters",
		"",
		"- `x` - count. (type: `integer()`) Defaults to `0`.",
		"",
		"## Returns",
		"",
		"Returns `boolean()`. done flag.",
	}, "\n")

	if got := Convert(input); got != want {
		t.Errorf("Convert mismatch\n got: %q\nwant: %q", got, want)
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	if got := Convert(""); got != "" {
		t.Errorf("Convert(\"\") = %q, want empty", got)
	}
	if got := Convert("   \n\t\n"); got != "" {
		t.Errorf("Convert(blanks) = %q, want empty", got)
	}
}

func TestConvert_UnstructuredProse(t *testing.T) {
	input := "Just a plain sentence.\n\nAnd another paragraph."
	want := "Just a plain sentence.\n\nAnd another paragraph."
	if got := Convert(input); got != want {
		t.Errorf("Convert = %q, want %q", got, want)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	inputs := []string{
		"Summary.\n\nArgs:\n    x (int): a value.",
		"Summary.\n\n:param x: a value\n:type x: str",
		"garbage input ``` [a](../b)",
	}
	for _, in := range inputs {
		first := Convert(in)
		for i := 0; i < 5; i++ {
			if got := Convert(in); got != first {
				t.Fatalf("Convert(%q) not deterministic: %q != %q", in, got, first)
			}
		}
	}
}

func TestConverter_WithStyle(t *testing.T) {
	// Epytext fields in the input, but parsing is forced to google: the
	// field lines are not google section headers, so no params come out.
	c := New(WithStyle(StyleGoogle))
	doc := c.Parse("Summary.\n\n@param x: the value\n")
	if doc.Style != StyleGoogle {
		t.Errorf("style = %q, want %q", doc.Style, StyleGoogle)
	}
	if len(doc.Params) != 0 {
		t.Errorf("params = %+v, want none", doc.Params)
	}
}

func TestConverter_WithMappings(t *testing.T) {
	c := New(
		WithTypeMappings(map[string]string{"np.ndarray": "Nx.Tensor.t()"}),
		WithExceptionMappings(map[string]string{"LinAlgError": "Nx.Error"}),
	)
	if got := c.ConvertType("np.ndarray"); got != "Nx.Tensor.t()" {
		t.Errorf("ConvertType = %q", got)
	}
	if got := c.ConvertType("Optional[np.ndarray]"); got != "Nx.Tensor.t() | nil" {
		t.Errorf("ConvertType optional = %q", got)
	}
	if got := c.ConvertException("LinAlgError"); got != "Nx.Error" {
		t.Errorf("ConvertException = %q", got)
	}
}

func TestParse_PublicModel(t *testing.T) {
	doc := Parse("Summary.\n\nArgs:\n    x (int): a value.\n\nRaises:\n    ValueError: bad input.")
	if doc.Style != StyleGoogle {
		t.Fatalf("style = %q", doc.Style)
	}
	if len(doc.Params) != 1 || doc.Params[0].Name != "x" || doc.Params[0].TypeName != "int" {
		t.Errorf("params = %+v", doc.Params)
	}
	if len(doc.Raises) != 1 || doc.Raises[0].TypeName != "ValueError" {
		t.Errorf("raises = %+v", doc.Raises)
	}
	if doc.Returns != nil {
		t.Errorf("returns = %+v, want nil", doc.Returns)
	}
}

func TestDetectStyle_Public(t *testing.T) {
	tests := []struct {
		input string
		want  Style
	}{
		{"", StyleUnknown},
		{"plain prose", StyleUnknown},
		{"Args:\n    x: v", StyleGoogle},
		{":param x: v", StyleSphinx},
		{"@param x: v", StyleEpytext},
		{"Parameters\r\n----------\r\nx : int", StyleNumpy},
	}
	for _, tt := range tests {
		if got := DetectStyle(tt.input); got != tt.want {
			t.Errorf("DetectStyle(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSanitize_Public(t *testing.T) {
	got := Sanitize("Use `flag' here.\n```\ncode")
	want := "Use `flag` here.\n```\ncode\n```"
	if got != want {
		t.Errorf("Sanitize = %q, want %q", got, want)
	}
}

func TestConvert_ConcurrentUse(t *testing.T) {
	c := New()
	input := "Summary.\n\nArgs:\n    x (int): a value."
	want := c.Convert(input)

	done := make(chan string, 8)
	for i := 0; i < 8; i++ {
		go func() {
			done <- c.Convert(input)
		}()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent Convert = %q, want %q", got, want)
		}
	}
}
