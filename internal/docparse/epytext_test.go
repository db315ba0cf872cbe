package docparse

import "testing"

const epytextDoc = `Demonstrate Epytext-style docstring.

@param base: The base value
@type base: float
@param exponent: The exponent value
@type exponent: int
@return: base raised to exponent
@rtype: float
@raise OverflowError: If result is too large
`

func TestParseEpytext(t *testing.T) {
	doc := Parse(epytextDoc)

	if doc.Style != StyleEpytext {
		t.Fatalf("style = %q, want %q", doc.Style, StyleEpytext)
	}
	if doc.ShortDescription != "Demonstrate Epytext-style docstring." {
		t.Errorf("short = %q", doc.ShortDescription)
	}

	wantParams := []Param{
		{Name: "base", TypeName: "float", Description: "The base value"},
		{Name: "exponent", TypeName: "int", Description: "The exponent value"},
	}
	if len(doc.Params) != len(wantParams) {
		t.Fatalf("len(params) = %d, want %d", len(doc.Params), len(wantParams))
	}
	for i, want := range wantParams {
		if doc.Params[i] != want {
			t.Errorf("params[%d] = %+v, want %+v", i, doc.Params[i], want)
		}
	}

	if doc.Returns == nil {
		t.Fatal("returns is absent")
	}
	if doc.Returns.TypeName != "float" || doc.Returns.Description != "base raised to exponent" {
		t.Errorf("returns = %+v", *doc.Returns)
	}

	if len(doc.Raises) != 1 {
		t.Fatalf("len(raises) = %d, want 1", len(doc.Raises))
	}
	want := RaiseEntry{TypeName: "OverflowError", Description: "If result is too large"}
	if doc.Raises[0] != want {
		t.Errorf("raises[0] = %+v, want %+v", doc.Raises[0], want)
	}
}

func TestParseEpytext_WinsOverGoogle(t *testing.T) {
	// A docstring carrying both @param fields and an Args: header is
	// extracted as epytext only.
	doc := Parse("Summary.\n\n@param x: the value\n\nArgs:\n    y: ignored\n")
	if doc.Style != StyleEpytext {
		t.Fatalf("style = %q, want %q", doc.Style, StyleEpytext)
	}
	if len(doc.Params) != 1 {
		t.Fatalf("len(params) = %d, want 1", len(doc.Params))
	}
	if doc.Params[0].Name != "x" {
		t.Errorf("params[0].Name = %q, want %q", doc.Params[0].Name, "x")
	}
}

func TestParseEpytext_MalformedFieldDegrades(t *testing.T) {
	doc := Parse("Summary.\n\n@param text without delimiter\n")
	if len(doc.Params) != 1 {
		t.Fatalf("len(params) = %d, want 1", len(doc.Params))
	}
	if doc.Params[0] != (Param{}) {
		t.Errorf("params[0] = %+v, want empty", doc.Params[0])
	}
}
