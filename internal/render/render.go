// Package render assembles a parsed docstring into Markdown suitable for
// embedding as the documentation of a generated Elixir binding.
//
// Blocks are emitted in a fixed order (summary, description, Parameters,
// Returns, Raises, Examples, Notes), joined by blank lines, with empty
// blocks omitted. Two post-passes protect the output from Markdown
// renderers: ASCII grid tables are wrapped in code fences and RST math
// markup is rewritten to dollar-delimited form.
package render

import (
	"strings"

	"github.com/nshkrdotcom/snakedoc/internal/docparse"
	"github.com/nshkrdotcom/snakedoc/internal/typemap"
)

// Renderer turns a docparse.Doc into Markdown using the given type mapper.
type Renderer struct {
	types *typemap.Mapper
}

// New creates a Renderer. A nil mapper uses the built-in tables.
func New(types *typemap.Mapper) *Renderer {
	return &Renderer{types: types}
}

// Render assembles the Markdown document. It never fails; a zero Doc
// renders to the empty string.
func (r *Renderer) Render(doc docparse.Doc) string {
	var blocks []string

	if doc.ShortDescription != "" {
		blocks = append(blocks, doc.ShortDescription)
	}
	if doc.LongDescription != "" {
		blocks = append(blocks, doc.LongDescription)
	}
	if b := r.paramsBlock(doc.Params); b != "" {
		blocks = append(blocks, b)
	}
	if b := r.returnsBlock(doc.Returns); b != "" {
		blocks = append(blocks, b)
	}
	if b := r.raisesBlock(doc.Raises); b != "" {
		blocks = append(blocks, b)
	}
	if b := examplesBlock(doc.Examples); b != "" {
		blocks = append(blocks, b)
	}
	if doc.Notes != "" {
		blocks = append(blocks, "## Notes\n\n"+doc.Notes)
	}

	out := strings.Join(blocks, "\n\n")
	out = fenceGridTables(out)
	out = rewriteMath(out)
	return out
}

func (r *Renderer) paramsBlock(params []docparse.Param) string {
	if len(params) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Parameters\n")
	for _, p := range params {
		sb.WriteString("\n")
		sb.WriteString(r.paramBullet(p))
	}
	return sb.String()
}

// paramBullet renders one parameter, e.g.
// "- `x` - count. (type: `integer()`) Defaults to `0`."
func (r *Renderer) paramBullet(p docparse.Param) string {
	var sb strings.Builder
	sb.WriteString("- `")
	sb.WriteString(p.Name)
	sb.WriteString("`")
	if p.Description != "" {
		sb.WriteString(" - ")
		sb.WriteString(p.Description)
	}
	if p.TypeName != "" {
		sb.WriteString(" (type: `")
		sb.WriteString(r.types.ConvertType(p.TypeName))
		sb.WriteString("`)")
	}
	if p.Default != "" {
		sb.WriteString(" Defaults to `")
		sb.WriteString(p.Default)
		sb.WriteString("`.")
	}
	return sb.String()
}

func (r *Renderer) returnsBlock(ret *docparse.Returns) string {
	if ret == nil {
		return ""
	}
	var line string
	switch {
	case ret.TypeName != "" && ret.Description != "":
		line = "Returns `" + r.types.ConvertType(ret.TypeName) + "`. " + ret.Description
	case ret.TypeName != "":
		line = "Returns `" + r.types.ConvertType(ret.TypeName) + "`."
	case ret.Description != "":
		line = ret.Description
	default:
		return ""
	}
	return "## Returns\n\n" + line
}

func (r *Renderer) raisesBlock(raises []docparse.RaiseEntry) string {
	if len(raises) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("## Raises\n")
	for _, e := range raises {
		sb.WriteString("\n- `")
		sb.WriteString(r.types.ConvertException(e.TypeName))
		sb.WriteString("`")
		if e.Description != "" {
			sb.WriteString(" - ")
			sb.WriteString(e.Description)
		}
	}
	return sb.String()
}
