// Package typemap translates Python type and exception vocabulary into
// Elixir typespec expressions by table-driven lookup.
//
// All lookup tables are immutable after package initialization and safe for
// concurrent reads. Every conversion is total: unmapped input is returned
// verbatim and empty input maps to the catch-all term() type.
package typemap

import "strings"

// anyType is the catch-all Elixir type for missing or unknown input.
const anyType = "term()"

// primitives maps bare Python type names to Elixir typespec syntax.
var primitives = map[string]string{
	"int":      "integer()",
	"float":    "float()",
	"str":      "String.t()",
	"bool":     "boolean()",
	"bytes":    "binary()",
	"None":     "nil",
	"NoneType": "nil",
	"list":     "list()",
	"dict":     "map()",
	"tuple":    "tuple()",
	"set":      "MapSet.t()",
	"Any":      anyType,
	"object":   anyType,
}

// genericHandler converts the bracketed body of one generic form.
type genericHandler struct {
	prefix  string
	convert func(m *Mapper, inner string) string
}

// genericHandlers is tested in order by literal prefix match. The body is
// the substring between the prefix and the final closing bracket; nested
// multi-argument generics can mis-split on top-level commas, a known
// simplification inherited from the table design.
//
// Populated in init: the handlers recurse through ConvertType, which walks
// this slice, so a composite literal would form an initialization cycle.
var genericHandlers []genericHandler

func init() {
	genericHandlers = []genericHandler{
		{"Optional[", func(m *Mapper, inner string) string {
			return m.ConvertType(inner) + " | nil"
		}},
		{"Union[", func(m *Mapper, inner string) string {
			arms := strings.Split(inner, ",")
			converted := make([]string, 0, len(arms))
			for _, arm := range arms {
				converted = append(converted, m.ConvertType(strings.TrimSpace(arm)))
			}
			return strings.Join(converted, " | ")
		}},
		{"list[", convertList},
		{"List[", convertList},
		{"dict[", convertDict},
		{"Dict[", convertDict},
		{"tuple[", convertTuple},
		{"Tuple[", convertTuple},
		{"set[", convertSet},
		{"Set[", convertSet},
	}
}

func convertList(m *Mapper, inner string) string {
	return "list(" + m.ConvertType(inner) + ")"
}

// Key and value types are not threaded through; Python dicts become the
// generic Elixir map.
func convertDict(_ *Mapper, _ string) string {
	return "map()"
}

// Arity and element types are dropped; Python tuples become the generic
// Elixir tuple.
func convertTuple(_ *Mapper, _ string) string {
	return "tuple()"
}

func convertSet(m *Mapper, inner string) string {
	return "MapSet.t(" + m.ConvertType(inner) + ")"
}

// Mapper converts Python type and exception names, optionally overlaying
// caller-supplied mappings over the built-in tables. The zero value uses
// the built-in tables only. A Mapper is immutable after construction.
type Mapper struct {
	typeOverrides map[string]string
	excOverrides  map[string]string
}

// NewMapper builds a Mapper with overlay tables checked before the built-in
// ones. The maps are copied; later mutation by the caller has no effect.
func NewMapper(typeOverrides, excOverrides map[string]string) *Mapper {
	return &Mapper{
		typeOverrides: copyTable(typeOverrides),
		excOverrides:  copyTable(excOverrides),
	}
}

func copyTable(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// ConvertType maps a Python type expression to Elixir typespec syntax.
// Resolution order: overlay table, primitive table, generic prefixes
// (recursing into the bracketed body), then identity.
func (m *Mapper) ConvertType(pythonType string) string {
	s := strings.TrimSpace(pythonType)
	if s == "" {
		return anyType
	}
	if m != nil {
		if mapped, ok := m.typeOverrides[s]; ok {
			return mapped
		}
	}
	if mapped, ok := primitives[s]; ok {
		return mapped
	}
	for _, h := range genericHandlers {
		if !strings.HasPrefix(s, h.prefix) {
			continue
		}
		inner := s[len(h.prefix):]
		if inner != "" && inner[len(inner)-1] == ']' {
			inner = inner[:len(inner)-1]
		}
		return h.convert(m, strings.TrimSpace(inner))
	}
	return s
}

// ConvertType maps a Python type expression using the built-in tables only.
func ConvertType(pythonType string) string {
	return (*Mapper)(nil).ConvertType(pythonType)
}
