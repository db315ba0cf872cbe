package docparse

import "strings"

// applyFieldItem routes one parsed Sphinx/Epytext field line into the
// document. Both dialects share field vocabulary apart from their sigil.
func applyFieldItem(doc *Doc, field, arg, value string) {
	switch field {
	case "param", "parameter", "arg", "argument", "key", "keyword":
		typ, name := splitParamArg(arg)
		doc.Params = append(doc.Params, Param{
			Name:        name,
			TypeName:    typ,
			Description: value,
			Optional:    strings.Contains(typ, "optional"),
		})
	case "type":
		setParamType(doc, arg, value)
	case "return", "returns":
		r := ensureReturns(doc)
		if r.Description == "" {
			r.Description = value
		}
	case "rtype":
		ensureReturns(doc).TypeName = value
	case "raise", "raises", "except", "exception":
		doc.Raises = append(doc.Raises, RaiseEntry{TypeName: arg, Description: value})
	}
}

// splitParamArg handles the two argument spellings of a param field:
// "name" and "type name" (type may be several words).
func splitParamArg(arg string) (typ, name string) {
	fields := strings.Fields(arg)
	if len(fields) >= 2 {
		return strings.Join(fields[:len(fields)-1], " "), fields[len(fields)-1]
	}
	return "", strings.TrimSpace(arg)
}

// setParamType attaches a :type:/@type: declaration to the named parameter,
// or records a type-only parameter when the name was never declared.
func setParamType(doc *Doc, name, typ string) {
	for i := range doc.Params {
		if doc.Params[i].Name == name {
			if doc.Params[i].TypeName == "" {
				doc.Params[i].TypeName = typ
			}
			return
		}
	}
	doc.Params = append(doc.Params, Param{Name: name, TypeName: typ})
}

func ensureReturns(doc *Doc) *Returns {
	if doc.Returns == nil {
		doc.Returns = &Returns{}
	}
	return doc.Returns
}
