package docparse

import "strings"

// numpySection is one carved section body, keyed by lowercased header word.
type numpySection struct {
	name  string
	lines []string
}

// extractNumpy fills doc from the structured sections of a NumPy-style
// docstring. Only the five structured sections are extracted; other known
// headers (See Also, References, ...) merely terminate the previous one.
func extractNumpy(lines []string, doc *Doc) {
	for _, sec := range carveNumpySections(lines) {
		switch sec.name {
		case "parameters", "other parameters":
			doc.Params = append(doc.Params, numpyParams(sec.lines)...)
		case "returns", "yields":
			if doc.Returns == nil {
				doc.Returns = numpyReturns(sec.lines)
			}
		case "raises":
			doc.Raises = append(doc.Raises, numpyRaises(sec.lines)...)
		case "examples":
			if ex := dedentBlock(sec.lines); ex != "" {
				doc.Examples = append(doc.Examples, ex)
			}
		case "notes":
			appendNotes(doc, dedentBlock(sec.lines))
		}
	}
}

// carveNumpySections groups body lines under header/underline pairs.
func carveNumpySections(lines []string) []numpySection {
	var sections []numpySection
	for i := 0; i < len(lines); i++ {
		if numpyHeaderWord.MatchString(lines[i]) && i+1 < len(lines) && numpyUnderline.MatchString(lines[i+1]) {
			name := strings.ToLower(strings.TrimSpace(lines[i]))
			sections = append(sections, numpySection{name: name})
			i++ // skip the underline
			continue
		}
		if len(sections) > 0 {
			last := len(sections) - 1
			sections[last].lines = append(sections[last].lines, lines[i])
		}
	}
	return sections
}

// numpyItem is one raw chunked entry of a section body.
type numpyItem struct {
	name     string
	typeName string
	desc     []string
}

// numpyItems folds body lines into items. After removing the common section
// indent, a line containing the " : " separator or starting without leading
// whitespace begins a new item; indented lines continue the current one;
// blank lines flush it.
func numpyItems(lines []string) []numpyItem {
	lines = dedentLines(lines)
	var items []numpyItem
	var cur *numpyItem
	flush := func() {
		if cur != nil {
			items = append(items, *cur)
			cur = nil
		}
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		indented := line[0] == ' ' || line[0] == '\t'
		if strings.Contains(line, " : ") || !indented {
			flush()
			cur = &numpyItem{}
			if name, typ, ok := strings.Cut(trimmed, " : "); ok {
				cur.name = strings.TrimSpace(name)
				cur.typeName = strings.TrimSpace(typ)
			} else {
				cur.name = trimmed
			}
			continue
		}
		if cur != nil {
			cur.desc = append(cur.desc, trimmed)
		}
	}
	flush()
	return items
}

func numpyParams(lines []string) []Param {
	items := numpyItems(lines)
	params := make([]Param, 0, len(items))
	for _, it := range items {
		p := Param{Name: it.name, Optional: strings.Contains(it.typeName, "optional")}
		p.TypeName, _ = parseTypeClause(it.typeName)
		p.Description, p.Default = extractDefault(strings.Join(it.desc, " "))
		params = append(params, p)
	}
	return params
}

// numpyReturns keeps the first documented return value. A "name : type"
// item contributes its type; a bare "type" line is the type itself.
func numpyReturns(lines []string) *Returns {
	items := numpyItems(lines)
	if len(items) == 0 {
		return nil
	}
	it := items[0]
	r := &Returns{TypeName: it.typeName, Description: strings.Join(it.desc, " ")}
	if r.TypeName == "" {
		r.TypeName = it.name
	}
	return r
}

func numpyRaises(lines []string) []RaiseEntry {
	items := numpyItems(lines)
	raises := make([]RaiseEntry, 0, len(items))
	for _, it := range items {
		name := it.name
		if name == "" {
			name = it.typeName
		}
		raises = append(raises, RaiseEntry{TypeName: name, Description: strings.Join(it.desc, " ")})
	}
	return raises
}
