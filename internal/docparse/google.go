package docparse

import (
	"regexp"
	"strings"
)

// Google item headers: `name (type, optional): desc` or `name: desc`.
var googleItemHeader = regexp.MustCompile(`^[ \t]*(\*{0,2}[\w.]+)[ \t]*(?:\(([^)]*)\))?:[ \t]?(.*)$`)

// googleSection is one carved section body, keyed by canonical header name.
type googleSection struct {
	name  string
	lines []string
}

// extractGoogle fills doc from the structured sections of a Google-style
// docstring.
func extractGoogle(lines []string, doc *Doc) {
	for _, sec := range carveGoogleSections(lines) {
		switch sec.name {
		case "args":
			doc.Params = append(doc.Params, googleParams(sec.lines)...)
		case "returns":
			if doc.Returns == nil {
				doc.Returns = googleReturns(sec.lines)
			}
		case "raises":
			doc.Raises = append(doc.Raises, googleRaises(sec.lines)...)
		case "examples":
			if ex := dedentBlock(sec.lines); ex != "" {
				doc.Examples = append(doc.Examples, ex)
			}
		case "notes":
			appendNotes(doc, dedentBlock(sec.lines))
		}
	}
}

// carveGoogleSections groups section body lines under their header line.
// Lines before the first header are discarded (the splitter guarantees the
// first line is a header for well-formed input).
func carveGoogleSections(lines []string) []googleSection {
	var sections []googleSection
	for _, line := range lines {
		if m := googleHeaderLine.FindStringSubmatch(line); m != nil {
			sections = append(sections, googleSection{name: canonicalGoogleName(m[1])})
			continue
		}
		if len(sections) > 0 {
			last := len(sections) - 1
			sections[last].lines = append(sections[last].lines, line)
		}
	}
	return sections
}

// canonicalGoogleName folds header spelling variants together.
func canonicalGoogleName(header string) string {
	switch strings.ToLower(header) {
	case "args", "arguments":
		return "args"
	case "example", "examples":
		return "examples"
	case "note", "notes":
		return "notes"
	default:
		return strings.ToLower(header)
	}
}

// googleItem is one raw chunked entry of an Args/Returns/Raises body.
type googleItem struct {
	name       string
	typeClause string
	desc       string
}

// googleItems folds body lines into items: a line matching the item header
// pattern starts a new item, a blank line flushes the current one, and any
// other line is space-joined onto the current description.
func googleItems(lines []string) []googleItem {
	var items []googleItem
	var cur *googleItem
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
		if m := googleItemHeader.FindStringSubmatch(line); m != nil {
			flush()
			cur = &googleItem{
				name:       m[1],
				typeClause: strings.TrimSpace(m[2]),
				desc:       strings.TrimSpace(m[3]),
			}
			continue
		}
		if cur == nil {
			continue
		}
		if cur.desc == "" {
			cur.desc = trimmed
		} else {
			cur.desc += " " + trimmed
		}
	}
	flush()
	return items
}

func googleParams(lines []string) []Param {
	items := googleItems(lines)
	params := make([]Param, 0, len(items))
	for _, it := range items {
		p := Param{Name: it.name}
		p.TypeName, p.Optional = parseTypeClause(it.typeClause)
		p.Description, p.Default = extractDefault(it.desc)
		params = append(params, p)
	}
	return params
}

func googleReturns(lines []string) *Returns {
	items := googleItems(lines)
	if len(items) > 0 && items[0].name != "" {
		return &Returns{TypeName: items[0].name, Description: items[0].desc}
	}
	text := dedentBlock(lines)
	if text == "" {
		return nil
	}
	return &Returns{Description: text}
}

func googleRaises(lines []string) []RaiseEntry {
	items := googleItems(lines)
	raises := make([]RaiseEntry, 0, len(items))
	for _, it := range items {
		raises = append(raises, RaiseEntry{TypeName: it.name, Description: it.desc})
	}
	return raises
}

// parseTypeClause splits a parenthesized clause like "int, optional" into
// the bare type and the optional flag. The flag is set iff the clause
// contains the literal word "optional".
func parseTypeClause(clause string) (string, bool) {
	if clause == "" {
		return "", false
	}
	optional := false
	var kept []string
	for _, part := range strings.Split(clause, ",") {
		part = strings.TrimSpace(part)
		if strings.EqualFold(part, "optional") {
			optional = true
			continue
		}
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, ", "), optional
}
