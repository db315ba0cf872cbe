package docparse

// Parse converts a raw docstring into its structured form, detecting the
// dialect automatically. It never fails: unrecognized or malformed input
// degrades to a Doc with empty structured fields.
func Parse(text string) Doc {
	return ParseWithStyle(text, "")
}

// ParseWithStyle parses text as the given dialect, skipping detection.
// An empty or unrecognized forced style falls back to auto-detection.
func ParseWithStyle(text string, forced Style) Doc {
	normalized := Normalize(text)

	style := forced
	switch style {
	case StyleGoogle, StyleNumpy, StyleSphinx, StyleEpytext, StyleUnknown:
	default:
		style = DetectStyle(normalized)
	}

	short, long, sectionLines := splitDoc(normalized)
	doc := Doc{
		ShortDescription: short,
		LongDescription:  long,
		Style:            style,
	}

	switch style {
	case StyleGoogle:
		extractGoogle(sectionLines, &doc)
	case StyleNumpy:
		extractNumpy(sectionLines, &doc)
	case StyleSphinx:
		extractSphinx(sectionLines, &doc)
	case StyleEpytext:
		extractEpytext(sectionLines, &doc)
	case StyleUnknown:
		// No structured sections; everything stays prose.
	}

	return doc
}
