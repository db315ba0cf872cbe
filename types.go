package snakedoc

import "github.com/nshkrdotcom/snakedoc/internal/docparse"

// Style identifies a docstring dialect.
type Style string

// Recognized docstring dialects, in detection priority order.
const (
	StyleEpytext Style = "epytext"
	StyleSphinx  Style = "sphinx"
	StyleNumpy   Style = "numpy"
	StyleGoogle  Style = "google"
	StyleUnknown Style = "unknown"
)

// ParsedDoc is the structured form of one docstring. Every field defaults
// to empty/absent; a fresh value is produced per conversion call and never
// mutated afterwards.
type ParsedDoc struct {
	ShortDescription string
	LongDescription  string
	Params           []Param
	Returns          *Returns
	Raises           []RaiseEntry
	Examples         []string
	Notes            string
	Style            Style
}

// Param describes one documented parameter, in source order.
type Param struct {
	Name        string
	TypeName    string
	Description string
	Optional    bool
	Default     string
}

// Returns describes the documented return value.
type Returns struct {
	TypeName    string
	Description string
}

// RaiseEntry describes one documented exception.
type RaiseEntry struct {
	TypeName    string
	Description string
}

// fromInternalDoc converts the internal parse result to the public model.
func fromInternalDoc(d docparse.Doc) ParsedDoc {
	doc := ParsedDoc{
		ShortDescription: d.ShortDescription,
		LongDescription:  d.LongDescription,
		Notes:            d.Notes,
		Style:            Style(d.Style),
	}
	if len(d.Params) > 0 {
		doc.Params = make([]Param, len(d.Params))
		for i, p := range d.Params {
			doc.Params[i] = Param(p)
		}
	}
	if d.Returns != nil {
		r := Returns(*d.Returns)
		doc.Returns = &r
	}
	if len(d.Raises) > 0 {
		doc.Raises = make([]RaiseEntry, len(d.Raises))
		for i, e := range d.Raises {
			doc.Raises[i] = RaiseEntry(e)
		}
	}
	if len(d.Examples) > 0 {
		doc.Examples = append([]string(nil), d.Examples...)
	}
	return doc
}
